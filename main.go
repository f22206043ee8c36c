// file: main.go
package main

import (
	"NovaCTF/config"
	"NovaCTF/controllers"
	"NovaCTF/database"
	"NovaCTF/routes"
	"NovaCTF/utils"
	"flag"
	"log"

	"github.com/gin-gonic/gin"
)

func main() {
	configPath := flag.String("config", "config.toml", "配置文件路径")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	gin.SetMode(cfg.Server.Mode)
	utils.InitJWT(cfg.JWT.Secret, cfg.JWT.ExpireHours)

	database.Connect(cfg)
	database.MigrateTables()
	database.InitRedis(cfg)

	controllers.Settings = config.NewDBProvider(database.DB)

	r := routes.SetupRouter()

	log.Printf("Starting server on %s", cfg.Server.Addr)
	if err := r.Run(cfg.Server.Addr); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
