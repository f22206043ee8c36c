// file: controllers/scoreboard_controller.go
package controllers

import (
	"NovaCTF/config"
	"NovaCTF/database"
	"NovaCTF/metrics"
	"NovaCTF/services"
	"NovaCTF/utils"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// Settings 站点运行期配置，main 启动时注入 DB 实现
var Settings config.Provider

func settingsProvider() config.Provider {
	if Settings != nil {
		return Settings
	}
	return config.NewDBProvider(database.DB)
}

// 榜单准实时即可，缓存 15 秒
const scoreboardCacheTTL = 15 * time.Second

// GetScoreboard 查询排行榜（个人榜 + 队伍榜）
func GetScoreboard(c *gin.Context) {
	topN, _ := strconv.Atoi(c.DefaultQuery("top", strconv.Itoa(services.DefaultScoreboardLimit)))

	// 1. 尝试读 Redis 缓存
	cacheKey := fmt.Sprintf("scoreboard:%d", topN)
	if database.RDB != nil {
		if val, err := database.RDB.Get(database.Ctx, cacheKey).Result(); err == nil {
			var board services.Scoreboard
			if json.Unmarshal([]byte(val), &board) == nil {
				metrics.ScoreboardCacheHits.WithLabelValues("hit").Inc()
				utils.Success(c, board)
				return
			}
		}
		metrics.ScoreboardCacheHits.WithLabelValues("miss").Inc()
	}

	board, err := services.GetScoreboard(database.DB, settingsProvider(), topN)
	if err != nil {
		utils.FailError(c, err)
		return
	}

	// 2. 缓存未命中则回填
	if database.RDB != nil {
		if jsonData, err := json.Marshal(board); err == nil {
			database.RDB.Set(database.Ctx, cacheKey, jsonData, scoreboardCacheTTL)
		}
	}

	utils.Success(c, board)
}

// GetSolveFeed 查询实时解题动态
func GetSolveFeed(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	items, err := services.RecentSolves(database.DB, limit)
	if err != nil {
		utils.FailError(c, err)
		return
	}
	utils.Success(c, items)
}

// invalidateScoreboardCache 解题或重算后清掉所有榜单缓存键
func invalidateScoreboardCache() {
	if database.RDB == nil {
		return
	}
	keys, err := database.RDB.Keys(database.Ctx, "scoreboard:*").Result()
	if err == nil && len(keys) > 0 {
		database.RDB.Del(database.Ctx, keys...)
	}
}
