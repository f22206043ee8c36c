// file: controllers/setting_controller.go
package controllers

import (
	"NovaCTF/config"
	"NovaCTF/database"
	"NovaCTF/models"
	"NovaCTF/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetSettings 管理员查看全部站点配置项
func GetSettings(c *gin.Context) {
	var settings []models.Setting
	if err := database.DB.Order("setting_key asc").Find(&settings).Error; err != nil {
		utils.Fail(c, http.StatusInternalServerError, utils.KindInternal, "查询配置失败")
		return
	}
	utils.Success(c, settings)
}

// UpdateSetting 管理员写入配置项，榜单相关配置修改后清缓存
func UpdateSetting(c *gin.Context) {
	var req struct {
		Key   string `json:"key" binding:"required,max=100"`
		Value string `json:"value" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, http.StatusUnprocessableEntity, utils.KindValidation, "参数无效: "+err.Error())
		return
	}

	if req.Key == config.SettingTeamScoreMode &&
		req.Value != config.TeamScoreModeDedup && req.Value != config.TeamScoreModeSum {
		utils.Fail(c, http.StatusUnprocessableEntity, utils.KindValidation, "无效的队伍计分模式")
		return
	}

	if err := config.NewDBProvider(database.DB).Set(req.Key, req.Value); err != nil {
		utils.Fail(c, http.StatusInternalServerError, utils.KindInternal, "保存配置失败")
		return
	}

	if req.Key == config.SettingTeamScoreMode {
		invalidateScoreboardCache()
	}

	utils.Success(c, gin.H{
		"key":   req.Key,
		"value": req.Value,
	})
}
