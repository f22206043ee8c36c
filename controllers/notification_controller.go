// file: controllers/notification_controller.go
package controllers

import (
	"NovaCTF/database"
	"NovaCTF/models"
	"NovaCTF/services"
	"NovaCTF/utils"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// notificationMailer 公告群发使用的投递实现，main 可替换
var notificationMailer services.Mailer = services.LogMailer{}

// GetNotifications 公开接口，按时间倒序返回公告
func GetNotifications(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	var notifications []models.Notification
	if err := database.DB.Order("id desc").Limit(limit).Find(&notifications).Error; err != nil {
		utils.Fail(c, http.StatusInternalServerError, utils.KindInternal, "查询公告失败")
		return
	}
	utils.Success(c, notifications)
}

// CreateNotification 管理员发布公告，可选群发邮件
func CreateNotification(c *gin.Context) {
	var req struct {
		Title     string `json:"title" binding:"required,max=200"`
		Content   string `json:"content" binding:"required"`
		SendEmail bool   `json:"send_email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, http.StatusUnprocessableEntity, utils.KindValidation, "参数无效: "+err.Error())
		return
	}

	notification := models.Notification{
		Title:     req.Title,
		Content:   req.Content,
		CreatedBy: currentUserID(c),
	}
	if err := services.PublishNotification(database.DB, notificationMailer, &notification, req.SendEmail); err != nil {
		utils.Fail(c, http.StatusInternalServerError, utils.KindInternal, "发布公告失败")
		return
	}

	utils.Success(c, gin.H{
		"id":    notification.ID,
		"title": notification.Title,
	})
}

// DeleteNotification 管理员删除公告
func DeleteNotification(c *gin.Context) {
	notificationID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Fail(c, http.StatusUnprocessableEntity, utils.KindValidation, "无效的公告ID")
		return
	}
	if err := database.DB.Delete(&models.Notification{}, notificationID).Error; err != nil {
		utils.Fail(c, http.StatusInternalServerError, utils.KindInternal, "删除公告失败")
		return
	}
	utils.Success(c, nil)
}
