// file: controllers/common.go
package controllers

import (
	"NovaCTF/database"
	"NovaCTF/models"

	"github.com/gin-gonic/gin"
)

// currentUserID 中间件写入的是 uint32，统一从这里取
func currentUserID(c *gin.Context) uint32 {
	if v, exists := c.Get("user_id"); exists {
		if id, ok := v.(uint32); ok {
			return id
		}
	}
	return 0
}

// currentUserRole 中间件写入的角色，未登录时为空
func currentUserRole(c *gin.Context) models.UserRole {
	if v, exists := c.Get("user_role"); exists {
		if role, ok := v.(models.UserRole); ok {
			return role
		}
	}
	return ""
}

// currentTeamID 用户所在队伍（可能为空）
func currentTeamID(userID uint32) *uint32 {
	var member models.TeamMember
	if err := database.DB.Where("user_id = ?", userID).First(&member).Error; err != nil {
		return nil
	}
	return &member.TeamID
}
