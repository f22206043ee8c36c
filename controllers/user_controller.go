// file: controllers/user_controller.go
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

// --- 公开接口 ---

func Register(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required,min=3,max=32"`
		Password string `json:"password" binding:"required,min=8"`
		Email    string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, http.StatusUnprocessableEntity, utils.KindValidation, "参数无效: "+err.Error())
		return
	}

	var user models.User
	if err := database.DB.Where("username = ? OR email = ?", req.Username, req.Email).First(&user).Error; err == nil {
		utils.Fail(c, http.StatusUnprocessableEntity, utils.KindValidation, "用户名或邮箱已被注册")
		return
	}

	newUser := models.User{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
	}
	if err := database.DB.Create(&newUser).Error; err != nil {
		utils.Fail(c, http.StatusInternalServerError, utils.KindInternal, "数据库错误: "+err.Error())
		return
	}

	utils.Success(c, gin.H{
		"id":       newUser.ID,
		"username": newUser.Username,
		"role":     newUser.Role,
	})
}

func Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, http.StatusUnprocessableEntity, utils.KindValidation, "参数无效: "+err.Error())
		return
	}

	var user models.User
	if err := database.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		utils.Fail(c, http.StatusUnauthorized, utils.KindUnauthorized, "用户不存在或密码错误")
		return
	}

	if !user.CheckPassword(req.Password) {
		utils.Fail(c, http.StatusUnauthorized, utils.KindUnauthorized, "用户不存在或密码错误")
		return
	}

	if user.Status == models.StatusBanned {
		utils.Fail(c, http.StatusForbidden, utils.KindForbidden, "用户已被封禁")
		return
	}

	token, err := utils.GenerateToken(user)
	if err != nil {
		utils.Fail(c, http.StatusInternalServerError, utils.KindInternal, "Token 生成失败")
		return
	}

	utils.Success(c, gin.H{
		"token": token,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"role":     user.Role,
		},
	})
}

// --- 需要登录的接口 ---

func GetUserDetail(c *gin.Context) {
	targetUserID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Fail(c, http.StatusUnprocessableEntity, utils.KindValidation, "无效的用户ID")
		return
	}

	var user models.User
	if err := database.DB.First(&user, targetUserID).Error; err != nil {
		utils.Fail(c, http.StatusNotFound, utils.KindNotFound, "用户不存在")
		return
	}

	// 实时积分，不读快照
	score, err := services.UserScore(database.DB, user.ID)
	if err != nil {
		utils.FailError(c, err)
		return
	}

	resp := gin.H{
		"id":       user.ID,
		"username": user.Username,
		"role":     user.Role,
		"score":    score,
	}
	if teamID := currentTeamID(user.ID); teamID != nil {
		resp["team_id"] = *teamID
	}
	// 邮箱只展示给本人和管理员
	requestingUserID := currentUserID(c)
	requestingUserRole := currentUserRole(c)
	if uint32(targetUserID) == requestingUserID || requestingUserRole == models.RoleAdmin || requestingUserRole == models.RoleRootAdmin {
		resp["email"] = user.Email
	}
	utils.Success(c, resp)
}

// --- 仅管理员可访问的接口 ---

func GetUserList(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	query := c.Query("query")

	var users []models.User
	var total int64
	db := database.DB.Model(&models.User{})
	if query != "" {
		db = db.Where("username LIKE ? OR email LIKE ?", "%"+query+"%", "%"+query+"%")
	}
	db.Count(&total)
	db.Offset((page - 1) * pageSize).Limit(pageSize).Order("id desc").Find(&users)

	resultUsers := make([]gin.H, 0, len(users))
	for _, user := range users {
		resultUsers = append(resultUsers, gin.H{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
			"role":     user.Role,
			"status":   user.Status,
		})
	}
	utils.Success(c, gin.H{
		"total": total,
		"users": resultUsers,
	})
}

func DeleteUser(c *gin.Context) {
	targetUserID, _ := strconv.Atoi(c.Param("id"))
	var user models.User
	if err := database.DB.First(&user, targetUserID).Error; err != nil {
		utils.Fail(c, http.StatusNotFound, utils.KindNotFound, "用户不存在")
		return
	}
	if user.Role == models.RoleRootAdmin {
		utils.Fail(c, http.StatusForbidden, utils.KindForbidden, "Root admin cannot be deleted")
		return
	}
	database.DB.Delete(&user)
	utils.Success(c, nil)
}

func UpdateUserStatus(c *gin.Context) {
	targetUserID, _ := strconv.Atoi(c.Param("id"))
	var req struct {
		Status models.UserStatus `json:"status" binding:"required,oneof=active banned"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, http.StatusUnprocessableEntity, utils.KindValidation, "无效的状态")
		return
	}
	var user models.User
	if err := database.DB.First(&user, targetUserID).Error; err != nil {
		utils.Fail(c, http.StatusNotFound, utils.KindNotFound, "用户不存在")
		return
	}
	if user.Role == models.RoleRootAdmin {
		utils.Fail(c, http.StatusForbidden, utils.KindForbidden, "Root admin cannot be modified")
		return
	}
	database.DB.Model(&user).Update("status", req.Status)
	utils.Success(c, gin.H{
		"user_id": user.ID,
		"status":  req.Status,
	})
}

// --- 仅 Root Admin 可访问的接口 ---

func UpdateUserRole(c *gin.Context) {
	targetUserID, _ := strconv.Atoi(c.Param("id"))
	var req struct {
		Role models.UserRole `json:"role" binding:"required,oneof=user admin"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, http.StatusUnprocessableEntity, utils.KindValidation, "无效的角色")
		return
	}
	var user models.User
	if err := database.DB.First(&user, targetUserID).Error; err != nil {
		utils.Fail(c, http.StatusNotFound, utils.KindNotFound, "用户不存在")
		return
	}
	if user.Role == models.RoleRootAdmin {
		utils.Fail(c, http.StatusForbidden, utils.KindForbidden, "Root admin cannot be modified")
		return
	}
	database.DB.Model(&user).Update("role", req.Role)
	utils.Success(c, gin.H{
		"user_id": user.ID,
		"role":    req.Role,
	})
}
