// file: controllers/hint_controller.go
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

// CreateHint 管理员为题目新增提示
func CreateHint(c *gin.Context) {
	challengeID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Fail(c, http.StatusUnprocessableEntity, utils.KindValidation, "无效的题目ID")
		return
	}

	var challenge models.Challenge
	if err := database.DB.First(&challenge, challengeID).Error; err != nil {
		utils.Fail(c, http.StatusNotFound, utils.KindNotFound, "题目不存在")
		return
	}

	var req struct {
		Content   string `json:"content" binding:"required"`
		Cost      uint   `json:"cost"`
		SortOrder uint   `json:"sort_order"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, http.StatusUnprocessableEntity, utils.KindValidation, "参数无效: "+err.Error())
		return
	}

	newHint := models.Hint{
		ChallengeID: uint32(challengeID),
		Content:     req.Content,
		Cost:        req.Cost,
		SortOrder:   req.SortOrder,
	}
	if err := database.DB.Create(&newHint).Error; err != nil {
		utils.Fail(c, http.StatusInternalServerError, utils.KindInternal, "创建提示失败")
		return
	}

	utils.Success(c, gin.H{
		"hint_id": newHint.ID,
		"cost":    newHint.Cost,
	})
}

// UpdateHint 管理员修改提示
func UpdateHint(c *gin.Context) {
	hintID, err := strconv.Atoi(c.Param("hint_id"))
	if err != nil {
		utils.Fail(c, http.StatusUnprocessableEntity, utils.KindValidation, "无效的提示ID")
		return
	}

	var req struct {
		Content   *string `json:"content"`
		Cost      *uint   `json:"cost"`
		SortOrder *uint   `json:"sort_order"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, http.StatusUnprocessableEntity, utils.KindValidation, "参数无效: "+err.Error())
		return
	}

	var hint models.Hint
	if err := database.DB.First(&hint, hintID).Error; err != nil {
		utils.Fail(c, http.StatusNotFound, utils.KindNotFound, "提示不存在")
		return
	}

	updates := map[string]interface{}{}
	if req.Content != nil {
		updates["content"] = *req.Content
	}
	if req.Cost != nil {
		updates["cost"] = *req.Cost
	}
	if req.SortOrder != nil {
		updates["sort_order"] = *req.SortOrder
	}
	if len(updates) > 0 {
		if err := database.DB.Model(&hint).Updates(updates).Error; err != nil {
			utils.Fail(c, http.StatusInternalServerError, utils.KindInternal, "更新提示失败")
			return
		}
	}
	utils.Success(c, nil)
}

// DeleteHint 管理员删除提示
func DeleteHint(c *gin.Context) {
	hintID, err := strconv.Atoi(c.Param("hint_id"))
	if err != nil {
		utils.Fail(c, http.StatusUnprocessableEntity, utils.KindValidation, "无效的提示ID")
		return
	}
	if err := database.DB.Delete(&models.Hint{}, hintID).Error; err != nil {
		utils.Fail(c, http.StatusInternalServerError, utils.KindInternal, "删除提示失败")
		return
	}
	utils.Success(c, nil)
}

// UnlockHint 用户解锁提示并获取内容，重复解锁幂等
func UnlockHint(c *gin.Context) {
	hintID, err := strconv.Atoi(c.Param("hint_id"))
	if err != nil {
		utils.Fail(c, http.StatusUnprocessableEntity, utils.KindValidation, "无效的提示ID")
		return
	}

	userID := currentUserID(c)
	hint, err := services.UnlockHint(database.DB, userID, uint32(hintID))
	if err != nil {
		utils.FailError(c, err)
		return
	}

	utils.Success(c, gin.H{
		"hint_id": hint.ID,
		"content": hint.Content,
		"cost":    hint.Cost,
	})
}
