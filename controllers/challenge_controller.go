// file: controllers/challenge_controller.go
package controllers

import (
	"NovaCTF/database"
	"NovaCTF/dto"
	"NovaCTF/mappers"
	"NovaCTF/models"
	"NovaCTF/services"
	"NovaCTF/utils"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// CreateChallenge —— DTO + 手动映射 + Normalize 兼容旧客户端
func CreateChallenge(c *gin.Context) {
	var req dto.CreateChallengeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, http.StatusUnprocessableEntity, utils.KindValidation, "invalid request body: "+err.Error())
		return
	}
	req.Normalize()

	// 必填校验统一在这里做，避免绑定阶段因别名导致的校验失败
	if req.ChallengeName == "" || req.CategoryID == 0 || req.Author == "" ||
		req.Description == "" || req.Type == "" || req.FlagPattern == "" {
		utils.Fail(c, http.StatusUnprocessableEntity, utils.KindValidation, "missing required fields")
		return
	}
	if req.Type != string(models.ChallengeTypeStandard) && req.Type != string(models.ChallengeTypeDynamic) {
		utils.Fail(c, http.StatusUnprocessableEntity, utils.KindValidation, "type must be standard or dynamic")
		return
	}
	if req.Type == string(models.ChallengeTypeStandard) && req.Points == 0 {
		utils.Fail(c, http.StatusUnprocessableEntity, utils.KindValidation, "standard challenge requires points")
		return
	}
	if req.Type == string(models.ChallengeTypeDynamic) {
		if req.InitialValue == 0 {
			utils.Fail(c, http.StatusUnprocessableEntity, utils.KindValidation, "dynamic challenge requires initial_value")
			return
		}
		if req.MinimumValue > req.InitialValue {
			utils.Fail(c, http.StatusUnprocessableEntity, utils.KindValidation, "minimum_value cannot exceed initial_value")
			return
		}
	}
	if req.Difficulty != "" && req.Difficulty != "easy" && req.Difficulty != "medium" && req.Difficulty != "hard" {
		utils.Fail(c, http.StatusUnprocessableEntity, utils.KindValidation, "difficulty must be easy/medium/hard")
		return
	}

	// 类别存在性校验
	var category models.Category
	if err := database.DB.First(&category, req.CategoryID).Error; err != nil {
		utils.Fail(c, http.StatusNotFound, utils.KindNotFound, "category not found")
		return
	}

	challenge := mappers.MapCreateReqToModel(req)
	if err := database.DB.Create(&challenge).Error; err != nil {
		utils.Fail(c, http.StatusInternalServerError, utils.KindInternal, "failed to create challenge: "+err.Error())
		return
	}
	utils.Success(c, gin.H{"id": challenge.ID})
}

// UpdateChallenge —— 管理员按字段更新
func UpdateChallenge(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var challenge models.Challenge
	if err := database.DB.First(&challenge, id).Error; err != nil {
		utils.Fail(c, http.StatusNotFound, utils.KindNotFound, "challenge not found")
		return
	}

	var req dto.UpdateChallengeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, http.StatusUnprocessableEntity, utils.KindValidation, "invalid request body")
		return
	}

	updates := map[string]interface{}{}
	if req.State != nil {
		if *req.State != string(models.ChallengeStateVisible) && *req.State != string(models.ChallengeStateHidden) {
			utils.Fail(c, http.StatusUnprocessableEntity, utils.KindValidation, "state must be visible or hidden")
			return
		}
		updates["state"] = *req.State
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Difficulty != nil {
		updates["difficulty"] = *req.Difficulty
	}
	if req.FlagPattern != nil {
		if strings.TrimSpace(*req.FlagPattern) == "" {
			utils.Fail(c, http.StatusUnprocessableEntity, utils.KindValidation, "flag_pattern cannot be empty")
			return
		}
		updates["flag_pattern"] = *req.FlagPattern
	}
	if req.Points != nil {
		updates["points"] = *req.Points
		if challenge.Type == models.ChallengeTypeStandard {
			updates["current_value"] = *req.Points
		}
	}
	if req.InitialValue != nil {
		updates["initial_value"] = *req.InitialValue
	}
	if req.DecayLimit != nil {
		updates["decay_limit"] = *req.DecayLimit
	}
	if req.MinimumValue != nil {
		updates["minimum_value"] = *req.MinimumValue
	}

	if len(updates) == 0 {
		utils.Fail(c, http.StatusUnprocessableEntity, utils.KindValidation, "nothing to update")
		return
	}
	if err := database.DB.Model(&challenge).Updates(updates).Error; err != nil {
		utils.Fail(c, http.StatusInternalServerError, utils.KindInternal, "update failed: "+err.Error())
		return
	}

	// 动态题参数变化后立刻按当前解题数重算缓存分值
	if challenge.Type == models.ChallengeTypeDynamic {
		if err := database.DB.First(&challenge, id).Error; err == nil {
			value := services.ComputeValue(challenge.InitialValue, challenge.DecayLimit, challenge.MinimumValue, challenge.SolvedCount)
			database.DB.Model(&challenge).UpdateColumn("current_value", value)
		}
	}

	utils.Success(c, gin.H{"id": challenge.ID})
}

func DeleteChallenge(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	result := database.DB.Delete(&models.Challenge{}, id)
	if result.Error != nil {
		utils.Fail(c, http.StatusInternalServerError, utils.KindInternal, "delete failed: "+result.Error.Error())
		return
	}
	if result.RowsAffected == 0 {
		utils.Fail(c, http.StatusNotFound, utils.KindNotFound, "challenge not found")
		return
	}
	utils.Success(c, nil)
}

// ListChallenges —— 用户可见的题目列表，带个人已解标记
func ListChallenges(c *gin.Context) {
	userID := currentUserID(c)

	var challenges []models.Challenge
	err := database.DB.Model(&models.Challenge{}).
		Where("state = ?", models.ChallengeStateVisible).
		Preload("Category").
		Order("id ASC").
		Find(&challenges).Error
	if err != nil {
		utils.Fail(c, http.StatusInternalServerError, utils.KindInternal, "query failed")
		return
	}

	solvedSet := solvedChallengeSet(userID)

	items := make([]dto.ChallengeItemResp, 0, len(challenges))
	for _, ch := range challenges {
		items = append(items, mappers.MapModelToItemResp(ch, solvedSet[ch.ID]))
	}

	utils.Success(c, gin.H{
		"total":      len(items),
		"challenges": items,
	})
}

// GetChallengeDetail —— 用户可见的题目详情（不泄露 Flag）
func GetChallengeDetail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	userID := currentUserID(c)

	var challenge models.Challenge
	if err := database.DB.Preload("Category").First(&challenge, id).Error; err != nil {
		utils.Fail(c, http.StatusNotFound, utils.KindNotFound, "challenge not found")
		return
	}
	if challenge.State != models.ChallengeStateVisible {
		utils.Fail(c, http.StatusForbidden, utils.KindForbidden, "challenge not available")
		return
	}

	var attachments []models.Attachment
	database.DB.
		Where("challenge_id = ? AND status = ?", id, models.AttachmentStatusActive).
		Order("sort_order ASC, id ASC").
		Find(&attachments)

	var hints []models.Hint
	database.DB.Where("challenge_id = ?", id).Order("sort_order ASC, id ASC").Find(&hints)

	mini := make([]dto.AttachmentMini, 0, len(attachments))
	for _, a := range attachments {
		mini = append(mini, dto.AttachmentMini{
			ID:       a.ID,
			FileName: a.FileName,
			Size:     a.FileSize,
			SHA256:   a.SHA256,
		})
	}

	hintsMini := make([]dto.HintMini, 0, len(hints))
	for _, h := range hints {
		unlocked, _ := services.HintUnlocked(database.DB, userID, h.ID)
		hintsMini = append(hintsMini, dto.HintMini{ID: h.ID, Cost: h.Cost, Unlocked: unlocked})
	}

	solved, _ := services.HasSolved(database.DB, userID, challenge.ID)

	resp := dto.ChallengeDetailResp{
		ID:            challenge.ID,
		ChallengeName: challenge.ChallengeName,
		Category:      challenge.Category.Alias,
		Author:        challenge.Author,
		Description:   challenge.Description,
		Type:          string(challenge.Type),
		Difficulty:    string(challenge.Difficulty),
		Attachments:   mini,
		Hints:         hintsMini,
		CurrentValue:  challenge.CurrentValue,
		SolvedCount:   challenge.SolvedCount,
		Solved:        solved,
	}

	utils.Success(c, resp)
}

// AdminListChallenges —— 管理员查询题目列表（可见/隐藏均可，支持筛选+分页）
func AdminListChallenges(c *gin.Context) {
	categoryIDStr := c.Query("category_id")
	challengeType := strings.TrimSpace(c.Query("type"))  // standard/dynamic
	diff := strings.TrimSpace(c.Query("difficulty"))     // easy/medium/hard
	state := strings.TrimSpace(c.Query("state"))         // visible/hidden
	kw := strings.TrimSpace(c.Query("keyword"))          // 模糊匹配 name/description
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := database.DB.Model(&models.Challenge{}).Preload("Category")

	if categoryIDStr != "" {
		if cid, err := strconv.Atoi(categoryIDStr); err == nil && cid > 0 {
			db = db.Where("category_id = ?", cid)
		}
	}
	if challengeType != "" {
		db = db.Where("challenge_type = ?", challengeType)
	}
	if diff != "" {
		db = db.Where("difficulty = ?", diff)
	}
	if state != "" {
		db = db.Where("state = ?", state)
	}
	if kw != "" {
		like := "%" + kw + "%"
		db = db.Where("challenge_name LIKE ? OR description LIKE ?", like, like)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		utils.Fail(c, http.StatusInternalServerError, utils.KindInternal, "query failed: "+err.Error())
		return
	}

	var list []models.Challenge
	if err := db.Order("updated_at DESC").Offset(offset).Limit(limit).Find(&list).Error; err != nil {
		utils.Fail(c, http.StatusInternalServerError, utils.KindInternal, "query failed: "+err.Error())
		return
	}

	items := make([]dto.AdminChallengeItemResp, 0, len(list))
	for _, ch := range list {
		items = append(items, dto.AdminChallengeItemResp{
			ID:            ch.ID,
			ChallengeName: ch.ChallengeName,
			Category:      ch.Category.Alias,
			Difficulty:    string(ch.Difficulty),
			Type:          string(ch.Type),
			State:         string(ch.State),
			CurrentValue:  ch.CurrentValue,
			SolvedCount:   ch.SolvedCount,
			UpdatedAt:     ch.UpdatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	utils.Success(c, gin.H{
		"total":      total,
		"page":       page,
		"limit":      limit,
		"challenges": items,
	})
}

// AdminGetChallengeDetail —— 管理员查询题目详情（含 Flag 模式与衰减参数）
func AdminGetChallengeDetail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var challenge models.Challenge
	if err := database.DB.Preload("Category").First(&challenge, id).Error; err != nil {
		utils.Fail(c, http.StatusNotFound, utils.KindNotFound, "challenge not found")
		return
	}

	utils.Success(c, mappers.MapModelToAdminDetailResp(challenge))
}

// RecalculateScores —— 管理员触发全量动态分值重算
func RecalculateScores(c *gin.Context) {
	result, err := services.RecalculateDynamicScores(database.DB)
	if err != nil {
		utils.FailError(c, err)
		return
	}

	// 分值变了，榜单缓存一并作废
	invalidateScoreboardCache()

	utils.Success(c, result)
}

// solvedChallengeSet 用户已解题目的集合
func solvedChallengeSet(userID uint32) map[uint32]bool {
	var solves []models.Solve
	database.DB.Where("user_id = ?", userID).Find(&solves)
	set := make(map[uint32]bool, len(solves))
	for _, s := range solves {
		set[s.ChallengeID] = true
	}
	return set
}
