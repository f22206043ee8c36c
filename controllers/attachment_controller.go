// file: controllers/attachment_controller.go
package controllers

import (
	"NovaCTF/database"
	"NovaCTF/models"
	"NovaCTF/utils"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// AddAttachment 管理员为题目挂外链附件。
// 平台只记录 URL，文件本体由外部存储服务托管。
func AddAttachment(c *gin.Context) {
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
		FileName  string `json:"file_name" binding:"required"`
		URL       string `json:"url" binding:"required,url"`
		SHA256    string `json:"sha256"`
		FileSize  uint64 `json:"file_size"`
		SortOrder uint   `json:"sort_order"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, http.StatusUnprocessableEntity, utils.KindValidation, "参数无效: "+err.Error())
		return
	}

	newAttachment := models.Attachment{
		ChallengeID: uint32(challengeID),
		FileName:    req.FileName,
		URL:         req.URL,
		SHA256:      req.SHA256,
		FileSize:    req.FileSize,
		SortOrder:   req.SortOrder,
		Status:      models.AttachmentStatusActive,
		CreatedBy:   currentUserID(c),
	}
	if err := database.DB.Create(&newAttachment).Error; err != nil {
		utils.Fail(c, http.StatusInternalServerError, utils.KindInternal, "创建附件记录失败")
		return
	}

	utils.Success(c, gin.H{
		"attachment_id": newAttachment.ID,
		"status":        newAttachment.Status,
	})
}

// DownloadAttachment 登录用户下载附件，302 跳转到外部存储
func DownloadAttachment(c *gin.Context) {
	attachmentID, _ := strconv.Atoi(c.Param("attachment_id"))

	var attachment models.Attachment
	if err := database.DB.First(&attachment, attachmentID).Error; err != nil {
		utils.Fail(c, http.StatusNotFound, utils.KindNotFound, "附件不存在")
		return
	}
	if attachment.Status != models.AttachmentStatusActive {
		utils.Fail(c, http.StatusNotFound, utils.KindNotFound, "附件不存在")
		return
	}

	c.Redirect(http.StatusFound, attachment.URL)
}

// ListAttachments 列出题目的附件，普通用户只能看到 active 状态
func ListAttachments(c *gin.Context) {
	challengeID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Fail(c, http.StatusUnprocessableEntity, utils.KindValidation, "无效的题目ID")
		return
	}

	var attachments []models.Attachment
	db := database.DB.Where("challenge_id = ?", challengeID).Order("sort_order asc, id asc")

	role := currentUserRole(c)
	if role != models.RoleAdmin && role != models.RoleRootAdmin {
		db = db.Where("status = ?", models.AttachmentStatusActive)
	}

	if err := db.Find(&attachments).Error; err != nil {
		utils.Fail(c, http.StatusInternalServerError, utils.KindInternal, "查询附件失败: "+err.Error())
		return
	}
	utils.Success(c, attachments)
}

// UpdateAttachmentStatus 管理员更新附件状态
func UpdateAttachmentStatus(c *gin.Context) {
	attachmentID, err := strconv.Atoi(c.Param("attachment_id"))
	if err != nil {
		utils.Fail(c, http.StatusUnprocessableEntity, utils.KindValidation, "无效的附件ID")
		return
	}

	var req struct {
		Status models.AttachmentStatus `json:"status" binding:"required,oneof=active archived"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, http.StatusUnprocessableEntity, utils.KindValidation, "参数无效: "+err.Error())
		return
	}

	var attachment models.Attachment
	if err := database.DB.First(&attachment, attachmentID).Error; err != nil {
		utils.Fail(c, http.StatusNotFound, utils.KindNotFound, "附件不存在")
		return
	}

	if err := database.DB.Model(&attachment).Update("status", req.Status).Error; err != nil {
		utils.Fail(c, http.StatusInternalServerError, utils.KindInternal, "更新附件状态失败: "+err.Error())
		return
	}
	utils.Success(c, nil)
}

// DeleteAttachment 管理员删除附件，记录不存在也视为删除成功
func DeleteAttachment(c *gin.Context) {
	attachmentID, err := strconv.Atoi(c.Param("attachment_id"))
	if err != nil {
		utils.Fail(c, http.StatusUnprocessableEntity, utils.KindValidation, "无效的附件ID")
		return
	}

	var attachment models.Attachment
	if err := database.DB.First(&attachment, attachmentID).Error; err != nil {
		utils.Success(c, nil)
		return
	}

	if err := database.DB.Delete(&attachment).Error; err != nil {
		utils.Fail(c, http.StatusInternalServerError, utils.KindInternal, "删除附件记录失败: "+err.Error())
		return
	}
	utils.Success(c, nil)
}
