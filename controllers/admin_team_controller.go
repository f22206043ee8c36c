// file: controllers/admin_team_controller.go
package controllers

import (
	"NovaCTF/database"
	"NovaCTF/models"
	"NovaCTF/utils"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

func AdminGetTeams(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	search := c.Query("search")

	var teams []models.Team
	var total int64

	db := database.DB.Model(&models.Team{}).Preload("Leader")
	if search != "" {
		db = db.Where("team_name LIKE ?", "%"+search+"%")
	}
	db.Count(&total)
	db.Order("id desc").Offset((page - 1) * limit).Limit(limit).Find(&teams)

	type TeamInfo struct {
		ID             uint32            `json:"id"`
		TeamName       string            `json:"team_name"`
		LeaderUsername string            `json:"leader_username"`
		TeamStatus     models.TeamStatus `json:"team_status"`
		MemberCount    int64             `json:"member_count"`
	}

	resultTeams := make([]TeamInfo, 0, len(teams))
	for _, team := range teams {
		var memberCount int64
		database.DB.Model(&models.TeamMember{}).Where("team_id = ?", team.ID).Count(&memberCount)

		resultTeams = append(resultTeams, TeamInfo{
			ID:             team.ID,
			TeamName:       team.TeamName,
			LeaderUsername: team.Leader.Username,
			TeamStatus:     team.TeamStatus,
			MemberCount:    memberCount,
		})
	}

	utils.Success(c, gin.H{
		"total": total,
		"teams": resultTeams,
	})
}

func AdminUpdateTeamStatus(c *gin.Context) {
	teamID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Fail(c, http.StatusUnprocessableEntity, utils.KindValidation, "无效的队伍ID")
		return
	}

	var req struct {
		Status models.TeamStatus `json:"status" binding:"required,oneof=active banned hidden"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, http.StatusUnprocessableEntity, utils.KindValidation, "无效的状态值")
		return
	}

	var team models.Team
	if err := database.DB.First(&team, teamID).Error; err != nil {
		utils.Fail(c, http.StatusNotFound, utils.KindNotFound, "队伍不存在")
		return
	}

	if err := database.DB.Model(&team).Update("team_status", req.Status).Error; err != nil {
		utils.Fail(c, http.StatusInternalServerError, utils.KindInternal, "更新队伍状态失败")
		return
	}

	utils.Success(c, gin.H{
		"team_id": team.ID,
		"status":  req.Status,
	})
}

func AdminDeleteTeam(c *gin.Context) {
	teamID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Fail(c, http.StatusUnprocessableEntity, utils.KindValidation, "无效的队伍ID")
		return
	}

	// 硬删除，成员关系一并清理
	if err := database.DB.Select("Members").Delete(&models.Team{ID: uint32(teamID)}).Error; err != nil {
		utils.Fail(c, http.StatusInternalServerError, utils.KindInternal, "删除队伍失败")
		return
	}
	utils.Success(c, nil)
}
