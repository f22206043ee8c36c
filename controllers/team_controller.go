// file: controllers/team_controller.go
package controllers

import (
	"NovaCTF/database"
	"NovaCTF/models"
	"NovaCTF/utils"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// isUserInTeam 检查用户是否已在队伍中
func isUserInTeam(userID uint32) (bool, error) {
	var count int64
	err := database.DB.Model(&models.TeamMember{}).Where("user_id = ?", userID).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func CreateTeam(c *gin.Context) {
	userID := currentUserID(c)

	inTeam, err := isUserInTeam(userID)
	if err != nil {
		utils.Fail(c, http.StatusInternalServerError, utils.KindInternal, "数据库错误")
		return
	}
	if inTeam {
		utils.Fail(c, http.StatusUnprocessableEntity, utils.KindValidation, "User already in a team")
		return
	}

	var req struct {
		TeamName     string `json:"team_name" binding:"required,min=2,max=100"`
		TeamDescribe string `json:"team_describe"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, http.StatusUnprocessableEntity, utils.KindValidation, "参数无效")
		return
	}

	var existingTeam models.Team
	if err := database.DB.Where("team_name = ?", req.TeamName).First(&existingTeam).Error; err == nil {
		utils.Fail(c, http.StatusUnprocessableEntity, utils.KindValidation, "Team name already exists")
		return
	}

	newTeam := models.Team{
		TeamName:       req.TeamName,
		LeaderID:       userID,
		InvitationCode: utils.GenerateInvitationCode(12),
		TeamDescribe:   req.TeamDescribe,
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&newTeam).Error; err != nil {
			return err
		}
		leaderMember := models.TeamMember{
			TeamID:   newTeam.ID,
			UserID:   userID,
			Role:     models.TeamRoleLeader,
			JoinedAt: time.Now(),
		}
		return tx.Create(&leaderMember).Error
	})
	if err != nil {
		utils.Fail(c, http.StatusInternalServerError, utils.KindInternal, "创建队伍失败: "+err.Error())
		return
	}

	utils.Success(c, gin.H{
		"id":              newTeam.ID,
		"team_name":       newTeam.TeamName,
		"leader_id":       newTeam.LeaderID,
		"invitation_code": newTeam.InvitationCode,
	})
}

func JoinTeam(c *gin.Context) {
	userID := currentUserID(c)

	var req struct {
		InvitationCode string `json:"invitation_code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, http.StatusUnprocessableEntity, utils.KindValidation, "参数无效")
		return
	}

	inTeam, err := isUserInTeam(userID)
	if err != nil {
		utils.Fail(c, http.StatusInternalServerError, utils.KindInternal, "数据库错误")
		return
	}
	if inTeam {
		utils.Fail(c, http.StatusUnprocessableEntity, utils.KindValidation, "User already in a team")
		return
	}

	var targetTeam models.Team
	if err := database.DB.Where("invitation_code = ?", req.InvitationCode).First(&targetTeam).Error; err != nil {
		utils.Fail(c, http.StatusNotFound, utils.KindNotFound, "Invalid invitation code")
		return
	}
	if targetTeam.TeamStatus == models.TeamStatusBanned {
		utils.Fail(c, http.StatusForbidden, utils.KindForbidden, "Team is banned")
		return
	}

	newMember := models.TeamMember{
		TeamID:   targetTeam.ID,
		UserID:   userID,
		Role:     models.TeamRoleMember,
		JoinedAt: time.Now(),
	}
	if err := database.DB.Create(&newMember).Error; err != nil {
		utils.Fail(c, http.StatusInternalServerError, utils.KindInternal, "加入队伍失败")
		return
	}

	utils.Success(c, gin.H{
		"team_id":   targetTeam.ID,
		"team_name": targetTeam.TeamName,
	})
}

func LeaveTeam(c *gin.Context) {
	userID := currentUserID(c)

	var member models.TeamMember
	if err := database.DB.Where("user_id = ?", userID).First(&member).Error; err != nil {
		utils.Fail(c, http.StatusNotFound, utils.KindNotFound, "User not in any team")
		return
	}

	if member.Role == models.TeamRoleLeader {
		utils.Fail(c, http.StatusForbidden, utils.KindForbidden, "Leader cannot leave team, please disband the team instead")
		return
	}

	if err := database.DB.Delete(&member).Error; err != nil {
		utils.Fail(c, http.StatusInternalServerError, utils.KindInternal, "退出队伍失败")
		return
	}
	utils.Success(c, nil)
}

func KickMember(c *gin.Context) {
	teamID, _ := strconv.Atoi(c.Param("id"))
	memberUserID, _ := strconv.Atoi(c.Param("user_id"))
	leaderID := currentUserID(c)

	var team models.Team
	if err := database.DB.First(&team, teamID).Error; err != nil || team.LeaderID != leaderID {
		utils.Fail(c, http.StatusForbidden, utils.KindForbidden, "Permission denied: not the team leader")
		return
	}

	if uint32(memberUserID) == leaderID {
		utils.Fail(c, http.StatusUnprocessableEntity, utils.KindValidation, "Cannot kick the leader")
		return
	}

	result := database.DB.Where("team_id = ? AND user_id = ?", teamID, memberUserID).Delete(&models.TeamMember{})
	if result.Error != nil {
		utils.Fail(c, http.StatusInternalServerError, utils.KindInternal, "移除队员失败")
		return
	}
	if result.RowsAffected == 0 {
		utils.Fail(c, http.StatusNotFound, utils.KindNotFound, "Member not found in this team")
		return
	}
	utils.Success(c, nil)
}

func DisbandTeam(c *gin.Context) {
	teamID, _ := strconv.Atoi(c.Param("id"))
	leaderID := currentUserID(c)

	var team models.Team
	if err := database.DB.First(&team, teamID).Error; err != nil {
		utils.Fail(c, http.StatusNotFound, utils.KindNotFound, "Team not found")
		return
	}
	if team.LeaderID != leaderID {
		utils.Fail(c, http.StatusForbidden, utils.KindForbidden, "Permission denied: not the team leader")
		return
	}

	// 解散时成员关系一并清理，历史提交与解题记录保留
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("team_id = ?", team.ID).Delete(&models.TeamMember{}).Error; err != nil {
			return err
		}
		return tx.Delete(&team).Error
	})
	if err != nil {
		utils.Fail(c, http.StatusInternalServerError, utils.KindInternal, "解散队伍失败")
		return
	}
	utils.Success(c, nil)
}

func UpdateTeam(c *gin.Context) {
	teamID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Fail(c, http.StatusUnprocessableEntity, utils.KindValidation, "无效的队伍ID")
		return
	}
	leaderID := currentUserID(c)

	var team models.Team
	if err := database.DB.First(&team, teamID).Error; err != nil {
		utils.Fail(c, http.StatusNotFound, utils.KindNotFound, "队伍不存在")
		return
	}
	if team.LeaderID != leaderID {
		utils.Fail(c, http.StatusForbidden, utils.KindForbidden, "权限不足，只有队长可以修改队伍信息")
		return
	}

	var req struct {
		TeamDescribe string `json:"team_describe"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, http.StatusUnprocessableEntity, utils.KindValidation, "参数无效")
		return
	}

	if err := database.DB.Model(&team).Update("team_describe", req.TeamDescribe).Error; err != nil {
		utils.Fail(c, http.StatusInternalServerError, utils.KindInternal, "更新队伍信息失败")
		return
	}
	utils.Success(c, nil)
}

// GetTeamDetail 查询队伍信息与成员列表
func GetTeamDetail(c *gin.Context) {
	teamID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Fail(c, http.StatusUnprocessableEntity, utils.KindValidation, "无效的队伍ID")
		return
	}

	var team models.Team
	if err := database.DB.Preload("Members.User").First(&team, teamID).Error; err != nil {
		utils.Fail(c, http.StatusNotFound, utils.KindNotFound, "队伍不存在")
		return
	}

	members := make([]gin.H, 0, len(team.Members))
	for _, m := range team.Members {
		members = append(members, gin.H{
			"user_id":   m.UserID,
			"username":  m.User.Username,
			"role":      m.Role,
			"joined_at": m.JoinedAt,
		})
	}
	utils.Success(c, gin.H{
		"id":            team.ID,
		"team_name":     team.TeamName,
		"leader_id":     team.LeaderID,
		"team_describe": team.TeamDescribe,
		"team_status":   team.TeamStatus,
		"members":       members,
	})
}
