// file: controllers/submission_controller.go
package controllers

import (
	"NovaCTF/database"
	"NovaCTF/dto"
	"NovaCTF/metrics"
	"NovaCTF/services"
	"NovaCTF/utils"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// SubmitFlag —— 提交 Flag。
// 请求体 {"challengeId": "...", "flag": "..."}；
// 响应体 {"correct": bool, "message": string, "newScore"?: number}，
// newScore 仅在 correct 为 true 时出现。错误走统一错误信封。
func SubmitFlag(c *gin.Context) {
	userID := currentUserID(c)
	if userID == 0 {
		utils.Fail(c, http.StatusUnauthorized, utils.KindUnauthorized, "login required")
		return
	}

	var req dto.SubmitFlagReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, http.StatusUnprocessableEntity, utils.KindValidation, "invalid request body: "+err.Error())
		return
	}
	if strings.TrimSpace(req.Flag) == "" {
		utils.Fail(c, http.StatusUnprocessableEntity, utils.KindValidation, "flag cannot be empty")
		return
	}
	challengeID, err := strconv.ParseUint(req.ChallengeID, 10, 32)
	if err != nil {
		utils.Fail(c, http.StatusUnprocessableEntity, utils.KindValidation, "challengeId must be a numeric id")
		return
	}

	teamID := currentTeamID(userID)

	result, err := services.SubmitFlag(database.DB, userID, teamID, uint32(challengeID), req.Flag, c.ClientIP())
	if err != nil {
		utils.FailError(c, err)
		return
	}

	resp := dto.SubmitFlagResp{Correct: result.Correct}
	switch {
	case result.NewSolve:
		metrics.FlagSubmissionsTotal.WithLabelValues("correct").Inc()
		metrics.SolvesTotal.Inc()
		invalidateScoreboardCache()
		resp.Message = "Correct flag, well done!"
	case result.Correct:
		metrics.FlagSubmissionsTotal.WithLabelValues("duplicate").Inc()
		resp.Message = "Challenge already solved"
	default:
		metrics.FlagSubmissionsTotal.WithLabelValues("incorrect").Inc()
		resp.Message = "Incorrect flag"
	}

	if result.Correct {
		score, err := services.UserScore(database.DB, userID)
		if err != nil {
			utils.FailError(c, err)
			return
		}
		resp.NewScore = &score
	}

	c.JSON(http.StatusOK, resp)
}

// GetUserSolves 查询某用户的解题记录
func GetUserSolves(c *gin.Context) {
	userID, _ := strconv.Atoi(c.Param("id"))

	type SolveInfo struct {
		ChallengeID   uint32    `json:"challenge_id"`
		ChallengeName string    `json:"challenge_name"`
		Value         uint      `json:"value"`
		SolvedAt      time.Time `json:"solved_at"`
	}

	var result []SolveInfo
	database.DB.Table("novactf_solve s").
		Select("s.challenge_id AS challenge_id, c.challenge_name AS challenge_name, c.current_value AS value, s.solved_at AS solved_at").
		Joins("JOIN novactf_challenge c ON s.challenge_id = c.id").
		Where("s.user_id = ?", userID).
		Order("s.solved_at ASC").
		Scan(&result)

	utils.Success(c, result)
}

// GetTeamSolves 查询队伍的解题记录
func GetTeamSolves(c *gin.Context) {
	teamID, _ := strconv.Atoi(c.Param("id"))

	type SolveInfo struct {
		ChallengeID   uint32    `json:"challenge_id"`
		ChallengeName string    `json:"challenge_name"`
		UserID        uint32    `json:"user_id"`
		Username      string    `json:"username"`
		Value         uint      `json:"value"`
		SolvedAt      time.Time `json:"solved_at"`
	}

	var result []SolveInfo
	database.DB.Table("novactf_solve s").
		Select("s.challenge_id AS challenge_id, c.challenge_name AS challenge_name, s.user_id AS user_id, u.username AS username, c.current_value AS value, s.solved_at AS solved_at").
		Joins("JOIN novactf_challenge c ON s.challenge_id = c.id").
		Joins("JOIN novactf_user u ON s.user_id = u.id").
		Where("s.team_id = ?", teamID).
		Order("s.solved_at ASC").
		Scan(&result)

	utils.Success(c, result)
}

// GetSubmissionLogs 管理员查询提交审计日志（支持筛选）
func GetSubmissionLogs(c *gin.Context) {
	type LogDetail struct {
		ID            uint64    `json:"id"`
		ChallengeID   uint32    `json:"challenge_id"`
		ChallengeName string    `json:"challenge_name"`
		UserID        uint32    `json:"user_id"`
		Username      string    `json:"username"`
		TeamID        *uint32   `json:"team_id"`
		SubmittedFlag string    `json:"submitted_flag"`
		Status        string    `json:"status"`
		IPAddress     string    `json:"ip_address"`
		SubmittedAt   time.Time `json:"submitted_at"`
	}

	db := database.DB.Table("novactf_submission l").
		Select("l.id, l.challenge_id, c.challenge_name, l.user_id, u.username, l.team_id, l.submitted_flag, l.status, l.ip_address, l.created_at AS submitted_at").
		Joins("LEFT JOIN novactf_challenge c ON l.challenge_id = c.id").
		Joins("LEFT JOIN novactf_user u ON l.user_id = u.id")

	if teamID := c.Query("team_id"); teamID != "" {
		db = db.Where("l.team_id = ?", teamID)
	}
	if challengeID := c.Query("challenge_id"); challengeID != "" {
		db = db.Where("l.challenge_id = ?", challengeID)
	}
	if userID := c.Query("user_id"); userID != "" {
		db = db.Where("l.user_id = ?", userID)
	}
	if status := c.Query("status"); status != "" {
		db = db.Where("l.status = ?", status)
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 500 {
		limit = 50
	}

	var results []LogDetail
	db.Order("l.created_at DESC").Limit(limit).Scan(&results)

	utils.Success(c, results)
}

// CompareFlagSubmissions 对比提交过同一 Flag 文本的记录（作弊排查）
func CompareFlagSubmissions(c *gin.Context) {
	flag := c.Query("flag")
	if flag == "" {
		utils.Fail(c, http.StatusUnprocessableEntity, utils.KindValidation, "missing 'flag' query parameter")
		return
	}

	type CompareResult struct {
		UserID      uint32    `json:"user_id"`
		Username    string    `json:"username"`
		TeamID      *uint32   `json:"team_id"`
		ChallengeID uint32    `json:"challenge_id"`
		Status      string    `json:"status"`
		SubmittedAt time.Time `json:"submitted_at"`
	}

	var results []CompareResult
	database.DB.Table("novactf_submission l").
		Select("l.user_id, u.username, l.team_id, l.challenge_id, l.status, l.created_at AS submitted_at").
		Joins("JOIN novactf_user u ON l.user_id = u.id").
		Where("l.submitted_flag = ?", flag).
		Order("l.created_at ASC").
		Scan(&results)

	if len(results) == 0 {
		utils.Fail(c, http.StatusNotFound, utils.KindNotFound, "no submissions found for this flag")
		return
	}

	utils.Success(c, gin.H{
		"flag_value":  flag,
		"submissions": results,
	})
}
