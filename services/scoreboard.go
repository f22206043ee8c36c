// file: services/scoreboard.go
package services

import (
	"NovaCTF/config"
	"time"

	"gorm.io/gorm"
)

const (
	DefaultScoreboardLimit = 100
	MaxScoreboardLimit     = 1000
)

// 个人榜条目。分数是用户已解出题目当前分值之和，动态题衰减实时生效。
type UserStanding struct {
	ID       uint32  `json:"id"`
	Username string  `json:"name"`
	TeamID   *uint32 `json:"team_id"`
	Score    uint    `json:"score"`
}

type TeamStanding struct {
	ID       uint32 `json:"id"`
	TeamName string `json:"name"`
	Score    uint   `json:"score"`
}

type Scoreboard struct {
	Users []UserStanding `json:"users"`
	Teams []TeamStanding `json:"teams"`
}

// GetScoreboard 计算个人榜与队伍榜。
// 排序：总分降序，最后解题时间早者优先，再按 id 兜底，保证全序。
// 队伍聚合策略由 team_score_mode 配置决定：dedup（默认，同一题每队
// 只计最先解出的一次）或 sum（全部队员的解题都计入）。
func GetScoreboard(db *gorm.DB, settings config.Provider, topN int) (*Scoreboard, error) {
	if topN <= 0 {
		topN = DefaultScoreboardLimit
	}
	if topN > MaxScoreboardLimit {
		topN = MaxScoreboardLimit
	}

	board := &Scoreboard{
		Users: make([]UserStanding, 0, topN),
		Teams: make([]TeamStanding, 0, topN),
	}

	err := db.Table("novactf_solve s").
		Select("u.id AS id, u.username AS username, tm.team_id AS team_id, SUM(c.current_value) AS score").
		Joins("JOIN novactf_user u ON s.user_id = u.id").
		Joins("JOIN novactf_challenge c ON s.challenge_id = c.id").
		Joins("LEFT JOIN novactf_team_members tm ON tm.user_id = u.id").
		Group("u.id, u.username, tm.team_id").
		Order("score DESC, MAX(s.solved_at) ASC, u.id ASC").
		Limit(topN).
		Scan(&board.Users).Error
	if err != nil {
		return nil, err
	}

	mode := config.TeamScoreModeDedup
	if v, ok := settings.Get(config.SettingTeamScoreMode); ok {
		mode = v
	}

	if mode == config.TeamScoreModeSum {
		err = db.Table("novactf_solve s").
			Select("t.id AS id, t.team_name AS team_name, SUM(c.current_value) AS score").
			Joins("JOIN novactf_team t ON s.team_id = t.id").
			Joins("JOIN novactf_challenge c ON s.challenge_id = c.id").
			Group("t.id, t.team_name").
			Order("score DESC, MAX(s.solved_at) ASC, t.id ASC").
			Limit(topN).
			Scan(&board.Teams).Error
	} else {
		// 先把每队每题折叠成最早一次解题，再按当前分值求和
		err = db.Raw(`
			SELECT t.id AS id, t.team_name AS team_name, SUM(c.current_value) AS score
			FROM (
				SELECT s.team_id AS team_id, s.challenge_id AS challenge_id, MIN(s.solved_at) AS first_solve
				FROM novactf_solve s
				WHERE s.team_id IS NOT NULL
				GROUP BY s.team_id, s.challenge_id
			) x
			JOIN novactf_team t ON x.team_id = t.id
			JOIN novactf_challenge c ON x.challenge_id = c.id
			GROUP BY t.id, t.team_name
			ORDER BY score DESC, MAX(x.first_solve) ASC, t.id ASC
			LIMIT ?`, topN).
			Scan(&board.Teams).Error
	}
	if err != nil {
		return nil, err
	}

	return board, nil
}

// UserScore 用户当前总分（已解题目当前分值之和）
func UserScore(db *gorm.DB, userID uint32) (uint, error) {
	var score int64
	err := db.Raw(`
		SELECT COALESCE(SUM(c.current_value), 0)
		FROM novactf_solve s
		JOIN novactf_challenge c ON s.challenge_id = c.id
		WHERE s.user_id = ?`, userID).
		Scan(&score).Error
	if err != nil {
		return 0, err
	}
	return uint(score), nil
}

// SolveFeedItem 实时解题动态的一条记录
type SolveFeedItem struct {
	ChallengeID   uint32    `json:"challenge_id"`
	ChallengeName string    `json:"challenge_name"`
	UserID        uint32    `json:"user_id"`
	Username      string    `json:"username"`
	TeamID        *uint32   `json:"team_id"`
	Value         uint      `json:"value"`
	SolvedAt      time.Time `json:"solved_at"`
}

// RecentSolves 最近的解题动态，按时间倒序
func RecentSolves(db *gorm.DB, limit int) ([]SolveFeedItem, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	items := make([]SolveFeedItem, 0, limit)
	err := db.Table("novactf_solve s").
		Select("s.challenge_id AS challenge_id, c.challenge_name AS challenge_name, s.user_id AS user_id, u.username AS username, s.team_id AS team_id, c.current_value AS value, s.solved_at AS solved_at").
		Joins("JOIN novactf_challenge c ON s.challenge_id = c.id").
		Joins("JOIN novactf_user u ON s.user_id = u.id").
		Order("s.solved_at DESC, s.id DESC").
		Limit(limit).
		Scan(&items).Error
	return items, err
}
