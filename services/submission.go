// file: services/submission.go
package services

import (
	"NovaCTF/models"
	"NovaCTF/utils"
	"errors"
	"time"

	"gorm.io/gorm"
)

// SubmitResult 单次提交的结果。
// Correct 表示这一次提交是否命中 Flag；NewSolve 表示是否是该用户
// 对此题的首次正确提交（只有首次才计入解题数并触发重算）。
type SubmitResult struct {
	Submission models.Submission
	Correct    bool
	NewSolve   bool
}

// SubmitFlag 处理一次 Flag 提交。
// 无论对错都追加一条提交日志；首次解题的判定依赖 novactf_solve 上
// (user_id, challenge_id) 的唯一索引：并发的两次正确提交只有一次
// 插入成功，落败的一次按重复解题处理，不会重复计分。
func SubmitFlag(db *gorm.DB, userID uint32, teamID *uint32, challengeID uint32, flag, ip string) (*SubmitResult, error) {
	result := &SubmitResult{}

	err := db.Transaction(func(tx *gorm.DB) error {
		var challenge models.Challenge
		if err := tx.First(&challenge, challengeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NewNotFoundError("challenge not found")
			}
			return err
		}

		result.Correct = FlagMatches(flag, challenge.FlagPattern)

		status := models.SubmissionIncorrect
		if result.Correct {
			status = models.SubmissionCorrect
		}
		submission := models.Submission{
			ChallengeID:   challengeID,
			UserID:        userID,
			TeamID:        teamID,
			SubmittedFlag: flag,
			Status:        status,
			IPAddress:     ip,
		}
		if err := tx.Create(&submission).Error; err != nil {
			return err
		}
		result.Submission = submission

		if !result.Correct {
			return nil
		}

		solve := models.Solve{
			ChallengeID: challengeID,
			UserID:      userID,
			TeamID:      teamID,
			SolvedAt:    time.Now(),
		}
		if err := tx.Create(&solve).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				// 该用户此前已解出，本次只留日志不再计分
				return nil
			}
			return err
		}
		result.NewSolve = true

		// 解题数自增必须是原子 SQL 表达式，避免读改写丢失更新
		err := tx.Model(&models.Challenge{}).
			Where("id = ?", challengeID).
			UpdateColumn("solved_count", gorm.Expr("solved_count + ?", 1)).Error
		if err != nil {
			return err
		}

		if challenge.Type == models.ChallengeTypeDynamic {
			// 回读自增后的解题数，在同一事务里重算并落库
			if err := tx.First(&challenge, challengeID).Error; err != nil {
				return err
			}
			value := ComputeValue(challenge.InitialValue, challenge.DecayLimit, challenge.MinimumValue, challenge.SolvedCount)
			err := tx.Model(&models.Challenge{}).
				Where("id = ?", challengeID).
				UpdateColumn("current_value", value).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// HasSolved 用户是否已解出某题
func HasSolved(db *gorm.DB, userID, challengeID uint32) (bool, error) {
	var count int64
	err := db.Model(&models.Solve{}).
		Where("user_id = ? AND challenge_id = ?", userID, challengeID).
		Count(&count).Error
	return count > 0, err
}
