// file: services/scoring.go
package services

import (
	"NovaCTF/models"
	"log"
	"math"

	"gorm.io/gorm"
)

// ComputeValue 计算动态题当前分值。
// 二次衰减曲线：raw = initial - (initial-minimum)/decayLimit² * solveCount²，
// 向下取整并收敛到 [minimum, initial] 区间。
// 约定：solveCount == 0 恒返回 initial；decayLimit == 0 时只要有解题
// 就直接落到 minimum（避免除零）。
func ComputeValue(initial, decayLimit, minimum, solveCount uint) uint {
	if solveCount == 0 {
		return initial
	}
	if initial <= minimum {
		return minimum
	}
	if decayLimit == 0 {
		return minimum
	}

	decay := float64(initial - minimum)
	coefficient := decay / (float64(decayLimit) * float64(decayLimit))
	raw := float64(initial) - coefficient*float64(solveCount)*float64(solveCount)

	value := math.Floor(raw)
	if value < float64(minimum) {
		return minimum
	}
	return uint(value)
}

// RecalcResult 批量重算的结果
type RecalcResult struct {
	Updated      int      `json:"updated"`
	ChallengeIDs []uint32 `json:"challenge_ids"`
}

// RecalculateDynamicScores 遍历所有动态题，按当前解题数重算并落库。
// 单题失败只记日志并跳过，不中断整批。
func RecalculateDynamicScores(db *gorm.DB) (*RecalcResult, error) {
	var challenges []models.Challenge
	if err := db.Where("challenge_type = ?", models.ChallengeTypeDynamic).Find(&challenges).Error; err != nil {
		return nil, err
	}

	result := &RecalcResult{ChallengeIDs: make([]uint32, 0, len(challenges))}
	for _, ch := range challenges {
		value := ComputeValue(ch.InitialValue, ch.DecayLimit, ch.MinimumValue, ch.SolvedCount)
		err := db.Model(&models.Challenge{}).
			Where("id = ?", ch.ID).
			UpdateColumn("current_value", value).Error
		if err != nil {
			log.Printf("Recalculate: challenge %d skipped: %v", ch.ID, err)
			continue
		}
		result.Updated++
		result.ChallengeIDs = append(result.ChallengeIDs, ch.ID)
	}

	log.Printf("Recalculate: %d/%d dynamic challenges updated", result.Updated, len(challenges))
	return result, nil
}
