// file: models/solve.go
package models

import (
	"time"
)

// Solve 记录用户对某题的首次正确提交。
// (user_id, challenge_id) 唯一索引保证并发提交时只有一次计分，
// 插入冲突即表示该用户已解出此题。
type Solve struct {
	ID          uint64  `gorm:"primarykey"`
	ChallengeID uint32  `gorm:"uniqueIndex:unique_user_solve;not null"`
	UserID      uint32  `gorm:"uniqueIndex:unique_user_solve;not null"`
	TeamID      *uint32 `gorm:"index"`
	SolvedAt    time.Time
}

func (Solve) TableName() string {
	return "novactf_solve"
}
