// file: models/challenge.go
package models

import (
	"time"
)

type ChallengeState string
type ChallengeType string
type ChallengeDifficulty string

const (
	ChallengeStateVisible ChallengeState = "visible"
	ChallengeStateHidden  ChallengeState = "hidden"

	ChallengeTypeStandard ChallengeType = "standard"
	ChallengeTypeDynamic  ChallengeType = "dynamic"

	ChallengeDifficultyEasy   ChallengeDifficulty = "easy"
	ChallengeDifficultyMedium ChallengeDifficulty = "medium"
	ChallengeDifficultyHard   ChallengeDifficulty = "hard"
)

// Challenge 对应 novactf_challenge 表
//
// FlagPattern 是字面 Flag，允许用 * 做多字符通配。
// standard 题 CurrentValue 恒等于 Points；dynamic 题 CurrentValue 是
// (InitialValue, DecayLimit, MinimumValue, SolvedCount) 衰减曲线的缓存值，
// 只允许计分服务更新。
type Challenge struct {
	ID            uint32              `gorm:"primarykey"`
	ChallengeName string              `gorm:"size:100;unique;not null"`
	CategoryID    uint32              `gorm:"not null"`
	Category      Category            `gorm:"foreignKey:CategoryID"`
	Author        string              `gorm:"size:50;not null"`
	Description   string              `gorm:"type:text;not null"`
	State         ChallengeState      `gorm:"type:varchar(20);default:'hidden'"`
	Type          ChallengeType       `gorm:"column:challenge_type;type:varchar(20);not null"`
	FlagPattern   string              `gorm:"size:255;not null"`
	Difficulty    ChallengeDifficulty `gorm:"type:varchar(20);default:'medium'"`
	Points        uint                `gorm:"default:0"`
	InitialValue  uint                `gorm:"default:0"`
	DecayLimit    uint                `gorm:"default:0"`
	MinimumValue  uint                `gorm:"default:0"`
	CurrentValue  uint                `gorm:"not null"`
	SolvedCount   uint                `gorm:"default:0"`
	Attachments   []Attachment        `gorm:"foreignKey:ChallengeID"`
	Hints         []Hint              `gorm:"foreignKey:ChallengeID"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (Challenge) TableName() string {
	return "novactf_challenge"
}
