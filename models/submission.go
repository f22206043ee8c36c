// file: models/submission.go
package models

import (
	"time"
)

type SubmissionStatus string

const (
	SubmissionCorrect   SubmissionStatus = "correct"
	SubmissionIncorrect SubmissionStatus = "incorrect"
)

// Submission 对应 novactf_submission 表，只追加不修改的提交审计日志
type Submission struct {
	ID            uint64           `gorm:"primarykey"`
	ChallengeID   uint32           `gorm:"index;not null"`
	UserID        uint32           `gorm:"index;not null"`
	TeamID        *uint32          `gorm:"index"`
	SubmittedFlag string           `gorm:"size:255;not null"`
	Status        SubmissionStatus `gorm:"type:varchar(20);not null"`
	IPAddress     string           `gorm:"size:45"`
	CreatedAt     time.Time
}

func (Submission) TableName() string {
	return "novactf_submission"
}
