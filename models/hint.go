// file: models/hint.go
package models

import "time"

type Hint struct {
	ID          uint32 `gorm:"primarykey" json:"id"`
	ChallengeID uint32 `gorm:"index;not null" json:"challenge_id"`
	Content     string `gorm:"type:text;not null" json:"-"`
	Cost        uint   `gorm:"default:0" json:"cost"`
	SortOrder   uint   `gorm:"default:0" json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Hint) TableName() string {
	return "novactf_hint"
}

// HintUnlock 记录用户已解锁的提示，(user_id, hint_id) 唯一，重复解锁无副作用
type HintUnlock struct {
	ID         uint64 `gorm:"primarykey"`
	HintID     uint32 `gorm:"uniqueIndex:unique_user_hint;not null"`
	UserID     uint32 `gorm:"uniqueIndex:unique_user_hint;not null"`
	UnlockedAt time.Time
}

func (HintUnlock) TableName() string {
	return "novactf_hint_unlock"
}
