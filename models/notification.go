// file: models/notification.go
package models

import "time"

// Notification 对应 novactf_notification 表，站内公告
type Notification struct {
	ID        uint32    `gorm:"primarykey" json:"id"`
	Title     string    `gorm:"size:200;not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedBy uint32    `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

func (Notification) TableName() string {
	return "novactf_notification"
}
