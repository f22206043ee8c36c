// file: models/attachment.go
package models

import (
	"time"
)

type AttachmentStatus string

const (
	AttachmentStatusActive   AttachmentStatus = "active"
	AttachmentStatusArchived AttachmentStatus = "archived"
)

// Attachment 题目附件。平台只保存外部 URL 并做下载跳转，
// 实际的文件存储由外部服务负责。
type Attachment struct {
	ID          uint64           `gorm:"primarykey"`
	ChallengeID uint32           `gorm:"index;not null"`
	FileName    string           `gorm:"size:255;not null"`
	URL         string           `gorm:"size:2048;not null"`
	SHA256      string           `gorm:"size:64"`
	FileSize    uint64           `gorm:"default:0"`
	Status      AttachmentStatus `gorm:"type:varchar(20);default:'active'"`
	SortOrder   uint             `gorm:"default:0"`
	CreatedBy   uint32           `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Attachment) TableName() string {
	return "novactf_attachment"
}
