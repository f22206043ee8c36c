// file: models/category.go
package models

import (
	"time"
)

// Category 题目类别（Web / Pwn / Crypto / Misc ...）
type Category struct {
	ID          uint32    `gorm:"primarykey" json:"id"`
	Name        string    `gorm:"size:50;unique;not null" json:"name"`
	Alias       string    `gorm:"size:50" json:"alias"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Category) TableName() string {
	return "novactf_category"
}
