// file: models/setting.go
package models

import "time"

// Setting 对应 novactf_setting 表，站点级键值配置
// （site_name, team_score_mode 等），通过 config.Provider 读取
type Setting struct {
	ID        uint32    `gorm:"primarykey" json:"id"`
	Key       string    `gorm:"column:setting_key;size:100;unique;not null" json:"key"`
	Value     string    `gorm:"column:setting_value;type:text;not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Setting) TableName() string {
	return "novactf_setting"
}
