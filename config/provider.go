// file: config/provider.go
package config

import (
	"NovaCTF/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// 站点级运行期配置键
const (
	SettingSiteName      = "site_name"
	SettingTeamScoreMode = "team_score_mode"
)

// team_score_mode 的取值
const (
	TeamScoreModeDedup = "dedup" // 同一题每队只计一次（默认）
	TeamScoreModeSum   = "sum"   // 每名队员的解题都计入
)

// Provider 运行期键值配置的读取接口，计分相关服务通过它取站点配置
type Provider interface {
	Get(key string) (string, bool)
}

// DBProvider 基于 novactf_setting 表的 Provider 实现
type DBProvider struct {
	db *gorm.DB
}

func NewDBProvider(db *gorm.DB) *DBProvider {
	return &DBProvider{db: db}
}

func (p *DBProvider) Get(key string) (string, bool) {
	var setting models.Setting
	if err := p.db.Where("setting_key = ?", key).First(&setting).Error; err != nil {
		return "", false
	}
	return setting.Value, true
}

// Set 写入或覆盖配置项
func (p *DBProvider) Set(key, value string) error {
	setting := models.Setting{Key: key, Value: value}
	return p.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "setting_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"setting_value", "updated_at"}),
	}).Create(&setting).Error
}
