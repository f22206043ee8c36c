// file: config/provider_test.go
package config

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"NovaCTF/models"
)

func newProviderDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Setting{}))
	return db
}

func TestDBProviderGetMissing(t *testing.T) {
	p := NewDBProvider(newProviderDB(t))

	_, ok := p.Get(SettingTeamScoreMode)
	assert.False(t, ok)
}

func TestDBProviderSetThenGet(t *testing.T) {
	p := NewDBProvider(newProviderDB(t))

	require.NoError(t, p.Set(SettingTeamScoreMode, TeamScoreModeSum))
	val, ok := p.Get(SettingTeamScoreMode)
	require.True(t, ok)
	assert.Equal(t, TeamScoreModeSum, val)
}

func TestDBProviderSetOverwrites(t *testing.T) {
	p := NewDBProvider(newProviderDB(t))

	require.NoError(t, p.Set(SettingSiteName, "NovaCTF"))
	require.NoError(t, p.Set(SettingSiteName, "NovaCTF 2026"))

	val, ok := p.Get(SettingSiteName)
	require.True(t, ok)
	assert.Equal(t, "NovaCTF 2026", val)

	var count int64
	p.db.Model(&models.Setting{}).Count(&count)
	assert.Equal(t, int64(1), count)
}
