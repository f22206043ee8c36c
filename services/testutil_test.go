// file: services/testutil_test.go
package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"NovaCTF/models"
)

// newTestDB 每个测试一个独立的内存库，打开 TranslateError 以便
// 唯一键冲突和生产环境一样表现为 gorm.ErrDuplicatedKey
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Team{},
		&models.TeamMember{},
		&models.Category{},
		&models.Challenge{},
		&models.Submission{},
		&models.Solve{},
		&models.Hint{},
		&models.HintUnlock{},
		&models.Notification{},
		&models.Attachment{},
		&models.Setting{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, name string) models.User {
	t.Helper()
	user := models.User{
		Username: name,
		Password: "test-password",
		Email:    name + "@example.com",
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedCategory(t *testing.T, db *gorm.DB, name string) models.Category {
	t.Helper()
	category := models.Category{Name: name, Alias: "Web"}
	require.NoError(t, db.Create(&category).Error)
	return category
}

func seedStandardChallenge(t *testing.T, db *gorm.DB, name, flag string, points uint) models.Challenge {
	t.Helper()
	challenge := models.Challenge{
		ChallengeName: name,
		CategoryID:    seedCategory(t, db, "cat-"+name).ID,
		Author:        "tester",
		Description:   "test challenge",
		State:         models.ChallengeStateVisible,
		Type:          models.ChallengeTypeStandard,
		FlagPattern:   flag,
		Points:        points,
		CurrentValue:  points,
	}
	require.NoError(t, db.Create(&challenge).Error)
	return challenge
}

func seedDynamicChallenge(t *testing.T, db *gorm.DB, name, flag string, initial, decayLimit, minimum uint) models.Challenge {
	t.Helper()
	challenge := models.Challenge{
		ChallengeName: name,
		CategoryID:    seedCategory(t, db, "cat-"+name).ID,
		Author:        "tester",
		Description:   "test challenge",
		State:         models.ChallengeStateVisible,
		Type:          models.ChallengeTypeDynamic,
		FlagPattern:   flag,
		InitialValue:  initial,
		DecayLimit:    decayLimit,
		MinimumValue:  minimum,
		CurrentValue:  initial,
	}
	require.NoError(t, db.Create(&challenge).Error)
	return challenge
}
