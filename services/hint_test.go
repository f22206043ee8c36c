// file: services/hint_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"NovaCTF/models"
	"NovaCTF/utils"
)

func TestUnlockHint(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "alice")
	challenge := seedStandardChallenge(t, db, "c1", "CTF{1}", 100)

	hint := models.Hint{ChallengeID: challenge.ID, Content: "look closer", Cost: 10}
	require.NoError(t, db.Create(&hint).Error)

	unlocked, err := UnlockHint(db, user.ID, hint.ID)
	require.NoError(t, err)
	assert.Equal(t, "look closer", unlocked.Content)

	ok, err := HintUnlocked(db, user.ID, hint.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	// 重复解锁幂等，不追加解锁记录
	_, err = UnlockHint(db, user.ID, hint.ID)
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.HintUnlock{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUnlockHintNotFound(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "alice")

	_, err := UnlockHint(db, user.ID, 424242)
	require.Error(t, err)
	assert.Equal(t, utils.KindNotFound, utils.AsAppError(err).Kind)
}
