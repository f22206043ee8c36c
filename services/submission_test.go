// file: services/submission_test.go
package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"NovaCTF/models"
	"NovaCTF/utils"
)

func TestSubmitFlagUnknownChallenge(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "alice")

	_, err := SubmitFlag(db, user.ID, nil, 9999, "CTF{whatever}", "127.0.0.1")
	require.Error(t, err)
	assert.Equal(t, utils.KindNotFound, utils.AsAppError(err).Kind)

	// 题目不存在时不产生任何提交日志
	var count int64
	require.NoError(t, db.Model(&models.Submission{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestSubmitFlagIncorrect(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "alice")
	challenge := seedStandardChallenge(t, db, "warmup", "CTF{right}", 100)

	result, err := SubmitFlag(db, user.ID, nil, challenge.ID, "CTF{wrong}", "127.0.0.1")
	require.NoError(t, err)

	assert.False(t, result.Correct)
	assert.False(t, result.NewSolve)
	assert.Equal(t, models.SubmissionIncorrect, result.Submission.Status)
	assert.Equal(t, "CTF{wrong}", result.Submission.SubmittedFlag)

	// 错误提交也要留档，但不计入解题
	var submissions int64
	require.NoError(t, db.Model(&models.Submission{}).Count(&submissions).Error)
	assert.EqualValues(t, 1, submissions)

	var reloaded models.Challenge
	require.NoError(t, db.First(&reloaded, challenge.ID).Error)
	assert.EqualValues(t, 0, reloaded.SolvedCount)
}

func TestSubmitFlagFirstSolve(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "alice")
	challenge := seedDynamicChallenge(t, db, "pwn-1", "CTF{*}", 500, 50, 100)

	result, err := SubmitFlag(db, user.ID, nil, challenge.ID, "CTF{anything}", "127.0.0.1")
	require.NoError(t, err)

	assert.True(t, result.Correct)
	assert.True(t, result.NewSolve)
	assert.Equal(t, models.SubmissionCorrect, result.Submission.Status)

	var reloaded models.Challenge
	require.NoError(t, db.First(&reloaded, challenge.ID).Error)
	assert.EqualValues(t, 1, reloaded.SolvedCount)
	// 一次解题后动态分值在同一事务里完成重算
	assert.Equal(t, uint(499), reloaded.CurrentValue)

	solved, err := HasSolved(db, user.ID, challenge.ID)
	require.NoError(t, err)
	assert.True(t, solved)
}

func TestSubmitFlagResubmissionIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "alice")
	challenge := seedDynamicChallenge(t, db, "pwn-1", "CTF{exact}", 500, 50, 100)

	first, err := SubmitFlag(db, user.ID, nil, challenge.ID, "CTF{exact}", "127.0.0.1")
	require.NoError(t, err)
	require.True(t, first.NewSolve)

	second, err := SubmitFlag(db, user.ID, nil, challenge.ID, "CTF{exact}", "127.0.0.1")
	require.NoError(t, err)

	assert.True(t, second.Correct)
	assert.False(t, second.NewSolve)

	// 解题数和分值都停留在第一次提交之后的状态
	var reloaded models.Challenge
	require.NoError(t, db.First(&reloaded, challenge.ID).Error)
	assert.EqualValues(t, 1, reloaded.SolvedCount)
	assert.Equal(t, uint(499), reloaded.CurrentValue)

	var solves int64
	require.NoError(t, db.Model(&models.Solve{}).Count(&solves).Error)
	assert.EqualValues(t, 1, solves)

	// 两次提交都进了审计日志
	var submissions int64
	require.NoError(t, db.Model(&models.Submission{}).Count(&submissions).Error)
	assert.EqualValues(t, 2, submissions)
}

// 并发窗口的等价场景：唯一索引已有解题记录时，后到的正确提交不再计分
func TestSubmitFlagLosesRaceAgainstExistingSolve(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "alice")
	challenge := seedStandardChallenge(t, db, "race", "CTF{x}", 100)

	require.NoError(t, db.Create(&models.Solve{
		ChallengeID: challenge.ID,
		UserID:      user.ID,
		SolvedAt:    time.Now(),
	}).Error)

	result, err := SubmitFlag(db, user.ID, nil, challenge.ID, "CTF{x}", "127.0.0.1")
	require.NoError(t, err)
	assert.True(t, result.Correct)
	assert.False(t, result.NewSolve)

	var reloaded models.Challenge
	require.NoError(t, db.First(&reloaded, challenge.ID).Error)
	assert.EqualValues(t, 0, reloaded.SolvedCount)
}

func TestSubmitFlagDistinctUsersBothCount(t *testing.T) {
	db := newTestDB(t)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	challenge := seedDynamicChallenge(t, db, "web-1", "CTF{w}", 500, 50, 100)

	_, err := SubmitFlag(db, alice.ID, nil, challenge.ID, "CTF{w}", "127.0.0.1")
	require.NoError(t, err)
	_, err = SubmitFlag(db, bob.ID, nil, challenge.ID, "CTF{w}", "127.0.0.1")
	require.NoError(t, err)

	var reloaded models.Challenge
	require.NoError(t, db.First(&reloaded, challenge.ID).Error)
	assert.EqualValues(t, 2, reloaded.SolvedCount)
	assert.Equal(t, ComputeValue(500, 50, 100, 2), reloaded.CurrentValue)
}

func TestSubmitFlagRecordsTeam(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "alice")
	team := models.Team{TeamName: "solo", LeaderID: user.ID, InvitationCode: "ABCDEF123456"}
	require.NoError(t, db.Create(&team).Error)
	challenge := seedStandardChallenge(t, db, "misc-1", "CTF{t}", 50)

	result, err := SubmitFlag(db, user.ID, &team.ID, challenge.ID, "CTF{t}", "127.0.0.1")
	require.NoError(t, err)

	require.NotNil(t, result.Submission.TeamID)
	assert.Equal(t, team.ID, *result.Submission.TeamID)

	var solve models.Solve
	require.NoError(t, db.First(&solve).Error)
	require.NotNil(t, solve.TeamID)
	assert.Equal(t, team.ID, *solve.TeamID)
}
