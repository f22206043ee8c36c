// file: services/scoreboard_test.go
package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"NovaCTF/config"
	"NovaCTF/models"
)

type mapProvider map[string]string

func (m mapProvider) Get(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// 测试现场：
//   队伍 t1: alice, bob；队伍 t2: carol
//   题目 c1=100, c2=200, c3=300（静态，分值即当前分值）
//   alice 解出 c1, c2；bob 解出 c2；carol 解出 c3
func TestScoreboard(t *testing.T) {
	db := newTestDB(t)

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	carol := seedUser(t, db, "carol")

	t1 := models.Team{TeamName: "team-one", LeaderID: alice.ID, InvitationCode: "AAAAAAAAAAA1"}
	t2 := models.Team{TeamName: "team-two", LeaderID: carol.ID, InvitationCode: "AAAAAAAAAAA2"}
	require.NoError(t, db.Create(&t1).Error)
	require.NoError(t, db.Create(&t2).Error)
	require.NoError(t, db.Create(&models.TeamMember{TeamID: t1.ID, UserID: alice.ID, Role: models.TeamRoleLeader, JoinedAt: time.Now()}).Error)
	require.NoError(t, db.Create(&models.TeamMember{TeamID: t1.ID, UserID: bob.ID, JoinedAt: time.Now()}).Error)
	require.NoError(t, db.Create(&models.TeamMember{TeamID: t2.ID, UserID: carol.ID, Role: models.TeamRoleLeader, JoinedAt: time.Now()}).Error)

	c1 := seedStandardChallenge(t, db, "c1", "CTF{1}", 100)
	c2 := seedStandardChallenge(t, db, "c2", "CTF{2}", 200)
	c3 := seedStandardChallenge(t, db, "c3", "CTF{3}", 300)

	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	solves := []models.Solve{
		{ChallengeID: c1.ID, UserID: alice.ID, TeamID: &t1.ID, SolvedAt: base},
		{ChallengeID: c2.ID, UserID: alice.ID, TeamID: &t1.ID, SolvedAt: base.Add(5 * time.Minute)},
		{ChallengeID: c2.ID, UserID: bob.ID, TeamID: &t1.ID, SolvedAt: base.Add(10 * time.Minute)},
		{ChallengeID: c3.ID, UserID: carol.ID, TeamID: &t2.ID, SolvedAt: base.Add(60 * time.Minute)},
	}
	for i := range solves {
		require.NoError(t, db.Create(&solves[i]).Error)
	}

	settings := mapProvider{}

	t.Run("user ranking with tiebreak on last solve", func(t *testing.T) {
		board, err := GetScoreboard(db, settings, 10)
		require.NoError(t, err)

		// alice 300 (最后解题 10:05) 先于 carol 300 (11:00)，bob 200 垫底
		require.Len(t, board.Users, 3)
		assert.Equal(t, alice.ID, board.Users[0].ID)
		assert.EqualValues(t, 300, board.Users[0].Score)
		assert.Equal(t, carol.ID, board.Users[1].ID)
		assert.EqualValues(t, 300, board.Users[1].Score)
		assert.Equal(t, bob.ID, board.Users[2].ID)
		assert.EqualValues(t, 200, board.Users[2].Score)

		require.NotNil(t, board.Users[0].TeamID)
		assert.Equal(t, t1.ID, *board.Users[0].TeamID)
	})

	t.Run("team ranking dedup counts each challenge once", func(t *testing.T) {
		board, err := GetScoreboard(db, settings, 10)
		require.NoError(t, err)

		// t1: c1+c2 一次 = 300（bob 对 c2 的重复解题不叠加），与 t2 的 300 打平，
		// t1 的最后一次首解 (10:05) 更早所以排前
		require.Len(t, board.Teams, 2)
		assert.Equal(t, t1.ID, board.Teams[0].ID)
		assert.EqualValues(t, 300, board.Teams[0].Score)
		assert.Equal(t, t2.ID, board.Teams[1].ID)
		assert.EqualValues(t, 300, board.Teams[1].Score)
	})

	t.Run("team ranking sum mode counts every member", func(t *testing.T) {
		board, err := GetScoreboard(db, mapProvider{config.SettingTeamScoreMode: config.TeamScoreModeSum}, 10)
		require.NoError(t, err)

		require.Len(t, board.Teams, 2)
		assert.Equal(t, t1.ID, board.Teams[0].ID)
		assert.EqualValues(t, 500, board.Teams[0].Score)
		assert.EqualValues(t, 300, board.Teams[1].Score)
	})

	t.Run("topN truncates", func(t *testing.T) {
		board, err := GetScoreboard(db, settings, 1)
		require.NoError(t, err)
		assert.Len(t, board.Users, 1)
		assert.Len(t, board.Teams, 1)
	})

	t.Run("oversized topN is clamped not rejected", func(t *testing.T) {
		board, err := GetScoreboard(db, settings, 100000)
		require.NoError(t, err)
		assert.Len(t, board.Users, 3)
	})

	t.Run("dynamic decay is live at query time", func(t *testing.T) {
		// 把 c2 的当前分值改掉，榜单必须立即反映新值
		require.NoError(t, db.Model(&models.Challenge{}).Where("id = ?", c2.ID).
			UpdateColumn("current_value", 150).Error)
		defer func() {
			require.NoError(t, db.Model(&models.Challenge{}).Where("id = ?", c2.ID).
				UpdateColumn("current_value", 200).Error)
		}()

		board, err := GetScoreboard(db, settings, 10)
		require.NoError(t, err)

		for _, u := range board.Users {
			if u.ID == alice.ID {
				assert.EqualValues(t, 250, u.Score)
			}
			if u.ID == bob.ID {
				assert.EqualValues(t, 150, u.Score)
			}
		}
	})
}

func TestUserScore(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "alice")
	c1 := seedStandardChallenge(t, db, "c1", "CTF{1}", 100)
	seedStandardChallenge(t, db, "c2", "CTF{2}", 200)

	score, err := UserScore(db, user.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, score)

	require.NoError(t, db.Create(&models.Solve{ChallengeID: c1.ID, UserID: user.ID, SolvedAt: time.Now()}).Error)

	score, err = UserScore(db, user.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 100, score)
}

func TestRecentSolves(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "alice")
	c1 := seedStandardChallenge(t, db, "c1", "CTF{1}", 100)
	c2 := seedStandardChallenge(t, db, "c2", "CTF{2}", 200)

	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, db.Create(&models.Solve{ChallengeID: c1.ID, UserID: user.ID, SolvedAt: base}).Error)
	require.NoError(t, db.Create(&models.Solve{ChallengeID: c2.ID, UserID: user.ID, SolvedAt: base.Add(time.Minute)}).Error)

	items, err := RecentSolves(db, 20)
	require.NoError(t, err)

	require.Len(t, items, 2)
	assert.Equal(t, "c2", items[0].ChallengeName)
	assert.Equal(t, "c1", items[1].ChallengeName)
	assert.Equal(t, "alice", items[0].Username)
	assert.EqualValues(t, 200, items[0].Value)
}
