// file: services/scoring_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"NovaCTF/models"
)

func TestComputeValue(t *testing.T) {
	testCases := []struct {
		name       string
		initial    uint
		decayLimit uint
		minimum    uint
		solveCount uint
		want       uint
	}{
		{
			name:       "zero solves keeps initial value",
			initial:    500,
			decayLimit: 50,
			minimum:    100,
			solveCount: 0,
			want:       500,
		},
		{
			name:       "quadratic decay after ten solves",
			initial:    500,
			decayLimit: 50,
			minimum:    100,
			solveCount: 10,
			want:       484, // 500 - (400/2500)*100
		},
		{
			name:       "single solve floors the raw value",
			initial:    500,
			decayLimit: 50,
			minimum:    100,
			solveCount: 1,
			want:       499, // floor(499.84)
		},
		{
			name:       "value bottoms out at minimum",
			initial:    500,
			decayLimit: 50,
			minimum:    100,
			solveCount: 1000,
			want:       100,
		},
		{
			name:       "decay limit reached lands on minimum",
			initial:    500,
			decayLimit: 50,
			minimum:    100,
			solveCount: 50,
			want:       100,
		},
		{
			name:       "zero decay limit with solves returns minimum",
			initial:    500,
			decayLimit: 0,
			minimum:    100,
			solveCount: 1,
			want:       100,
		},
		{
			name:       "zero decay limit without solves returns initial",
			initial:    500,
			decayLimit: 0,
			minimum:    100,
			solveCount: 0,
			want:       500,
		},
		{
			name:       "initial equal to minimum never moves",
			initial:    100,
			decayLimit: 10,
			minimum:    100,
			solveCount: 7,
			want:       100,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ComputeValue(tc.initial, tc.decayLimit, tc.minimum, tc.solveCount))
		})
	}
}

// 固定其余参数时分值对解题数单调不增，且永不低于最小分
func TestComputeValueMonotonicAndBounded(t *testing.T) {
	prev := ComputeValue(500, 50, 100, 0)
	for count := uint(1); count <= 200; count++ {
		value := ComputeValue(500, 50, 100, count)
		assert.LessOrEqual(t, value, prev, "value increased at solveCount=%d", count)
		assert.GreaterOrEqual(t, value, uint(100), "value dropped below minimum at solveCount=%d", count)
		assert.LessOrEqual(t, value, uint(500))
		prev = value
	}
}

func TestRecalculateDynamicScores(t *testing.T) {
	db := newTestDB(t)

	dyn1 := seedDynamicChallenge(t, db, "dyn-1", "CTF{a}", 500, 50, 100)
	dyn2 := seedDynamicChallenge(t, db, "dyn-2", "CTF{b}", 300, 10, 50)
	std := seedStandardChallenge(t, db, "std-1", "CTF{c}", 200)

	// 人工放一个过期的缓存分值和既有解题数
	require.NoError(t, db.Model(&models.Challenge{}).Where("id = ?", dyn1.ID).
		Updates(map[string]interface{}{"solved_count": 10, "current_value": 500}).Error)
	require.NoError(t, db.Model(&models.Challenge{}).Where("id = ?", dyn2.ID).
		Updates(map[string]interface{}{"solved_count": 3, "current_value": 1}).Error)

	result, err := RecalculateDynamicScores(db)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Updated)
	assert.ElementsMatch(t, []uint32{dyn1.ID, dyn2.ID}, result.ChallengeIDs)

	var reloaded models.Challenge
	require.NoError(t, db.First(&reloaded, dyn1.ID).Error)
	assert.Equal(t, uint(484), reloaded.CurrentValue)

	reloaded = models.Challenge{}
	require.NoError(t, db.First(&reloaded, dyn2.ID).Error)
	assert.Equal(t, ComputeValue(300, 10, 50, 3), reloaded.CurrentValue)

	// 静态题不受批量重算影响
	reloaded = models.Challenge{}
	require.NoError(t, db.First(&reloaded, std.ID).Error)
	assert.Equal(t, uint(200), reloaded.CurrentValue)
}
