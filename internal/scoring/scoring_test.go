package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

func TestScoreScenarios(t *testing.T) {
	tests := []struct {
		name         string
		revenue      float64
		sector       *string
		behaviorData *string
		wantScore    float64
		wantTier     string
	}{
		{
			name:         "high revenue tech with good history clamps at max",
			revenue:      1_500_000,
			sector:       strptr("Technology"),
			behaviorData: strptr("good history"),
			wantScore:    900,
			wantTier:     TierPlatinum,
		},
		{
			name:      "low revenue with no sector or behavior",
			revenue:   50_000,
			wantScore: 550,
			wantTier:  TierBronze,
		},
		{
			name:         "mid revenue retail with bad signals",
			revenue:      250_000,
			sector:       strptr("RETAIL"),
			behaviorData: strptr("some bad signals"),
			wantScore:    610,
			wantTier:     TierSilver,
		},
		{
			name:         "good marker wins over bad",
			revenue:      600_000,
			sector:       strptr("agriculture"),
			behaviorData: strptr("good and bad"),
			wantScore:    790,
			wantTier:     TierGold,
		},
		{
			name:      "revenue boundary is strictly greater than",
			revenue:   100_000,
			wantScore: 550,
			wantTier:  TierBronze,
		},
		{
			name:      "empty sector string still counts as a sector",
			revenue:   50_000,
			sector:    strptr(""),
			wantScore: 590,
			wantTier:  TierBronze,
		},
		{
			name:         "bad behavior alone",
			revenue:      50_000,
			behaviorData: strptr("bad payer"),
			wantScore:    500,
			wantTier:     TierBronze,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.revenue, tt.sector, tt.behaviorData)
			assert.Equal(t, tt.wantScore, got.Score)
			assert.Equal(t, tt.wantTier, got.Tier)
		})
	}
}

func TestScoreBounds(t *testing.T) {
	inputs := []struct {
		revenue      float64
		sector       *string
		behaviorData *string
	}{
		{0, nil, nil},
		{2_000_000, strptr("technology"), strptr("good")},
		{0, nil, strptr("bad")},
		{1_000_001, strptr("finance"), strptr("good")},
	}
	for _, in := range inputs {
		got := Score(in.revenue, in.sector, in.behaviorData)
		require.GreaterOrEqual(t, got.Score, float64(MinScore))
		require.LessOrEqual(t, got.Score, float64(MaxScore))
		require.Contains(t, []string{TierBronze, TierSilver, TierGold, TierPlatinum}, got.Tier)
	}
}

func TestTierMonotonic(t *testing.T) {
	rank := map[string]int{TierBronze: 0, TierSilver: 1, TierGold: 2, TierPlatinum: 3}
	prev := rank[Tier(MinScore)]
	for s := float64(MinScore); s <= MaxScore; s++ {
		cur := rank[Tier(s)]
		require.GreaterOrEqual(t, cur, prev, "tier must not decrease at score %v", s)
		prev = cur
	}
}

func TestTierBoundaries(t *testing.T) {
	assert.Equal(t, TierSilver, Tier(600))
	assert.Equal(t, TierBronze, Tier(599))
	assert.Equal(t, TierGold, Tier(700))
	assert.Equal(t, TierPlatinum, Tier(800))
	assert.Equal(t, TierGold, Tier(799))
}

func TestScoreDeterministic(t *testing.T) {
	first := Score(750_000, strptr("Finance"), strptr("mostly good"))
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Score(750_000, strptr("Finance"), strptr("mostly good")))
	}
	assert.NotEmpty(t, first.Rationale)
	assert.NotEmpty(t, first.Visuals)
}
