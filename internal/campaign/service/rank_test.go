package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-analyst/internal/campaign/model"
)

func fp(v float64) *float64 { return &v }

func rankDataset() *model.Dataset {
	return &model.Dataset{
		Present: map[string]bool{"ctr": true, "cvr": true, "cpa": true},
		Rows: []model.Row{
			{Campaign: "A", CTR: 0.010, CPA: fp(20)},
			{Campaign: "B", CTR: 0.030, CPA: fp(5)},
			{Campaign: "C", CTR: 0.020, CPA: nil},
			{Campaign: "D", CTR: 0.005, CPA: fp(80)},
			{Campaign: "E", CTR: 0.040, CPA: fp(40)},
		},
	}
}

func names(rows []model.Row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Campaign
	}
	return out
}

func TestRankHigherIsBetter(t *testing.T) {
	rk, ok := Rank(rankDataset(), "ctr", 3)
	require.True(t, ok)
	assert.Equal(t, []string{"E", "B", "C"}, names(rk.Best))
	assert.Equal(t, []string{"D", "A", "C"}, names(rk.Worst))
}

func TestRankCPALowerIsBetter(t *testing.T) {
	rk, ok := Rank(rankDataset(), "cpa", 3)
	require.True(t, ok)
	// C has no cpa and must appear in neither list
	assert.Equal(t, []string{"B", "A", "E"}, names(rk.Best))
	assert.Equal(t, []string{"D", "E", "A"}, names(rk.Worst))
}

func TestRankNLargerThanDataset(t *testing.T) {
	rk, ok := Rank(rankDataset(), "cpa", 10)
	require.True(t, ok)
	assert.Len(t, rk.Best, 4)
	assert.Len(t, rk.Worst, 4)
}

func TestRankUnknownMetric(t *testing.T) {
	_, ok := Rank(rankDataset(), "roi", 3)
	assert.False(t, ok)
}

func TestRankStableTies(t *testing.T) {
	ds := &model.Dataset{
		Present: map[string]bool{"ctr": true},
		Rows: []model.Row{
			{Campaign: "first", CTR: 0.01},
			{Campaign: "second", CTR: 0.01},
			{Campaign: "third", CTR: 0.01},
		},
	}
	rk, ok := Rank(ds, "ctr", 2)
	require.True(t, ok)
	// stable sort: worst (smallest) keeps input order
	assert.Equal(t, []string{"first", "second"}, names(rk.Worst))
}
