package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-analyst/internal/campaign/model"
)

func table(headers []string, rows ...map[string]string) *model.Table {
	return &model.Table{Headers: headers, Records: rows}
}

func TestDeriveMissingColumns(t *testing.T) {
	ds := Build(table([]string{"campaign", "clicks"},
		map[string]string{"campaign": "A", "clicks": "5"}))

	err := Derive(ds)
	require.Error(t, err)
	var mce *MissingColumnsError
	require.ErrorAs(t, err, &mce)
	assert.Equal(t, []string{"imps", "leads"}, mce.Columns)
	assert.Contains(t, err.Error(), "imps")
	assert.Contains(t, err.Error(), "leads")
}

func TestDeriveGuards(t *testing.T) {
	ds := Build(table([]string{"campaign", "imps", "clicks", "leads", "cost"},
		map[string]string{"campaign": "zero imps", "imps": "0", "clicks": "10", "leads": "1", "cost": "10"},
		map[string]string{"campaign": "zero clicks", "imps": "100", "clicks": "0", "leads": "0", "cost": "10"},
		map[string]string{"campaign": "normal", "imps": "1000", "clicks": "20", "leads": "2", "cost": "100"},
	))
	require.NoError(t, Derive(ds))

	zi, zc, norm := ds.Rows[0], ds.Rows[1], ds.Rows[2]

	assert.Zero(t, zi.CTR, "imps=0 must force ctr to 0")
	assert.InDelta(t, 10.0, *zi.CPA, 1e-9)

	assert.Zero(t, zc.CVR, "clicks=0 must force cvr to 0")
	assert.Nil(t, zc.CPA, "leads=0 must leave cpa undefined")

	assert.InDelta(t, 0.02, norm.CTR, 1e-9)
	assert.InDelta(t, 0.10, norm.CVR, 1e-9)
	require.NotNil(t, norm.CPA)
	assert.InDelta(t, 50.0, *norm.CPA, 1e-9)

	assert.True(t, ds.Has(model.ColCTR))
	assert.True(t, ds.Has(model.ColCVR))
	assert.True(t, ds.Has(model.ColCPA))
}

func TestDeriveKeepsInputMetrics(t *testing.T) {
	ds := Build(table([]string{"campaign", "imps", "clicks", "leads", "ctr"},
		map[string]string{"campaign": "A", "imps": "1000", "clicks": "20", "leads": "2", "ctr": "0,9"},
	))
	require.NoError(t, Derive(ds))

	// input ctr wins over the derivable 0.02
	assert.InDelta(t, 0.9, ds.Rows[0].CTR, 1e-9)
	// no cost column → no cpa at all
	assert.False(t, ds.Has(model.ColCPA))
	assert.Nil(t, ds.Rows[0].CPA)
}

func TestBuildExtraColumns(t *testing.T) {
	ds := Build(table([]string{"campaign", "imps", "clicks", "leads", "Fecha"},
		map[string]string{"campaign": "A", "imps": "1", "clicks": "1", "leads": "1", "Fecha": "2026-01-01"},
	))
	require.NoError(t, Derive(ds))
	assert.Equal(t, "2026-01-01", ds.Rows[0].Extra["Fecha"])
}

func TestBuildMissingCampaignName(t *testing.T) {
	ds := Build(table([]string{"imps", "clicks", "leads"},
		map[string]string{"imps": "1", "clicks": "1", "leads": "1"},
	))
	assert.Equal(t, "N/A", ds.Rows[0].Campaign)
}

func TestComputeMeans(t *testing.T) {
	ds := Build(table([]string{"campaign", "imps", "clicks", "leads", "cost"},
		map[string]string{"campaign": "A", "imps": "1000", "clicks": "20", "leads": "2", "cost": "100"},
		map[string]string{"campaign": "B", "imps": "1000", "clicks": "5", "leads": "0", "cost": "50"},
	))
	require.NoError(t, Derive(ds))

	m := ComputeMeans(ds)
	assert.InDelta(t, 0.0125, m.CTR, 1e-9)
	assert.InDelta(t, 0.05, m.CVR, 1e-9)
	// B's undefined cpa is excluded, not averaged as zero
	require.NotNil(t, m.CPA)
	assert.InDelta(t, 50.0, *m.CPA, 1e-9)
}

func TestComputeMeansNoCPA(t *testing.T) {
	ds := Build(table([]string{"campaign", "imps", "clicks", "leads", "cost"},
		map[string]string{"campaign": "A", "imps": "10", "clicks": "1", "leads": "0", "cost": "5"},
	))
	require.NoError(t, Derive(ds))
	m := ComputeMeans(ds)
	assert.Nil(t, m.CPA)
}

func TestComputeMeansEmpty(t *testing.T) {
	ds := &model.Dataset{Present: map[string]bool{}}
	m := ComputeMeans(ds)
	assert.Zero(t, m.CTR)
	assert.Zero(t, m.CVR)
	assert.Nil(t, m.CPA)
}
