package model

// Canonical column names the pipeline operates on after normalization.
const (
	ColCampaign = "campaign"
	ColImps     = "imps"
	ColClicks   = "clicks"
	ColLeads    = "leads"
	ColCost     = "cost"
	ColCTR      = "ctr"
	ColCVR      = "cvr"
	ColCPA      = "cpa"
)

// Metrics that can be ranked, in report order.
var RankableMetrics = []string{ColCTR, ColCVR, ColCPA}

// Table is the raw load result: header order as found in the file plus
// one map[header]cell-text per non-empty row.
type Table struct {
	Headers []string
	Records []map[string]string
}

// Row is one campaign after typing. Cost and CPA are optional: a nil CPA
// means "undefined" (no cost column, or zero leads) and must stay distinct
// from a zero CPA.
type Row struct {
	Campaign string
	Imps     float64
	Clicks   float64
	Leads    float64
	Cost     *float64
	CTR      float64
	CVR      float64
	CPA      *float64

	// Unmapped input columns, kept but never computed on.
	Extra map[string]string
}

// Dataset is the typed table. Present tracks which canonical columns the
// input actually carried, so derivation can skip columns that came in the
// file and the reporter knows whether cpa exists at all.
type Dataset struct {
	Rows    []Row
	Present map[string]bool
}

// Has reports whether a canonical column exists, either from the input or
// added by derivation.
func (d *Dataset) Has(col string) bool { return d.Present[col] }

// Metric returns the value of a rankable metric for a row. The bool is
// false when the value is undefined (nil cpa).
func (r *Row) Metric(name string) (float64, bool) {
	switch name {
	case ColCTR:
		return r.CTR, true
	case ColCVR:
		return r.CVR, true
	case ColCPA:
		if r.CPA == nil {
			return 0, false
		}
		return *r.CPA, true
	}
	return 0, false
}

// Means holds dataset-wide averages. CPA is nil when no row has a defined
// cpa.
type Means struct {
	CTR float64
	CVR float64
	CPA *float64
}
