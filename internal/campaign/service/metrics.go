package service

import (
	"strings"

	"campaign-analyst/internal/campaign/model"
)

var requiredCols = []string{model.ColImps, model.ColClicks, model.ColLeads}

// MissingColumnsError reports the required canonical columns the input did
// not carry after normalization.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return "missing required columns: " + strings.Join(e.Columns, ", ")
}

// Derive fills in ctr, cvr and cpa for every row, but only for columns the
// input did not already carry. Guards: imps ≤ 0 forces ctr to 0, clicks ≤ 0
// forces cvr to 0, leads ≤ 0 (or no cost value) leaves cpa undefined — nil,
// never NaN, so aggregations can skip it.
func Derive(ds *model.Dataset) error {
	var missing []string
	for _, c := range requiredCols {
		if !ds.Has(c) {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return &MissingColumnsError{Columns: missing}
	}

	needCTR := !ds.Has(model.ColCTR)
	needCVR := !ds.Has(model.ColCVR)
	needCPA := ds.Has(model.ColCost) && !ds.Has(model.ColCPA)

	for i := range ds.Rows {
		r := &ds.Rows[i]
		if needCTR {
			if r.Imps > 0 {
				r.CTR = r.Clicks / r.Imps
			} else {
				r.CTR = 0
			}
		}
		if needCVR {
			if r.Clicks > 0 {
				r.CVR = r.Leads / r.Clicks
			} else {
				r.CVR = 0
			}
		}
		if needCPA {
			if r.Leads > 0 && r.Cost != nil {
				v := *r.Cost / r.Leads
				r.CPA = &v
			} else {
				r.CPA = nil
			}
		}
	}

	if needCTR {
		ds.Present[model.ColCTR] = true
	}
	if needCVR {
		ds.Present[model.ColCVR] = true
	}
	if needCPA {
		ds.Present[model.ColCPA] = true
	}
	return nil
}
