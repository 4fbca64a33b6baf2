package service

import (
	"strings"

	"campaign-analyst/internal/campaign/model"
	"campaign-analyst/internal/utils"
)

var canonicalCols = map[string]bool{
	model.ColCampaign: true,
	model.ColImps:     true,
	model.ColClicks:   true,
	model.ColLeads:    true,
	model.ColCost:     true,
	model.ColCTR:      true,
	model.ColCVR:      true,
	model.ColCPA:      true,
}

// Build types a normalized table into a Dataset. Cells that do not parse
// as numbers count as zero (optional columns: as absent). Columns the
// normalizer left unmapped go into Row.Extra untouched.
func Build(t *model.Table) *model.Dataset {
	present := make(map[string]bool, len(t.Headers))
	for _, h := range t.Headers {
		if canonicalCols[h] {
			present[h] = true
		}
	}

	ds := &model.Dataset{Present: present}
	for _, rec := range t.Records {
		row := model.Row{Campaign: strings.TrimSpace(rec[model.ColCampaign])}
		if row.Campaign == "" {
			row.Campaign = "N/A"
		}
		row.Imps = numOrZero(rec[model.ColImps])
		row.Clicks = numOrZero(rec[model.ColClicks])
		row.Leads = numOrZero(rec[model.ColLeads])
		if present[model.ColCost] {
			if f, ok := utils.ParseFloat(rec[model.ColCost]); ok {
				row.Cost = &f
			}
		}
		if present[model.ColCTR] {
			row.CTR = numOrZero(rec[model.ColCTR])
		}
		if present[model.ColCVR] {
			row.CVR = numOrZero(rec[model.ColCVR])
		}
		if present[model.ColCPA] {
			if f, ok := utils.ParseFloat(rec[model.ColCPA]); ok {
				row.CPA = &f
			}
		}
		for k, v := range rec {
			if canonicalCols[k] {
				continue
			}
			if row.Extra == nil {
				row.Extra = make(map[string]string)
			}
			row.Extra[k] = v
		}
		ds.Rows = append(ds.Rows, row)
	}
	return ds
}

func numOrZero(s string) float64 {
	f, _ := utils.ParseFloat(s)
	return f
}
