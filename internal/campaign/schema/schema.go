package schema

import (
	"strings"

	"campaign-analyst/internal/campaign/model"
)

var nbsp = strings.NewReplacer(" ", " ", " ", " ")

// Canonical maps one raw header onto the canonical schema. Rules are
// ordered and first match wins; the multi-token cost rules must run before
// the exact "cost"/"costo" ones. Headers matching no rule stay as they are.
func Canonical(header string) (string, bool) {
	low := strings.ToLower(strings.TrimSpace(nbsp.Replace(header)))
	switch {
	case strings.Contains(low, "line item"),
		strings.Contains(low, "campaign"),
		strings.Contains(low, "puesto"):
		return model.ColCampaign, true
	case strings.Contains(low, "imp"):
		return model.ColImps, true
	case strings.Contains(low, "click"):
		return model.ColClicks, true
	case strings.Contains(low, "lead"),
		strings.Contains(low, "candid"),
		strings.Contains(low, "application"):
		return model.ColLeads, true
	case strings.Contains(low, "total cost"),
		(strings.Contains(low, "cost") || strings.Contains(low, "gasto")) && strings.Contains(low, "total"):
		return model.ColCost, true
	case low == "cost", low == "costo":
		return model.ColCost, true
	case low == "ctr":
		return model.ColCTR, true
	case low == "cvr":
		return model.ColCVR, true
	case low == "cpa":
		return model.ColCPA, true
	}
	return "", false
}

// Normalize renames matching headers in place, both in the header list and
// in every record's keys. When two headers map to the same canonical name
// the leftmost wins and the rest keep their original name. Running it on an
// already-normalized table is a no-op.
func Normalize(t *model.Table) {
	renames := make(map[string]string, len(t.Headers))
	taken := make(map[string]bool, len(t.Headers))
	for i, h := range t.Headers {
		c, ok := Canonical(h)
		if !ok || taken[c] {
			continue
		}
		taken[c] = true
		t.Headers[i] = c
		if h != c {
			renames[h] = c
		}
	}
	if len(renames) == 0 {
		return
	}
	for _, rec := range t.Records {
		for from, to := range renames {
			if v, ok := rec[from]; ok {
				rec[to] = v
				delete(rec, from)
			}
		}
	}
}
