package service

import (
	"sort"

	"campaign-analyst/internal/campaign/model"
)

// Ranking holds the N best and N worst rows for one metric, already in
// presentation order (best first within each list).
type Ranking struct {
	Best  []model.Row
	Worst []model.Row
}

// Rank sorts rows by the named metric and picks the top/bottom n. For cpa
// lower is better and rows with an undefined cpa are left out entirely; for
// every other metric higher is better. The sort is stable, so ties keep
// input order. ok is false when the dataset has no such metric.
func Rank(ds *model.Dataset, metric string, n int) (Ranking, bool) {
	if !ds.Has(metric) {
		return Ranking{}, false
	}

	rows := make([]model.Row, 0, len(ds.Rows))
	for _, r := range ds.Rows {
		if _, defined := r.Metric(metric); defined {
			rows = append(rows, r)
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		a, _ := rows[i].Metric(metric)
		b, _ := rows[j].Metric(metric)
		return a < b
	})

	smallest := func(n int) []model.Row {
		if n > len(rows) {
			n = len(rows)
		}
		return rows[:n]
	}
	largest := func(n int) []model.Row {
		if n > len(rows) {
			n = len(rows)
		}
		out := make([]model.Row, 0, n)
		for i := len(rows) - 1; i >= len(rows)-n; i-- {
			out = append(out, rows[i])
		}
		return out
	}

	if metric == model.ColCPA {
		return Ranking{Best: smallest(n), Worst: largest(n)}, true
	}
	return Ranking{Best: largest(n), Worst: smallest(n)}, true
}
