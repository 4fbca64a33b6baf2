package service

import "campaign-analyst/internal/campaign/model"

// ComputeMeans returns the dataset-wide averages. The cpa mean skips rows
// with an undefined cpa and is nil when no row has one (or there is no cpa
// column at all).
func ComputeMeans(ds *model.Dataset) model.Means {
	var m model.Means
	if len(ds.Rows) == 0 {
		return m
	}

	var sumCTR, sumCVR, sumCPA float64
	cpaN := 0
	for i := range ds.Rows {
		r := &ds.Rows[i]
		sumCTR += r.CTR
		sumCVR += r.CVR
		if r.CPA != nil {
			sumCPA += *r.CPA
			cpaN++
		}
	}
	n := float64(len(ds.Rows))
	m.CTR = sumCTR / n
	m.CVR = sumCVR / n
	if cpaN > 0 {
		v := sumCPA / float64(cpaN)
		m.CPA = &v
	}
	return m
}
