package service

import "campaign-analyst/internal/campaign/model"

// Issue is one heuristic finding for a campaign.
type Issue int

const (
	IssueLowCTR Issue = iota
	IssueLowCVR
	IssueHighCPA
	// IssueBalanced is the single note emitted when nothing else fired.
	IssueBalanced
)

const (
	lowFactor  = 0.6 // flag when strictly below 60% of the mean
	highFactor = 1.5 // flag when strictly above 150% of the mean cpa
)

// Diagnose compares one row against the dataset means. Comparisons are
// strict: a ctr exactly at 0.6×mean is not flagged. The cpa check only
// applies when both the row cpa and the mean cpa are defined.
func Diagnose(r *model.Row, m model.Means) []Issue {
	var issues []Issue
	if r.CTR < m.CTR*lowFactor {
		issues = append(issues, IssueLowCTR)
	}
	if r.CVR < m.CVR*lowFactor {
		issues = append(issues, IssueLowCVR)
	}
	if r.CPA != nil && m.CPA != nil && *r.CPA > *m.CPA*highFactor {
		issues = append(issues, IssueHighCPA)
	}
	if len(issues) == 0 {
		issues = append(issues, IssueBalanced)
	}
	return issues
}
