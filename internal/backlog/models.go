package backlog

import (
	"time"

	"warden/internal/decision"
)

// Summary reports one backlog scan.
type Summary struct {
	ScanID string `json:"scan_id"`
	// Groups is the number of registered groups the scan covered.
	Groups int `json:"groups"`
	// FailedGroups could not be listed; their requests stay pending.
	FailedGroups int `json:"failed_groups"`
	EmptyGroups  int `json:"empty_groups"`
	// TruncatedGroups returned a full page; more requests may be waiting.
	TruncatedGroups int                      `json:"truncated_groups"`
	Requests        int                      `json:"requests"`
	Outcomes        map[decision.Outcome]int `json:"outcomes"`
	// Undelivered counts verdicts the platform did not accept.
	Undelivered int `json:"undelivered"`
	// Cancelled is set when the scan stopped early because its context ended.
	Cancelled bool          `json:"cancelled"`
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration_ns"`
}

// groupReport is the result of scanning one group.
type groupReport struct {
	failed    bool
	truncated bool
	results   []decision.Result
}

func (s *Summary) add(r groupReport) {
	switch {
	case r.failed:
		s.FailedGroups++
		return
	case len(r.results) == 0:
		s.EmptyGroups++
	}
	if r.truncated {
		s.TruncatedGroups++
	}
	for _, res := range r.results {
		s.Requests++
		s.Outcomes[res.Outcome]++
		if res.Outcome != decision.OutcomeIgnored && !res.Delivered {
			s.Undelivered++
		}
	}
}
