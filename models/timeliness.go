package models

import (
	"time"

	"github.com/fabrikaops/nonconf_backend/utils"
)

type Timeliness string

const (
	TimelinessTimely  Timeliness = "Timely"
	TimelinessOverdue Timeliness = "Overdue"
	TimelinessOngoing Timeliness = "Ongoing"
)

// TimelinessResult carries the verdict plus whether the record is closed,
// so callers can split a single Overdue into closed-late vs open-and-late
// without re-deriving dates.
type TimelinessResult struct {
	Verdict Timeliness `json:"verdict"`
	Closed  bool       `json:"closed"`
}

// EvaluateTimeliness compares targetDate against today (caller-supplied, so
// the function stays deterministic) with all dates normalized to midnight.
// Closed records are judged by their closing date, falling back to today
// when no closing date was recorded. Callers must not invoke this without
// a target date; records lacking one are "Ongoing" by convention upstream.
func EvaluateTimeliness(targetDate time.Time, status Status, closedDate *time.Time, today time.Time) TimelinessResult {
	target := utils.TruncateToDay(targetDate)
	now := utils.TruncateToDay(today)

	if status == StatusClosed {
		effectiveClosed := now
		if closedDate != nil {
			effectiveClosed = utils.TruncateToDay(*closedDate)
		}
		if !effectiveClosed.After(target) {
			return TimelinessResult{Verdict: TimelinessTimely, Closed: true}
		}
		return TimelinessResult{Verdict: TimelinessOverdue, Closed: true}
	}

	if target.Before(now) {
		return TimelinessResult{Verdict: TimelinessOverdue, Closed: false}
	}
	return TimelinessResult{Verdict: TimelinessOngoing, Closed: false}
}
