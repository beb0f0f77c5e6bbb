package models

import (
	"time"

	"github.com/fabrikaops/nonconf_backend/utils"
	"github.com/google/uuid"
)

// PCDA is a structured plan-do-check-act note attached to a corrective action.
type PCDA struct {
	Plan  string `json:"plan"`
	Do    string `json:"do"`
	Check string `json:"check"`
	Act   string `json:"act"`
}

// NonConformity is the central entity: a recorded deviation (safety incident,
// quality defect, productivity shortfall, scrap, excess freight cost) and the
// corrective action raised against it.
//
// CreatedAt and CreatedDate always hold the same value; the pair is kept for
// compatibility with the historical record format. TargetDate and ClosedDate
// are stored verbatim as entered (spreadsheet cells are not guaranteed to be
// parseable dates) and parsed at evaluation time.
type NonConformity struct {
	ID          string    `json:"id"`
	Source      Source    `json:"source"`
	SourceLabel string    `json:"sourceLabel"`
	Day         int       `json:"day"`
	Description string    `json:"description"`
	Severity    Severity  `json:"severity"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	CreatedDate time.Time `json:"createdDate"`
	ClosedDate  *string   `json:"closedDate,omitempty"`
	ActionID    *string   `json:"actionId,omitempty"`
	ActionTitle *string   `json:"actionTitle,omitempty"`
	TeamLeader  *string   `json:"teamLeader,omitempty"`
	Team        *string   `json:"team,omitempty"`
	Category    *string   `json:"category,omitempty"`
	TargetDate  *string   `json:"targetDate,omitempty"`
	PCDA        *PCDA     `json:"pcda,omitempty"`
}

// NewNonConformity builds a record from the manual "add topic" form. The
// free-text source/severity/status inputs go through the classifiers, so the
// enum invariants hold no matter what was typed.
func NewNonConformity(description, sourceText, severityText, statusText string, day int, now time.Time) NonConformity {
	source := ClassifySource(sourceText)
	if day <= 0 {
		day = 1
	}
	return NonConformity{
		ID:          uuid.NewString(),
		Source:      source,
		SourceLabel: source.Label(),
		Day:         day,
		Description: description,
		Severity:    ClassifySeverity(severityText),
		Status:      ClassifyStatus(statusText),
		CreatedAt:   now,
		CreatedDate: now,
	}
}

// ParsedTargetDate returns the record's target date when one is present and
// parseable.
func (n *NonConformity) ParsedTargetDate() (time.Time, bool) {
	if n.TargetDate == nil {
		return time.Time{}, false
	}
	return utils.ParseFlexibleDate(*n.TargetDate)
}

// ParsedClosedDate returns the record's closing date when one is present and
// parseable.
func (n *NonConformity) ParsedClosedDate() (time.Time, bool) {
	if n.ClosedDate == nil {
		return time.Time{}, false
	}
	return utils.ParseFlexibleDate(*n.ClosedDate)
}

// Timeliness evaluates the record against "today". Records without a target
// date are Ongoing by convention and never Overdue.
func (n *NonConformity) Timeliness(today time.Time) TimelinessResult {
	target, ok := n.ParsedTargetDate()
	if !ok {
		return TimelinessResult{Verdict: TimelinessOngoing, Closed: n.Status == StatusClosed}
	}
	var closed *time.Time
	if c, ok := n.ParsedClosedDate(); ok {
		closed = &c
	}
	return EvaluateTimeliness(target, n.Status, closed, today)
}
