package models

import (
	"sync"
	"time"

	"github.com/fabrikaops/nonconf_backend/utils"
	"github.com/google/uuid"
)

// Store is the in-memory record collection. There is one user-driven mutator
// at a time by construction (a single active import or edit); the lock only
// guards against concurrent HTTP reads while a commit is in flight. Durable
// storage belongs to an external service, not this core.
type Store struct {
	mu      sync.RWMutex
	records []NonConformity
}

func NewStore() *Store {
	return &Store{}
}

// Snapshot returns a copy of the collection. Aggregations recompute from a
// snapshot on every call; nothing here is cached.
func (s *Store) Snapshot() []NonConformity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]NonConformity, len(s.records))
	copy(out, s.records)
	return out
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

func (s *Store) Get(id string) (NonConformity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.records {
		if s.records[i].ID == id {
			return s.records[i], true
		}
	}
	return NonConformity{}, false
}

func (s *Store) Add(record NonConformity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, record)
}

// CommitImport appends the transformed rows to the existing collection
// (imports merge, they never replace) and returns how many were committed.
// Re-importing the same file produces duplicates with fresh ids; there is no
// content-based deduplication.
func (s *Store) CommitImport(records []NonConformity) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, records...)
	return len(records)
}

// Patch is the edit operation's payload: nil fields are left untouched.
type Patch struct {
	Description *string
	Source      *Source
	Severity    *Severity
	Status      *Status
	Day         *int
	ClosedDate  *string
	ActionTitle *string
	TeamLeader  *string
	Team        *string
	Category    *string
	TargetDate  *string
	PCDA        *PCDA
}

// ApplyEdit mutates a record in place. CreatedAt/CreatedDate are immutable.
// Transitioning to closed stamps ClosedDate (today, ISO date) when the patch
// does not carry one; no transition ever clears an existing ClosedDate.
// A ClosedDate on a record that is not closed is rejected as a hard invariant.
func (s *Store) ApplyEdit(id string, patch Patch, now time.Time) (NonConformity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var record *NonConformity
	for i := range s.records {
		if s.records[i].ID == id {
			record = &s.records[i]
			break
		}
	}
	if record == nil {
		return NonConformity{}, utils.ErrRecordNotFound
	}

	nextStatus := record.Status
	if patch.Status != nil {
		nextStatus = *patch.Status
	}
	if patch.ClosedDate != nil && nextStatus != StatusClosed {
		return NonConformity{}, utils.ErrClosedDateWithoutClosed
	}

	if patch.Description != nil && *patch.Description != "" {
		record.Description = *patch.Description
	}
	if patch.Source != nil {
		record.Source = *patch.Source
		record.SourceLabel = patch.Source.Label()
	}
	if patch.Severity != nil {
		record.Severity = *patch.Severity
	}
	if patch.Day != nil && *patch.Day > 0 {
		record.Day = *patch.Day
	}
	if patch.ActionTitle != nil {
		record.ActionTitle = utils.NilIfEmpty(*patch.ActionTitle)
		if record.ActionTitle != nil && record.ActionID == nil {
			record.ActionID = utils.NewPtr(uuid.NewString())
		}
	}
	if patch.TeamLeader != nil {
		record.TeamLeader = utils.NilIfEmpty(*patch.TeamLeader)
	}
	if patch.Team != nil {
		record.Team = utils.NilIfEmpty(*patch.Team)
	}
	if patch.Category != nil {
		record.Category = utils.NilIfEmpty(*patch.Category)
	}
	if patch.TargetDate != nil {
		record.TargetDate = utils.NilIfEmpty(*patch.TargetDate)
	}
	if patch.PCDA != nil {
		record.PCDA = patch.PCDA
	}

	if patch.Status != nil {
		record.Status = nextStatus
		if nextStatus == StatusClosed && record.ClosedDate == nil {
			closed := now.Format("2006-01-02")
			if patch.ClosedDate != nil {
				closed = *patch.ClosedDate
			}
			record.ClosedDate = &closed
		}
	}
	if patch.ClosedDate != nil && nextStatus == StatusClosed {
		record.ClosedDate = patch.ClosedDate
	}

	return *record, nil
}
