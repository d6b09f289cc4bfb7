package reviews

import (
	"context"
	"slices"
	"sync"
)

type memoryStore struct {
	mu        sync.RWMutex
	comments  map[string][]Comment
	decisions map[string][]Decision
	audit     map[string][]AuditEntry
}

// NewMemoryStore creates a Store held in process memory. Entries are lost
// when the process exits.
func NewMemoryStore() Store {
	return &memoryStore{
		comments:  make(map[string][]Comment),
		decisions: make(map[string][]Decision),
		audit:     make(map[string][]AuditEntry),
	}
}

func (s *memoryStore) Comments(ctx context.Context, caseID string) ([]Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneOrEmpty(s.comments[caseID]), nil
}

func (s *memoryStore) Decisions(ctx context.Context, caseID string) ([]Decision, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneOrEmpty(s.decisions[caseID]), nil
}

func (s *memoryStore) AuditLog(ctx context.Context, caseID string) ([]AuditEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneOrEmpty(s.audit[caseID]), nil
}

func (s *memoryStore) InsertComment(ctx context.Context, c Comment, audit AuditEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if slices.ContainsFunc(s.comments[c.CaseID], func(e Comment) bool { return e.ID == c.ID }) {
		return ErrDuplicate
	}

	s.comments[c.CaseID] = append(s.comments[c.CaseID], c)
	s.audit[audit.CaseID] = append(s.audit[audit.CaseID], audit)
	return nil
}

func (s *memoryStore) InsertDecision(ctx context.Context, d Decision, audit AuditEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.decisions[d.CaseID] = append(s.decisions[d.CaseID], d)
	s.audit[audit.CaseID] = append(s.audit[audit.CaseID], audit)
	return nil
}

func (s *memoryStore) Seed(ctx context.Context, seed Seed) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range seed.Comments {
		existing := s.comments[c.CaseID]
		if !slices.ContainsFunc(existing, func(e Comment) bool { return e.ID == c.ID }) {
			s.comments[c.CaseID] = append(existing, c)
		}
	}
	for _, a := range seed.Audit {
		existing := s.audit[a.CaseID]
		if !slices.ContainsFunc(existing, func(e AuditEntry) bool { return e.ID == a.ID }) {
			s.audit[a.CaseID] = append(existing, a)
		}
	}
	return nil
}

func cloneOrEmpty[T any](items []T) []T {
	if len(items) == 0 {
		return []T{}
	}
	return slices.Clone(items)
}
