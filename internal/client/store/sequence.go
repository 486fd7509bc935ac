package store

import "github.com/dmitrijs2005/showcase/internal/client/models"

// Ticket identifies one in-flight request. Only the latest ticket of its kind
// may apply its result.
type Ticket struct {
	seq uint64
}

// BeginList starts a list request and invalidates earlier ones.
func (s *Store) BeginList() Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listSeq++
	return Ticket{seq: s.listSeq}
}

// BeginDetail starts a detail request and invalidates earlier ones.
func (s *Store) BeginDetail() Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.detailSeq++
	return Ticket{seq: s.detailSeq}
}

// ApplyProjects behaves like SetProjects if t is still the latest list
// ticket. It reports whether the result was applied.
func (s *Store) ApplyProjects(t Ticket, items []models.Project, p models.Pagination) bool {
	applied := false
	s.mutate(func() {
		if t.seq != s.listSeq {
			return
		}
		s.setProjectsLocked(items, p)
		applied = true
	})
	return applied
}

// ApplyCurrent behaves like SetCurrentProject if t is still the latest
// detail ticket.
func (s *Store) ApplyCurrent(t Ticket, p *models.Project) bool {
	applied := false
	s.mutate(func() {
		if t.seq != s.detailSeq {
			return
		}
		s.setCurrentLocked(p)
		applied = true
	})
	return applied
}

// IsLatestList reports whether t is still the latest list ticket.
func (s *Store) IsLatestList(t Ticket) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return t.seq == s.listSeq
}

// IsLatestDetail reports whether t is still the latest detail ticket.
func (s *Store) IsLatestDetail(t Ticket) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return t.seq == s.detailSeq
}
