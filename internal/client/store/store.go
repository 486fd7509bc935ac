// Package store keeps the CLI's in-memory view of the project collection:
// the current page of projects, the project being viewed, pagination, the
// search text and advisory loading/error flags.
//
// All transitions are pure state changes with no I/O. Getters return copies,
// so callers can never mutate the store behind its back.
package store

import (
	"slices"
	"sync"

	"github.com/dmitrijs2005/showcase/internal/client/models"
)

// State is a read-only snapshot of the store.
type State struct {
	Projects    []models.Project
	Current     *models.Project
	Pagination  *models.Pagination
	SearchQuery string
	Loading     bool
	Error       string
}

type Listener func(State)

type Store struct {
	mu          sync.RWMutex
	projects    []models.Project
	current     *models.Project
	pagination  *models.Pagination
	searchQuery string
	loading     bool
	err         string

	listSeq   uint64
	detailSeq uint64

	lmu       sync.Mutex
	listeners map[int]Listener
	nextID    int
}

func New() *Store {
	return &Store{listeners: make(map[int]Listener)}
}

// SetProjects replaces the page of projects and its pagination and clears
// the error. The current project and search text are kept.
func (s *Store) SetProjects(items []models.Project, p models.Pagination) {
	s.mutate(func() {
		s.setProjectsLocked(items, p)
	})
}

func (s *Store) setProjectsLocked(items []models.Project, p models.Pagination) {
	s.projects = cloneProjects(items)
	pg := p
	s.pagination = &pg
	s.err = ""
}

// SetCurrentProject sets the project being viewed; nil clears it.
func (s *Store) SetCurrentProject(p *models.Project) {
	s.mutate(func() {
		s.setCurrentLocked(p)
	})
}

func (s *Store) setCurrentLocked(p *models.Project) {
	if p == nil {
		s.current = nil
		return
	}
	c := p.Clone()
	s.current = &c
}

// AddProject prepends p. An entry with the same id is dropped first so the
// project never appears twice. Pagination is not adjusted.
func (s *Store) AddProject(p models.Project) {
	s.mutate(func() {
		s.projects = slices.DeleteFunc(s.projects, func(x models.Project) bool { return x.ID == p.ID })
		s.projects = slices.Insert(s.projects, 0, p.Clone())
	})
}

// UpdateProject replaces the entry with p's id in place, and the current
// project too when it has the same id. Unknown ids leave the list as is.
func (s *Store) UpdateProject(p models.Project) {
	s.mutate(func() {
		for i := range s.projects {
			if s.projects[i].ID == p.ID {
				s.projects[i] = p.Clone()
			}
		}
		if s.current != nil && s.current.ID == p.ID {
			c := p.Clone()
			s.current = &c
		}
	})
}

// RemoveProject deletes the entry with id and clears the current project
// when it matches.
func (s *Store) RemoveProject(id int64) {
	s.mutate(func() {
		s.projects = slices.DeleteFunc(s.projects, func(x models.Project) bool { return x.ID == id })
		if s.current != nil && s.current.ID == id {
			s.current = nil
		}
	})
}

func (s *Store) SetSearchQuery(q string) {
	s.mutate(func() { s.searchQuery = q })
}

func (s *Store) SetLoading(v bool) {
	s.mutate(func() { s.loading = v })
}

// SetError records msg as the current error; an empty msg clears it.
func (s *Store) SetError(msg string) {
	s.mutate(func() { s.err = msg })
}

func (s *Store) ClearError() {
	s.SetError("")
}

// Clear drops everything the store holds.
func (s *Store) Clear() {
	s.mutate(func() {
		s.projects = nil
		s.current = nil
		s.pagination = nil
		s.searchQuery = ""
		s.loading = false
		s.err = ""
	})
}

func (s *Store) Projects() []models.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneProjects(s.projects)
}

func (s *Store) Current() (models.Project, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return models.Project{}, false
	}
	return s.current.Clone(), true
}

func (s *Store) Pagination() (models.Pagination, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.pagination == nil {
		return models.Pagination{}, false
	}
	return *s.pagination, true
}

func (s *Store) SearchQuery() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.searchQuery
}

func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *Store) Error() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// Filtered returns the projects of the current page matching the search text.
func (s *Store) Filtered() []models.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Filter(s.projects, s.searchQuery)
}

// ShowPagination reports whether page navigation should be offered: there is
// more than one page and no search is active.
func (s *Store) ShowPagination() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pagination != nil && s.pagination.TotalPages > 1 && s.searchQuery == ""
}

func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *Store) Subscribe(fn Listener) func() {
	s.lmu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.lmu.Unlock()

	return func() {
		s.lmu.Lock()
		delete(s.listeners, id)
		s.lmu.Unlock()
	}
}

func (s *Store) snapshotLocked() State {
	st := State{
		Projects:    cloneProjects(s.projects),
		SearchQuery: s.searchQuery,
		Loading:     s.loading,
		Error:       s.err,
	}
	if s.current != nil {
		c := s.current.Clone()
		st.Current = &c
	}
	if s.pagination != nil {
		p := *s.pagination
		st.Pagination = &p
	}
	return st
}

// mutate applies fn under the write lock and notifies listeners afterwards.
func (s *Store) mutate(fn func()) {
	s.mu.Lock()
	fn()
	st := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(st)
}

func (s *Store) notify(st State) {
	s.lmu.Lock()
	if len(s.listeners) == 0 {
		s.lmu.Unlock()
		return
	}
	fns := make([]Listener, 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.lmu.Unlock()

	for _, fn := range fns {
		fn(st)
	}
}

func cloneProjects(in []models.Project) []models.Project {
	if in == nil {
		return nil
	}
	out := make([]models.Project, len(in))
	for i := range in {
		out[i] = in[i].Clone()
	}
	return out
}
