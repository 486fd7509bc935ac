package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/dmitrijs2005/showcase/internal/common"
	"github.com/dmitrijs2005/showcase/internal/server/models"
)

type ProjectRepository struct {
	mu     sync.RWMutex
	items  map[int64]models.Project
	nextID int64
	now    func() time.Time
}

func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{items: map[int64]models.Project{}, now: time.Now}
}

// sorted returns the projects newest first, matching the SQL ordering.
func (r *ProjectRepository) sorted() []models.Project {
	out := make([]models.Project, 0, len(r.items))
	for _, p := range r.items {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b models.Project) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		switch {
		case a.ID > b.ID:
			return -1
		case a.ID < b.ID:
			return 1
		}
		return 0
	})
	return out
}

func (r *ProjectRepository) List(ctx context.Context, offset, limit int) ([]models.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := r.sorted()
	items := []models.Project{}
	if offset >= len(all) {
		return items, nil
	}
	end := min(offset+limit, len(all))
	for _, p := range all[offset:end] {
		items = append(items, p.Clone())
	}
	return items, nil
}

func (r *ProjectRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items), nil
}

func (r *ProjectRepository) Get(ctx context.Context, id int64) (*models.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.items[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	c := p.Clone()
	return &c, nil
}

func (r *ProjectRepository) Create(ctx context.Context, p *models.Project) (*models.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	now := r.now().UTC()
	p.ID = r.nextID
	p.CreatedAt = now
	p.UpdatedAt = now
	r.items[p.ID] = normalize(p.Clone())
	return p, nil
}

func (r *ProjectRepository) Update(ctx context.Context, p *models.Project) (*models.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	old, ok := r.items[p.ID]
	if !ok {
		return nil, common.ErrNotFound
	}
	p.CreatedAt = old.CreatedAt
	p.UpdatedAt = r.now().UTC()
	r.items[p.ID] = normalize(p.Clone())
	return p, nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return common.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func normalize(p models.Project) models.Project {
	for _, l := range []*[]string{&p.Images, &p.Stack, &p.Tags} {
		if *l == nil {
			*l = []string{}
		}
	}
	return p
}
