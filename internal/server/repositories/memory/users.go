// Package memory provides in-process repositories for development runs
// without PostgreSQL and for tests. Data lives as long as the process.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/showcase/internal/common"
	"github.com/dmitrijs2005/showcase/internal/server/models"
)

type UserRepository struct {
	mu     sync.RWMutex
	byName map[string]models.User
	nextID int64
	now    func() time.Time
}

func NewUserRepository() *UserRepository {
	return &UserRepository{byName: map[string]models.User{}, now: time.Now}
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byName[user.Username]; ok {
		return nil, fmt.Errorf("username %q already exists", user.Username)
	}
	r.nextID++
	user.ID = r.nextID
	user.CreatedAt = r.now().UTC()
	r.byName[user.Username] = *user
	return user, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byName[username]
	if !ok {
		return nil, common.ErrNotFound
	}
	return &u, nil
}
