// Package sessions persists the authenticated session between CLI runs.
package sessions

import (
	"context"
	"time"

	"github.com/dmitrijs2005/showcase/internal/client/models"
)

// Record is the persisted pair of user and token. Both are always stored and
// removed together.
type Record struct {
	Token   string
	User    models.User
	SavedAt time.Time
}

type Repository interface {
	// Load returns (nil, nil) when no session is stored.
	Load(ctx context.Context) (*Record, error)
	Save(ctx context.Context, rec Record) error
	Clear(ctx context.Context) error
}
