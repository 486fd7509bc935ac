package users

import (
	"context"

	"github.com/dmitrijs2005/showcase/internal/server/models"
)

// Repository stores API accounts. GetByUsername returns common.ErrNotFound
// for unknown names.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}
