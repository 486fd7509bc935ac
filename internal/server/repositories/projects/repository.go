package projects

import (
	"context"

	"github.com/dmitrijs2005/showcase/internal/server/models"
)

// Repository stores projects newest first. Get, Update and Delete return
// common.ErrNotFound for unknown ids. Create and Update assign the
// timestamps.
type Repository interface {
	List(ctx context.Context, offset, limit int) ([]models.Project, error)
	Count(ctx context.Context) (int, error)
	Get(ctx context.Context, id int64) (*models.Project, error)
	Create(ctx context.Context, p *models.Project) (*models.Project, error)
	Update(ctx context.Context, p *models.Project) (*models.Project, error)
	Delete(ctx context.Context, id int64) error
}
