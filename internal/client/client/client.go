package client

import (
	"context"

	"github.com/dmitrijs2005/showcase/internal/client/models"
)

// Client is the typed contract with the showcase API. Every method performs
// exactly one HTTP call; nothing is retried, cached or deduplicated.
type Client interface {
	Login(ctx context.Context, username, password string) (*models.LoginResponse, error)
	ListProjects(ctx context.Context, page, limit int) (*models.ListProjectsResponse, error)
	GetProject(ctx context.Context, id int64) (*models.ProjectResponse, error)
	CreateProject(ctx context.Context, req models.CreateProjectRequest) (*models.ProjectResponse, error)
	UpdateProject(ctx context.Context, id int64, req models.UpdateProjectRequest) (*models.ProjectResponse, error)
	DeleteProject(ctx context.Context, id int64) (*models.MessageResponse, error)
}

// SessionContext is the slice of the session store the adapter needs: the
// current token for outbound requests and a way to drop the session when the
// server rejects it. It is read on every request and never cached.
type SessionContext interface {
	Token() string
	Logout()
}

// Navigator lets the adapter reset the application after a rejected
// credential without knowing anything about views.
type Navigator interface {
	// OnLoginView reports whether the user is currently on the login view,
	// where a 401 is an ordinary "wrong credentials" answer.
	OnLoginView() bool
	// ResetToLanding moves the application to its unauthenticated landing view.
	ResetToLanding()
}
