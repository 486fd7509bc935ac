// Package actions implements what the CLI views do: call the service façade,
// push results into the session and collection stores, and keep the loading
// and error flags up to date.
package actions

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/showcase/internal/client/models"
	"github.com/dmitrijs2005/showcase/internal/client/router"
	"github.com/dmitrijs2005/showcase/internal/client/services"
	"github.com/dmitrijs2005/showcase/internal/client/session"
	"github.com/dmitrijs2005/showcase/internal/client/store"
	"github.com/dmitrijs2005/showcase/internal/logging"
)

const (
	DefaultPageSize      = 12
	DefaultAdminPageSize = 100
)

// ErrNothingToUpdate is returned by UpdateProject when the request sets no
// field; no call is made.
var ErrNothingToUpdate = errors.New("nothing to update")

type Options struct {
	PageSize      int
	AdminPageSize int
}

type Actions struct {
	auth     services.AuthService
	projects services.ProjectService
	session  *session.Store
	store    *store.Store
	router   *router.Router
	logger   logging.Logger

	pageSize      int
	adminPageSize int
}

func New(
	auth services.AuthService,
	projects services.ProjectService,
	sess *session.Store,
	st *store.Store,
	rt *router.Router,
	logger logging.Logger,
	opts Options,
) *Actions {
	if opts.PageSize <= 0 {
		opts.PageSize = DefaultPageSize
	}
	if opts.AdminPageSize <= 0 {
		opts.AdminPageSize = DefaultAdminPageSize
	}
	return &Actions{
		auth:          auth,
		projects:      projects,
		session:       sess,
		store:         st,
		router:        rt,
		logger:        logger.With("module", "actions"),
		pageSize:      opts.PageSize,
		adminPageSize: opts.AdminPageSize,
	}
}

func (a *Actions) PageSize() int { return a.pageSize }

// LoadPage fetches one page of the public list.
func (a *Actions) LoadPage(ctx context.Context, page int) error {
	if page < 1 {
		page = 1
	}
	return a.loadList(ctx, page, a.pageSize)
}

// LoadAdmin fetches the admin overview, which asks for a single large page.
func (a *Actions) LoadAdmin(ctx context.Context) error {
	return a.loadList(ctx, 1, a.adminPageSize)
}

func (a *Actions) loadList(ctx context.Context, page, limit int) error {
	t := a.store.BeginList()
	a.store.SetLoading(true)
	a.store.ClearError()

	items, pg, err := a.projects.List(ctx, page, limit)
	if !a.store.IsLatestList(t) {
		// a newer list request owns the flags now
		return err
	}
	defer a.store.SetLoading(false)

	if err != nil {
		a.logger.Warn(ctx, "list projects failed", "page", page, "limit", limit, "err", err)
		a.store.SetError(Describe(err, MsgLoadProjects))
		return err
	}
	a.store.ApplyProjects(t, items, pg)
	return nil
}

// OpenProject shows the detail view for id and fetches it.
func (a *Actions) OpenProject(ctx context.Context, id int64) error {
	a.router.Navigate(router.Detail(id))

	t := a.store.BeginDetail()
	a.store.SetLoading(true)
	a.store.ClearError()

	p, err := a.projects.Get(ctx, id)
	if !a.store.IsLatestDetail(t) {
		return err
	}
	defer a.store.SetLoading(false)

	if err != nil {
		a.logger.Warn(ctx, "get project failed", "id", id, "err", err)
		a.store.SetError(Describe(err, MsgLoadProject))
		return err
	}
	a.store.ApplyCurrent(t, &p)
	return nil
}

// LoadForEdit always fetches the full project, since list entries carry only
// the cover image.
func (a *Actions) LoadForEdit(ctx context.Context, id int64) (models.Project, error) {
	a.store.SetLoading(true)
	defer a.store.SetLoading(false)

	p, err := a.projects.Get(ctx, id)
	if err != nil {
		a.store.SetError(Describe(err, MsgLoadProject))
		return models.Project{}, err
	}
	return p, nil
}

// CreateProject creates a project and prepends it to the list. On failure the
// store is left alone so the caller can keep the form open.
func (a *Actions) CreateProject(ctx context.Context, req models.CreateProjectRequest) (models.Project, error) {
	p, err := a.projects.Create(ctx, req)
	if err != nil {
		return models.Project{}, err
	}
	a.store.AddProject(p)
	a.logger.Info(ctx, "project created", "id", p.ID)
	return p, nil
}

// UpdateProject sends the partial update and replaces the project in place.
func (a *Actions) UpdateProject(ctx context.Context, id int64, req models.UpdateProjectRequest) (models.Project, error) {
	if req.Empty() {
		return models.Project{}, ErrNothingToUpdate
	}
	p, err := a.projects.Update(ctx, id, req)
	if err != nil {
		return models.Project{}, err
	}
	a.store.UpdateProject(p)
	a.logger.Info(ctx, "project updated", "id", p.ID)
	return p, nil
}

// DeleteProject deletes id on the server, then locally. It returns the
// server's confirmation message.
func (a *Actions) DeleteProject(ctx context.Context, id int64) (string, error) {
	msg, err := a.projects.Delete(ctx, id)
	if err != nil {
		a.store.SetError(Describe(err, MsgDeleteProject))
		return "", err
	}
	a.store.RemoveProject(id)
	a.logger.Info(ctx, "project deleted", "id", id)
	return msg, nil
}

// Login authenticates and, on success, stores the session and enters the
// admin view. On failure the existing session is not touched.
func (a *Actions) Login(ctx context.Context, username, password string) (models.User, error) {
	u, token, err := a.auth.Login(ctx, username, password)
	if err != nil {
		return models.User{}, err
	}
	a.session.SetAuth(u, token)
	a.router.Navigate(router.Admin)
	a.logger.Info(ctx, "logged in", "username", u.Username)
	return u, nil
}

// Logout ends the session, drops cached projects and returns to the landing
// view.
func (a *Actions) Logout(ctx context.Context) {
	a.session.Logout()
	a.store.Clear()
	a.router.ResetToLanding()
	a.logger.Info(ctx, "logged out")
}
