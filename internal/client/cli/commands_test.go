package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/dmitrijs2005/showcase/internal/client/actions"
	"github.com/dmitrijs2005/showcase/internal/client/client"
	"github.com/dmitrijs2005/showcase/internal/client/config"
	"github.com/dmitrijs2005/showcase/internal/client/models"
	"github.com/dmitrijs2005/showcase/internal/client/router"
	"github.com/dmitrijs2005/showcase/internal/client/session"
	"github.com/dmitrijs2005/showcase/internal/client/store"
	"github.com/dmitrijs2005/showcase/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuth struct {
	user  models.User
	token string
	err   error
}

func (f *fakeAuth) Login(ctx context.Context, username, password string) (models.User, string, error) {
	if f.err != nil {
		return models.User{}, "", f.err
	}
	return f.user, f.token, nil
}

type fakeProjects struct {
	pages map[int][]models.Project
	pg    func(page int) models.Pagination
	items map[int64]models.Project

	listErr   error
	getErr    error
	createErr error
	updateErr error
	deleteErr error

	listCalls  []int
	created    []models.CreateProjectRequest
	updated    []models.UpdateProjectRequest
	deletedIDs []int64
}

func (f *fakeProjects) List(ctx context.Context, page, pageSize int) ([]models.Project, models.Pagination, error) {
	f.listCalls = append(f.listCalls, page)
	if f.listErr != nil {
		return nil, models.Pagination{}, f.listErr
	}
	var pg models.Pagination
	if f.pg != nil {
		pg = f.pg(page)
	}
	return f.pages[page], pg, nil
}

func (f *fakeProjects) Get(ctx context.Context, id int64) (models.Project, error) {
	if f.getErr != nil {
		return models.Project{}, f.getErr
	}
	p, ok := f.items[id]
	if !ok {
		return models.Project{}, &client.APIError{Status: 404, Message: "Proyecto no encontrado"}
	}
	return p, nil
}

func (f *fakeProjects) Create(ctx context.Context, req models.CreateProjectRequest) (models.Project, error) {
	f.created = append(f.created, req)
	if f.createErr != nil {
		err := f.createErr
		f.createErr = nil
		return models.Project{}, err
	}
	return models.Project{ID: 99, Title: req.Title, Creator: req.Creator, Active: true}, nil
}

func (f *fakeProjects) Update(ctx context.Context, id int64, req models.UpdateProjectRequest) (models.Project, error) {
	f.updated = append(f.updated, req)
	if f.updateErr != nil {
		return models.Project{}, f.updateErr
	}
	p := f.items[id]
	if req.Title != nil {
		p.Title = *req.Title
	}
	return p, nil
}

func (f *fakeProjects) Delete(ctx context.Context, id int64) (string, error) {
	if f.deleteErr != nil {
		return "", f.deleteErr
	}
	f.deletedIDs = append(f.deletedIDs, id)
	return "Proyecto eliminado", nil
}

type cmdFixture struct {
	app      *App
	auth     *fakeAuth
	projects *fakeProjects
	session  *session.Store
	store    *store.Store
	router   *router.Router
	out      *bytes.Buffer
}

func newCmdFixture(t *testing.T, input string) *cmdFixture {
	t.Helper()

	oldTerm := stdinIsTerminal
	stdinIsTerminal = func() bool { return false }
	t.Cleanup(func() { stdinIsTerminal = oldTerm })

	f := &cmdFixture{
		auth: &fakeAuth{user: models.User{ID: 1, Username: "admin"}, token: "tok"},
		projects: &fakeProjects{
			pages: map[int][]models.Project{
				1: {{ID: 1, Title: "React shop"}, {ID: 2, Title: "Go API"}},
				2: {{ID: 3, Title: "Blog"}},
			},
			pg: func(page int) models.Pagination {
				return models.Pagination{Page: page, Limit: 2, Total: 3, TotalPages: 2}
			},
			items: map[int64]models.Project{
				1: {ID: 1, Title: "React shop", Description: "d", Creator: "Ana", Images: []string{"data:image/png;base64,AA==", "data:image/png;base64,AQ=="}},
				2: {ID: 2, Title: "Go API", Description: "d", Creator: "Luis"},
			},
		},
		session: session.NewStore(),
		store:   store.New(),
		out:     &bytes.Buffer{},
	}
	f.router = router.New(f.session)

	acts := actions.New(f.auth, f.projects, f.session, f.store, f.router, logging.Discard(), actions.Options{PageSize: 2})
	r := NewRenderer(f.out, false)
	r.now = func() time.Time { return fixedNow }

	f.app = newApp(&config.Config{APIBaseURL: "http://api.test"}, acts, f.session, f.store, f.router, nil, r, rdr(input), logging.Discard())
	return f
}

func (f *cmdFixture) login() {
	f.session.SetAuth(models.User{ID: 1, Username: "admin"}, "tok")
}

func TestList_LoadsAndPaginates(t *testing.T) {
	f := newCmdFixture(t, "")
	ctx := context.Background()

	require.NoError(t, f.app.List(ctx, nil))
	assert.Contains(t, f.out.String(), "React shop")
	assert.Contains(t, f.out.String(), "Page 1 of 2")

	require.NoError(t, f.app.Prev(ctx))
	assert.Contains(t, f.out.String(), "Already on the first page.")

	require.NoError(t, f.app.Next(ctx))
	assert.Contains(t, f.out.String(), "Blog")
	assert.Equal(t, 2, f.app.page)

	require.NoError(t, f.app.Next(ctx))
	assert.Contains(t, f.out.String(), "Already on the last page.")
	assert.Equal(t, []int{1, 2}, f.projects.listCalls)
}

func TestList_InvalidPage(t *testing.T) {
	f := newCmdFixture(t, "")
	require.Error(t, f.app.List(context.Background(), []string{"zero"}))
	assert.Empty(t, f.projects.listCalls)
}

func TestList_ErrorShowsMessage(t *testing.T) {
	f := newCmdFixture(t, "")
	f.projects.listErr = fmt.Errorf("list: %w", client.ErrUnavailable)

	require.Error(t, f.app.List(context.Background(), nil))
	assert.Contains(t, f.out.String(), "Error: "+actions.MsgConnection)
}

func TestSearch_FiltersLocallyAndHidesPagination(t *testing.T) {
	f := newCmdFixture(t, "")
	ctx := context.Background()
	require.NoError(t, f.app.List(ctx, nil))
	f.out.Reset()

	require.NoError(t, f.app.Search(ctx, []string{"REACT"}))
	out := f.out.String()
	assert.Contains(t, out, "React shop")
	assert.NotContains(t, out, "Go API")
	assert.NotContains(t, out, "Page 1 of 2")
	assert.Len(t, f.projects.listCalls, 1)

	f.out.Reset()
	require.NoError(t, f.app.Search(ctx, nil))
	assert.Contains(t, f.out.String(), "Go API")
	assert.Equal(t, "", f.store.SearchQuery())
}

func TestShowAndImage(t *testing.T) {
	f := newCmdFixture(t, "")
	ctx := context.Background()

	require.Error(t, f.app.Image(ctx, nil))

	require.NoError(t, f.app.Show(ctx, []string{"1"}))
	assert.Equal(t, router.Detail(1), f.router.Current())
	assert.Contains(t, f.out.String(), "Image 1/2")

	f.out.Reset()
	require.NoError(t, f.app.Image(ctx, []string{"next"}))
	assert.Contains(t, f.out.String(), "Image 2/2")

	f.out.Reset()
	require.NoError(t, f.app.Image(ctx, []string{"next"}))
	assert.Contains(t, f.out.String(), "Image 1/2")

	require.Error(t, f.app.Image(ctx, []string{"sideways"}))
}

func TestShow_NotFound(t *testing.T) {
	f := newCmdFixture(t, "")
	require.Error(t, f.app.Show(context.Background(), []string{"42"}))
	assert.Contains(t, f.out.String(), "Error: Proyecto no encontrado")

	require.Error(t, f.app.Show(context.Background(), []string{"x"}))
}

func TestLogin_SuccessOpensAdmin(t *testing.T) {
	f := newCmdFixture(t, "secret\n")
	require.NoError(t, f.app.Login(context.Background(), []string{"admin"}))

	assert.True(t, f.session.IsAuthenticated())
	assert.Equal(t, router.Admin, f.router.Current())
	assert.Contains(t, f.out.String(), "Welcome, admin!")
	assert.Contains(t, f.out.String(), "TITLE")
}

func TestLogin_InvalidCredentials(t *testing.T) {
	f := newCmdFixture(t, "admin\nwrong\n")
	f.auth.err = &client.APIError{Status: 401, Message: "Credenciales inválidas"}

	require.Error(t, f.app.Login(context.Background(), nil))
	assert.False(t, f.session.IsAuthenticated())
	assert.Contains(t, f.out.String(), "Error: "+actions.MsgInvalidCredentials)
	assert.Equal(t, router.Login, f.router.Current())
}

func TestAdmin_RequiresLogin(t *testing.T) {
	f := newCmdFixture(t, "")
	require.ErrorIs(t, f.app.Admin(context.Background()), errLoginRequired)
	assert.Equal(t, router.Login, f.router.Current())
	assert.Empty(t, f.projects.listCalls)
}

func TestAdmin_SessionExpired(t *testing.T) {
	f := newCmdFixture(t, "")
	f.login()
	f.projects.listErr = &client.APIError{Status: 401, SessionExpired: true}

	err := f.app.Admin(context.Background())
	require.ErrorIs(t, err, client.ErrSessionExpired)
	assert.Contains(t, f.out.String(), "Your session has expired")
	assert.NotContains(t, f.out.String(), "Error:")
}

func TestCreate_Success(t *testing.T) {
	stubImages(t)
	in := lines("New one", "About it", "", "Ana", "", "go", "", "")
	f := newCmdFixture(t, in)
	f.login()

	require.NoError(t, f.app.Create(context.Background()))
	require.Len(t, f.projects.created, 1)
	assert.Equal(t, "New one", f.projects.created[0].Title)
	assert.Equal(t, []string{"go"}, f.projects.created[0].Stack)
	assert.Contains(t, f.out.String(), "Project #99 created.")

	items := f.store.Projects()
	require.NotEmpty(t, items)
	assert.Equal(t, int64(99), items[0].ID)
}

func TestCreate_FailureOffersRetry(t *testing.T) {
	stubImages(t)
	form := lines("T", "D", "", "C", "", "", "", "")
	in := form + "y\n" + lines("", "", "", "", "", "", "")
	f := newCmdFixture(t, in)
	f.login()
	f.projects.createErr = &client.APIError{Status: 400, Message: "Título requerido"}

	require.NoError(t, f.app.Create(context.Background()))
	assert.Len(t, f.projects.created, 2)
	assert.Contains(t, f.out.String(), "Error: Título requerido")
	assert.Contains(t, f.out.String(), "created.")
}

func TestCreate_InvalidFormAbandoned(t *testing.T) {
	f := newCmdFixture(t, lines("", "", "", "", "", "", "", "n"))
	f.login()

	require.Error(t, f.app.Create(context.Background()))
	assert.Empty(t, f.projects.created)
	assert.Contains(t, f.out.String(), "title is required")
}

func TestEdit_SendsOnlyChanges(t *testing.T) {
	// title, description, creator, demo, stack, tags, images, active
	f := newCmdFixture(t, lines("Go API v2", "", "", "", "", "", "", ""))
	f.login()

	require.NoError(t, f.app.Edit(context.Background(), []string{"2"}))
	require.Len(t, f.projects.updated, 1)
	req := f.projects.updated[0]
	require.NotNil(t, req.Title)
	assert.Equal(t, "Go API v2", *req.Title)
	assert.Nil(t, req.Description)
	assert.Nil(t, req.Creator)
	assert.Contains(t, f.out.String(), "Project #2 updated.")
}

func TestEdit_NothingChanged(t *testing.T) {
	f := newCmdFixture(t, lines("", "", "", "", "", "", "", ""))
	f.login()

	require.NoError(t, f.app.Edit(context.Background(), []string{"2"}))
	assert.Empty(t, f.projects.updated)
	assert.Contains(t, f.out.String(), "Nothing changed.")
}

func TestDelete(t *testing.T) {
	f := newCmdFixture(t, "n\ny\n")
	f.login()
	ctx := context.Background()
	require.NoError(t, f.app.List(ctx, nil))

	require.NoError(t, f.app.Delete(ctx, []string{"1"}))
	assert.Empty(t, f.projects.deletedIDs)
	assert.Contains(t, f.out.String(), "Cancelled.")

	require.NoError(t, f.app.Delete(ctx, []string{"1"}))
	assert.Equal(t, []int64{1}, f.projects.deletedIDs)
	assert.Contains(t, f.out.String(), "Proyecto eliminado")
	for _, p := range f.store.Projects() {
		assert.NotEqual(t, int64(1), p.ID)
	}
}

func TestDelete_FailureKeepsItem(t *testing.T) {
	f := newCmdFixture(t, "y\n")
	f.login()
	ctx := context.Background()
	require.NoError(t, f.app.List(ctx, nil))
	f.projects.deleteErr = errors.New("boom")

	require.Error(t, f.app.Delete(ctx, []string{"1"}))
	assert.Contains(t, f.out.String(), "Error: "+actions.MsgDeleteProject)
	assert.Len(t, f.store.Projects(), 2)
}

func TestLogout(t *testing.T) {
	f := newCmdFixture(t, "")
	ctx := context.Background()

	require.NoError(t, f.app.Logout(ctx))
	assert.Contains(t, f.out.String(), "You are not logged in.")

	f.login()
	f.router.Navigate(router.Admin)
	require.NoError(t, f.app.Logout(ctx))
	assert.False(t, f.session.IsAuthenticated())
	assert.Equal(t, router.Landing, f.router.Current())
	assert.Contains(t, f.out.String(), "Logged out.")
}

func TestStatusAndPrompt(t *testing.T) {
	f := newCmdFixture(t, "")
	assert.Equal(t, "", f.app.getStatus())

	f.login()
	f.app.setMode(context.Background(), ModeOnline)
	assert.Equal(t, "(admin online)", f.app.getStatus())

	require.NoError(t, f.app.Status(context.Background()))
	out := f.out.String()
	assert.Contains(t, out, "Server: http://api.test (online)")
	assert.Contains(t, out, "Logged in as admin")
	assert.Contains(t, out, "View: /")
}
