package services

import (
	"context"

	"github.com/dmitrijs2005/showcase/internal/client/models"
)

// fakeClient implements client.Client for unit tests.
type fakeClient struct {
	LoginRet *models.LoginResponse
	LoginErr error

	ListRet *models.ListProjectsResponse
	ListErr error

	GetRet *models.ProjectResponse
	GetErr error

	CreateRet *models.ProjectResponse
	CreateErr error

	UpdateRet *models.ProjectResponse
	UpdateErr error

	DeleteRet *models.MessageResponse
	DeleteErr error

	LastLoginUser string
	LastLoginPass string
	LastPage      int
	LastLimit     int
	LastID        int64
	LastCreate    models.CreateProjectRequest
	LastUpdate    models.UpdateProjectRequest
	Calls         int
}

func (f *fakeClient) Login(ctx context.Context, username, password string) (*models.LoginResponse, error) {
	f.Calls++
	f.LastLoginUser, f.LastLoginPass = username, password
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) ListProjects(ctx context.Context, page, limit int) (*models.ListProjectsResponse, error) {
	f.Calls++
	f.LastPage, f.LastLimit = page, limit
	return f.ListRet, f.ListErr
}

func (f *fakeClient) GetProject(ctx context.Context, id int64) (*models.ProjectResponse, error) {
	f.Calls++
	f.LastID = id
	return f.GetRet, f.GetErr
}

func (f *fakeClient) CreateProject(ctx context.Context, req models.CreateProjectRequest) (*models.ProjectResponse, error) {
	f.Calls++
	f.LastCreate = req
	return f.CreateRet, f.CreateErr
}

func (f *fakeClient) UpdateProject(ctx context.Context, id int64, req models.UpdateProjectRequest) (*models.ProjectResponse, error) {
	f.Calls++
	f.LastID = id
	f.LastUpdate = req
	return f.UpdateRet, f.UpdateErr
}

func (f *fakeClient) DeleteProject(ctx context.Context, id int64) (*models.MessageResponse, error) {
	f.Calls++
	f.LastID = id
	return f.DeleteRet, f.DeleteErr
}
