package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/showcase/internal/client/client"
	"github.com/dmitrijs2005/showcase/internal/client/models"
)

// ProjectService wraps the project endpoints.
type ProjectService interface {
	List(ctx context.Context, page, pageSize int) ([]models.Project, models.Pagination, error)
	Get(ctx context.Context, id int64) (models.Project, error)
	Create(ctx context.Context, req models.CreateProjectRequest) (models.Project, error)
	// Update sends only the fields set in req; the server leaves the rest as is.
	Update(ctx context.Context, id int64, req models.UpdateProjectRequest) (models.Project, error)
	// Delete returns the server's confirmation message.
	Delete(ctx context.Context, id int64) (string, error)
}

type projectService struct {
	client client.Client
}

func NewProjectService(c client.Client) ProjectService {
	return &projectService{client: c}
}

func (s *projectService) List(ctx context.Context, page, pageSize int) ([]models.Project, models.Pagination, error) {
	resp, err := s.client.ListProjects(ctx, page, pageSize)
	if err != nil {
		return nil, models.Pagination{}, fmt.Errorf("list projects: %w", err)
	}
	items := resp.Projects
	if items == nil {
		items = []models.Project{}
	}
	return items, resp.Pagination, nil
}

func (s *projectService) Get(ctx context.Context, id int64) (models.Project, error) {
	resp, err := s.client.GetProject(ctx, id)
	if err != nil {
		return models.Project{}, fmt.Errorf("get project %d: %w", id, err)
	}
	return resp.Project, nil
}

func (s *projectService) Create(ctx context.Context, req models.CreateProjectRequest) (models.Project, error) {
	resp, err := s.client.CreateProject(ctx, req)
	if err != nil {
		return models.Project{}, fmt.Errorf("create project: %w", err)
	}
	return resp.Project, nil
}

func (s *projectService) Update(ctx context.Context, id int64, req models.UpdateProjectRequest) (models.Project, error) {
	resp, err := s.client.UpdateProject(ctx, id, req)
	if err != nil {
		return models.Project{}, fmt.Errorf("update project %d: %w", id, err)
	}
	return resp.Project, nil
}

func (s *projectService) Delete(ctx context.Context, id int64) (string, error) {
	resp, err := s.client.DeleteProject(ctx, id)
	if err != nil {
		return "", fmt.Errorf("delete project %d: %w", id, err)
	}
	return resp.Message, nil
}
