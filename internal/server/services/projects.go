package services

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/dmitrijs2005/showcase/internal/common"
	"github.com/dmitrijs2005/showcase/internal/dbx"
	"github.com/dmitrijs2005/showcase/internal/logging"
	"github.com/dmitrijs2005/showcase/internal/server/images"
	"github.com/dmitrijs2005/showcase/internal/server/models"
	"github.com/dmitrijs2005/showcase/internal/server/repositories/projects"
	"github.com/dmitrijs2005/showcase/internal/server/repositories/repomanager"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100

	// MaxPage keeps (page-1)*limit within int range.
	MaxPage = math.MaxInt / MaxLimit
)

type ProjectService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	images      *images.Codec
	logger      logging.Logger
}

// NewProjectService builds the service. db may be nil when the manager keeps
// data in memory; work then runs without a transaction.
func NewProjectService(db *sql.DB, m repomanager.RepositoryManager, codec *images.Codec, logger logging.Logger) *ProjectService {
	if codec == nil {
		codec = images.NewCodec(nil)
	}
	return &ProjectService{
		db:          db,
		repomanager: m,
		images:      codec,
		logger:      logger.With("module", "projects"),
	}
}

func (s *ProjectService) repo() projects.Repository {
	return s.repomanager.Projects(s.db)
}

func (s *ProjectService) withTx(ctx context.Context, fn func(ctx context.Context, repo projects.Repository) error) error {
	if s.db == nil {
		return fn(ctx, s.repo())
	}
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return fn(ctx, s.repomanager.Projects(tx))
	})
}

func inTx[T any](ctx context.Context, s *ProjectService, fn func(ctx context.Context, repo projects.Repository) (T, error)) (T, error) {
	if s.db == nil {
		return fn(ctx, s.repo())
	}
	return dbx.InTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) (T, error) {
		return fn(ctx, s.repomanager.Projects(tx))
	})
}

// NormalizePage applies the paging defaults: page 1, limit 10, at most 100.
// Pages past MaxPage are clamped to it and come back empty.
func NormalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	page = min(page, MaxPage)
	if limit < 1 {
		limit = DefaultLimit
	}
	return page, min(limit, MaxLimit)
}

// List returns one page, newest first. Each entry carries only its cover
// image.
func (s *ProjectService) List(ctx context.Context, page, limit int) ([]models.Project, models.Pagination, error) {
	page, limit = NormalizePage(page, limit)
	repo := s.repo()

	total, err := repo.Count(ctx)
	if err != nil {
		return nil, models.Pagination{}, fmt.Errorf("error counting projects: %w", err)
	}

	items, err := repo.List(ctx, (page-1)*limit, limit)
	if err != nil {
		return nil, models.Pagination{}, fmt.Errorf("error listing projects: %w", err)
	}

	for i := range items {
		if len(items[i].Images) > 1 {
			items[i].Images = items[i].Images[:1]
		}
		if err := s.inline(ctx, &items[i]); err != nil {
			return nil, models.Pagination{}, err
		}
	}

	pg := models.Pagination{
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: (total + limit - 1) / limit,
	}
	return items, pg, nil
}

func (s *ProjectService) Get(ctx context.Context, id int64) (*models.Project, error) {
	p, err := s.repo().Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error getting project %d: %w", id, err)
	}
	if err := s.inline(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProjectService) Create(ctx context.Context, req models.CreateProjectRequest) (*models.Project, error) {
	p := &models.Project{
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Images:      nonNil(req.Images),
		Stack:       cleanList(req.Stack),
		Tags:        cleanList(req.Tags),
		Creator:     strings.TrimSpace(req.Creator),
		DemoURL:     strings.TrimSpace(req.DemoURL),
		Active:      true,
	}
	if req.Active != nil {
		p.Active = *req.Active
	}

	if err := validateRequired(p.Title, p.Description, p.Creator); err != nil {
		return nil, err
	}
	if err := images.Validate(p.Images); err != nil {
		return nil, err
	}

	inline := p.Images
	refs, err := s.images.Externalize(ctx, inline)
	if err != nil {
		return nil, err
	}
	p.Images = refs

	created, err := s.repo().Create(ctx, p)
	if err != nil {
		s.removeImages(ctx, refs)
		return nil, fmt.Errorf("error creating project: %w", err)
	}

	created.Images = inline
	return created, nil
}

// Update applies patch to project id. Fields left nil keep their value; the
// repository moves updated_at forward.
func (s *ProjectService) Update(ctx context.Context, id int64, patch models.ProjectPatch) (*models.Project, error) {
	if err := validatePatch(&patch); err != nil {
		return nil, err
	}

	var (
		out       *models.Project
		oldImages []string
		newRefs   []string
	)

	err := s.withTx(ctx, func(ctx context.Context, repo projects.Repository) error {
		p, err := repo.Get(ctx, id)
		if err != nil {
			return err
		}

		if patch.Images != nil {
			oldImages = p.Images
			newRefs, err = s.images.Externalize(ctx, *patch.Images)
			if err != nil {
				return err
			}
			patch.Images = &newRefs
		}

		patch.Apply(p)
		out, err = repo.Update(ctx, p)
		return err
	})
	if err != nil {
		s.removeImages(ctx, unused(newRefs, oldImages))
		return nil, fmt.Errorf("error updating project %d: %w", id, err)
	}

	s.removeImages(ctx, unused(oldImages, newRefs))

	if err := s.inline(ctx, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *ProjectService) Delete(ctx context.Context, id int64) error {
	refs, err := inTx(ctx, s, func(ctx context.Context, repo projects.Repository) ([]string, error) {
		p, err := repo.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		return p.Images, repo.Delete(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("error deleting project %d: %w", id, err)
	}

	s.removeImages(ctx, refs)
	return nil
}

func (s *ProjectService) inline(ctx context.Context, p *models.Project) error {
	imgs, err := s.images.Inline(ctx, p.Images)
	if err != nil {
		return fmt.Errorf("error loading images of project %d: %w", p.ID, err)
	}
	p.Images = imgs
	return nil
}

func (s *ProjectService) removeImages(ctx context.Context, refs []string) {
	if len(refs) == 0 {
		return
	}
	if err := s.images.Remove(ctx, refs); err != nil {
		s.logger.Warn(ctx, "could not remove stored images", "err", err)
	}
}

func validateRequired(title, description, creator string) error {
	switch {
	case title == "":
		return common.Invalid("El título es requerido")
	case description == "":
		return common.Invalid("La descripción es requerida")
	case creator == "":
		return common.Invalid("El creador es requerido")
	}
	return nil
}

// validatePatch trims the text fields in place and rejects blanking out a
// required one.
func validatePatch(patch *models.ProjectPatch) error {
	trim := func(p *string) *string {
		if p == nil {
			return nil
		}
		v := strings.TrimSpace(*p)
		return &v
	}
	patch.Title = trim(patch.Title)
	patch.Description = trim(patch.Description)
	patch.Creator = trim(patch.Creator)
	patch.DemoURL = trim(patch.DemoURL)

	for _, f := range []struct {
		v   *string
		msg string
	}{
		{patch.Title, "El título no puede estar vacío"},
		{patch.Description, "La descripción no puede estar vacía"},
		{patch.Creator, "El creador no puede estar vacío"},
	} {
		if f.v != nil && *f.v == "" {
			return common.Invalid("%s", f.msg)
		}
	}

	if patch.Images != nil {
		imgs := nonNil(*patch.Images)
		if err := images.Validate(imgs); err != nil {
			return err
		}
		patch.Images = &imgs
	}
	if patch.Stack != nil {
		v := cleanList(*patch.Stack)
		patch.Stack = &v
	}
	if patch.Tags != nil {
		v := cleanList(*patch.Tags)
		patch.Tags = &v
	}
	return nil
}

// cleanList trims entries and drops blanks and duplicates, keeping order.
func cleanList(in []string) []string {
	out := []string{}
	for _, v := range in {
		v = strings.TrimSpace(v)
		if v != "" && !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}

// unused returns the entries of a that are not in b.
func unused(a, b []string) []string {
	var out []string
	for _, v := range a {
		if !slices.Contains(b, v) {
			out = append(out, v)
		}
	}
	return out
}
