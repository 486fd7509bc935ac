package projects

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/showcase/internal/common"
	"github.com/dmitrijs2005/showcase/internal/dbx"
	"github.com/dmitrijs2005/showcase/internal/server/models"
)

const projectColumns = `id, titulo, descripcion, imagenes, stack, tags, creador, demo_url, activo, created_at, updated_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (*models.Project, error) {
	var (
		p                   models.Project
		images, stack, tags []byte
	)
	err := row.Scan(&p.ID, &p.Title, &p.Description, &images, &stack, &tags,
		&p.Creator, &p.DemoURL, &p.Active, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}

	for _, f := range []struct {
		raw []byte
		dst *[]string
	}{{images, &p.Images}, {stack, &p.Stack}, {tags, &p.Tags}} {
		if err := decodeList(f.raw, f.dst); err != nil {
			return nil, err
		}
	}
	return &p, nil
}

func decodeList(raw []byte, dst *[]string) error {
	*dst = []string{}
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode list: %w", err)
	}
	if *dst == nil {
		*dst = []string{}
	}
	return nil
}

func encodeList(v []string) (string, error) {
	if v == nil {
		v = []string{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func encodeLists(p *models.Project) (images, stack, tags string, err error) {
	if images, err = encodeList(p.Images); err != nil {
		return
	}
	if stack, err = encodeList(p.Stack); err != nil {
		return
	}
	tags, err = encodeList(p.Tags)
	return
}

func (r *PostgresRepository) List(ctx context.Context, offset, limit int) ([]models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects
		 ORDER BY created_at DESC, id DESC
		 LIMIT $1 OFFSET $2
		 `

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	items := []models.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		items = append(items, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return items, nil
}

func (r *PostgresRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM projects`).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id int64) (*models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects
		 WHERE id = $1
		 `

	p, err := scanProject(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}

func (r *PostgresRepository) Create(ctx context.Context, p *models.Project) (*models.Project, error) {
	images, stack, tags, err := encodeLists(p)
	if err != nil {
		return nil, err
	}

	query :=
		`INSERT INTO projects (titulo, descripcion, imagenes, stack, tags, creador, demo_url, activo)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at, updated_at
		 `

	err = r.db.QueryRowContext(ctx, query,
		p.Title, p.Description, images, stack, tags, p.Creator, p.DemoURL, p.Active,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}

func (r *PostgresRepository) Update(ctx context.Context, p *models.Project) (*models.Project, error) {
	images, stack, tags, err := encodeLists(p)
	if err != nil {
		return nil, err
	}

	query :=
		`UPDATE projects
		 SET titulo = $1, descripcion = $2, imagenes = $3, stack = $4, tags = $5,
		     creador = $6, demo_url = $7, activo = $8, updated_at = now()
		 WHERE id = $9
		 RETURNING created_at, updated_at
		 `

	err = r.db.QueryRowContext(ctx, query,
		p.Title, p.Description, images, stack, tags, p.Creator, p.DemoURL, p.Active, p.ID,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}
