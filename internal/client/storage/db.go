// Package storage opens the client's local SQLite database and wires its
// repositories.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/showcase/internal/client/migrations"
	"github.com/dmitrijs2005/showcase/internal/client/repositories/sessions"
	"github.com/dmitrijs2005/showcase/internal/filex"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

var gooseUpContext = goose.UpContext

type Repositories struct {
	DB       *sql.DB
	Sessions sessions.Repository
}

func (r *Repositories) Close() error {
	return r.DB.Close()
}

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return gooseUpContext(ctx, db, ".")
}

// Open creates the database file if needed, migrates it and returns the
// repositories backed by it.
func Open(ctx context.Context, path string) (*Repositories, error) {
	if path != ":memory:" {
		if err := filex.EnsureParentDir(path); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate %s: %w", path, err)
	}

	return &Repositories{
		DB:       db,
		Sessions: sessions.NewSQLiteRepository(db),
	}, nil
}
