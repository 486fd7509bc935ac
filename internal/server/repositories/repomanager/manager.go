package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/showcase/internal/dbx"
	"github.com/dmitrijs2005/showcase/internal/server/repositories/projects"
	"github.com/dmitrijs2005/showcase/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DB handle (the pool or a
// transaction) and migrates the schema.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Projects(db dbx.DBTX) projects.Repository
}
