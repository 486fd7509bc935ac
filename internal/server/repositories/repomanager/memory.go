package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/showcase/internal/dbx"
	"github.com/dmitrijs2005/showcase/internal/server/repositories/memory"
	"github.com/dmitrijs2005/showcase/internal/server/repositories/projects"
	"github.com/dmitrijs2005/showcase/internal/server/repositories/users"
)

// MemoryRepositoryManager hands out the same in-memory repositories whatever
// handle it is given; there is nothing to migrate.
type MemoryRepositoryManager struct {
	users    *memory.UserRepository
	projects *memory.ProjectRepository
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{
		users:    memory.NewUserRepository(),
		projects: memory.NewProjectRepository(),
	}
}

func (m *MemoryRepositoryManager) RunMigrations(context.Context, *sql.DB) error { return nil }

func (m *MemoryRepositoryManager) Users(dbx.DBTX) users.Repository { return m.users }

func (m *MemoryRepositoryManager) Projects(dbx.DBTX) projects.Repository { return m.projects }
