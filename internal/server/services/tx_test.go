package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/showcase/internal/logging"
	"github.com/dmitrijs2005/showcase/internal/server/images"
	"github.com/dmitrijs2005/showcase/internal/server/repositories/repomanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var projectCols = []string{"id", "titulo", "descripcion", "imagenes", "stack", "tags", "creador", "demo_url", "activo", "created_at", "updated_at"}

func newPostgresProjectService(t *testing.T, store images.ObjectStore) (*ProjectService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	return NewProjectService(db, repomanager.NewPostgresRepositoryManager(), images.NewCodec(store), logging.Nop{}), mock
}

func TestProjectService_DeleteCommitsThenRemovesImages(t *testing.T) {
	store := newBlobStore()
	require.NoError(t, store.Put(context.Background(), "projects/2025/01/02/a", "image/png", []byte{1}))

	s, mock := newPostgresProjectService(t, store)
	now := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectQuery(`(?s)^SELECT\s+id,.*FROM\s+projects\s+WHERE\s+id\s*=\s*\$1`).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(projectCols).
			AddRow(int64(3), "T", "D", []byte(`["object:projects/2025/01/02/a"]`), []byte(`[]`), []byte(`[]`), "C", "", true, now, now))
	mock.ExpectExec(`DELETE FROM projects WHERE id = \$1`).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, s.Delete(context.Background(), 3))
	require.NoError(t, mock.ExpectationsWereMet())
	assert.Equal(t, 0, store.len())
}

func TestProjectService_DeleteRollsBackOnError(t *testing.T) {
	store := newBlobStore()
	require.NoError(t, store.Put(context.Background(), "projects/2025/01/02/a", "image/png", []byte{1}))

	s, mock := newPostgresProjectService(t, store)
	now := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT`).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(projectCols).
			AddRow(int64(3), "T", "D", []byte(`["object:projects/2025/01/02/a"]`), []byte(`[]`), []byte(`[]`), "C", "", true, now, now))
	mock.ExpectExec(`DELETE`).WillReturnError(errors.New("conn reset"))
	mock.ExpectRollback()

	err := s.Delete(context.Background(), 3)
	require.ErrorContains(t, err, "conn reset")
	require.NoError(t, mock.ExpectationsWereMet())
	assert.Equal(t, 1, store.len(), "images stay when the row stays")
}
