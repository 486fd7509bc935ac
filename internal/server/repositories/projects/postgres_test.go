package projects

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/showcase/internal/common"
	"github.com/dmitrijs2005/showcase/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgresRepository(db), mock
}

var cols = []string{"id", "titulo", "descripcion", "imagenes", "stack", "tags", "creador", "demo_url", "activo", "created_at", "updated_at"}

func TestList(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Now().UTC()

	rows := sqlmock.NewRows(cols).
		AddRow(int64(2), "B", "db", []byte(`["data:image/png;base64,AA=="]`), []byte(`["go"]`), []byte(`[]`), "Ana", "", true, now, now).
		AddRow(int64(1), "A", "da", []byte(`null`), []byte(`[]`), []byte(`["web"]`), "Luis", "https://a", false, now, now)
	mock.ExpectQuery(`(?s)^SELECT\s+id,.*FROM\s+projects\s+ORDER\s+BY\s+created_at\s+DESC,\s*id\s+DESC\s+LIMIT\s+\$1\s+OFFSET\s+\$2`).
		WithArgs(10, 20).
		WillReturnRows(rows)

	items, err := repo.List(context.Background(), 20, 10)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, int64(2), items[0].ID)
	assert.Equal(t, []string{"go"}, items[0].Stack)
	assert.Equal(t, []string{}, items[1].Images)
	assert.Equal(t, []string{"web"}, items[1].Tags)
	assert.False(t, items[1].Active)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestList_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectQuery(`SELECT`).WillReturnError(errors.New("boom"))

	_, err := repo.List(context.Background(), 0, 10)
	require.Error(t, err)
	assert.Regexp(t, regexp.MustCompile(`db error: .*boom`), err.Error())
}

func TestCount(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectQuery(`(?s)^SELECT\s+COUNT\(\*\)\s+FROM\s+projects$`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	n, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, n)
}

func TestGet(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Now().UTC()
	mock.ExpectQuery(`(?s)^SELECT\s+id,.*FROM\s+projects\s+WHERE\s+id\s*=\s*\$1`).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(int64(5), "T", "D", []byte(`[]`), []byte(`[]`), []byte(`[]`), "C", "", true, now, now))

	p, err := repo.Get(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "T", p.Title)
}

func TestGet_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectQuery(`SELECT`).WithArgs(int64(9)).WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), 9)
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestGet_BadJSON(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Now()
	mock.ExpectQuery(`SELECT`).WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(int64(5), "T", "D", []byte(`{`), []byte(`[]`), []byte(`[]`), "C", "", true, now, now))

	_, err := repo.Get(context.Background(), 5)
	require.Error(t, err)
}

func TestCreate(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Now().UTC()

	mock.ExpectQuery(`(?s)^INSERT\s+INTO\s+projects\s*\(titulo,\s*descripcion,\s*imagenes,\s*stack,\s*tags,\s*creador,\s*demo_url,\s*activo\)\s*VALUES.*RETURNING\s+id,\s*created_at,\s*updated_at`).
		WithArgs("T", "D", `[]`, `["go"]`, `[]`, "C", "", true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(11), now, now))

	p, err := repo.Create(context.Background(), &models.Project{
		Title: "T", Description: "D", Stack: []string{"go"}, Creator: "C", Active: true,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(11), p.ID)
	assert.Equal(t, now, p.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	created := time.Now().Add(-time.Hour).UTC()
	updated := time.Now().UTC()

	mock.ExpectQuery(`(?s)^UPDATE\s+projects\s+SET\s+titulo\s*=\s*\$1.*updated_at\s*=\s*now\(\)\s+WHERE\s+id\s*=\s*\$9\s+RETURNING\s+created_at,\s*updated_at`).
		WithArgs("T2", "D", `[]`, `[]`, `["x"]`, "C", "u", false, int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(created, updated))

	p, err := repo.Update(context.Background(), &models.Project{
		ID: 3, Title: "T2", Description: "D", Tags: []string{"x"}, Creator: "C", DemoURL: "u",
	})
	require.NoError(t, err)
	assert.Equal(t, updated, p.UpdatedAt)
	assert.Equal(t, created, p.CreatedAt)
}

func TestUpdate_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectQuery(`UPDATE`).WillReturnError(sql.ErrNoRows)

	_, err := repo.Update(context.Background(), &models.Project{ID: 3})
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestDelete(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectExec(`(?s)^DELETE\s+FROM\s+projects\s+WHERE\s+id\s*=\s*\$1$`).
		WithArgs(int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Delete(context.Background(), 4))

	mock.ExpectExec(`DELETE`).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	require.ErrorIs(t, repo.Delete(context.Background(), 5), common.ErrNotFound)
}
