package store

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-school-link/internal/config"
	"github.com/MKhiriev/go-school-link/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestKVRepo(t *testing.T) (*kvRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &kvRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
		now:    func() time.Time { return fixedNow },
	}
	return repo, mock, db
}

func TestKVRepository_Get_Success(t *testing.T) {
	repo, mock, db := newTestKVRepo(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT entry_value FROM kv_entries WHERE entry_key = ?")).
		WithArgs(KeyToken).
		WillReturnRows(sqlmock.NewRows([]string{"entry_value"}).AddRow("tok-1"))

	got, err := repo.Get(context.Background(), KeyToken)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKVRepository_Get_NotFound(t *testing.T) {
	repo, mock, db := newTestKVRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT entry_value FROM kv_entries").
		WithArgs(KeyUser).
		WillReturnRows(sqlmock.NewRows([]string{"entry_value"}))

	_, err := repo.Get(context.Background(), KeyUser)
	assert.ErrorIs(t, err, ErrKeyNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKVRepository_Get_QueryError(t *testing.T) {
	repo, mock, db := newTestKVRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT entry_value FROM kv_entries").
		WithArgs(KeyUser).
		WillReturnError(errors.New("disk I/O error"))

	_, err := repo.Get(context.Background(), KeyUser)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestKVRepository_Set_Upserts(t *testing.T) {
	repo, mock, db := newTestKVRepo(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO kv_entries (entry_key,entry_value,updated_at) VALUES (?,?,?) ON CONFLICT(entry_key) DO UPDATE SET")).
		WithArgs(KeyToken, "tok-2", fixedNow).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.Set(context.Background(), KeyToken, "tok-2"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKVRepository_Set_ExecError(t *testing.T) {
	repo, mock, db := newTestKVRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO kv_entries").
		WillReturnError(errors.New("database is locked"))

	err := repo.Set(context.Background(), KeyToken, "tok")
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestKVRepository_Remove(t *testing.T) {
	repo, mock, db := newTestKVRepo(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM kv_entries WHERE entry_key IN (?,?)")).
		WithArgs(KeyToken, KeyUser).
		WillReturnResult(sqlmock.NewResult(0, 2))

	require.NoError(t, repo.Remove(context.Background(), KeyToken, KeyUser))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKVRepository_Remove_NoKeys(t *testing.T) {
	repo, mock, db := newTestKVRepo(t)
	defer db.Close()

	require.NoError(t, repo.Remove(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKVRepository_SQLiteFile(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "nested", "school-link.db")

	db, err := NewConnectSQLite(ctx, config.ClientDB{DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, db.Migrate())

	repo := NewKeyValueRepository(db, logger.Nop())
	defer repo.Close()

	_, err = repo.Get(ctx, KeyToken)
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, repo.Set(ctx, KeyToken, "a"))
	require.NoError(t, repo.Set(ctx, KeyToken, "b"))
	got, err := repo.Get(ctx, KeyToken)
	require.NoError(t, err)
	assert.Equal(t, "b", got)

	require.NoError(t, repo.Remove(ctx, KeyToken, KeyUser))
	_, err = repo.Get(ctx, KeyToken)
	assert.ErrorIs(t, err, ErrKeyNotFound)
}
