package kvstore

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/arunika/internal/common"
	"github.com/stretchr/testify/require"
)

func newPostgresWithMock(t *testing.T) (*SQLStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewSQLStore(db, Postgres), mock
}

func TestPostgres_Get(t *testing.T) {
	s, mock := newPostgresWithMock(t)

	mock.ExpectQuery(`^SELECT value FROM kv WHERE key = \$1$`).
		WithArgs(common.KeyBrandName).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow([]byte("Arunika")))

	v, err := s.Get(context.Background(), common.KeyBrandName)
	require.NoError(t, err)
	require.Equal(t, "Arunika", string(v))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_GetMissing(t *testing.T) {
	s, mock := newPostgresWithMock(t)

	mock.ExpectQuery(`^SELECT value FROM kv`).
		WithArgs("absent").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	_, err := s.Get(context.Background(), "absent")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestPostgres_SetUsesUpsert(t *testing.T) {
	s, mock := newPostgresWithMock(t)

	q := `(?s)^INSERT INTO kv \(key, value, updated_at\) VALUES \(\$1, \$2, now\(\)\) ON CONFLICT \(key\) DO UPDATE.*$`
	mock.ExpectExec(q).
		WithArgs(common.KeyView, []byte("admin")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.Set(context.Background(), common.KeyView, []byte("admin")))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_SetManyIsOneTransaction(t *testing.T) {
	s, mock := newPostgresWithMock(t)

	mock.ExpectBegin()
	mock.ExpectExec(`^INSERT INTO kv`).WithArgs(common.KeyActiveCourse, []byte("c1")).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`^INSERT INTO kv`).WithArgs(common.KeyActiveLesson, []byte("l1")).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`^INSERT INTO kv`).WithArgs(common.KeyView, []byte("player")).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := s.SetMany(context.Background(), map[string][]byte{
		common.KeyView:         []byte("player"),
		common.KeyActiveCourse: []byte("c1"),
		common.KeyActiveLesson: []byte("l1"),
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_SetManyRollsBackOnFailure(t *testing.T) {
	s, mock := newPostgresWithMock(t)

	mock.ExpectBegin()
	mock.ExpectExec(`^INSERT INTO kv`).WithArgs(common.KeyActiveCourse, []byte("c1")).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`^INSERT INTO kv`).WithArgs(common.KeyView, []byte("player")).WillReturnError(errors.New("quota exceeded"))
	mock.ExpectRollback()

	err := s.SetMany(context.Background(), map[string][]byte{
		common.KeyView:         []byte("player"),
		common.KeyActiveCourse: []byte("c1"),
	})
	require.Error(t, err)
	require.Regexp(t, regexp.MustCompile(`failed to set kv\[lms_view\]: quota exceeded`), err.Error())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_DeleteAndClear(t *testing.T) {
	s, mock := newPostgresWithMock(t)

	mock.ExpectExec(`^DELETE FROM kv WHERE key = \$1$`).WithArgs(common.KeyShareTokens).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`^DELETE FROM kv$`).WillReturnResult(sqlmock.NewResult(0, 9))

	require.NoError(t, s.Delete(context.Background(), common.KeyShareTokens))
	require.NoError(t, s.Clear(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_List(t *testing.T) {
	s, mock := newPostgresWithMock(t)

	mock.ExpectQuery(`^SELECT key, value FROM kv$`).
		WillReturnRows(sqlmock.NewRows([]string{"key", "value"}).
			AddRow(common.KeyBrandName, []byte("Arunika")).
			AddRow(common.KeyView, []byte("dashboard")))

	m, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, m, 2)
	require.Equal(t, "dashboard", string(m[common.KeyView]))
}

func TestPostgres_ListScanError(t *testing.T) {
	s, mock := newPostgresWithMock(t)

	mock.ExpectQuery(`^SELECT key, value FROM kv$`).
		WillReturnRows(sqlmock.NewRows([]string{"key", "value"}).
			AddRow(common.KeyBrandName, []byte("x")).
			RowError(0, errors.New("broken row")))

	_, err := s.List(context.Background())
	require.Error(t, err)
}
