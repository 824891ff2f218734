package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"baby-tracker/internal/domain/babies"
)

func setupBabiesRepo(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *BabiesRepo) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	return db, mock, NewBabiesRepo(db)
}

func TestBabiesRepo_Create_ReturnsGeneratedID(t *testing.T) {
	db, mock, repo := setupBabiesRepo(t)
	defer db.Close()

	createdAt := time.Date(2026, 1, 10, 8, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`INSERT INTO babies`).
		WithArgs("user-1", "Luna", "girl", sql.NullTime{}, createdAt).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	b, err := repo.Create(context.Background(), babies.Baby{
		UserID:    "user-1",
		Name:      "Luna",
		Gender:    "girl",
		CreatedAt: createdAt,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), b.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBabiesRepo_GetByID(t *testing.T) {
	db, mock, repo := setupBabiesRepo(t)
	defer db.Close()

	bd := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2026, 1, 10, 8, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "user_id", "name", "gender", "birth_date", "created_at"}).
		AddRow(int64(7), "user-1", "Luna", "girl", bd, createdAt)

	mock.ExpectQuery(`SELECT id, user_id, name, gender, birth_date, created_at`).
		WithArgs(int64(7)).
		WillReturnRows(rows)

	b, err := repo.GetByID(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, "Luna", b.Name)
	assert.Equal(t, babies.Gender("girl"), b.Gender)
	require.NotNil(t, b.BirthDate)
	assert.True(t, b.BirthDate.Equal(bd))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBabiesRepo_GetByID_NotFound(t *testing.T) {
	db, mock, repo := setupBabiesRepo(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, user_id, name, gender, birth_date, created_at`).
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 99)

	assert.ErrorIs(t, err, babies.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBabiesRepo_Update_NotFound(t *testing.T) {
	db, mock, repo := setupBabiesRepo(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE babies`).
		WithArgs(int64(99), "Luna", "girl", sql.NullTime{}).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), babies.Baby{
		ID:     99,
		Name:   "Luna",
		Gender: "girl",
	})

	assert.ErrorIs(t, err, babies.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBabiesRepo_Delete_CascadesInOneTx(t *testing.T) {
	db, mock, repo := setupBabiesRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	for _, table := range []string{"feedings", "sleep_logs", "diaper_logs", "growth_logs", "memories"} {
		mock.ExpectExec(`DELETE FROM ` + table).
			WithArgs(int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 2))
	}
	mock.ExpectExec(`DELETE FROM babies`).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Delete(context.Background(), 7)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBabiesRepo_Delete_RollsBackOnError(t *testing.T) {
	db, mock, repo := setupBabiesRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM feedings`).
		WithArgs(int64(7)).
		WillReturnError(sql.ErrConnDone)
	mock.ExpectRollback()

	err := repo.Delete(context.Background(), 7)

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
