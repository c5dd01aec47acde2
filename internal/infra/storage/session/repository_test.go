package session

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lobeca/lobeca-web/internal/domain"
)

var sessionColumns = []string{"id", "user_uuid", "name", "phone", "role", "access_token", "expires_at", "created_at"}

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	expires := time.Date(2025, 4, 10, 12, 0, 0, 0, time.UTC)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO sessions (id,user_uuid,name,phone,role,access_token,expires_at,created_at) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)")).
		WithArgs(sqlmock.AnyArg(), "u-1", "Maria", "+5511987654321", "customer", "token", expires, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewRepository(db)
	s, err := repo.Create(context.Background(), &domain.Session{
		UserUUID:    "u-1",
		Name:        "Maria",
		Phone:       "+5511987654321",
		Role:        domain.RoleCustomer,
		AccessToken: "token",
		ExpiresAt:   expires,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, s.ID)
	assert.False(t, s.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetActive(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	expires := now.Add(time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, user_uuid, name, phone, role, access_token, expires_at, created_at FROM sessions WHERE id = $1 AND expires_at > $2")).
		WithArgs("s-1", now).
		WillReturnRows(sqlmock.NewRows(sessionColumns).
			AddRow("s-1", "u-1", "Carlos", "+5511912345678", "worker", "token", expires, now))

	repo := NewRepository(db)
	s, err := repo.GetActive(context.Background(), "s-1", now)
	require.NoError(t, err)

	assert.Equal(t, "u-1", s.UserUUID)
	assert.Equal(t, domain.RoleWorker, s.Role)
	assert.True(t, s.CanBookForCustomers())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetActive_ExpiredIsNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT (.+) FROM sessions WHERE id = \\$1 AND expires_at > \\$2").
		WithArgs("s-1", now).
		WillReturnRows(sqlmock.NewRows(sessionColumns))

	repo := NewRepository(db)
	_, err = repo.GetActive(context.Background(), "s-1", now)

	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM sessions WHERE id = $1")).
		WithArgs("s-1").
		WillReturnError(errors.New("connection reset"))

	repo := NewRepository(db)
	err = repo.Delete(context.Background(), "s-1")

	assert.ErrorIs(t, err, ErrExecQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}
