package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/lobeca/lobeca-web/internal/domain"
	"github.com/lobeca/lobeca-web/pkg/psqlbuilder"
)

const table = "sessions"

var columns = []string{
	"id",
	"user_uuid",
	"name",
	"phone",
	"role",
	"access_token",
	"expires_at",
	"created_at",
}

// Repository репозиторий сессий браузера
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория сессий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет сессию. Если ID не задан, генерируется UUID.
func (r *Repository) Create(ctx context.Context, s *domain.Session) (*domain.Session, error) {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns(columns...).
		Values(
			s.ID,
			s.UserUUID,
			s.Name,
			s.Phone,
			string(s.Role),
			s.AccessToken,
			s.ExpiresAt,
			s.CreatedAt,
		).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return s, nil
}

// GetActive получает сессию, срок действия которой не истек на момент now
func (r *Repository) GetActive(ctx context.Context, id string, now time.Time) (*domain.Session, error) {
	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Gt{"expires_at": now}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActive - build select query: %v", ErrBuildQuery, err)
	}

	var (
		s    domain.Session
		role string
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.UserUUID,
		&s.Name,
		&s.Phone,
		&role,
		&s.AccessToken,
		&s.ExpiresAt,
		&s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("%w: GetActive - scan: %v", ErrScanRow, err)
	}
	s.Role = domain.Role(role)

	return &s, nil
}

// Delete удаляет сессию (выход). Отсутствие сессии не считается ошибкой.
func (r *Repository) Delete(ctx context.Context, id string) error {
	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}
