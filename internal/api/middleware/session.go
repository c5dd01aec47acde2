package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/lobeca/lobeca-web/internal/domain"
	sessionRepo "github.com/lobeca/lobeca-web/internal/infra/storage/session"
)

type contextKey string

const sessionKey contextKey = "session"

// SessionRepository хранилище сессий
type SessionRepository interface {
	GetActive(ctx context.Context, id string, now time.Time) (*domain.Session, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// SessionCookie параметры cookie сессии
type SessionCookie struct {
	Name   string
	Secure bool
}

// Set выставляет cookie для сессии
func (c SessionCookie) Set(w http.ResponseWriter, s *domain.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.Name,
		Value:    s.ID,
		Path:     "/",
		Expires:  s.ExpiresAt,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear удаляет cookie сессии
func (c SessionCookie) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ID возвращает идентификатор сессии из cookie, если он похож на UUID
func (c SessionCookie) ID(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(c.Name)
	if err != nil {
		return "", false
	}
	if _, err := uuid.Parse(cookie.Value); err != nil {
		return "", false
	}
	return cookie.Value, true
}

// Session загружает сессию по cookie и кладет ее в контекст запроса.
// Отсутствующая или истекшая сессия дает анонимный запрос; ошибки хранилища не прерывают запрос.
func Session(repo SessionRepository, cookie SessionCookie, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := cookie.ID(r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			s, err := repo.GetActive(r.Context(), id, time.Now())
			if err != nil {
				if errors.Is(err, sessionRepo.ErrSessionNotFound) {
					cookie.Clear(w)
				} else {
					logger.Error("Session middleware - failed to load session: %v", err)
				}
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), s)))
		})
	}
}

// WithSession кладет сессию в контекст
func WithSession(ctx context.Context, s *domain.Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

// GetSession возвращает сессию из контекста; nil для анонимного запроса
func GetSession(ctx context.Context) *domain.Session {
	s, _ := ctx.Value(sessionKey).(*domain.Session)
	return s
}
