package start_registration

import (
	"context"

	"github.com/lobeca/lobeca-web/internal/domain"
)

// LobecaClient интерфейс клиента Lobeca API
type LobecaClient interface {
	Register(ctx context.Context, name, phone string) error
	SendLoginCode(ctx context.Context, phone string) error
}

// RegistrationStore хранилище ожидающих регистраций
type RegistrationStore interface {
	Save(ctx context.Context, p *domain.PendingRegistration) (*domain.PendingRegistration, error)
}

// RateLimiter ограничитель частоты отправки кодов
type RateLimiter interface {
	Allow(key string) bool
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
