package complete_registration

import (
	"context"
	"time"

	"github.com/lobeca/lobeca-web/internal/domain"
	"github.com/lobeca/lobeca-web/internal/integrations/lobecaapi"
	"github.com/lobeca/lobeca-web/internal/usecase/confirm_booking"
)

// LobecaClient интерфейс клиента Lobeca API
type LobecaClient interface {
	VerifyCode(ctx context.Context, phone, code string) (*lobecaapi.VerifyCodeResponse, error)
}

// RegistrationStore хранилище ожидающих регистраций
type RegistrationStore interface {
	Get(ctx context.Context, id string) (*domain.PendingRegistration, error)
	Delete(ctx context.Context, id string) error
}

// SessionRepository хранилище сессий
type SessionRepository interface {
	Create(ctx context.Context, s *domain.Session) (*domain.Session, error)
}

// RateLimiter ограничитель частоты проверки кодов
type RateLimiter interface {
	Allow(key string) bool
}

// BookingConfirmer подтверждение записи после регистрации
type BookingConfirmer interface {
	Execute(ctx context.Context, req *confirm_booking.Request) (*confirm_booking.Response, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
