package appointments

import (
	"context"
	"time"

	"github.com/lobeca/lobeca-web/internal/domain"
)

// LobecaClient интерфейс клиента Lobeca API
type LobecaClient interface {
	GetUserAppointments(ctx context.Context, token string) ([]*domain.Appointment, error)
	GetAppointment(ctx context.Context, token, appointmentUUID string) (*domain.Appointment, error)
	DeleteAppointment(ctx context.Context, token, appointmentUUID string) error
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

type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time { return time.Now() }
