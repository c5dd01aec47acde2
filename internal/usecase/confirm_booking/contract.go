package confirm_booking

import (
	"context"
	"time"

	"github.com/lobeca/lobeca-web/internal/domain"
)

// LobecaClient интерфейс клиента Lobeca API
type LobecaClient interface {
	GetWorker(ctx context.Context, workerUUID string) (*domain.Worker, error)
	GetAppointment(ctx context.Context, token, appointmentUUID string) (*domain.Appointment, error)
	CreateAppointment(ctx context.Context, token string, cmd domain.AppointmentCommand) (*domain.Appointment, error)
	UpdateAppointment(ctx context.Context, token, appointmentUUID string, cmd domain.AppointmentCommand) (*domain.Appointment, error)
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
