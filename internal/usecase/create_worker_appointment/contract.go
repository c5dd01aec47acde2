package create_worker_appointment

import (
	"context"
	"time"

	"github.com/lobeca/lobeca-web/internal/domain"
	"github.com/lobeca/lobeca-web/internal/usecase/get_available_slots"
)

// LobecaClient интерфейс клиента Lobeca API
type LobecaClient interface {
	CreateAppointmentByWorker(ctx context.Context, token string, cmd domain.AppointmentCommand) (*domain.Appointment, error)
}

// SlotsProvider источник отфильтрованных слотов
type SlotsProvider interface {
	Execute(ctx context.Context, req *get_available_slots.Request) (*get_available_slots.Response, error)
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
