package cancel_appointment

import (
	"context"

	"github.com/lobeca/lobeca-web/internal/domain"
)

type AppointmentService interface {
	Cancel(ctx context.Context, session *domain.Session, appointmentUUID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
