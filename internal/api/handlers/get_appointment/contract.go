package get_appointment

import (
	"context"

	"github.com/lobeca/lobeca-web/internal/domain"
	"github.com/lobeca/lobeca-web/internal/service/appointments/models"
)

type AppointmentService interface {
	Get(ctx context.Context, session *domain.Session, appointmentUUID string) (*models.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
