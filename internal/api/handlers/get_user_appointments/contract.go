package get_user_appointments

import (
	"context"

	"github.com/lobeca/lobeca-web/internal/domain"
	"github.com/lobeca/lobeca-web/internal/service/appointments/models"
)

type AppointmentService interface {
	List(ctx context.Context, session *domain.Session) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
