package create_worker_appointment

import (
	"context"

	createWorkerAppointment "github.com/lobeca/lobeca-web/internal/usecase/create_worker_appointment"
)

type CreateWorkerAppointmentUseCase interface {
	Execute(ctx context.Context, req *createWorkerAppointment.Request) (*createWorkerAppointment.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
