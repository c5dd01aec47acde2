package create_worker_appointment

import (
	"fmt"

	"github.com/lobeca/lobeca-web/internal/domain"
	createWorkerAppointment "github.com/lobeca/lobeca-web/internal/usecase/create_worker_appointment"
	"github.com/lobeca/lobeca-web/pkg/types"
)

// CreateWorkerAppointmentRequest HTTP request model
type CreateWorkerAppointmentRequest struct {
	WorkerUUID             string `json:"workerUUID,omitempty"` // по умолчанию - пользователь сессии
	ServiceID              int64  `json:"serviceID"`
	Date                   string `json:"date"` // "2025-03-10"
	Time                   string `json:"time"` // "14:30"
	CustomerIdentification string `json:"customerIdentification"`
}

// ToUseCaseRequest конвертирует HTTP request в запрос use case
func (r *CreateWorkerAppointmentRequest) ToUseCaseRequest(session *domain.Session) (*createWorkerAppointment.Request, error) {
	t, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, fmt.Errorf("invalid time %q: %w", r.Time, err)
	}

	return &createWorkerAppointment.Request{
		Session:                session,
		WorkerUUID:             r.WorkerUUID,
		ServiceID:              r.ServiceID,
		Date:                   r.Date,
		Time:                   t,
		CustomerIdentification: r.CustomerIdentification,
	}, nil
}
