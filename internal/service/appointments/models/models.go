package models

import (
	"time"

	"github.com/lobeca/lobeca-web/internal/domain"
)

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	UUID                         string    `json:"uuid"`
	WorkerEstablishmentServiceID int64     `json:"workerEstablishmentServiceID"`
	WorkerUUID                   string    `json:"workerUUID"`
	CustomerUUID                 *string   `json:"customerUUID,omitempty"`
	CustomerIdentification       *string   `json:"customerIdentification,omitempty"`
	Date                         string    `json:"date"`        // "2025-03-10"
	Time                         string    `json:"time"`        // "14:30"
	ScheduledAt                  string    `json:"scheduledAt"` // "2025-03-10T14:30:00"
	Status                       string    `json:"status"`
	ServiceName                  string    `json:"serviceName,omitempty"`
	Price                        float64   `json:"price"`
	CreatedAt                    time.Time `json:"createdAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// FromDomainAppointment конвертирует domain модель в DTO.
// Дата и время выводятся в зоне loc.
func FromDomainAppointment(a *domain.Appointment, loc *time.Location) *AppointmentResponse {
	if a == nil {
		return nil
	}

	at := a.ScheduledAt.In(loc)
	return &AppointmentResponse{
		UUID:                         a.UUID,
		WorkerEstablishmentServiceID: a.WorkerEstablishmentServiceID,
		WorkerUUID:                   a.WorkerUUID,
		CustomerUUID:                 a.CustomerUUID,
		CustomerIdentification:       a.CustomerIdentification,
		Date:                         at.Format(domain.DateFormat),
		Time:                         at.Format(domain.TimeFormat),
		ScheduledAt:                  at.Format(domain.ScheduledAtFormat),
		Status:                       string(a.Status),
		ServiceName:                  a.ServiceName,
		Price:                        a.Price,
		CreatedAt:                    a.CreatedAt,
	}
}

// FromDomainAppointments конвертирует список записей
func FromDomainAppointments(list []*domain.Appointment, loc *time.Location) *AppointmentListResponse {
	resp := &AppointmentListResponse{Appointments: make([]AppointmentResponse, 0, len(list))}
	for _, a := range list {
		resp.Appointments = append(resp.Appointments, *FromDomainAppointment(a, loc))
	}
	return resp
}
