package domain

import "time"

// AppointmentStatus статус записи в API
type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "scheduled"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

// Appointment запись клиента к мастеру
type Appointment struct {
	UUID                         string
	WorkerEstablishmentServiceID int64
	WorkerUUID                   string
	CustomerUUID                 *string
	CustomerIdentification       *string // подпись клиента без аккаунта (запись мастером)
	ScheduledAt                  time.Time
	Status                       AppointmentStatus
	ServiceName                  string
	Price                        float64
	CreatedAt                    time.Time
}

// IsUpcoming возвращает true, если запись ещё не прошла, не отменена и не выполнена
func (a *Appointment) IsUpcoming(now time.Time) bool {
	switch a.Status {
	case AppointmentCancelled, AppointmentCompleted:
		return false
	}
	return a.ScheduledAt.After(now)
}

// AppointmentCommand данные для создания или переноса записи
type AppointmentCommand struct {
	WorkerEstablishmentServiceID int64
	CustomerUUID                 *string
	CustomerIdentification       *string
	ScheduledAt                  time.Time
}
