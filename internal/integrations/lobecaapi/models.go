package lobecaapi

import (
	"fmt"
	"time"

	"github.com/lobeca/lobeca-web/internal/domain"
	"github.com/lobeca/lobeca-web/pkg/types"
)

// AvailabilityResponse ответ GET /user/availability
type AvailabilityResponse struct {
	WorkingHours   WorkingHoursDTO `json:"workingHours"`
	AvailableSlots []SlotDTO       `json:"availableSlots"`
}

// WorkingHoursDTO рабочие часы мастера на день
type WorkingHoursDTO struct {
	IsActive  bool    `json:"isActive"`
	StartTime *string `json:"startTime,omitempty"`
	EndTime   *string `json:"endTime,omitempty"`
}

// SlotDTO свободный слот
type SlotDTO struct {
	StartTime string `json:"startTime"`
}

// AppointmentRequest тело POST /appointment, POST /appointment/by-worker и PATCH /appointment/:uuid
type AppointmentRequest struct {
	WorkerEstablishmentServiceID int64   `json:"workerEstablishmentServiceID"`
	CustomerUUID                 *string `json:"customerUUID,omitempty"`
	CustomerIdentification       *string `json:"customerIdentification,omitempty"`
	ScheduledAt                  string  `json:"scheduledAt"` // "2025-03-10T14:30:00"
}

// AppointmentDTO запись в ответах API
type AppointmentDTO struct {
	UUID                         string    `json:"uuid"`
	WorkerEstablishmentServiceID int64     `json:"workerEstablishmentServiceID"`
	WorkerUUID                   string    `json:"workerUUID"`
	CustomerUUID                 *string   `json:"customerUUID,omitempty"`
	CustomerIdentification       *string   `json:"customerIdentification,omitempty"`
	ScheduledAt                  string    `json:"scheduledAt"`
	Status                       string    `json:"status"`
	ServiceName                  string    `json:"serviceName"`
	Price                        float64   `json:"price"`
	CreatedAt                    time.Time `json:"createdAt"`
}

// WorkerDTO мастер с услугами
type WorkerDTO struct {
	UUID            string       `json:"uuid"`
	Name            string       `json:"name"`
	EstablishmentID int64        `json:"establishmentID"`
	Services        []ServiceDTO `json:"services"`
}

// ServiceDTO услуга мастера в заведении
type ServiceDTO struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
}

// EstablishmentDTO заведение
type EstablishmentDTO struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	PlanID  *int64 `json:"planID,omitempty"`
}

// PlanDTO тарифный план
type PlanDTO struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	PriceMonthly float64 `json:"priceMonthly"`
	MaxWorkers   int     `json:"maxWorkers"`
}

// RegisterRequest тело POST /user/register (отправляет OTP)
type RegisterRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// SendCodeRequest тело POST /user/send-code (OTP для входа в существующий аккаунт)
type SendCodeRequest struct {
	Phone string `json:"phone"`
}

// VerifyCodeRequest тело POST /user/verify-code
type VerifyCodeRequest struct {
	Phone string `json:"phone"`
	Code  string `json:"code"`
}

// VerifyCodeResponse ответ после подтверждения кода: профиль создан, выдан токен
type VerifyCodeResponse struct {
	AccessToken string  `json:"accessToken"`
	User        UserDTO `json:"user"`
}

// UserDTO профиль пользователя
type UserDTO struct {
	UUID  string `json:"uuid"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

// ErrorResponse модель ошибки от API
type ErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

// NewAppointmentRequest конвертирует команду в тело запроса
func NewAppointmentRequest(cmd domain.AppointmentCommand) AppointmentRequest {
	return AppointmentRequest{
		WorkerEstablishmentServiceID: cmd.WorkerEstablishmentServiceID,
		CustomerUUID:                 cmd.CustomerUUID,
		CustomerIdentification:       cmd.CustomerIdentification,
		ScheduledAt:                  cmd.ScheduledAt.Format(domain.ScheduledAtFormat),
	}
}

// ToDomain конвертирует ответ доступности в доменную модель.
// Некорректный startTime сохраняется как есть: такой слот отбрасывается при фильтрации,
// остальные слоты дня остаются доступны.
func (r *AvailabilityResponse) ToDomain(workerUUID, date string) *domain.Availability {
	slots := make([]domain.AvailabilitySlot, 0, len(r.AvailableSlots))
	for _, s := range r.AvailableSlots {
		start, err := types.NewTimeStringFromString(s.StartTime)
		if err != nil {
			start = types.TimeString(s.StartTime)
		}
		slots = append(slots, domain.AvailabilitySlot{StartTime: start})
	}

	wh := domain.WorkingHours{IsActive: r.WorkingHours.IsActive}
	if r.WorkingHours.StartTime != nil {
		if start, err := types.NewTimeStringFromString(*r.WorkingHours.StartTime); err == nil {
			wh.StartTime = &start
		}
	}
	if r.WorkingHours.EndTime != nil {
		if end, err := types.NewTimeStringFromString(*r.WorkingHours.EndTime); err == nil {
			wh.EndTime = &end
		}
	}

	return &domain.Availability{
		WorkerUUID:     workerUUID,
		Date:           date,
		WorkingHours:   wh,
		AvailableSlots: slots,
	}
}

// ToDomain конвертирует запись в доменную модель.
// scheduledAt приходит без смещения и интерпретируется в зоне loc.
func (a *AppointmentDTO) ToDomain(loc *time.Location) (*domain.Appointment, error) {
	scheduledAt, err := parseScheduledAt(a.ScheduledAt, loc)
	if err != nil {
		return nil, fmt.Errorf("%w: scheduledAt: %v", ErrInvalidResponse, err)
	}
	return &domain.Appointment{
		UUID:                         a.UUID,
		WorkerEstablishmentServiceID: a.WorkerEstablishmentServiceID,
		WorkerUUID:                   a.WorkerUUID,
		CustomerUUID:                 a.CustomerUUID,
		CustomerIdentification:       a.CustomerIdentification,
		ScheduledAt:                  scheduledAt,
		Status:                       domain.AppointmentStatus(a.Status),
		ServiceName:                  a.ServiceName,
		Price:                        a.Price,
		CreatedAt:                    a.CreatedAt,
	}, nil
}

// ToDomain конвертирует мастера в доменную модель
func (w *WorkerDTO) ToDomain() *domain.Worker {
	services := make([]domain.Service, len(w.Services))
	for i, s := range w.Services {
		services[i] = domain.Service{
			ID:              s.ID,
			Name:            s.Name,
			Price:           s.Price,
			DurationMinutes: s.DurationMinutes,
		}
	}
	return &domain.Worker{
		UUID:            w.UUID,
		Name:            w.Name,
		EstablishmentID: w.EstablishmentID,
		Services:        services,
	}
}

// ToDomain конвертирует заведение в доменную модель
func (e *EstablishmentDTO) ToDomain() domain.Establishment {
	return domain.Establishment{
		ID:      e.ID,
		Name:    e.Name,
		Address: e.Address,
		Phone:   e.Phone,
		PlanID:  e.PlanID,
	}
}

// ToDomain конвертирует план в доменную модель
func (p *PlanDTO) ToDomain() domain.Plan {
	return domain.Plan{
		ID:           p.ID,
		Name:         p.Name,
		PriceMonthly: p.PriceMonthly,
		MaxWorkers:   p.MaxWorkers,
	}
}

// parseScheduledAt принимает как локальный формат без смещения, так и RFC3339
func parseScheduledAt(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	if t, err := time.ParseInLocation(domain.ScheduledAtFormat, s, loc); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.In(loc), nil
}
