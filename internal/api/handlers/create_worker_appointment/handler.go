package create_worker_appointment

import (
	"errors"
	"net/http"
	"time"

	"github.com/lobeca/lobeca-web/internal/api/handlers"
	"github.com/lobeca/lobeca-web/internal/api/middleware"
	"github.com/lobeca/lobeca-web/internal/service/appointments/models"
	createWorkerAppointment "github.com/lobeca/lobeca-web/internal/usecase/create_worker_appointment"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidTime        = "horário inválido, formato esperado HH:MM"
	msgUnauthorized       = "autenticação necessária"
	msgForbidden          = "apenas profissionais e proprietários podem agendar para clientes"
	msgInvalidInput       = "dados do agendamento inválidos"
	msgSlotUnavailable    = "Horário indisponível. Escolha outro horário."
	msgWorkerNotFound     = "profissional não encontrado"
)

type Handler struct {
	useCase  CreateWorkerAppointmentUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase CreateWorkerAppointmentUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle POST /api/v1/dashboard/appointments
// Запись клиента без аккаунта мастером или владельцем (walk-in)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateWorkerAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /dashboard/appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	session := middleware.GetSession(r.Context())
	useCaseReq, err := req.ToUseCaseRequest(session)
	if err != nil {
		h.logger.Warn("POST /dashboard/appointments - Invalid time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createWorkerAppointment.ErrAuthenticationRequired):
			h.logger.Warn("POST /dashboard/appointments - Unauthenticated request")
			handlers.RespondUnauthorized(w, msgUnauthorized)

		case errors.Is(err, createWorkerAppointment.ErrForbidden):
			h.logger.Warn("POST /dashboard/appointments - Forbidden: user_uuid=%s", session.UserUUID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, createWorkerAppointment.ErrInvalidInput):
			h.logger.Warn("POST /dashboard/appointments - Validation error: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createWorkerAppointment.ErrSlotUnavailable):
			h.logger.Warn("POST /dashboard/appointments - Slot unavailable: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondConflict(w, msgSlotUnavailable)

		case errors.Is(err, createWorkerAppointment.ErrWorkerNotFound):
			h.logger.Warn("POST /dashboard/appointments - Worker not found: worker_uuid=%s", req.WorkerUUID)
			handlers.RespondNotFound(w, msgWorkerNotFound)

		default:
			h.logger.Error("POST /dashboard/appointments - Failed to create appointment: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /dashboard/appointments - Appointment created successfully: appointment_uuid=%s, user_uuid=%s",
		result.Appointment.UUID, session.UserUUID)
	handlers.RespondJSON(w, http.StatusCreated, models.FromDomainAppointment(result.Appointment, h.location))
}
