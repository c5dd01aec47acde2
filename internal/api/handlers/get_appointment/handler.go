package get_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/lobeca/lobeca-web/internal/api/handlers"
	"github.com/lobeca/lobeca-web/internal/api/middleware"
	"github.com/lobeca/lobeca-web/internal/service/appointments"
)

const (
	msgNotFound     = "agendamento não encontrado"
	msgUnauthorized = "autenticação necessária"
	msgForbidden    = "acesso negado"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments/{appointmentUUID}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentUUID := mux.Vars(r)["appointmentUUID"]
	session := middleware.GetSession(r.Context())

	// Сервис сам проверит права доступа
	appointment, err := h.service.Get(r.Context(), session, appointmentUUID)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAuthenticationRequired):
			h.logger.Warn("GET /appointments/{uuid} - Unauthenticated request")
			handlers.RespondUnauthorized(w, msgUnauthorized)

		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("GET /appointments/{uuid} - Appointment not found: appointment_uuid=%s", appointmentUUID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("GET /appointments/{uuid} - Access denied: appointment_uuid=%s, user_uuid=%s",
				appointmentUUID, session.UserUUID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /appointments/{uuid} - Failed to get appointment: appointment_uuid=%s, error=%v",
				appointmentUUID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments/{uuid} - Appointment retrieved successfully: appointment_uuid=%s, user_uuid=%s",
		appointmentUUID, session.UserUUID)
	handlers.RespondJSON(w, http.StatusOK, appointment)
}
