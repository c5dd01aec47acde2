package cancel_appointment

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
	msgCannotCancel = "este agendamento não pode ser cancelado"
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

// Handle DELETE /api/v1/appointments/{appointmentUUID}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentUUID := mux.Vars(r)["appointmentUUID"]
	session := middleware.GetSession(r.Context())

	err := h.service.Cancel(r.Context(), session, appointmentUUID)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAuthenticationRequired):
			h.logger.Warn("DELETE /appointments/{uuid} - Unauthenticated request")
			handlers.RespondUnauthorized(w, msgUnauthorized)

		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("DELETE /appointments/{uuid} - Appointment not found: appointment_uuid=%s", appointmentUUID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("DELETE /appointments/{uuid} - Access denied: appointment_uuid=%s, user_uuid=%s",
				appointmentUUID, session.UserUUID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, appointments.ErrCannotCancel):
			h.logger.Warn("DELETE /appointments/{uuid} - Cannot cancel: appointment_uuid=%s", appointmentUUID)
			handlers.RespondBadRequest(w, msgCannotCancel)

		default:
			h.logger.Error("DELETE /appointments/{uuid} - Failed to cancel appointment: appointment_uuid=%s, error=%v",
				appointmentUUID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /appointments/{uuid} - Appointment cancelled successfully: appointment_uuid=%s, user_uuid=%s",
		appointmentUUID, session.UserUUID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
