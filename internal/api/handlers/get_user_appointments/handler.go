package get_user_appointments

import (
	"errors"
	"net/http"

	"github.com/lobeca/lobeca-web/internal/api/handlers"
	"github.com/lobeca/lobeca-web/internal/api/middleware"
	"github.com/lobeca/lobeca-web/internal/service/appointments"
)

const msgUnauthorized = "autenticação necessária"

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

// Handle GET /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session := middleware.GetSession(r.Context())

	result, err := h.service.List(r.Context(), session)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAuthenticationRequired):
			h.logger.Warn("GET /appointments - Unauthenticated request")
			handlers.RespondUnauthorized(w, msgUnauthorized)

		default:
			h.logger.Error("GET /appointments - Failed to list appointments: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments - Appointments retrieved successfully: user_uuid=%s, count=%d",
		session.UserUUID, len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
