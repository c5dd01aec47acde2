package get_checkout

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/lobeca/lobeca-web/internal/api/handlers"
	"github.com/lobeca/lobeca-web/internal/api/middleware"
	"github.com/lobeca/lobeca-web/internal/service/establishments"
)

const (
	msgInvalidEstablishmentID = "ID do estabelecimento inválido"
	msgNotFound               = "estabelecimento não encontrado"
	msgUnauthorized           = "autenticação necessária"
	msgForbidden              = "acesso negado"
)

type Handler struct {
	service EstablishmentService
	logger  Logger
}

func NewHandler(service EstablishmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/establishments/{establishmentId}/checkout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	establishmentIDStr := mux.Vars(r)["establishmentId"]
	establishmentID, err := strconv.ParseInt(establishmentIDStr, 10, 64)
	if err != nil || establishmentID <= 0 {
		h.logger.Warn("GET /establishments/{id}/checkout - Invalid establishment ID: %q", establishmentIDStr)
		handlers.RespondBadRequest(w, msgInvalidEstablishmentID)
		return
	}

	session := middleware.GetSession(r.Context())

	checkout, err := h.service.Checkout(r.Context(), session, establishmentID)
	if err != nil {
		switch {
		case errors.Is(err, establishments.ErrAuthenticationRequired):
			h.logger.Warn("GET /establishments/{id}/checkout - Unauthenticated request")
			handlers.RespondUnauthorized(w, msgUnauthorized)

		case errors.Is(err, establishments.ErrInvalidInput):
			h.logger.Warn("GET /establishments/{id}/checkout - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidEstablishmentID)

		case errors.Is(err, establishments.ErrEstablishmentNotFound):
			h.logger.Warn("GET /establishments/{id}/checkout - Establishment not found: establishment_id=%d", establishmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, establishments.ErrAccessDenied):
			h.logger.Warn("GET /establishments/{id}/checkout - Access denied: establishment_id=%d, user_uuid=%s",
				establishmentID, session.UserUUID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /establishments/{id}/checkout - Failed to load checkout: establishment_id=%d, error=%v",
				establishmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /establishments/{id}/checkout - Checkout loaded successfully: establishment_id=%d, plans=%d",
		establishmentID, len(checkout.Plans))
	handlers.RespondJSON(w, http.StatusOK, checkout)
}
