package get_wizard

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/lobeca/lobeca-web/internal/api/middleware"
)

type Handler struct {
	renderer WizardRenderer
	logger   Logger
}

func NewHandler(renderer WizardRenderer, logger Logger) *Handler {
	return &Handler{
		renderer: renderer,
		logger:   logger,
	}
}

// Handle GET /book/{workerUUID}
// Query params: serviceID, date, time, appointmentUUID (все необязательные, шаг определяется по ним)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	workerUUID := mux.Vars(r)["workerUUID"]

	h.logger.Info("GET /book/{workerUUID} - worker_uuid=%s, query=%s", workerUUID, r.URL.RawQuery)
	h.renderer.Render(w, r, workerUUID, r.URL.Query(), middleware.GetSession(r.Context()), http.StatusOK, nil)
}
