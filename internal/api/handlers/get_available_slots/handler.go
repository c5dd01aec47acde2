package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/lobeca/lobeca-web/internal/api/handlers"
	getAvailableSlots "github.com/lobeca/lobeca-web/internal/usecase/get_available_slots"
)

const (
	msgMissingDate    = "a data é obrigatória"
	msgInvalidDate    = "data inválida, formato esperado AAAA-MM-DD"
	msgWorkerNotFound = "profissional não encontrado"
	msgUnavailable    = "erro ao carregar horários"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/workers/{workerUUID}/available-slots
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	workerUUID := mux.Vars(r)["workerUUID"]

	date := r.URL.Query().Get("date")
	if date == "" {
		h.logger.Warn("GET /workers/{uuid}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		WorkerUUID: workerUUID,
		Date:       date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /workers/{uuid}/available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getAvailableSlots.ErrWorkerNotFound):
			h.logger.Warn("GET /workers/{uuid}/available-slots - Worker not found: worker_uuid=%s", workerUUID)
			handlers.RespondNotFound(w, msgWorkerNotFound)

		case errors.Is(err, getAvailableSlots.ErrUnavailable):
			h.logger.Warn("GET /workers/{uuid}/available-slots - Availability unavailable: worker_uuid=%s, date=%s, error=%v",
				workerUUID, date, err)
			handlers.RespondServiceUnavailable(w, msgUnavailable)

		default:
			h.logger.Error("GET /workers/{uuid}/available-slots - Failed to get slots: worker_uuid=%s, date=%s, error=%v",
				workerUUID, date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /workers/{uuid}/available-slots - Slots retrieved successfully: worker_uuid=%s, date=%s, slots_count=%d",
		workerUUID, date, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
