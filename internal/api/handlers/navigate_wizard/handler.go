package navigate_wizard

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/lobeca/lobeca-web/internal/api/handlers"
	"github.com/lobeca/lobeca-web/internal/api/middleware"
	navigateWizard "github.com/lobeca/lobeca-web/internal/usecase/navigate_wizard"
	"github.com/lobeca/lobeca-web/internal/views"
)

const (
	msgInvalidForm   = "formulário inválido"
	msgUnknownAction = "ação desconhecida"
	msgInvalidValue  = "valor selecionado inválido"
	msgOutOfOrder    = "conclua a etapa anterior primeiro"
)

// homeFallbackRoute куда вернуть обычный запрос без Referer
const homeFallbackRoute = "/"

type Handler struct {
	useCase  NavigateWizardUseCase
	renderer WizardRenderer
	logger   Logger
}

func NewHandler(useCase NavigateWizardUseCase, renderer WizardRenderer, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		renderer: renderer,
		logger:   logger,
	}
}

// Handle POST /book/{workerUUID}/select
// Query: текущее состояние мастера; form: action (service|date|time), value
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.logger.Warn("POST /book/{workerUUID}/select - Invalid form: %v", err)
		handlers.RespondBadRequest(w, msgInvalidForm)
		return
	}

	h.navigate(w, r, navigateWizard.Action(r.PostForm.Get("action")), r.PostForm.Get("value"))
}

// HandleBack POST /book/{workerUUID}/back
func (h *Handler) HandleBack(w http.ResponseWriter, r *http.Request) {
	h.navigate(w, r, navigateWizard.ActionBack, "")
}

func (h *Handler) navigate(w http.ResponseWriter, r *http.Request, action navigateWizard.Action, value string) {
	workerUUID := mux.Vars(r)["workerUUID"]

	result, err := h.useCase.Execute(r.Context(), &navigateWizard.Request{
		Current: r.URL.Query(),
		Action:  action,
		Value:   value,
	})
	if err != nil {
		switch {
		case errors.Is(err, navigateWizard.ErrUnknownAction):
			h.logger.Warn("POST /book/{workerUUID}/%s - Unknown action: worker_uuid=%s", action, workerUUID)
			handlers.RespondBadRequest(w, msgUnknownAction)

		case errors.Is(err, navigateWizard.ErrOutOfOrder):
			h.logger.Warn("POST /book/{workerUUID}/%s - Out of order: worker_uuid=%s, query=%s", action, workerUUID, r.URL.RawQuery)
			handlers.RespondBadRequest(w, msgOutOfOrder)

		case errors.Is(err, navigateWizard.ErrInvalidInput):
			h.logger.Warn("POST /book/{workerUUID}/%s - Invalid value: worker_uuid=%s, value=%q", action, workerUUID, value)
			handlers.RespondBadRequest(w, msgInvalidValue)

		default:
			h.logger.Error("POST /book/{workerUUID}/%s - Failed to navigate: worker_uuid=%s, error=%v", action, workerUUID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if result.HistoryBack {
		h.logger.Info("POST /book/{workerUUID}/back - Back from first step: worker_uuid=%s", workerUUID)
		handlers.HistoryBack(w, r, homeFallbackRoute)
		return
	}

	target := views.WizardURL(workerUUID, result.Query)
	h.logger.Info("POST /book/{workerUUID}/%s - Step %s: worker_uuid=%s", action, result.Step, workerUUID)

	handlers.ReplaceURL(w, r, target, func() {
		h.renderer.Render(w, r, workerUUID, result.Query, middleware.GetSession(r.Context()), http.StatusOK, nil)
	})
}
