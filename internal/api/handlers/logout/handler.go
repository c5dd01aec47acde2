package logout

import (
	"net/http"
)

type Handler struct {
	sessions SessionRepository
	cookie   SessionCookie
	logger   Logger
}

func NewHandler(sessions SessionRepository, cookie SessionCookie, logger Logger) *Handler {
	return &Handler{
		sessions: sessions,
		cookie:   cookie,
		logger:   logger,
	}
}

// Handle POST /logout
// Удаляет сессию и cookie; ошибка хранилища не мешает выходу
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if id, ok := h.cookie.ID(r); ok {
		if err := h.sessions.Delete(r.Context(), id); err != nil {
			h.logger.Error("POST /logout - Failed to delete session: %v", err)
		} else {
			h.logger.Info("POST /logout - Session deleted")
		}
	}

	h.cookie.Clear(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
