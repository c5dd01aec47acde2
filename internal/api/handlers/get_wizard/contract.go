package get_wizard

import (
	"net/http"
	"net/url"

	"github.com/lobeca/lobeca-web/internal/domain"
	"github.com/lobeca/lobeca-web/internal/views"
)

type WizardRenderer interface {
	Render(w http.ResponseWriter, r *http.Request, workerUUID string, query url.Values,
		session *domain.Session, status int, decorate func(*views.WizardView))
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
