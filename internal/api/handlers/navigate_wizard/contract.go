package navigate_wizard

import (
	"context"
	"net/http"
	"net/url"

	"github.com/lobeca/lobeca-web/internal/domain"
	navigateWizard "github.com/lobeca/lobeca-web/internal/usecase/navigate_wizard"
	"github.com/lobeca/lobeca-web/internal/views"
)

type NavigateWizardUseCase interface {
	Execute(ctx context.Context, req *navigateWizard.Request) (*navigateWizard.Response, error)
}

type WizardRenderer interface {
	Render(w http.ResponseWriter, r *http.Request, workerUUID string, query url.Values,
		session *domain.Session, status int, decorate func(*views.WizardView))
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
