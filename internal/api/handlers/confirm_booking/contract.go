package confirm_booking

import (
	"context"
	"net/http"
	"net/url"

	"github.com/a-h/templ"

	"github.com/lobeca/lobeca-web/internal/domain"
	completeRegistration "github.com/lobeca/lobeca-web/internal/usecase/complete_registration"
	confirmBooking "github.com/lobeca/lobeca-web/internal/usecase/confirm_booking"
	startRegistration "github.com/lobeca/lobeca-web/internal/usecase/start_registration"
	"github.com/lobeca/lobeca-web/internal/views"
)

type ConfirmBookingUseCase interface {
	Execute(ctx context.Context, req *confirmBooking.Request) (*confirmBooking.Response, error)
}

type StartRegistrationUseCase interface {
	Execute(ctx context.Context, req *startRegistration.Request) (*startRegistration.Response, error)
}

type CompleteRegistrationUseCase interface {
	Execute(ctx context.Context, req *completeRegistration.Request) (*completeRegistration.Response, error)
}

type WizardRenderer interface {
	Render(w http.ResponseWriter, r *http.Request, workerUUID string, query url.Values,
		session *domain.Session, status int, decorate func(*views.WizardView))
	RenderError(w http.ResponseWriter, r *http.Request, status int, body templ.Component)
	RenderBooked(w http.ResponseWriter, r *http.Request, workerUUID string, query url.Values,
		session *domain.Session, appointment *domain.Appointment, rescheduled bool)
}

// SessionCookie выдает браузеру cookie созданной сессии
type SessionCookie interface {
	Set(w http.ResponseWriter, s *domain.Session)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
