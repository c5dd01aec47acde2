package wizardpage

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"

	"github.com/a-h/templ"

	"github.com/lobeca/lobeca-web/internal/api/handlers"
	"github.com/lobeca/lobeca-web/internal/domain"
	"github.com/lobeca/lobeca-web/internal/usecase/load_wizard"
	"github.com/lobeca/lobeca-web/internal/views"
)

const (
	msgWorkerNotFound  = "Profissional não encontrado."
	msgServiceNotFound = "Serviço não encontrado."
	msgInvalidRequest  = "Link de agendamento inválido."
	msgUnavailable     = "Não foi possível carregar a agenda. Tente novamente."
)

// WizardLoader загрузка данных текущего шага
type WizardLoader interface {
	Execute(ctx context.Context, req *load_wizard.Request) (*load_wizard.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Renderer отрисовывает шаг мастера записи по query-параметрам.
// Используется страницей мастера, навигацией и подтверждением записи.
type Renderer struct {
	loader WizardLoader
	logger Logger
}

func NewRenderer(loader WizardLoader, logger Logger) *Renderer {
	return &Renderer{
		loader: loader,
		logger: logger,
	}
}

// Render загружает шаг и отрисовывает его со статусом status.
// decorate дополняет view перед отрисовкой (сообщение об ошибке, форма регистрации); может быть nil.
// htmx получает фрагмент #wizard, обычный запрос - полную страницу.
func (p *Renderer) Render(
	w http.ResponseWriter,
	r *http.Request,
	workerUUID string,
	query url.Values,
	session *domain.Session,
	status int,
	decorate func(*views.WizardView),
) {
	resp, err := p.loader.Execute(r.Context(), &load_wizard.Request{
		WorkerUUID: workerUUID,
		Query:      query,
		Session:    session,
	})
	if err != nil {
		switch {
		case errors.Is(err, load_wizard.ErrWorkerNotFound):
			p.logger.Warn("%s %s - Worker not found: worker_uuid=%s", r.Method, r.URL.Path, workerUUID)
			p.RenderError(w, r, http.StatusNotFound, views.NotFound(msgWorkerNotFound))

		case errors.Is(err, load_wizard.ErrServiceNotFound):
			p.logger.Warn("%s %s - Service not found: worker_uuid=%s, query=%s", r.Method, r.URL.Path, workerUUID, query.Encode())
			p.RenderError(w, r, http.StatusNotFound, views.NotFound(msgServiceNotFound))

		case errors.Is(err, load_wizard.ErrInvalidInput):
			p.logger.Warn("%s %s - Invalid wizard request: %v", r.Method, r.URL.Path, err)
			p.RenderError(w, r, http.StatusBadRequest, views.Error(msgInvalidRequest))

		default:
			p.logger.Error("%s %s - Failed to load wizard: worker_uuid=%s, error=%v", r.Method, r.URL.Path, workerUUID, err)
			p.RenderError(w, r, http.StatusServiceUnavailable, views.Error(msgUnavailable))
		}
		return
	}

	v := ToView(workerUUID, resp)
	if decorate != nil {
		decorate(&v)
	}

	p.render(w, r, status, views.Wizard(v), views.WizardPage(v))
}

// RenderError отрисовывает экран ошибки на месте мастера.
// htmx не подменяет содержимое при 4xx/5xx, поэтому фрагмент отдается с 200.
func (p *Renderer) RenderError(w http.ResponseWriter, r *http.Request, status int, body templ.Component) {
	p.render(w, r, status, wrap(body), views.Page("Lobeca", body))
}

// RenderBooked отрисовывает подтвержденную запись.
// Имена мастера и услуги берутся из данных шага подтверждения; если они не загрузились, экран отрисовывается без них.
func (p *Renderer) RenderBooked(
	w http.ResponseWriter,
	r *http.Request,
	workerUUID string,
	query url.Values,
	session *domain.Session,
	appointment *domain.Appointment,
	rescheduled bool,
) {
	v := views.BookedView{
		WorkerUUID:      workerUUID,
		AppointmentUUID: appointment.UUID,
		ServiceName:     appointment.ServiceName,
		ScheduledAt:     appointment.ScheduledAt,
		Rescheduled:     rescheduled,
	}

	resp, err := p.loader.Execute(r.Context(), &load_wizard.Request{
		WorkerUUID: workerUUID,
		Query:      query,
		Session:    session,
	})
	if err != nil {
		p.logger.Warn("%s %s - Booked screen without worker details: %v", r.Method, r.URL.Path, err)
	} else {
		if resp.Worker != nil {
			v.WorkerName = resp.Worker.Name
		}
		if resp.Service != nil && v.ServiceName == "" {
			v.ServiceName = resp.Service.Name
		}
		if !resp.ScheduledAt.IsZero() {
			v.ScheduledAt = resp.ScheduledAt
		}
	}

	p.render(w, r, http.StatusOK, views.Booked(v), views.BookedPage(v))
}

func (p *Renderer) render(w http.ResponseWriter, r *http.Request, status int, fragment, page templ.Component) {
	var err error
	if handlers.IsHTMX(r) {
		err = handlers.Render(w, r, http.StatusOK, fragment)
	} else {
		err = handlers.Render(w, r, status, page)
	}
	if err != nil {
		p.logger.Error("%s %s - Failed to render: %v", r.Method, r.URL.Path, err)
	}
}

// wrap помещает экран в контейнер #wizard, чтобы htmx мог заменить мастер целиком
func wrap(body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div id="wizard">`); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}
