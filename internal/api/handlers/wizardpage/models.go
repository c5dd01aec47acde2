package wizardpage

import (
	"github.com/lobeca/lobeca-web/internal/usecase/load_wizard"
	"github.com/lobeca/lobeca-web/internal/views"
)

// ToView конвертирует ответ use case в модель отрисовки
func ToView(workerUUID string, resp *load_wizard.Response) views.WizardView {
	v := views.WizardView{
		WorkerUUID:     workerUUID,
		Step:           resp.State.Step(),
		Selection:      resp.Selection,
		Service:        resp.Service,
		IsWorking:      resp.IsWorking,
		Slots:          resp.Slots,
		SlotsError:     resp.SlotsError,
		ScheduledAt:    resp.ScheduledAt,
		Authenticated:  resp.Authenticated,
		SelectionDelay: resp.SelectionDelay,
	}

	if resp.Worker != nil {
		v.WorkerName = resp.Worker.Name
		v.Services = resp.Worker.Services
	}

	v.Days = make([]views.DayOption, len(resp.Days))
	for i, d := range resp.Days {
		v.Days[i] = views.DayOption{
			Date:    d.Date,
			Time:    d.Time,
			IsToday: d.IsToday,
		}
	}

	return v
}
