package load_wizard

import (
	"net/url"
	"time"

	"github.com/lobeca/lobeca-web/internal/domain"
	"github.com/lobeca/lobeca-web/pkg/types"
)

// Request модель запроса страницы мастера записи
type Request struct {
	WorkerUUID string
	Query      url.Values
	Session    *domain.Session // nil для анонимного посетителя
}

// Day день в списке выбора даты
type Day struct {
	Date    string // YYYY-MM-DD
	Time    time.Time
	IsToday bool
}

// Response данные для отрисовки текущего шага
type Response struct {
	Worker    *domain.Worker
	State     domain.WizardState
	Selection domain.Selection
	Service   *domain.Service // выбранная услуга, начиная с шага даты

	Days []Day // шаг даты

	IsWorking  bool               // шаг времени
	Slots      []types.TimeString // шаг времени
	SlotsError bool               // шаг времени: доступность не загрузилась

	ScheduledAt   time.Time // шаг подтверждения
	Authenticated bool

	SelectionDelay time.Duration
}
