package get_available_slots

import "github.com/lobeca/lobeca-web/pkg/types"

// Request модель запроса на получение доступных слотов
type Request struct {
	WorkerUUID string // UUID мастера
	Date       string // Дата в формате YYYY-MM-DD
}

// Response модель ответа со списком доступных слотов.
// Пустой Slots означает состояние "sem horários disponíveis".
type Response struct {
	WorkerUUID string
	Date       string
	IsWorking  bool               // false, если мастер не работает в этот день
	Slots      []types.TimeString // отфильтрованные слоты в порядке API
}
