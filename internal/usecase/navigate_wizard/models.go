package navigate_wizard

import (
	"net/url"

	"github.com/lobeca/lobeca-web/internal/domain"
)

// Action действие пользователя в мастере записи
type Action string

const (
	ActionSelectService Action = "service"
	ActionSelectDate    Action = "date"
	ActionSelectTime    Action = "time"
	ActionBack          Action = "back"
)

// Request модель запроса на переход
type Request struct {
	Current url.Values // query-параметры текущей страницы
	Action  Action
	Value   string // выбранное значение; для ActionBack не используется
}

// Response модель результата перехода.
// Query заменяет текущую запись истории; HistoryBack означает переход назад средствами браузера.
type Response struct {
	Selection   domain.Selection
	Step        domain.Step
	Query       url.Values
	HistoryBack bool
}
