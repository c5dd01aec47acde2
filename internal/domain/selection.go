package domain

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/lobeca/lobeca-web/pkg/types"
)

var (
	// ErrInvalidSelection возвращается при некорректном значении шага мастера
	ErrInvalidSelection = errors.New("invalid wizard selection")

	// ErrOutOfOrder возвращается при попытке выбрать параметр раньше предыдущих
	ErrOutOfOrder = errors.New("wizard selection out of order")
)

// Step шаг мастера записи
type Step string

const (
	StepService Step = "service"
	StepDate    Step = "date"
	StepTime    Step = "time"
	StepConfirm Step = "confirm"
)

// Selection выбор пользователя, восстановленный из query-строки.
// Нулевые значения означают "не выбрано"; некорректные значения приравниваются к отсутствующим.
type Selection struct {
	ServiceID       int64
	Date            string // YYYY-MM-DD
	Time            types.TimeString
	AppointmentUUID string // задан при переносе существующей записи
}

// SelectionFromQuery читает выбор из query-параметров
func SelectionFromQuery(q url.Values) Selection {
	s := Selection{
		AppointmentUUID: strings.TrimSpace(q.Get(ParamAppointmentUUID)),
	}

	if id, err := strconv.ParseInt(strings.TrimSpace(q.Get(ParamServiceID)), 10, 64); err == nil && id > 0 {
		s.ServiceID = id
	}
	if date := strings.TrimSpace(q.Get(ParamDate)); isValidDate(date) {
		s.Date = date
	}
	if t, err := types.NewTimeStringFromString(strings.TrimSpace(q.Get(ParamTime))); err == nil {
		s.Time = t
	}

	return s
}

// ResolveStep определяет текущий шаг мастера.
// Порядок строгий: serviceID -> date -> time -> confirm.
func ResolveStep(s Selection) Step {
	switch {
	case s.ServiceID <= 0:
		return StepService
	case !isValidDate(s.Date):
		return StepDate
	case !s.Time.IsValid():
		return StepTime
	default:
		return StepConfirm
	}
}

// Step возвращает текущий шаг мастера
func (s Selection) Step() Step {
	return ResolveStep(s)
}

// Normalize отбрасывает параметры, нарушающие префиксную зависимость (time без date, date без serviceID)
func (s Selection) Normalize() Selection {
	out := Selection{AppointmentUUID: s.AppointmentUUID}
	switch ResolveStep(s) {
	case StepConfirm:
		out.Time = s.Time
		fallthrough
	case StepTime:
		out.Date = s.Date
		fallthrough
	case StepDate:
		out.ServiceID = s.ServiceID
	}
	return out
}

// WithService выбирает услугу. Дата и время сбрасываются, appointmentUUID сохраняется.
func (s Selection) WithService(serviceID int64) (Selection, error) {
	if serviceID <= 0 {
		return s, fmt.Errorf("%w: serviceID must be positive", ErrInvalidSelection)
	}
	return Selection{
		ServiceID:       serviceID,
		AppointmentUUID: s.AppointmentUUID,
	}, nil
}

// WithDate выбирает дату. Требует выбранной услуги; время сбрасывается.
func (s Selection) WithDate(date string) (Selection, error) {
	if s.ServiceID <= 0 {
		return s, fmt.Errorf("%w: date selected before service", ErrOutOfOrder)
	}
	if !isValidDate(date) {
		return s, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidSelection)
	}
	return Selection{
		ServiceID:       s.ServiceID,
		Date:            date,
		AppointmentUUID: s.AppointmentUUID,
	}, nil
}

// WithTime выбирает время. Требует выбранных услуги и даты.
func (s Selection) WithTime(t types.TimeString) (Selection, error) {
	if ResolveStep(s) == StepService || ResolveStep(s) == StepDate {
		return s, fmt.Errorf("%w: time selected before date", ErrOutOfOrder)
	}
	if !t.IsValid() {
		return s, fmt.Errorf("%w: time must be HH:MM", ErrInvalidSelection)
	}
	return Selection{
		ServiceID:       s.ServiceID,
		Date:            s.Date,
		Time:            t,
		AppointmentUUID: s.AppointmentUUID,
	}, nil
}

// Back убирает самый специфичный параметр.
// Возвращает false на первом шаге: тогда навигация назад делегируется браузеру.
func (s Selection) Back() (Selection, bool) {
	n := s.Normalize()
	switch ResolveStep(n) {
	case StepConfirm:
		n.Time = ""
	case StepTime:
		n.Date = ""
	case StepDate:
		n.ServiceID = 0
	default:
		return n, false
	}
	return n, true
}

// Query кодирует выбор обратно в query-параметры (только согласованный префикс)
func (s Selection) Query() url.Values {
	n := s.Normalize()
	q := url.Values{}
	if n.ServiceID > 0 {
		q.Set(ParamServiceID, strconv.FormatInt(n.ServiceID, 10))
	}
	if n.Date != "" {
		q.Set(ParamDate, n.Date)
	}
	if n.Time != "" {
		q.Set(ParamTime, n.Time.String())
	}
	if n.AppointmentUUID != "" {
		q.Set(ParamAppointmentUUID, n.AppointmentUUID)
	}
	return q
}

// IsReschedule сообщает, что выбор относится к переносу существующей записи
func (s Selection) IsReschedule() bool {
	return s.AppointmentUUID != ""
}

// ScheduledAt объединяет выбранные дату и время в один момент времени
func (s Selection) ScheduledAt(loc *time.Location) (time.Time, error) {
	if ResolveStep(s) != StepConfirm {
		return time.Time{}, fmt.Errorf("%w: selection is incomplete", ErrInvalidSelection)
	}
	date, err := ParseDate(s.Date, loc)
	if err != nil {
		return time.Time{}, err
	}
	return s.Time.On(date), nil
}

// ParseDate парсит YYYY-MM-DD в полночь указанной зоны
func ParseDate(date string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(DateFormat, date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidSelection, err)
	}
	return t, nil
}

func isValidDate(date string) bool {
	if date == "" {
		return false
	}
	_, err := time.Parse(DateFormat, date)
	return err == nil
}
