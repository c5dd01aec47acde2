package domain

import (
	"net/url"

	"github.com/lobeca/lobeca-web/pkg/types"
)

// WizardState состояние мастера записи. Реализации: ServiceStepState, DateStepState,
// TimeStepState, ConfirmStepState. Каждая содержит ровно те поля, которые на этом шаге определены.
type WizardState interface {
	Step() Step
	Selection() Selection
}

// ServiceStepState шаг 1: выбор услуги
type ServiceStepState struct {
	AppointmentUUID string
}

// DateStepState шаг 2: выбор даты
type DateStepState struct {
	ServiceID       int64
	AppointmentUUID string
}

// TimeStepState шаг 3: выбор времени
type TimeStepState struct {
	ServiceID       int64
	Date            string
	AppointmentUUID string
}

// ConfirmStepState шаг 4: подтверждение
type ConfirmStepState struct {
	ServiceID       int64
	Date            string
	Time            types.TimeString
	AppointmentUUID string
}

// ParseWizardState строит состояние мастера из query-параметров
func ParseWizardState(q url.Values) WizardState {
	return StateOf(SelectionFromQuery(q))
}

// StateOf строит состояние мастера из выбора
func StateOf(s Selection) WizardState {
	switch ResolveStep(s) {
	case StepDate:
		return DateStepState{ServiceID: s.ServiceID, AppointmentUUID: s.AppointmentUUID}
	case StepTime:
		return TimeStepState{ServiceID: s.ServiceID, Date: s.Date, AppointmentUUID: s.AppointmentUUID}
	case StepConfirm:
		return ConfirmStepState{ServiceID: s.ServiceID, Date: s.Date, Time: s.Time, AppointmentUUID: s.AppointmentUUID}
	default:
		return ServiceStepState{AppointmentUUID: s.AppointmentUUID}
	}
}

func (ServiceStepState) Step() Step { return StepService }
func (DateStepState) Step() Step    { return StepDate }
func (TimeStepState) Step() Step    { return StepTime }
func (ConfirmStepState) Step() Step { return StepConfirm }

func (s ServiceStepState) Selection() Selection {
	return Selection{AppointmentUUID: s.AppointmentUUID}
}

func (s DateStepState) Selection() Selection {
	return Selection{ServiceID: s.ServiceID, AppointmentUUID: s.AppointmentUUID}
}

func (s TimeStepState) Selection() Selection {
	return Selection{ServiceID: s.ServiceID, Date: s.Date, AppointmentUUID: s.AppointmentUUID}
}

func (s ConfirmStepState) Selection() Selection {
	return Selection{ServiceID: s.ServiceID, Date: s.Date, Time: s.Time, AppointmentUUID: s.AppointmentUUID}
}
