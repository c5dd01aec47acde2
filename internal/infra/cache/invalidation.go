package cache

import (
	"fmt"
	"sort"
)

// MutationKind тип изменения записи
type MutationKind string

const (
	MutationCreate         MutationKind = "create"
	MutationCreateByWorker MutationKind = "create_by_worker"
	MutationUpdate         MutationKind = "update"
	MutationDelete         MutationKind = "delete"
)

// Mutation описывает выполненное изменение.
// PreviousDate заполняется только при переносе, если старая дата известна.
type Mutation struct {
	Kind            MutationKind
	WorkerUUID      string
	Date            string
	PreviousDate    string
	UserUUID        string
	AppointmentUUID string
}

type rule func(m Mutation) []string

var rules = map[MutationKind]rule{
	MutationCreate: func(m Mutation) []string {
		return []string{availability(m.WorkerUUID, m.Date), userList(m.UserUUID)}
	},
	MutationCreateByWorker: func(m Mutation) []string {
		return []string{availability(m.WorkerUUID, m.Date), userList(m.UserUUID)}
	},
	MutationUpdate: func(m Mutation) []string {
		return []string{
			availability(m.WorkerUUID, m.PreviousDate),
			availability(m.WorkerUUID, m.Date),
			userList(m.UserUUID),
			appointment(m.UserUUID, m.AppointmentUUID),
		}
	},
	MutationDelete: func(m Mutation) []string {
		return []string{
			availability(m.WorkerUUID, m.Date),
			userList(m.UserUUID),
			appointment(m.UserUUID, m.AppointmentUUID),
		}
	},
}

// KeysFor возвращает ключи, которые нужно сбросить после мутации.
// Ключи с незаполненными частями пропускаются, дубликаты удаляются.
func KeysFor(m Mutation) ([]string, error) {
	r, ok := rules[m.Kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMutation, m.Kind)
	}

	seen := make(map[string]struct{})
	keys := make([]string, 0, 4)
	for _, k := range r(m) {
		if k == "" {
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func availability(workerUUID, date string) string {
	if workerUUID == "" || date == "" {
		return ""
	}
	return AvailabilityKey(workerUUID, date)
}

func userList(userUUID string) string {
	if userUUID == "" {
		return ""
	}
	return UserAppointmentsKey(userUUID)
}

func appointment(userUUID, appointmentUUID string) string {
	if userUUID == "" || appointmentUUID == "" {
		return ""
	}
	return AppointmentKey(userUUID, appointmentUUID)
}
