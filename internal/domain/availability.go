package domain

import "github.com/lobeca/lobeca-web/pkg/types"

// AvailabilitySlot время начала, доступное для записи
type AvailabilitySlot struct {
	StartTime types.TimeString
}

// WorkingHours рабочий график мастера на конкретный день
type WorkingHours struct {
	IsActive  bool
	StartTime *types.TimeString
	EndTime   *types.TimeString
}

// Availability доступность мастера на дату, как её вернул API. После загрузки не изменяется.
type Availability struct {
	WorkerUUID     string
	Date           string
	WorkingHours   WorkingHours
	AvailableSlots []AvailabilitySlot
}

// IsWorking возвращает false, если мастер в этот день не работает
func (a *Availability) IsWorking() bool {
	return a != nil && a.WorkingHours.IsActive
}
