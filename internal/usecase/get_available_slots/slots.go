package get_available_slots

import (
	"time"

	"github.com/lobeca/lobeca-web/internal/domain"
	"github.com/lobeca/lobeca-web/pkg/types"
)

// FilterSlots оставляет слоты, начало которых на дату date строго позже now.
// date должна быть полночью в зоне заведения; секунды обнуляются.
// Если мастер не работает, результат пустой.
func FilterSlots(availability *domain.Availability, date time.Time, now time.Time) []types.TimeString {
	if !availability.IsWorking() {
		return []types.TimeString{}
	}

	result := make([]types.TimeString, 0, len(availability.AvailableSlots))
	for _, slot := range availability.AvailableSlots {
		if !slot.StartTime.IsValid() {
			continue
		}
		if slot.StartTime.On(date).After(now) {
			result = append(result, slot.StartTime)
		}
	}

	return result
}

// Contains проверяет, что время входит в список слотов
func Contains(slots []types.TimeString, t types.TimeString) bool {
	for _, s := range slots {
		if s == t {
			return true
		}
	}
	return false
}
