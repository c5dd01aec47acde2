package get_available_slots

import (
	getAvailableSlots "github.com/lobeca/lobeca-web/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model.
// Пустой slots при isWorking=true означает "sem horários disponíveis".
type AvailableSlotsResponse struct {
	WorkerUUID string   `json:"workerUUID"`
	Date       string   `json:"date"`
	IsWorking  bool     `json:"isWorking"`
	Slots      []string `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]string, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = slot.String()
	}

	return &AvailableSlotsResponse{
		WorkerUUID: resp.WorkerUUID,
		Date:       resp.Date,
		IsWorking:  resp.IsWorking,
		Slots:      slots,
	}
}
