package complete_registration

import (
	"github.com/lobeca/lobeca-web/internal/domain"
	"github.com/lobeca/lobeca-web/internal/usecase/confirm_booking"
)

// Request модель запроса на подтверждение кода
type Request struct {
	RegistrationID string
	Code           string
}

// Response модель ответа.
// Session заполнена всегда после успешной проверки кода; CommitErr - ошибка записи
// (например confirm_booking.ErrSlotUnavailable), при которой профиль и сессия уже созданы.
type Response struct {
	Session    *domain.Session
	WorkerUUID string
	Selection  domain.Selection
	Booking    *confirm_booking.Response
	CommitErr  error
}
