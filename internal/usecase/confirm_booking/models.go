package confirm_booking

import "github.com/lobeca/lobeca-web/internal/domain"

// Request модель запроса на подтверждение записи
type Request struct {
	WorkerUUID string
	Selection  domain.Selection // serviceID, date, time и, при переносе, appointmentUUID
	Session    *domain.Session  // nil или истекшая сессия ведут к регистрации
}

// Response модель ответа с созданной или перенесенной записью
type Response struct {
	Appointment *domain.Appointment
	Rescheduled bool
}
