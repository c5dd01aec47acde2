package create_worker_appointment

import (
	"github.com/lobeca/lobeca-web/internal/domain"
	"github.com/lobeca/lobeca-web/pkg/types"
)

// Request модель запроса на запись клиента без аккаунта
type Request struct {
	Session                *domain.Session
	WorkerUUID             string // по умолчанию - мастер из сессии
	ServiceID              int64  // workerEstablishmentServiceID
	Date                   string // YYYY-MM-DD
	Time                   types.TimeString
	CustomerIdentification string // свободная подпись клиента
}

// Response модель ответа
type Response struct {
	Appointment *domain.Appointment
}
