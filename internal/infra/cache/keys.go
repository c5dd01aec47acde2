package cache

import "fmt"

// Ресурсы кэша (используются как метка метрик)
const (
	ResourceWorker           = "worker"
	ResourceAvailability     = "availability"
	ResourceUserAppointments = "appointments"
	ResourceAppointment      = "appointment"
)

// WorkerKey ключ мастера с услугами
func WorkerKey(workerUUID string) string {
	return fmt.Sprintf("worker:%s", workerUUID)
}

// AvailabilityKey ключ доступности мастера на дату
func AvailabilityKey(workerUUID, date string) string {
	return fmt.Sprintf("availability:%s:%s", workerUUID, date)
}

// UserAppointmentsKey ключ списка записей пользователя
func UserAppointmentsKey(userUUID string) string {
	return fmt.Sprintf("appointments:user:%s", userUUID)
}

// AppointmentKey ключ отдельной записи в чтении конкретного пользователя.
// Права доступа проверяет API, поэтому ответ нельзя делить между пользователями.
func AppointmentKey(userUUID, appointmentUUID string) string {
	return fmt.Sprintf("appointment:%s:%s", userUUID, appointmentUUID)
}
