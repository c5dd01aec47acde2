package appointments

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа к записи
	ErrAccessDenied = errors.New("access denied")

	// ErrAuthenticationRequired возвращается без действующей сессии
	ErrAuthenticationRequired = errors.New("authentication required")

	// ErrCannotCancel возвращается, когда запись уже отменена или прошла
	ErrCannotCancel = errors.New("appointment cannot be cancelled")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
