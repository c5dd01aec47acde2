package create_worker_appointment

import "errors"

var (
	// ErrAuthenticationRequired возвращается без действующей сессии
	ErrAuthenticationRequired = errors.New("create_worker_appointment: authentication required")

	// ErrForbidden возвращается, если пользователь не мастер и не владелец
	ErrForbidden = errors.New("create_worker_appointment: only workers and owners can book for customers")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_worker_appointment: invalid input data")

	// ErrSlotUnavailable возвращается, если слот прошёл, не предлагается или занят (409)
	ErrSlotUnavailable = errors.New("create_worker_appointment: slot is not available")

	// ErrWorkerNotFound возвращается, когда мастер не найден
	ErrWorkerNotFound = errors.New("create_worker_appointment: worker not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_worker_appointment: internal error")
)
