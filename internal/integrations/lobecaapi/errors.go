package lobecaapi

import "errors"

var (
	// ErrNotFound возвращается при 404 (мастер, услуга, запись не найдены)
	ErrNotFound = errors.New("lobecaapi client: resource not found")

	// ErrConflict возвращается при 409 (слот занят между загрузкой и отправкой)
	ErrConflict = errors.New("lobecaapi client: conflict")

	// ErrUnauthorized возвращается при 401/403
	ErrUnauthorized = errors.New("lobecaapi client: unauthorized")

	// ErrValidation возвращается при 400/422
	ErrValidation = errors.New("lobecaapi client: validation failed")

	// ErrUnavailable возвращается при сетевых ошибках и 5xx. Только такие ошибки повторяются для чтения.
	ErrUnavailable = errors.New("lobecaapi client: service unavailable")

	// ErrInvalidResponse возвращается при некорректном ответе от API
	ErrInvalidResponse = errors.New("lobecaapi client: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("lobecaapi client: internal error")
)
