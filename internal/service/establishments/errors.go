package establishments

import "errors"

var (
	// ErrEstablishmentNotFound возвращается, когда заведение не найдено
	ErrEstablishmentNotFound = errors.New("establishment not found")

	// ErrAccessDenied возвращается, когда пользователь не владелец заведения
	ErrAccessDenied = errors.New("access denied")

	// ErrAuthenticationRequired возвращается без сессии
	ErrAuthenticationRequired = errors.New("authentication required")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
