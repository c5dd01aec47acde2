package start_registration

import "errors"

var (
	// ErrInvalidName возвращается при некорректном имени
	ErrInvalidName = errors.New("start_registration: invalid name")

	// ErrInvalidPhone возвращается при некорректном номере телефона
	ErrInvalidPhone = errors.New("start_registration: invalid phone number")

	// ErrIncompleteSelection возвращается, когда намерение записи неполное
	ErrIncompleteSelection = errors.New("start_registration: selection is incomplete")

	// ErrTooManyAttempts возвращается при превышении частоты отправки кодов
	ErrTooManyAttempts = errors.New("start_registration: too many verification codes requested")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("start_registration: internal error")
)
