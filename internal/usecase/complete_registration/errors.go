package complete_registration

import "errors"

var (
	// ErrInvalidCode возвращается при некорректном или неверном коде
	ErrInvalidCode = errors.New("complete_registration: invalid verification code")

	// ErrTooManyAttempts возвращается при превышении частоты проверки кодов
	ErrTooManyAttempts = errors.New("complete_registration: too many verification attempts")

	// ErrRegistrationExpired возвращается, когда ожидающая регистрация не найдена или истекла
	ErrRegistrationExpired = errors.New("complete_registration: registration expired")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("complete_registration: internal error")
)
