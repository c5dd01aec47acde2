package registration

import "errors"

var (
	// ErrRegistrationNotFound возвращается, когда ожидающая регистрация не найдена или истекла
	ErrRegistrationNotFound = errors.New("registration.store: pending registration not found")

	// ErrEncode возвращается при ошибке сериализации
	ErrEncode = errors.New("registration.store: failed to encode record")

	// ErrDecode возвращается при ошибке десериализации
	ErrDecode = errors.New("registration.store: failed to decode record")

	// ErrStorage возвращается при ошибках redis
	ErrStorage = errors.New("registration.store: storage error")
)
