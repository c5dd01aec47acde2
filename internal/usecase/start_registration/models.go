package start_registration

import "github.com/lobeca/lobeca-web/internal/domain"

// Request модель запроса на регистрацию с отправкой OTP
type Request struct {
	WorkerUUID string
	Name       string
	Phone      string           // в любом формате, регион по умолчанию из конфигурации
	Selection  domain.Selection // исходное намерение записи
}

// Response модель ответа
type Response struct {
	RegistrationID  string
	MaskedPhone     string
	ExistingAccount bool // код отправлен для входа в существующий аккаунт
}
