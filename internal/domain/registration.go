package domain

import "time"

// PendingRegistration регистрация, ожидающая подтверждения OTP-кода.
// Хранит исходное намерение записи, чтобы после подтверждения создать запись без изменений.
type PendingRegistration struct {
	ID              string
	Name            string
	Phone           string // E.164
	WorkerUUID      string
	Selection       Selection
	ExistingAccount bool // номер уже зарегистрирован, код отправлен для входа
	CreatedAt       time.Time
}
