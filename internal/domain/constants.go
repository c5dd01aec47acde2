package domain

import "time"

// Time format constants
const (
	TimeFormat        = "15:04"               // HH:MM
	DateFormat        = "2006-01-02"          // YYYY-MM-DD
	ScheduledAtFormat = "2006-01-02T15:04:05" // локальное время без смещения, как его ждёт API
)

// Query-параметры мастера записи. Это единственное место, где хранится состояние мастера.
const (
	ParamServiceID       = "serviceID"
	ParamDate            = "date"
	ParamTime            = "time"
	ParamAppointmentUUID = "appointmentUUID"
)

// Значения по умолчанию
const (
	DefaultSelectionDelay   = 300 * time.Millisecond
	DefaultBookingDaysShown = 14
	DefaultTimeZone         = "America/Sao_Paulo"
)

// Ограничения пользовательского ввода
const (
	MinCustomerNameLength           = 2
	MaxCustomerNameLength           = 100
	MaxCustomerIdentificationLength = 120
	VerificationCodeLength          = 6
)
