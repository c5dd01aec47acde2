package confirm_booking

import "errors"

var (
	// ErrAuthenticationRequired возвращается, когда нужна регистрация или вход (переход к OTP)
	ErrAuthenticationRequired = errors.New("confirm_booking: authentication required")

	// ErrIncompleteSelection возвращается, когда не выбраны услуга, дата и время
	ErrIncompleteSelection = errors.New("confirm_booking: selection is incomplete")

	// ErrWorkerNotFound возвращается, когда мастер не найден
	ErrWorkerNotFound = errors.New("confirm_booking: worker not found")

	// ErrServiceNotFound возвращается, когда услуга не принадлежит мастеру
	ErrServiceNotFound = errors.New("confirm_booking: service not found")

	// ErrAppointmentNotFound возвращается, когда переносимая запись не найдена
	ErrAppointmentNotFound = errors.New("confirm_booking: appointment not found")

	// ErrSlotUnavailable возвращается при 409: слот заняли между загрузкой и отправкой
	ErrSlotUnavailable = errors.New("confirm_booking: slot is no longer available")

	// ErrInvalidInput возвращается, когда API отклонил данные записи
	ErrInvalidInput = errors.New("confirm_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("confirm_booking: internal error")
)
