package get_available_slots

import "errors"

var (
	// ErrWorkerNotFound возвращается, когда мастер не найден
	ErrWorkerNotFound = errors.New("get_available_slots: worker not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrUnavailable возвращается, когда доступность не удалось загрузить (состояние "erro ao carregar")
	ErrUnavailable = errors.New("get_available_slots: availability could not be loaded")
)
