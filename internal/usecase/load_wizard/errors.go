package load_wizard

import "errors"

var (
	// ErrWorkerNotFound возвращается, когда мастер не найден
	ErrWorkerNotFound = errors.New("load_wizard: worker not found")

	// ErrServiceNotFound возвращается, когда выбранная услуга не принадлежит мастеру
	ErrServiceNotFound = errors.New("load_wizard: service not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("load_wizard: invalid input data")

	// ErrUnavailable возвращается, когда данные мастера не удалось загрузить
	ErrUnavailable = errors.New("load_wizard: worker could not be loaded")
)
