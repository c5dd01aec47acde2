package navigate_wizard

import "errors"

var (
	// ErrUnknownAction возвращается для неизвестного действия навигации
	ErrUnknownAction = errors.New("navigate_wizard: unknown action")

	// ErrInvalidInput возвращается при некорректном значении выбора
	ErrInvalidInput = errors.New("navigate_wizard: invalid input data")

	// ErrOutOfOrder возвращается при выборе параметра раньше предыдущих
	ErrOutOfOrder = errors.New("navigate_wizard: selection out of order")
)
