package navigate_wizard

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lobeca/lobeca-web/internal/domain"
	"github.com/lobeca/lobeca-web/pkg/types"
)

// UseCase контроллер навигации мастера записи.
// Состояние целиком живёт в query-параметрах; use case только вычисляет следующий URL.
type UseCase struct {
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(logger Logger) *UseCase {
	return &UseCase{logger: logger}
}

// Execute применяет действие к текущему выбору
func (uc *UseCase) Execute(_ context.Context, req *Request) (*Response, error) {
	current := domain.SelectionFromQuery(req.Current).Normalize()

	var (
		next domain.Selection
		err  error
	)

	switch req.Action {
	case ActionSelectService:
		next, err = uc.selectService(current, req.Value)
	case ActionSelectDate:
		next, err = current.WithDate(strings.TrimSpace(req.Value))
	case ActionSelectTime:
		next, err = uc.selectTime(current, req.Value)
	case ActionBack:
		prev, ok := current.Back()
		if !ok {
			uc.logger.Info("NavigateWizard: back from first step, delegating to browser history")
			return &Response{
				Selection:   current,
				Step:        current.Step(),
				Query:       current.Query(),
				HistoryBack: true,
			}, nil
		}
		next = prev
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, req.Action)
	}

	if err != nil {
		uc.logger.Warn("NavigateWizard: action=%s value=%q rejected at step=%s: %v",
			req.Action, req.Value, current.Step(), err)
		return nil, translateError(err)
	}

	uc.logger.Info("NavigateWizard: action=%s step %s -> %s", req.Action, current.Step(), next.Step())

	return &Response{
		Selection: next,
		Step:      next.Step(),
		Query:     next.Query(),
	}, nil
}

func (uc *UseCase) selectService(current domain.Selection, value string) (domain.Selection, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return current, fmt.Errorf("%w: serviceID must be numeric", domain.ErrInvalidSelection)
	}
	return current.WithService(id)
}

func (uc *UseCase) selectTime(current domain.Selection, value string) (domain.Selection, error) {
	t, err := types.NewTimeStringFromString(strings.TrimSpace(value))
	if err != nil {
		return current, fmt.Errorf("%w: %v", domain.ErrInvalidSelection, err)
	}
	return current.WithTime(t)
}

func translateError(err error) error {
	switch {
	case errors.Is(err, domain.ErrOutOfOrder):
		return fmt.Errorf("%w: %v", ErrOutOfOrder, err)
	case errors.Is(err, domain.ErrInvalidSelection):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	default:
		return err
	}
}
