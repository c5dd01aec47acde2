package get_available_slots

import (
	"fmt"
	"strings"
	"time"

	"github.com/lobeca/lobeca-web/internal/domain"
)

// validateRequest валидирует входные данные запроса и возвращает дату в зоне loc
func validateRequest(req *Request, loc *time.Location) (time.Time, error) {
	if strings.TrimSpace(req.WorkerUUID) == "" {
		return time.Time{}, fmt.Errorf("%w: workerUUID is required", ErrInvalidInput)
	}

	date, err := domain.ParseDate(req.Date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}

	return date, nil
}
