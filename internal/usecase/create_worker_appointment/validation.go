package create_worker_appointment

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/lobeca/lobeca-web/internal/domain"
)

// buildSelection собирает выбор в строгом порядке шагов мастера
func buildSelection(req *Request) (domain.Selection, error) {
	sel, err := domain.Selection{}.WithService(req.ServiceID)
	if err != nil {
		return sel, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if sel, err = sel.WithDate(req.Date); err != nil {
		return sel, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if sel, err = sel.WithTime(req.Time); err != nil {
		return sel, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return sel, nil
}

// normalizeIdentification проверяет подпись клиента
func normalizeIdentification(s string) (string, error) {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return "", fmt.Errorf("%w: customerIdentification is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(s) > domain.MaxCustomerIdentificationLength {
		return "", fmt.Errorf("%w: customerIdentification must be at most %d characters",
			ErrInvalidInput, domain.MaxCustomerIdentificationLength)
	}
	return s, nil
}
