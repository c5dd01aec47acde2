package start_registration

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/nyaruka/phonenumbers"

	"github.com/lobeca/lobeca-web/internal/domain"
)

// normalizeName обрезает пробелы и проверяет длину имени
func normalizeName(name string) (string, error) {
	name = strings.Join(strings.Fields(name), " ")
	n := utf8.RuneCountInString(name)
	if n < domain.MinCustomerNameLength || n > domain.MaxCustomerNameLength {
		return "", fmt.Errorf("%w: name must be %d-%d characters",
			ErrInvalidName, domain.MinCustomerNameLength, domain.MaxCustomerNameLength)
	}
	return name, nil
}

// NormalizePhone приводит номер к E.164 и проверяет его валидность
func NormalizePhone(phone, region string) (string, error) {
	num, err := phonenumbers.Parse(strings.TrimSpace(phone), region)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPhone, err)
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", fmt.Errorf("%w: %s is not a valid number", ErrInvalidPhone, phone)
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}

// MaskPhone оставляет видимыми только последние 4 цифры
func MaskPhone(e164 string) string {
	if len(e164) <= 4 {
		return e164
	}
	return strings.Repeat("*", len(e164)-4) + e164[len(e164)-4:]
}
