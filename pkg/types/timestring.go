package types

import (
	"errors"
	"fmt"
	"time"
)

const (
	timeLayout        = "15:04"
	timeLayoutSeconds = "15:04:05"
)

// ErrInvalidTimeString возвращается при некорректном формате времени
var ErrInvalidTimeString = errors.New("invalid time string format")

// TimeString время суток в формате HH:MM без привязки к дате
type TimeString string

// NewTimeString создает TimeString из time.Time (секунды отбрасываются)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString парсит строку "HH:MM" (или "HH:MM:SS") и нормализует её к "HH:MM"
func NewTimeStringFromString(s string) (TimeString, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		t, err = time.Parse(timeLayoutSeconds, s)
		if err != nil {
			return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
		}
	}
	return NewTimeString(t), nil
}

// Clock возвращает часы и минуты
func (t TimeString) Clock() (hour, minute int) {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return 0, 0
	}
	return parsed.Hour(), parsed.Minute()
}

// On возвращает момент времени: дата из date, часы и минуты из t, секунды обнулены
func (t TimeString) On(date time.Time) time.Time {
	h, m := t.Clock()
	return time.Date(date.Year(), date.Month(), date.Day(), h, m, 0, 0, date.Location())
}

// IsValid проверяет формат HH:MM
func (t TimeString) IsValid() bool {
	_, err := time.Parse(timeLayout, string(t))
	return err == nil
}

func (t TimeString) String() string {
	return string(t)
}
