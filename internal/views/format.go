package views

import (
	"fmt"
	"strings"
	"time"
)

var (
	weekdaysShort = [...]string{"dom", "seg", "ter", "qua", "qui", "sex", "sáb"}
	weekdaysLong  = [...]string{"domingo", "segunda-feira", "terça-feira", "quarta-feira", "quinta-feira", "sexta-feira", "sábado"}
	monthsShort   = [...]string{"jan", "fev", "mar", "abr", "mai", "jun", "jul", "ago", "set", "out", "nov", "dez"}
	monthsLong    = [...]string{"janeiro", "fevereiro", "março", "abril", "maio", "junho", "julho", "agosto", "setembro", "outubro", "novembro", "dezembro"}
)

// DayLabel короткая подпись дня: "seg, 10 mar"
func DayLabel(d time.Time) string {
	return fmt.Sprintf("%s, %d %s", weekdaysShort[d.Weekday()], d.Day(), monthsShort[d.Month()-1])
}

// LongDate полная дата и время: "segunda-feira, 10 de março de 2025 às 14:30"
func LongDate(t time.Time) string {
	return fmt.Sprintf("%s, %d de %s de %d às %s",
		weekdaysLong[t.Weekday()], t.Day(), monthsLong[t.Month()-1], t.Year(), t.Format("15:04"))
}

// Price цена в реалах: "R$ 45,00"
func Price(v float64) string {
	return "R$ " + strings.Replace(fmt.Sprintf("%.2f", v), ".", ",", 1)
}

// Duration длительность услуги: "30 min", "1h", "1h30"
func Duration(minutes int) string {
	switch {
	case minutes <= 0:
		return ""
	case minutes < 60:
		return fmt.Sprintf("%d min", minutes)
	case minutes%60 == 0:
		return fmt.Sprintf("%dh", minutes/60)
	default:
		return fmt.Sprintf("%dh%02d", minutes/60, minutes%60)
	}
}
