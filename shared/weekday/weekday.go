// Package weekday resolves civil dates to the canonical Portuguese day
// names used by the availability schedule (Segunda, Terça, ...). The day
// of week is derived from the date components alone, so the result never
// depends on the host timezone or clock.
package weekday

import (
	"time"

	"agenda/shared/constant"
)

const (
	Segunda = "Segunda"
	Terca   = "Terça"
	Quarta  = "Quarta"
	Quinta  = "Quinta"
	Sexta   = "Sexta"
	Sabado  = "Sábado"
	Domingo = "Domingo"
)

var canonical = map[time.Weekday]string{
	time.Monday:    Segunda,
	time.Tuesday:   Terca,
	time.Wednesday: Quarta,
	time.Thursday:  Quinta,
	time.Friday:    Sexta,
	time.Saturday:  Sabado,
	time.Sunday:    Domingo,
}

// FromCivilDate maps a "YYYY-MM-DD" date to its canonical day name.
// Unparseable input fails closed with ok=false.
func FromCivilDate(date string) (string, bool) {
	parsed, err := time.Parse(constant.CivilDateFormat, date)
	if err != nil {
		return "", false
	}

	name, ok := canonical[parsed.Weekday()]

	return name, ok
}

// Names returns the canonical day names in schedule order, Monday first.
func Names() []string {
	return []string{Segunda, Terca, Quarta, Quinta, Sexta, Sabado, Domingo}
}
