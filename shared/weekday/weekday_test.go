package weekday_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"agenda/shared/weekday"
)

func TestFromCivilDate(t *testing.T) {
	tests := []struct {
		name   string
		date   string
		want   string
		wantOk bool
	}{
		{name: "monday", date: "2025-06-02", want: weekday.Segunda, wantOk: true},
		{name: "tuesday", date: "2025-06-03", want: weekday.Terca, wantOk: true},
		{name: "wednesday", date: "2025-06-04", want: weekday.Quarta, wantOk: true},
		{name: "thursday", date: "2025-06-05", want: weekday.Quinta, wantOk: true},
		{name: "friday", date: "2025-06-06", want: weekday.Sexta, wantOk: true},
		{name: "saturday", date: "2025-06-07", want: weekday.Sabado, wantOk: true},
		{name: "sunday", date: "2025-06-08", want: weekday.Domingo, wantOk: true},
		{name: "leap day", date: "2024-02-29", want: weekday.Quinta, wantOk: true},
		{name: "empty", date: "", wantOk: false},
		{name: "garbage", date: "not-a-date", wantOk: false},
		{name: "wrong layout", date: "02/06/2025", wantOk: false},
		{name: "invalid day", date: "2025-02-30", wantOk: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := weekday.FromCivilDate(tt.date)

			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNames(t *testing.T) {
	names := weekday.Names()

	assert.Len(t, names, 7)
	assert.Equal(t, weekday.Segunda, names[0])
	assert.Equal(t, weekday.Domingo, names[6])
}
