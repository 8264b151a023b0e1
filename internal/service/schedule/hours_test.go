package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGrossHours(t *testing.T) {
	cases := []struct {
		name  string
		start string
		end   string
		want  float64
	}{
		{"standard day shift", "09:00", "17:00", 8},
		{"half-hour boundaries", "09:30", "18:15", 8.75},
		{"overnight shift", "22:00", "06:00", 8},
		{"overnight late start", "23:30", "07:30", 8},
		{"zero-length", "09:00", "09:00", 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.InDelta(t, c.want, GrossHours(c.start, c.end), 0.001)
		})
	}
}

func TestWorkHours(t *testing.T) {
	// 10.5h gross minus a 60 minute break
	assert.InDelta(t, 9.5, WorkHours("09:00", "19:30", 60), 0.001)

	// standard 8h shift with lunch
	assert.InDelta(t, 7, WorkHours("09:00", "17:00", 60), 0.001)

	// overnight with 30 minute break
	assert.InDelta(t, 7.5, WorkHours("22:00", "06:00", 30), 0.001)

	// break longer than the shift floors at zero
	assert.Equal(t, 0.0, WorkHours("09:00", "09:30", 60))
}
