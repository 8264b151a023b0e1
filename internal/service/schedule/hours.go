package schedule

import (
	"strconv"
	"strings"
)

// clockToHours converts an "HH:MM" clock string to fractional hours.
// Callers validate the format first; malformed input yields 0.
func clockToHours(clock string) float64 {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0
	}
	return float64(h) + float64(m)/60.0
}

// GrossHours returns the span between start and end in hours. A shift whose
// end clock is earlier than its start crosses midnight.
func GrossHours(startTime, endTime string) float64 {
	start := clockToHours(startTime)
	end := clockToHours(endTime)
	if end < start {
		return 24 - start + end
	}
	return end - start
}

// WorkHours returns the gross span minus the role's break allowance, floored
// at zero.
func WorkHours(startTime, endTime string, breakMinutes int) float64 {
	worked := GrossHours(startTime, endTime) - float64(breakMinutes)/60.0
	if worked < 0 {
		return 0
	}
	return worked
}
