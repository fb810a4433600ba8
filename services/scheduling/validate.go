package scheduling

import (
	"fmt"
	"strconv"
	"strings"

	"tutorbase/models"
)

// parseClock parses an "HH:MM" wall-clock string into minutes from midnight.
// Out-of-range and malformed values are rejected rather than clamped.
func parseClock(field, value string) (int, error) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return 0, newFieldError(field, "malformed time %q, want HH:MM", value)
	}
	hour, errH := strconv.Atoi(parts[0])
	minute, errM := strconv.Atoi(parts[1])
	if errH != nil || errM != nil {
		return 0, newFieldError(field, "malformed time %q, want HH:MM", value)
	}
	if hour < 0 || hour > 23 {
		return 0, newFieldError(field, "hour %d out of range 0-23", hour)
	}
	if minute < 0 || minute > 59 {
		return 0, newFieldError(field, "minute %d out of range 0-59", minute)
	}
	return hour*60 + minute, nil
}

// windowSpec is one validated template row with its clock strings already
// parsed to minutes from midnight. Generation consumes these, never the raw
// strings, so the parsed values are always the validated ones.
type windowSpec struct {
	day      int
	startMin int
	endMin   int
	enabled  bool
}

// parseWindows checks the structural invariants of a weekly template and
// returns the parsed rows. Disabled rows are validated too, so a broken row
// cannot hide behind isAvailable=false until someone re-enables it.
func parseWindows(windows []models.WeeklyAvailabilityWindow) ([]windowSpec, error) {
	specs := make([]windowSpec, 0, len(windows))
	for i, w := range windows {
		if w.DayOfWeek < 0 || w.DayOfWeek > 6 {
			return nil, newFieldError(fmt.Sprintf("windows[%d].dayOfWeek", i),
				"must be 0 (Sunday) through 6 (Saturday), got %d", w.DayOfWeek)
		}
		start, err := parseClock(fmt.Sprintf("windows[%d].startTime", i), w.StartTime)
		if err != nil {
			return nil, err
		}
		end, err := parseClock(fmt.Sprintf("windows[%d].endTime", i), w.EndTime)
		if err != nil {
			return nil, err
		}
		if start >= end {
			return nil, newFieldError(fmt.Sprintf("windows[%d]", i),
				"startTime %s must be before endTime %s", w.StartTime, w.EndTime)
		}
		specs = append(specs, windowSpec{
			day:      w.DayOfWeek,
			startMin: start,
			endMin:   end,
			enabled:  w.IsAvailable,
		})
	}
	return specs, nil
}

// ValidateWindows checks a weekly template without generating from it.
func ValidateWindows(windows []models.WeeklyAvailabilityWindow) error {
	_, err := parseWindows(windows)
	return err
}

// ValidateSlotDuration rejects non-positive slot lengths.
func ValidateSlotDuration(minutes int) error {
	if minutes <= 0 {
		return newFieldError("slotDurationMinutes", "must be positive, got %d", minutes)
	}
	return nil
}

// ValidateBufferMinutes rejects negative buffers. Zero means exact
// back-to-back bookings are permitted.
func ValidateBufferMinutes(minutes int) error {
	if minutes < 0 {
		return newFieldError("bufferMinutes", "must not be negative, got %d", minutes)
	}
	return nil
}
