package scheduling

import (
	"time"

	"tutorbase/models"
)

// AvailabilityRequest carries every input one availability computation needs.
// All I/O (template, bookings, busy windows) happens before this point; the
// engine itself is a pure function of the request and is safe for arbitrarily
// many concurrent callers.
type AvailabilityRequest struct {
	Windows             []models.WeeklyAvailabilityWindow
	StartDate           time.Time
	EndDate             time.Time
	SlotDurationMinutes int
	Timezone            *time.Location // tutor's resolved zone
	Bookings            []models.Booking
	BusyWindows         []models.BusyWindow
	BufferMinutes       int
	Now                 time.Time
	DisplayTimezone     *time.Location // zone for grouping; nil means the tutor's
}

// AvailableSlots runs the four stages in order: generate candidates, drop
// conflicting ones, drop past ones, group for presentation. Identical inputs
// (including Now) produce identical output.
func AvailableSlots(req AvailabilityRequest) ([]models.SlotGroup, error) {
	candidates, err := GenerateSlots(req.Windows, req.StartDate, req.EndDate,
		req.SlotDurationMinutes, req.Timezone)
	if err != nil {
		return nil, err
	}
	open, err := FilterConflicts(candidates, req.Bookings, req.BusyWindows, req.BufferMinutes)
	if err != nil {
		return nil, err
	}
	future := FilterFuture(open, req.Now)

	display := req.DisplayTimezone
	if display == nil {
		display = req.Timezone
	}
	return GroupByLocalDate(future, display), nil
}
