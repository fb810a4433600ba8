package scheduling

import (
	"time"

	"tutorbase/models"
)

// HasConflict reports whether the candidate slot overlaps any non-cancelled
// booking or any busy window, once each is expanded by bufferMinutes on both
// sides. Overlap is exclusive-boundary: two ranges that only touch at an
// endpoint do not conflict, so zero-buffer back-to-back bookings stay legal.
// It short-circuits on the first conflict found.
//
// The booking-commit transaction must run this exact predicate against a
// transaction-fresh read of bookings before inserting, to close the
// time-of-check/time-of-use race between two callers who both saw the slot
// as open.
func HasConflict(
	slot models.BookableSlot,
	bookings []models.Booking,
	busyWindows []models.BusyWindow,
	bufferMinutes int,
) bool {
	buffer := time.Duration(bufferMinutes) * time.Minute
	for _, b := range bookings {
		if b.Status.IsTerminalCancelled() {
			continue
		}
		if overlaps(slot.Start, slot.End, b.ScheduledAt.Add(-buffer), b.End().Add(buffer)) {
			return true
		}
	}
	for _, w := range busyWindows {
		if overlaps(slot.Start, slot.End, w.Start.Add(-buffer), w.End.Add(buffer)) {
			return true
		}
	}
	return false
}

// FilterConflicts drops every candidate slot that conflicts with a committed
// booking or busy window under the given buffer. Slot order is preserved.
func FilterConflicts(
	slots []models.BookableSlot,
	bookings []models.Booking,
	busyWindows []models.BusyWindow,
	bufferMinutes int,
) ([]models.BookableSlot, error) {
	if err := ValidateBufferMinutes(bufferMinutes); err != nil {
		return nil, err
	}
	open := make([]models.BookableSlot, 0, len(slots))
	for _, s := range slots {
		if !HasConflict(s, bookings, busyWindows, bufferMinutes) {
			open = append(open, s)
		}
	}
	return open, nil
}

// overlaps is the exclusive-boundary interval test: [s1, e1) against [s2, e2).
func overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && s2.Before(e1)
}
