package bookingRepo

import (
	"context"
	"time"

	"tutorbase/models"
)

// BookingRepository defines data access for bookings.
type BookingRepository interface {
	// ListActiveInRange returns every non-cancelled booking for the tutor
	// whose occupied time intersects [from, to).
	ListActiveInRange(tutorID string, from, to time.Time) ([]models.Booking, error)

	// CommitBooking inserts the booking inside a transaction after
	// re-checking that its window is still free. It returns
	// ErrBookingConflict if another booking or busy window claimed the
	// slot between the availability read and the commit.
	CommitBooking(ctx context.Context, booking *models.Booking, busy []models.BusyWindow, bufferMinutes int) error
}
