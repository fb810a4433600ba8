package booking

import (
	"context"
	"time"

	bookingRepo "tutorbase/database/repository/booking"
	busyRepo "tutorbase/database/repository/busy"
	tutorRepo "tutorbase/database/repository/tutor"
	"tutorbase/models"
)

// ConfirmBookingRequest carries everything needed to commit one booking.
type ConfirmBookingRequest struct {
	TutorID         string
	StudentID       string
	Start           time.Time
	DurationMinutes int
}

// BookingService defines the interface for computing availability and
// committing bookings against it.
type BookingService interface {
	// AvailableSlots computes the tutor's open slots over the configured
	// booking window, grouped by local date. displayTimezone may be nil to
	// group in the tutor's own zone.
	AvailableSlots(ctx context.Context, tutorID string, slotDurationMinutes int, displayTimezone *time.Location) ([]models.SlotGroup, error)

	// ConfirmBooking validates the requested slot against the tutor's
	// current availability and commits it transactionally.
	ConfirmBooking(ctx context.Context, req ConfirmBookingRequest) (*models.Booking, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	TutorRepo   tutorRepo.TutorRepository
	BookingRepo bookingRepo.BookingRepository
	BusyRepo    busyRepo.BusyRepository
	WindowDays  int
	// Now allows tests to pin the clock; nil means time.Now.
	Now func() time.Time
}
