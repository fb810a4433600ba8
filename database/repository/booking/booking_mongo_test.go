package bookingRepo

import (
	"errors"
	"testing"
	"time"

	"tutorbase/models"
)

func slotAt(start time.Time, minutes int) models.BookableSlot {
	return models.BookableSlot{
		Start:           start,
		End:             start.Add(time.Duration(minutes) * time.Minute),
		DurationMinutes: minutes,
	}
}

func TestCheckCommit_RejectsRacingBooking(t *testing.T) {
	// Both students saw the 10:00 slot as open; the first writer's booking is
	// in the fresh read when the second writer re-checks.
	start := time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC)
	winner := models.Booking{
		ScheduledAt:     start,
		DurationMinutes: 60,
		Status:          models.BookingStatusConfirmed,
	}

	err := checkCommit(slotAt(start, 60), []models.Booking{winner}, nil, 0)
	if !errors.Is(err, ErrBookingConflict) {
		t.Fatalf("expected ErrBookingConflict for the losing writer, got %v", err)
	}
}

func TestCheckCommit_AdmitsFreeSlot(t *testing.T) {
	start := time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC)
	neighbour := models.Booking{
		ScheduledAt:     start.Add(-time.Hour), // 09:00-10:00, touching only
		DurationMinutes: 60,
		Status:          models.BookingStatusConfirmed,
	}

	if err := checkCommit(slotAt(start, 60), []models.Booking{neighbour}, nil, 0); err != nil {
		t.Fatalf("expected a touching neighbour to admit the slot, got %v", err)
	}
}

func TestCheckCommit_IgnoresCancelledRacer(t *testing.T) {
	start := time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC)
	cancelled := models.Booking{
		ScheduledAt:     start,
		DurationMinutes: 60,
		Status:          models.BookingStatusCancelledByStudent,
	}

	if err := checkCommit(slotAt(start, 60), []models.Booking{cancelled}, nil, 0); err != nil {
		t.Fatalf("expected a cancelled booking not to block the commit, got %v", err)
	}
}

func TestCheckCommit_BufferedRacerBlocks(t *testing.T) {
	// A booking ending 10:00 with a 15-minute buffer reaches into a slot
	// starting 10:10.
	racerStart := time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)
	racer := models.Booking{
		ScheduledAt:     racerStart,
		DurationMinutes: 60,
		Status:          models.BookingStatusConfirmed,
	}
	slot := slotAt(time.Date(2025, 3, 3, 10, 10, 0, 0, time.UTC), 60)

	err := checkCommit(slot, []models.Booking{racer}, nil, 15)
	if !errors.Is(err, ErrBookingConflict) {
		t.Fatalf("expected the buffered racer to block the commit, got %v", err)
	}
}

func TestCheckCommit_BusyWindowBlocks(t *testing.T) {
	slot := slotAt(time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC), 60)
	busy := models.BusyWindow{
		Start: time.Date(2025, 3, 3, 10, 30, 0, 0, time.UTC),
		End:   time.Date(2025, 3, 3, 11, 30, 0, 0, time.UTC),
	}

	err := checkCommit(slot, nil, []models.BusyWindow{busy}, 0)
	if !errors.Is(err, ErrBookingConflict) {
		t.Fatalf("expected an overlapping busy window to block the commit, got %v", err)
	}
}
