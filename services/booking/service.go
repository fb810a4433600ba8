package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	bookingRepo "tutorbase/database/repository/booking"
	"tutorbase/models"
	"tutorbase/services/scheduling"
	"tutorbase/utils"

	"go.uber.org/zap"
)

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// AvailableSlots loads the tutor's template, bookings and busy windows, then
// runs the availability computation over the configured booking window.
func (s *DefaultBookingService) AvailableSlots(ctx context.Context, tutorID string, slotDurationMinutes int, displayTimezone *time.Location) ([]models.SlotGroup, error) {
	tutor, err := s.TutorRepo.GetByID(tutorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load tutor %s: %w", tutorID, err)
	}
	if tutor == nil {
		return nil, NewNotFoundError(fmt.Sprintf("tutor %s not found", tutorID))
	}

	loc := scheduling.ResolveTimezoneOrUTC(tutor.Timezone)
	now := s.now()
	start := now
	end := now.AddDate(0, 0, s.WindowDays)

	// Widen the booking read by the buffer so edge bookings are seen.
	buffer := time.Duration(tutor.BufferMinutes) * time.Minute
	bookings, err := s.BookingRepo.ListActiveInRange(tutorID, start.Add(-buffer), end.Add(buffer))
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings for tutor %s: %w", tutorID, err)
	}
	busy, err := s.BusyRepo.ListInRange(tutorID, start.Add(-buffer), end.Add(buffer))
	if err != nil {
		return nil, fmt.Errorf("failed to load busy windows for tutor %s: %w", tutorID, err)
	}

	groups, err := scheduling.AvailableSlots(scheduling.AvailabilityRequest{
		Windows:             tutor.Availability,
		StartDate:           start.In(loc),
		EndDate:             end.In(loc),
		SlotDurationMinutes: slotDurationMinutes,
		Timezone:            loc,
		Bookings:            bookings,
		BusyWindows:         busy,
		BufferMinutes:       tutor.BufferMinutes,
		Now:                 now,
		DisplayTimezone:     displayTimezone,
	})
	if err != nil {
		return nil, err
	}

	utils.GetLogger().Debug("computed availability",
		zap.String("tutorId", tutorID),
		zap.Int("groups", len(groups)))
	return groups, nil
}

// ConfirmBooking checks that the requested window is a slot the tutor's
// template actually offers, then commits it transactionally. The repository
// re-runs the conflict check inside the transaction, so a race between two
// students for the same slot resolves to one booking and one ConflictError.
func (s *DefaultBookingService) ConfirmBooking(ctx context.Context, req ConfirmBookingRequest) (*models.Booking, error) {
	tutor, err := s.TutorRepo.GetByID(req.TutorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load tutor %s: %w", req.TutorID, err)
	}
	if tutor == nil {
		return nil, NewNotFoundError(fmt.Sprintf("tutor %s not found", req.TutorID))
	}

	now := s.now()
	if !req.Start.After(now) {
		return nil, NewConflictError("requested slot start is in the past")
	}

	loc := scheduling.ResolveTimezoneOrUTC(tutor.Timezone)
	offered, err := slotOffered(tutor.Availability, req.Start, req.DurationMinutes, loc)
	if err != nil {
		return nil, err
	}
	if !offered {
		return nil, NewConflictError("requested window is not a slot this tutor offers")
	}

	buffer := time.Duration(tutor.BufferMinutes) * time.Minute
	slotEnd := req.Start.Add(time.Duration(req.DurationMinutes) * time.Minute)
	busy, err := s.BusyRepo.ListInRange(req.TutorID, req.Start.Add(-buffer), slotEnd.Add(buffer))
	if err != nil {
		return nil, fmt.Errorf("failed to load busy windows for tutor %s: %w", req.TutorID, err)
	}

	b := &models.Booking{
		TutorID:         req.TutorID,
		StudentID:       req.StudentID,
		ScheduledAt:     req.Start.UTC(),
		DurationMinutes: req.DurationMinutes,
		Status:          models.BookingStatusConfirmed,
	}
	if err := s.BookingRepo.CommitBooking(ctx, b, busy, tutor.BufferMinutes); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingConflict) {
			return nil, NewConflictError("slot was booked by someone else, pick another")
		}
		return nil, err
	}

	utils.GetLogger().Info("booking confirmed",
		zap.String("bookingId", b.ID),
		zap.String("tutorId", b.TutorID),
		zap.Time("scheduledAt", b.ScheduledAt))
	return b, nil
}

// slotOffered reports whether the tutor's weekly template generates a slot
// starting exactly at start with the requested duration. Only the slot's own
// local day needs regenerating.
func slotOffered(windows []models.WeeklyAvailabilityWindow, start time.Time, durationMinutes int, loc *time.Location) (bool, error) {
	day := start.In(loc)
	candidates, err := scheduling.GenerateSlots(windows, day, day, durationMinutes, loc)
	if err != nil {
		return false, err
	}
	for _, c := range candidates {
		if c.Start.Equal(start) {
			return true, nil
		}
	}
	return false, nil
}
