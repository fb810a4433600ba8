package scheduling

import (
	"errors"
	"testing"
	"time"

	"tutorbase/models"
)

func mondayWindow() []models.WeeklyAvailabilityWindow {
	return []models.WeeklyAvailabilityWindow{
		{DayOfWeek: 1, StartTime: "09:00", EndTime: "11:00", IsAvailable: true},
	}
}

func TestGenerateSlots_SingleMonday(t *testing.T) {
	// 2025-03-03 is a Monday.
	start := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)

	slots, err := GenerateSlots(mondayWindow(), start, end, 60, time.UTC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(slots))
	}
	if !slots[0].Start.Equal(time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected first slot 09:00 UTC, got %s", slots[0].Start.Format(time.RFC3339))
	}
	if !slots[1].Start.Equal(time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected second slot 10:00 UTC, got %s", slots[1].Start.Format(time.RFC3339))
	}
	if !slots[1].End.Equal(time.Date(2025, 3, 3, 11, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected second slot to end 11:00 UTC, got %s", slots[1].End.Format(time.RFC3339))
	}
}

func TestGenerateSlots_NoPartialTrailingSlot(t *testing.T) {
	windows := []models.WeeklyAvailabilityWindow{
		{DayOfWeek: 1, StartTime: "09:00", EndTime: "10:30", IsAvailable: true},
	}
	day := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)

	slots, err := GenerateSlots(windows, day, day, 60, time.UTC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 1 {
		t.Fatalf("expected 1 slot (no partial trailing slot), got %d", len(slots))
	}
}

func TestGenerateSlots_DurationInvariant(t *testing.T) {
	windows := []models.WeeklyAvailabilityWindow{
		{DayOfWeek: 1, StartTime: "08:00", EndTime: "12:00", IsAvailable: true},
		{DayOfWeek: 3, StartTime: "14:15", EndTime: "17:00", IsAvailable: true},
	}
	start := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC)

	slots, err := GenerateSlots(windows, start, end, 45, time.UTC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) == 0 {
		t.Fatal("expected slots")
	}
	for _, s := range slots {
		if got := s.End.Sub(s.Start); got != 45*time.Minute {
			t.Fatalf("expected every slot to span exactly 45m, got %s", got)
		}
		if s.DurationMinutes != 45 {
			t.Fatalf("expected DurationMinutes 45, got %d", s.DurationMinutes)
		}
	}
}

func TestGenerateSlots_DSTSpringForward(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("failed to load America/New_York: %v", err)
	}
	// US DST begins 2025-03-09. 09:00 local is 14:00 UTC on Saturday (EST)
	// and 13:00 UTC on Sunday (EDT).
	windows := []models.WeeklyAvailabilityWindow{
		{DayOfWeek: 6, StartTime: "09:00", EndTime: "10:00", IsAvailable: true},
		{DayOfWeek: 0, StartTime: "09:00", EndTime: "10:00", IsAvailable: true},
	}
	start := time.Date(2025, 3, 8, 0, 0, 0, 0, loc)
	end := time.Date(2025, 3, 9, 0, 0, 0, 0, loc)

	slots, err := GenerateSlots(windows, start, end, 60, loc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(slots))
	}
	if !slots[0].Start.Equal(time.Date(2025, 3, 8, 14, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected Saturday slot at 14:00 UTC (EST), got %s", slots[0].Start.Format(time.RFC3339))
	}
	if !slots[1].Start.Equal(time.Date(2025, 3, 9, 13, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected Sunday slot at 13:00 UTC (EDT), got %s", slots[1].Start.Format(time.RFC3339))
	}
}

func TestGenerateSlots_MatchesTutorLocalWeekday(t *testing.T) {
	loc, err := time.LoadLocation("America/Los_Angeles")
	if err != nil {
		t.Fatalf("failed to load America/Los_Angeles: %v", err)
	}
	// 2025-03-04T02:00Z is still Monday 18:00 on 2025-03-03 in Los Angeles,
	// so the Monday window must fire even though the UTC date is Tuesday.
	start := time.Date(2025, 3, 4, 2, 0, 0, 0, time.UTC)

	slots, err := GenerateSlots(mondayWindow(), start, start, 60, loc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 2 {
		t.Fatalf("expected the local Monday to match, got %d slots", len(slots))
	}
	// 09:00 PST is 17:00 UTC.
	if !slots[0].Start.Equal(time.Date(2025, 3, 3, 17, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected first slot at 17:00 UTC, got %s", slots[0].Start.Format(time.RFC3339))
	}
}

func TestGenerateSlots_MinutePrecisionWindow(t *testing.T) {
	// Starts and cursors come from the parsed template minutes, so an
	// off-hour window keeps its exact offsets.
	windows := []models.WeeklyAvailabilityWindow{
		{DayOfWeek: 1, StartTime: "09:05", EndTime: "10:10", IsAvailable: true},
	}
	day := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)

	slots, err := GenerateSlots(windows, day, day, 30, time.UTC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(slots))
	}
	if !slots[0].Start.Equal(time.Date(2025, 3, 3, 9, 5, 0, 0, time.UTC)) {
		t.Fatalf("expected first slot 09:05, got %s", slots[0].Start.Format(time.RFC3339))
	}
	if !slots[1].Start.Equal(time.Date(2025, 3, 3, 9, 35, 0, 0, time.UTC)) {
		t.Fatalf("expected second slot 09:35, got %s", slots[1].Start.Format(time.RFC3339))
	}
}

func TestGenerateSlots_SkipsDisabledWindows(t *testing.T) {
	windows := []models.WeeklyAvailabilityWindow{
		{DayOfWeek: 1, StartTime: "09:00", EndTime: "11:00", IsAvailable: false},
	}
	day := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)

	slots, err := GenerateSlots(windows, day, day, 60, time.UTC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("expected no slots from a disabled window, got %d", len(slots))
	}
}

func TestGenerateSlots_OverlappingWindowsBothEmit(t *testing.T) {
	windows := []models.WeeklyAvailabilityWindow{
		{DayOfWeek: 1, StartTime: "09:00", EndTime: "11:00", IsAvailable: true},
		{DayOfWeek: 1, StartTime: "10:00", EndTime: "12:00", IsAvailable: true},
	}
	day := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)

	slots, err := GenerateSlots(windows, day, day, 60, time.UTC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Misconfigured overlapping windows are an upstream data-quality concern;
	// both emit independently.
	if len(slots) != 4 {
		t.Fatalf("expected 4 slots from two overlapping windows, got %d", len(slots))
	}
}

func TestGenerateSlots_RejectsInvalidInput(t *testing.T) {
	day := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		name     string
		windows  []models.WeeklyAvailabilityWindow
		duration int
	}{
		{
			name: "malformed start time",
			windows: []models.WeeklyAvailabilityWindow{
				{DayOfWeek: 1, StartTime: "25:00", EndTime: "26:00", IsAvailable: true},
			},
			duration: 60,
		},
		{
			name: "start not before end",
			windows: []models.WeeklyAvailabilityWindow{
				{DayOfWeek: 1, StartTime: "11:00", EndTime: "09:00", IsAvailable: true},
			},
			duration: 60,
		},
		{
			name: "day of week out of range",
			windows: []models.WeeklyAvailabilityWindow{
				{DayOfWeek: 7, StartTime: "09:00", EndTime: "11:00", IsAvailable: true},
			},
			duration: 60,
		},
		{
			name:     "non-positive duration",
			windows:  mondayWindow(),
			duration: 0,
		},
		{
			name: "disabled row still validated",
			windows: []models.WeeklyAvailabilityWindow{
				{DayOfWeek: 1, StartTime: "junk", EndTime: "11:00", IsAvailable: false},
			},
			duration: 60,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := GenerateSlots(tc.windows, day, day, tc.duration, time.UTC)
			var fieldErr *FieldError
			if !errors.As(err, &fieldErr) {
				t.Fatalf("expected *FieldError, got %v", err)
			}
		})
	}
}

func TestGenerateSlots_RangeEndBeforeStart(t *testing.T) {
	start := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)

	_, err := GenerateSlots(mondayWindow(), start, end, 60, time.UTC)
	var fieldErr *FieldError
	if !errors.As(err, &fieldErr) {
		t.Fatalf("expected *FieldError for inverted range, got %v", err)
	}
}
