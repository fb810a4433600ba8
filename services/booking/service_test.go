package booking

import (
	"testing"
	"time"

	"tutorbase/models"
)

func weekdayTemplate() []models.WeeklyAvailabilityWindow {
	return []models.WeeklyAvailabilityWindow{
		{DayOfWeek: 1, StartTime: "09:00", EndTime: "12:00", IsAvailable: true},
	}
}

func TestSlotOffered_ExactMatch(t *testing.T) {
	// 2025-03-03 is a Monday; 10:00 UTC is a generated 60-minute slot start.
	start := time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC)

	ok, err := slotOffered(weekdayTemplate(), start, 60, time.UTC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected 10:00 Monday to be an offered slot")
	}
}

func TestSlotOffered_RejectsOffGridStart(t *testing.T) {
	// 10:30 falls between the 10:00 and 11:00 slot starts.
	start := time.Date(2025, 3, 3, 10, 30, 0, 0, time.UTC)

	ok, err := slotOffered(weekdayTemplate(), start, 60, time.UTC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("expected an off-grid start to be rejected")
	}
}

func TestSlotOffered_RejectsWrongDay(t *testing.T) {
	// 2025-03-04 is a Tuesday; the template only offers Mondays.
	start := time.Date(2025, 3, 4, 10, 0, 0, 0, time.UTC)

	ok, err := slotOffered(weekdayTemplate(), start, 60, time.UTC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("expected a day outside the template to be rejected")
	}
}

func TestSlotOffered_TutorLocalDay(t *testing.T) {
	loc, err := time.LoadLocation("America/Los_Angeles")
	if err != nil {
		t.Fatalf("failed to load America/Los_Angeles: %v", err)
	}
	// 2025-03-04T02:00Z is Monday 18:00 in Los Angeles. With an evening
	// window the slot exists even though the UTC date is Tuesday.
	windows := []models.WeeklyAvailabilityWindow{
		{DayOfWeek: 1, StartTime: "17:00", EndTime: "20:00", IsAvailable: true},
	}
	start := time.Date(2025, 3, 4, 2, 0, 0, 0, time.UTC) // 18:00 PST Monday

	ok, err := slotOffered(windows, start, 60, loc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected the tutor-local Monday evening slot to be offered")
	}
}
