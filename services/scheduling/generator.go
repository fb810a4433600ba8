package scheduling

import (
	"time"

	"tutorbase/models"
)

// GenerateSlots materializes fixed-duration candidate slots from a tutor's
// weekly template over [startDate, endDate], walking one local calendar day
// at a time in loc. Candidates are unfiltered for conflicts; that is the
// conflict detector's pass.
//
// Every slot start is anchored on its local day through the zone database,
// so a 9:00 slot on a DST transition day resolves to the instant the wall
// clock actually shows, not a naively offset one. A window's trailing
// remainder shorter than the slot duration is never emitted.
//
// Two overlapping windows on the same day both emit their slots; the engine
// does not merge a misconfigured template.
func GenerateSlots(
	windows []models.WeeklyAvailabilityWindow,
	startDate, endDate time.Time,
	slotDurationMinutes int,
	loc *time.Location,
) ([]models.BookableSlot, error) {
	specs, err := parseWindows(windows)
	if err != nil {
		return nil, err
	}
	if err := ValidateSlotDuration(slotDurationMinutes); err != nil {
		return nil, err
	}
	if loc == nil {
		loc = time.UTC
	}
	if endDate.Before(startDate) {
		return nil, newFieldError("endDate", "must not precede startDate")
	}

	// Truncate both range endpoints to local midnight; the walk is inclusive
	// of both days.
	day := localMidnight(startDate, loc)
	last := localMidnight(endDate, loc)

	duration := time.Duration(slotDurationMinutes) * time.Minute
	var slots []models.BookableSlot
	for ; !day.After(last); day = day.AddDate(0, 0, 1) {
		weekday := int(day.Weekday())
		for _, w := range specs {
			if !w.enabled || w.day != weekday {
				continue
			}
			for cursor := w.startMin; cursor+slotDurationMinutes <= w.endMin; cursor += slotDurationMinutes {
				start := clockOnDay(day, cursor, loc)
				slots = append(slots, models.BookableSlot{
					Start:           start.UTC(),
					End:             start.Add(duration).UTC(),
					DurationMinutes: slotDurationMinutes,
				})
			}
		}
	}
	return slots, nil
}

// localMidnight truncates an instant to 00:00 of its calendar day in loc.
func localMidnight(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// clockOnDay anchors wall-clock minutes from midnight onto a local calendar
// day.
func clockOnDay(day time.Time, minutes int, loc *time.Location) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), minutes/60, minutes%60, 0, 0, loc)
}
