package scheduling

import (
	"fmt"
	"sort"
	"time"

	"tutorbase/models"
)

// FilterFuture keeps only slots whose start is strictly after now. A slot
// starting exactly at now is already unbookable.
func FilterFuture(slots []models.BookableSlot, now time.Time) []models.BookableSlot {
	future := make([]models.BookableSlot, 0, len(slots))
	for _, s := range slots {
		if s.Start.After(now) {
			future = append(future, s)
		}
	}
	return future
}

// GroupByLocalDate groups slots by their start date in the display timezone,
// which may differ from the tutor's own zone (e.g. the student's). Groups and
// the slots inside them come out in chronological order; the generator
// already walks sequentially, but ordering is re-established here rather than
// assumed.
func GroupByLocalDate(slots []models.BookableSlot, loc *time.Location) []models.SlotGroup {
	if loc == nil {
		loc = time.UTC
	}
	sorted := make([]models.BookableSlot, len(slots))
	copy(sorted, slots)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})

	var groups []models.SlotGroup
	for _, s := range sorted {
		local := s.Start.In(loc)
		key := local.Format("2006-01-02")
		if len(groups) == 0 || groups[len(groups)-1].DateKey != key {
			groups = append(groups, models.SlotGroup{
				DateKey:   key,
				DateLabel: local.Format("Monday, January 2, 2006"),
			})
		}
		groups[len(groups)-1].Slots = append(groups[len(groups)-1].Slots, s)
	}
	return groups
}

// FormatDuration renders a minute count the way slot labels show it,
// e.g. "45m", "2hr", "1hr 30m".
func FormatDuration(minutes int) string {
	if minutes <= 0 {
		return "0m"
	}
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	hours := minutes / 60
	rest := minutes % 60
	if rest == 0 {
		return fmt.Sprintf("%dhr", hours)
	}
	return fmt.Sprintf("%dhr %dm", hours, rest)
}
