package models

// WeeklyAvailabilityWindow is one row of a tutor's recurring weekly template.
// Day and times are wall-clock values in the tutor's own timezone, not UTC.
// A window never crosses midnight; the template owner expresses an overnight
// range as two rows.
type WeeklyAvailabilityWindow struct {
	DayOfWeek   int    `bson:"dayOfWeek" json:"dayOfWeek"` // 0 = Sunday .. 6 = Saturday
	StartTime   string `bson:"startTime" json:"startTime"` // "HH:MM"
	EndTime     string `bson:"endTime" json:"endTime"`     // "HH:MM"
	IsAvailable bool   `bson:"isAvailable" json:"isAvailable"`
}
