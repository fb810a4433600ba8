package models

import "time"

// BookableSlot is a concrete candidate reservation window derived from a
// WeeklyAvailabilityWindow. Slots are computed fresh on every request and
// never persisted; the caller renders them or immediately re-validates one at
// booking time.
type BookableSlot struct {
	Start           time.Time `json:"start"` // UTC
	End             time.Time `json:"end"`   // UTC
	DurationMinutes int       `json:"durationMinutes"`
}

// SlotGroup is one local calendar day of open slots, keyed and labelled in
// the display timezone for calendar UIs.
type SlotGroup struct {
	DateKey   string         `json:"dateKey"`   // "2006-01-02"
	DateLabel string         `json:"dateLabel"` // e.g. "Monday, March 3, 2025"
	Slots     []BookableSlot `json:"slots"`
}
