package models

import (
	"strings"
	"time"
)

// BookingStatus is the lifecycle state of a booking. Cancellation is a family
// of terminal sub-states sharing the "cancelled" prefix, so new sub-states
// can be introduced without touching conflict logic.
type BookingStatus string

const (
	BookingStatusPending            BookingStatus = "pending"
	BookingStatusConfirmed          BookingStatus = "confirmed"
	BookingStatusCompleted          BookingStatus = "completed"
	BookingStatusCancelled          BookingStatus = "cancelled"
	BookingStatusCancelledByTutor   BookingStatus = "cancelled_by_tutor"
	BookingStatusCancelledByStudent BookingStatus = "cancelled_by_student"
)

// IsTerminalCancelled reports whether the status belongs to the cancelled
// family. Cancelled bookings release their time and are ignored by conflict
// detection.
func (s BookingStatus) IsTerminalCancelled() bool {
	return strings.HasPrefix(string(s), string(BookingStatusCancelled))
}

// Booking is a committed reservation on a tutor's calendar. The engine treats
// bookings as immutable read-only input; create/cancel/reschedule live in the
// booking transaction layer.
type Booking struct {
	ID              string        `bson:"id" json:"id"`
	TutorID         string        `bson:"tutorId" json:"tutorId"`
	StudentID       string        `bson:"studentId" json:"studentId"`
	ScheduledAt     time.Time     `bson:"scheduledAt" json:"scheduledAt"` // UTC
	DurationMinutes int           `bson:"durationMinutes" json:"durationMinutes"`
	EndAt           time.Time     `bson:"endAt" json:"endAt"` // ScheduledAt + duration, denormalized for range queries
	Status          BookingStatus `bson:"status" json:"status"`
	CreatedAt       time.Time     `bson:"createdAt" json:"createdAt"`
}

// End returns the instant the booked lesson finishes.
func (b Booking) End() time.Time {
	return b.ScheduledAt.Add(time.Duration(b.DurationMinutes) * time.Minute)
}
