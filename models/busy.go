package models

import "time"

// BusyWindow is an externally sourced blocked range: a synced third-party
// calendar event or a manual tutor block. Busy windows are always active;
// removing one is the sync layer's job, not a status change.
type BusyWindow struct {
	ID      string    `bson:"id" json:"id"`
	TutorID string    `bson:"tutorId" json:"tutorId"`
	Start   time.Time `bson:"start" json:"start"` // UTC
	End     time.Time `bson:"end" json:"end"`     // UTC
	Source  string    `bson:"source,omitempty" json:"source,omitempty"` // e.g. "google", "manual"
}
