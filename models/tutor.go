package models

// TutorProfile carries the scheduling settings and the weekly template the
// slot engine's callers read. Template updates go through the availability
// endpoint, which validates every row before it is stored.
type TutorProfile struct {
	ID            string                     `bson:"id" json:"id"`
	DisplayName   string                     `bson:"displayName" json:"displayName"`
	Timezone      string                     `bson:"timezone" json:"timezone"` // IANA identifier
	BufferMinutes int                        `bson:"bufferMinutes" json:"bufferMinutes"`
	Availability  []WeeklyAvailabilityWindow `bson:"availability" json:"availability"`
}
