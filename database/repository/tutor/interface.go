package tutorRepo

import "tutorbase/models"

// TutorRepository defines data access for tutor profiles, including their
// weekly availability template.
type TutorRepository interface {
	GetByID(id string) (*models.TutorProfile, error)
	UpdateAvailability(id string, windows []models.WeeklyAvailabilityWindow) error
	InvalidateCache(id string) error
}
