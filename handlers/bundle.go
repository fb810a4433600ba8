// File: tutorbase/handlers/bundle.go
package handlers

import (
	tutorRepoPkg "tutorbase/database/repository/tutor"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	TutorRepo tutorRepoPkg.TutorRepository

	// Availability endpoints
	GetTutorSlotsHandler gin.HandlerFunc

	// Booking endpoints
	CreateBookingHandler gin.HandlerFunc

	// Tutor endpoints
	UpdateAvailabilityHandler gin.HandlerFunc
	CreateBusyWindowHandler   gin.HandlerFunc
	DeleteBusyWindowHandler   gin.HandlerFunc
}
