package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tutorbase/services/booking"
)

// CreateBookingHandler commits a booking for an offered slot.
func CreateBookingHandler(svc booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			TutorID         string    `json:"tutorId" binding:"required"`
			StudentID       string    `json:"studentId" binding:"required"`
			Start           time.Time `json:"start" binding:"required"`
			DurationMinutes int       `json:"durationMinutes" binding:"required,gt=0"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}

		b, err := svc.ConfirmBooking(c.Request.Context(), booking.ConfirmBookingRequest{
			TutorID:         input.TutorID,
			StudentID:       input.StudentID,
			Start:           input.Start,
			DurationMinutes: input.DurationMinutes,
		})
		if err != nil {
			var conflict *booking.ConflictError
			if errors.As(err, &conflict) {
				c.JSON(http.StatusConflict, gin.H{"error": conflict.Message})
				return
			}
			var notFound *booking.NotFoundError
			if errors.As(err, &notFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "tutor not found"})
				return
			}
			getLogger(c).Error("failed to confirm booking",
				zap.String("tutorId", input.TutorID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to confirm booking"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"booking": b})
	}
}
