package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tutorbase/config"
	"tutorbase/services/booking"
	"tutorbase/services/scheduling"
)

// GetTutorSlotsHandler returns the tutor's bookable slots over the booking
// window, grouped by local date. Query params: duration (minutes, optional)
// and tz (IANA name for the viewer's display zone, optional).
func GetTutorSlotsHandler(svc booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tutorID := c.Param("id")

		duration := config.AppConfig.DefaultSlotDurationMinutes
		if raw := c.Query("duration"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "duration must be a positive integer"})
				return
			}
			duration = parsed
		}

		// A bad viewer zone falls back to grouping in the tutor's own zone
		// rather than failing the request.
		displayTZ, err := scheduling.ResolveTimezone(c.Query("tz"))
		if err != nil {
			displayTZ = nil
		}

		groups, err := svc.AvailableSlots(c.Request.Context(), tutorID, duration, displayTZ)
		if err != nil {
			var notFound *booking.NotFoundError
			if errors.As(err, &notFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "tutor not found"})
				return
			}
			var fieldErr *scheduling.FieldError
			if errors.As(err, &fieldErr) {
				// The template row details stay in the logs; the caller only
				// learns the request could not be served.
				getLogger(c).Warn("invalid availability template",
					zap.String("tutorId", tutorID), zap.Error(err))
				c.JSON(http.StatusBadRequest, gin.H{"error": "tutor availability is misconfigured"})
				return
			}
			getLogger(c).Error("failed to compute availability",
				zap.String("tutorId", tutorID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute availability"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"tutorId":  tutorID,
			"duration": scheduling.FormatDuration(duration),
			"days":     groups,
		})
	}
}
