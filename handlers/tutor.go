package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	tutorRepoPkg "tutorbase/database/repository/tutor"
	"tutorbase/models"
	"tutorbase/services/scheduling"
)

// UpdateAvailabilityHandler replaces a tutor's weekly availability template.
// The template is validated before it is stored so a bad row never reaches
// slot generation.
func UpdateAvailabilityHandler(repo tutorRepoPkg.TutorRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tutorID := c.Param("id")

		var input struct {
			Availability []models.WeeklyAvailabilityWindow `json:"availability" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}

		if err := scheduling.ValidateWindows(input.Availability); err != nil {
			var fieldErr *scheduling.FieldError
			if errors.As(err, &fieldErr) {
				c.JSON(http.StatusBadRequest, gin.H{
					"error": "invalid availability template",
					"field": fieldErr.Field,
				})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid availability template"})
			return
		}

		if err := repo.UpdateAvailability(tutorID, input.Availability); err != nil {
			getLogger(c).Error("failed to update availability",
				zap.String("tutorId", tutorID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update availability"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"tutorId": tutorID, "windows": len(input.Availability)})
	}
}
