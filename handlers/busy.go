package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	busyRepoPkg "tutorbase/database/repository/busy"
	"tutorbase/models"
)

// CreateBusyWindowHandler records a manual block on the tutor's calendar.
// Blocked ranges behave exactly like synced calendar events: slots touching
// them disappear from availability.
func CreateBusyWindowHandler(repo busyRepoPkg.BusyRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tutorID := c.Param("id")

		var input struct {
			Start time.Time `json:"start" binding:"required"`
			End   time.Time `json:"end" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}
		if !input.End.After(input.Start) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "end must be after start"})
			return
		}

		window := &models.BusyWindow{
			ID:      uuid.NewString(),
			TutorID: tutorID,
			Start:   input.Start.UTC(),
			End:     input.End.UTC(),
			Source:  "manual",
		}
		if err := repo.Create(window); err != nil {
			getLogger(c).Error("failed to create busy window",
				zap.String("tutorId", tutorID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create busy window"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"busyWindow": window})
	}
}

// DeleteBusyWindowHandler removes one of the tutor's manual blocks.
func DeleteBusyWindowHandler(repo busyRepoPkg.BusyRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tutorID := c.Param("id")
		windowID := c.Param("windowId")

		if err := repo.Delete(tutorID, windowID); err != nil {
			if errors.Is(err, busyRepoPkg.ErrBusyWindowNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "busy window not found"})
				return
			}
			getLogger(c).Error("failed to delete busy window",
				zap.String("tutorId", tutorID), zap.String("windowId", windowID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete busy window"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"deleted": windowID})
	}
}
