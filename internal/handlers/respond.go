package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elpresidentey/diasporan-backend/internal/models"
)

// statusForCode maps booking-core error codes to HTTP statuses
var statusForCode = map[models.ErrorCode]int{
	models.ErrCodeResourceNotFound:     http.StatusNotFound,
	models.ErrCodeBookingNotFound:      http.StatusNotFound,
	models.ErrCodeItemNotFound:         http.StatusNotFound,
	models.ErrCodeExceedsCapacity:      http.StatusBadRequest,
	models.ErrCodeInsufficientCapacity: http.StatusConflict,
	models.ErrCodeSoldOut:              http.StatusConflict,
	models.ErrCodeNotAvailable:         http.StatusConflict,
	models.ErrCodeAlreadySaved:         http.StatusConflict,
	models.ErrCodeCannotCancel:         http.StatusConflict,
	models.ErrCodeBookingFailed:        http.StatusInternalServerError,
	models.ErrCodeCapacityUpdateFailed: http.StatusInternalServerError,
	models.ErrCodeCancellationFailed:   http.StatusInternalServerError,
}

// respondError renders a booking-core error as the discriminated error
// envelope. Unknown errors become an opaque 500.
func respondError(c *gin.Context, err error) {
	if bErr, ok := models.AsBookingError(err); ok {
		status, known := statusForCode[bErr.Code]
		if !known {
			status = http.StatusInternalServerError
		}
		c.JSON(status, gin.H{"error": bErr})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"error": gin.H{"code": "INTERNAL_ERROR", "message": "internal server error"},
	})
}
