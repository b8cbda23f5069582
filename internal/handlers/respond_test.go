package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/elpresidentey/diasporan-backend/internal/models"
)

func respondStatus(err error) (int, string) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	respondError(c, err)
	return w.Code, w.Body.String()
}

func TestRespondError(t *testing.T) {
	cases := []struct {
		code models.ErrorCode
		want int
	}{
		{models.ErrCodeResourceNotFound, http.StatusNotFound},
		{models.ErrCodeBookingNotFound, http.StatusNotFound},
		{models.ErrCodeItemNotFound, http.StatusNotFound},
		{models.ErrCodeExceedsCapacity, http.StatusBadRequest},
		{models.ErrCodeInsufficientCapacity, http.StatusConflict},
		{models.ErrCodeSoldOut, http.StatusConflict},
		{models.ErrCodeNotAvailable, http.StatusConflict},
		{models.ErrCodeAlreadySaved, http.StatusConflict},
		{models.ErrCodeCannotCancel, http.StatusConflict},
		{models.ErrCodeBookingFailed, http.StatusInternalServerError},
		{models.ErrCodeCapacityUpdateFailed, http.StatusInternalServerError},
		{models.ErrCodeCancellationFailed, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		status, body := respondStatus(models.NewBookingError(tc.code, "boom"))
		assert.Equal(t, tc.want, status, "code %s", tc.code)
		assert.Contains(t, body, string(tc.code))
	}
}

func TestRespondError_DetailsInEnvelope(t *testing.T) {
	err := models.NewBookingError(models.ErrCodeInsufficientCapacity, "not enough spots available").
		WithDetail("available", 1).
		WithDetail("requested", 4)

	status, body := respondStatus(err)
	assert.Equal(t, http.StatusConflict, status)
	assert.Contains(t, body, `"available":1`)
	assert.Contains(t, body, `"requested":4`)
}

func TestRespondError_UnknownErrorIsOpaque(t *testing.T) {
	status, body := respondStatus(errors.New("driver: bad connection"))
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Contains(t, body, "INTERNAL_ERROR")
	assert.NotContains(t, body, "bad connection")
}
