package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/elpresidentey/diasporan-backend/internal/middleware"
	"github.com/elpresidentey/diasporan-backend/internal/models"
	"github.com/elpresidentey/diasporan-backend/internal/services"
)

// SavedItemHandler handles wishlist endpoints
type SavedItemHandler struct {
	savedItemService *services.SavedItemService
	logger           *logrus.Logger
}

// NewSavedItemHandler creates a new SavedItemHandler
func NewSavedItemHandler(savedItemService *services.SavedItemService, logger *logrus.Logger) *SavedItemHandler {
	return &SavedItemHandler{savedItemService: savedItemService, logger: logger}
}

// SaveItem handles POST /api/v1/saved-items
func (h *SavedItemHandler) SaveItem(c *gin.Context) {
	userCtx, exists := middleware.GetUserContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": gin.H{"code": "UNAUTHORIZED", "message": "user not authenticated"}})
		return
	}

	var req models.SaveItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "INVALID_REQUEST", "message": err.Error()}})
		return
	}

	item, err := h.savedItemService.SaveItem(userCtx.UserID.String(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"saved_item": item})
}

// RemoveSavedItem handles DELETE /api/v1/saved-items/:id
func (h *SavedItemHandler) RemoveSavedItem(c *gin.Context) {
	userCtx, exists := middleware.GetUserContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": gin.H{"code": "UNAUTHORIZED", "message": "user not authenticated"}})
		return
	}

	if err := h.savedItemService.RemoveSavedItem(c.Param("id"), userCtx.UserID.String()); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "saved item removed"})
}

// GetSavedItems handles GET /api/v1/saved-items
func (h *SavedItemHandler) GetSavedItems(c *gin.Context) {
	userCtx, exists := middleware.GetUserContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": gin.H{"code": "UNAUTHORIZED", "message": "user not authenticated"}})
		return
	}

	items, err := h.savedItemService.GetSavedItems(userCtx.UserID.String())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"saved_items": items})
}
