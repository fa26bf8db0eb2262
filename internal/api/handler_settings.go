package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"coffee-fleet-backend/internal/store"
)

type upsertSettingsRequest struct {
	UserID      string         `json:"userId" binding:"required"`
	Theme       *string        `json:"theme"`
	Preferences map[string]any `json:"preferences"`
}

// GetUserSettings handles GET /api/user-settings/:userId.
func (h *Handler) GetUserSettings(c *gin.Context) {
	settings, ok := h.store.GetUserSettings(c.Param("userId"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "user settings not found"})
		return
	}
	c.JSON(http.StatusOK, settings)
}

// UpsertUserSettings handles POST /api/user-settings, creating or merging
// the caller's settings record keyed by userId.
func (h *Handler) UpsertUserSettings(c *gin.Context) {
	var req upsertSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settings := h.store.UpsertUserSettings(store.UserSettingsUpsert{
		UserID:      req.UserID,
		Theme:       req.Theme,
		Preferences: req.Preferences,
	})
	c.JSON(http.StatusOK, settings)
}
