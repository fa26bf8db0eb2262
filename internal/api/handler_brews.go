package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"coffee-fleet-backend/internal/model"
)

type createBrewRequest struct {
	MachineID    string  `json:"machineId" binding:"required"`
	CoffeeType   string  `json:"coffeeType" binding:"required"`
	CustomerName *string `json:"customerName"`
}

// ListBrews handles GET /api/brews, optionally filtered by machineId.
func (h *Handler) ListBrews(c *gin.Context) {
	if machineID := c.Query("machineId"); machineID != "" {
		c.JSON(http.StatusOK, h.store.ListBrewsByMachine(machineID))
		return
	}
	c.JSON(http.StatusOK, h.store.ListBrews())
}

// GetBrew handles GET /api/brews/:id.
func (h *Handler) GetBrew(c *gin.Context) {
	brew, ok := h.store.GetBrew(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "brew not found"})
		return
	}
	c.JSON(http.StatusOK, brew)
}

// CreateBrew handles POST /api/brews. Creating a brew kicks off the
// simulated lifecycle as a side effect; the response carries the pending
// record immediately.
func (h *Handler) CreateBrew(c *gin.Context) {
	var req createBrewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	brew := h.store.CreateBrew(model.Brew{
		MachineID:    req.MachineID,
		CoffeeType:   req.CoffeeType,
		CustomerName: req.CustomerName,
	})
	h.brews.Schedule(brew.ID)

	c.JSON(http.StatusCreated, brew)
}
