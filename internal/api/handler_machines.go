package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"coffee-fleet-backend/internal/model"
	"coffee-fleet-backend/internal/store"
)

type createMachineRequest struct {
	Name         string  `json:"name" binding:"required"`
	Location     string  `json:"location" binding:"required"`
	Status       string  `json:"status" binding:"omitempty,oneof=online offline maintenance"`
	Latitude     *string `json:"latitude"`
	Longitude    *string `json:"longitude"`
	CoffeeBeans  *int    `json:"coffeeBeans"`
	Milk         *int    `json:"milk"`
	Water        *int    `json:"water"`
	CupsToday    *int    `json:"cupsToday"`
	RevenueToday *string `json:"revenueToday"`
}

type updateMachineRequest struct {
	Name         *string `json:"name"`
	Location     *string `json:"location"`
	Status       *string `json:"status" binding:"omitempty,oneof=online offline maintenance"`
	Latitude     *string `json:"latitude"`
	Longitude    *string `json:"longitude"`
	CoffeeBeans  *int    `json:"coffeeBeans"`
	Milk         *int    `json:"milk"`
	Water        *int    `json:"water"`
	CupsToday    *int    `json:"cupsToday"`
	RevenueToday *string `json:"revenueToday"`
}

func intOr(p *int, fallback int) int {
	if p != nil {
		return *p
	}
	return fallback
}

// ListMachines handles GET /api/machines.
func (h *Handler) ListMachines(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.ListMachines())
}

// GetMachine handles GET /api/machines/:id.
func (h *Handler) GetMachine(c *gin.Context) {
	machine, ok := h.store.GetMachine(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "machine not found"})
		return
	}
	c.JSON(http.StatusOK, machine)
}

// CreateMachine handles POST /api/machines. Missing optional fields take
// the fleet defaults: online, full supplies, zero counters.
func (h *Handler) CreateMachine(c *gin.Context) {
	var req createMachineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status := model.StatusOnline
	if req.Status != "" {
		status = model.MachineStatus(req.Status)
	}
	revenue := "0"
	if req.RevenueToday != nil {
		revenue = *req.RevenueToday
	}

	machine := h.store.CreateMachine(model.Machine{
		Name:         req.Name,
		Location:     req.Location,
		Status:       status,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		CoffeeBeans:  intOr(req.CoffeeBeans, 100),
		Milk:         intOr(req.Milk, 100),
		Water:        intOr(req.Water, 100),
		CupsToday:    intOr(req.CupsToday, 0),
		RevenueToday: revenue,
	})
	c.JSON(http.StatusCreated, machine)
}

// UpdateMachine handles PUT /api/machines/:id with a partial payload.
func (h *Handler) UpdateMachine(c *gin.Context) {
	var req updateMachineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	upd := store.MachineUpdate{
		Name:         req.Name,
		Location:     req.Location,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		CoffeeBeans:  req.CoffeeBeans,
		Milk:         req.Milk,
		Water:        req.Water,
		CupsToday:    req.CupsToday,
		RevenueToday: req.RevenueToday,
	}
	if req.Status != nil {
		status := model.MachineStatus(*req.Status)
		upd.Status = &status
	}

	machine, ok := h.store.UpdateMachine(c.Param("id"), upd)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "machine not found"})
		return
	}
	c.JSON(http.StatusOK, machine)
}

// DeleteMachine handles DELETE /api/machines/:id.
func (h *Handler) DeleteMachine(c *gin.Context) {
	if !h.store.DeleteMachine(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "machine not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
