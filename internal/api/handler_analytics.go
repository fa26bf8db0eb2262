package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"coffee-fleet-backend/internal/model"
)

type createAnalyticsRequest struct {
	MachineID  string    `json:"machineId" binding:"required"`
	Date       time.Time `json:"date" binding:"required"`
	CoffeeType string    `json:"coffeeType" binding:"required"`
	Revenue    string    `json:"revenue" binding:"required"`
	Cups       *int      `json:"cups"`
}

// ListAnalytics handles GET /api/analytics with optional machineId and
// days query parameters. days defaults to 30.
func (h *Handler) ListAnalytics(c *gin.Context) {
	days := 30
	if daysParam := c.Query("days"); daysParam != "" {
		parsed, err := strconv.Atoi(daysParam)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days must be a non-negative integer"})
			return
		}
		days = parsed
	}

	c.JSON(http.StatusOK, h.store.ListAnalytics(c.Query("machineId"), days))
}

// CreateAnalytics handles POST /api/analytics. Entries are immutable once
// created. Cups defaults to 1.
func (h *Handler) CreateAnalytics(c *gin.Context) {
	var req createAnalyticsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry := h.store.CreateAnalytics(model.Analytics{
		MachineID:  req.MachineID,
		Date:       req.Date,
		CoffeeType: req.CoffeeType,
		Revenue:    req.Revenue,
		Cups:       intOr(req.Cups, 1),
	})
	c.JSON(http.StatusCreated, entry)
}
