package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"coffee-fleet-backend/internal/stats"
)

// DashboardStats handles GET /api/dashboard/stats.
func (h *Handler) DashboardStats(c *gin.Context) {
	c.JSON(http.StatusOK, stats.Dashboard(h.store.ListMachines()))
}

// AdminStats handles GET /api/admin/stats.
func (h *Handler) AdminStats(c *gin.Context) {
	c.JSON(http.StatusOK, stats.Admin(h.store.ListMachines()))
}

// AdminMachines handles GET /api/admin/machines.
func (h *Handler) AdminMachines(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.ListMachines())
}
