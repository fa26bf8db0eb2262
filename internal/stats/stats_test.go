package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"coffee-fleet-backend/internal/model"
)

// fleetFixture: 2 online, 1 offline, 1 maintenance; two machines below the
// low-stock threshold (milk 25 and beans 15).
func fleetFixture() []model.Machine {
	return []model.Machine{
		{Name: "Downtown Office", Status: model.StatusOnline, CoffeeBeans: 85, Milk: 30, Water: 70, CupsToday: 42, RevenueToday: "126.00"},
		{Name: "Tech Hub Lounge", Status: model.StatusOnline, CoffeeBeans: 92, Milk: 78, Water: 88, CupsToday: 67, RevenueToday: "201.00"},
		{Name: "Campus Library", Status: model.StatusOffline, CoffeeBeans: 45, Milk: 25, Water: 60, CupsToday: 0, RevenueToday: "0.00"},
		{Name: "Retail Plaza", Status: model.StatusMaintenance, CoffeeBeans: 15, Milk: 5, Water: 45, CupsToday: 18, RevenueToday: "54.00"},
	}
}

func TestDashboard(t *testing.T) {
	got := Dashboard(fleetFixture())

	assert.Equal(t, DashboardStats{
		TotalMachines:    4,
		OnlineMachines:   2,
		LowStockMachines: 2,
		TotalRevenue:     "381.00",
	}, got)
}

func TestDashboard_EmptyFleet(t *testing.T) {
	got := Dashboard(nil)

	assert.Equal(t, DashboardStats{TotalRevenue: "0.00"}, got)
}

func TestDashboard_RevenueIsCentExact(t *testing.T) {
	// 0.10 + 0.20 is the classic float trap; the sum must stay exact.
	machines := []model.Machine{
		{Status: model.StatusOnline, CoffeeBeans: 100, Milk: 100, Water: 100, RevenueToday: "0.10"},
		{Status: model.StatusOnline, CoffeeBeans: 100, Milk: 100, Water: 100, RevenueToday: "0.20"},
	}

	got := Dashboard(machines)
	assert.Equal(t, "0.30", got.TotalRevenue)
}

func TestDashboard_UnparseableRevenueCountsAsZero(t *testing.T) {
	machines := []model.Machine{
		{Status: model.StatusOnline, CoffeeBeans: 100, Milk: 100, Water: 100, RevenueToday: ""},
		{Status: model.StatusOnline, CoffeeBeans: 100, Milk: 100, Water: 100, RevenueToday: "12.50"},
	}

	got := Dashboard(machines)
	assert.Equal(t, "12.50", got.TotalRevenue)
}

func TestAdmin(t *testing.T) {
	got := Admin(fleetFixture())

	assert.Equal(t, AdminStats{
		TotalMachines:       4,
		OnlineMachines:      2,
		OfflineMachines:     1,
		MaintenanceMachines: 1,
		TotalRevenue:        "11430.00", // 381.00 * 30, a mocked monthly figure
		TodayRevenue:        "381.00",
		TotalCups:           3810,
		TodayCups:           127,
		AverageUptime:       99.2,
		LowStockAlerts:      2,
		MaintenanceAlerts:   1,
		RevenueGrowth:       12.5,
	}, got)
}
