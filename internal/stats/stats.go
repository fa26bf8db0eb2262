// Package stats computes dashboard aggregations from a machine snapshot.
// Everything is recomputed on every call; nothing is cached here.
package stats

import (
	"github.com/shopspring/decimal"

	"coffee-fleet-backend/internal/model"
)

// lowStockThreshold is the supply percentage under which a machine counts
// as low on stock.
const lowStockThreshold = 30

// monthlyFactor extrapolates today's figures to a mocked monthly value.
// This is a placeholder, not a historical aggregation; a real monthly
// number would sum the analytics entries instead.
const monthlyFactor = 30

// DashboardStats is the summary shown on the facility dashboard.
type DashboardStats struct {
	TotalMachines    int    `json:"totalMachines"`
	OnlineMachines   int    `json:"onlineMachines"`
	LowStockMachines int    `json:"lowStockMachines"`
	TotalRevenue     string `json:"totalRevenue"`
}

// AdminStats is the extended summary for the admin console.
type AdminStats struct {
	TotalMachines       int     `json:"totalMachines"`
	OnlineMachines      int     `json:"onlineMachines"`
	OfflineMachines     int     `json:"offlineMachines"`
	MaintenanceMachines int     `json:"maintenanceMachines"`
	TotalRevenue        string  `json:"totalRevenue"`
	TodayRevenue        string  `json:"todayRevenue"`
	TotalCups           int     `json:"totalCups"`
	TodayCups           int     `json:"todayCups"`
	AverageUptime       float64 `json:"averageUptime"`
	LowStockAlerts      int     `json:"lowStockAlerts"`
	MaintenanceAlerts   int     `json:"maintenanceAlerts"`
	RevenueGrowth       float64 `json:"revenueGrowth"`
}

// Dashboard aggregates the facility dashboard summary over the given
// machine snapshot.
func Dashboard(machines []model.Machine) DashboardStats {
	s := DashboardStats{TotalMachines: len(machines)}
	for _, m := range machines {
		if m.Status == model.StatusOnline {
			s.OnlineMachines++
		}
		if lowStock(m) {
			s.LowStockMachines++
		}
	}
	s.TotalRevenue = sumRevenueToday(machines).StringFixed(2)
	return s
}

// Admin aggregates the admin console summary. The monthly revenue and cup
// figures are today's totals multiplied by monthlyFactor; uptime and growth
// are hardcoded until real telemetry exists.
func Admin(machines []model.Machine) AdminStats {
	s := AdminStats{
		TotalMachines: len(machines),
		AverageUptime: 99.2,
		RevenueGrowth: 12.5,
	}
	for _, m := range machines {
		switch m.Status {
		case model.StatusOnline:
			s.OnlineMachines++
		case model.StatusOffline:
			s.OfflineMachines++
		case model.StatusMaintenance:
			s.MaintenanceMachines++
		}
		if lowStock(m) {
			s.LowStockAlerts++
		}
		s.TodayCups += m.CupsToday
	}

	today := sumRevenueToday(machines)
	s.TodayRevenue = today.StringFixed(2)
	s.TotalRevenue = today.Mul(decimal.NewFromInt(monthlyFactor)).StringFixed(2)
	s.TotalCups = s.TodayCups * monthlyFactor
	s.MaintenanceAlerts = s.MaintenanceMachines
	return s
}

func lowStock(m model.Machine) bool {
	return m.CoffeeBeans < lowStockThreshold ||
		m.Milk < lowStockThreshold ||
		m.Water < lowStockThreshold
}

// sumRevenueToday adds the decimal-as-text revenue fields without going
// through binary floating point. Unparseable values count as zero.
func sumRevenueToday(machines []model.Machine) decimal.Decimal {
	total := decimal.Zero
	for _, m := range machines {
		d, err := decimal.NewFromString(m.RevenueToday)
		if err != nil {
			continue
		}
		total = total.Add(d)
	}
	return total
}
