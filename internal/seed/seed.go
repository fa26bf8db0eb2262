// Package seed populates a fresh store with a demo fleet so the dashboard
// has something to show out of the box.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"coffee-fleet-backend/internal/model"
	"coffee-fleet-backend/internal/store"
)

var coffeeTypes = []string{"espresso", "latte", "cappuccino", "iced-coffee"}

func pricePerCup(coffeeType string) int {
	// Cents, to keep the revenue strings exact.
	switch coffeeType {
	case "latte":
		return 450
	case "cappuccino":
		return 400
	case "iced-coffee":
		return 350
	default:
		return 300
	}
}

func strPtr(s string) *string { return &s }

// Populate creates the demo admin account, four machines, and thirty days
// of randomized analytics history. Intended for a store that is otherwise
// empty; calling it twice just duplicates machines and history.
func Populate(s store.Store, now time.Time) {
	s.CreateUser(model.User{
		Username: "admin",
		Password: "admin123",
		Role:     model.RoleAdmin,
	})

	machines := []model.Machine{
		{
			Name:         "Downtown Office",
			Location:     "123 Business Ave",
			Status:       model.StatusOnline,
			Latitude:     strPtr("40.7128"),
			Longitude:    strPtr("-74.0060"),
			CoffeeBeans:  85,
			Milk:         30,
			Water:        70,
			CupsToday:    42,
			RevenueToday: "126.00",
		},
		{
			Name:         "Tech Hub Lounge",
			Location:     "456 Innovation St",
			Status:       model.StatusOnline,
			Latitude:     strPtr("40.7589"),
			Longitude:    strPtr("-73.9851"),
			CoffeeBeans:  92,
			Milk:         78,
			Water:        88,
			CupsToday:    67,
			RevenueToday: "201.00",
		},
		{
			Name:         "Campus Library",
			Location:     "789 University Dr",
			Status:       model.StatusOffline,
			Latitude:     strPtr("40.7505"),
			Longitude:    strPtr("-73.9934"),
			CoffeeBeans:  45,
			Milk:         25,
			Water:        60,
			CupsToday:    0,
			RevenueToday: "0.00",
		},
		{
			Name:         "Retail Plaza",
			Location:     "321 Shopping Blvd",
			Status:       model.StatusMaintenance,
			Latitude:     strPtr("40.7282"),
			Longitude:    strPtr("-74.0776"),
			CoffeeBeans:  15,
			Milk:         5,
			Water:        45,
			CupsToday:    18,
			RevenueToday: "54.00",
		},
	}

	machineIDs := make([]string, 0, len(machines))
	for _, m := range machines {
		created := s.CreateMachine(m)
		machineIDs = append(machineIDs, created.ID)
	}

	for daysAgo := 0; daysAgo < 30; daysAgo++ {
		date := now.AddDate(0, 0, -daysAgo)
		for _, machineID := range machineIDs {
			for _, coffeeType := range coffeeTypes {
				cups := rand.Intn(20) + 5
				s.CreateAnalytics(model.Analytics{
					MachineID:  machineID,
					Date:       date,
					CoffeeType: coffeeType,
					Revenue:    centsToDecimalString(cups * pricePerCup(coffeeType)),
					Cups:       cups,
				})
			}
		}
	}
}

// centsToDecimalString renders an integer cent amount as "x.yy".
func centsToDecimalString(cents int) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}
