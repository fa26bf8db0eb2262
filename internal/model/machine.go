package model

import "time"

// MachineStatus is the closed set of operational states a vending machine
// reports. Unknown values are rejected at the API boundary, not here.
type MachineStatus string

const (
	StatusOnline      MachineStatus = "online"
	StatusOffline     MachineStatus = "offline"
	StatusMaintenance MachineStatus = "maintenance"
)

// Machine represents one coffee vending machine in the fleet.
//
// Supply levels are percentages by convention only; nothing ties Status to
// them, so an online machine with 0% water is a valid record.
// RevenueToday and the coordinates are decimal-as-text to keep money and
// geo values out of binary floating point.
type Machine struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Location     string        `json:"location"`
	Status       MachineStatus `json:"status"`
	Latitude     *string       `json:"latitude"`
	Longitude    *string       `json:"longitude"`
	CoffeeBeans  int           `json:"coffeeBeans"`
	Milk         int           `json:"milk"`
	Water        int           `json:"water"`
	CupsToday    int           `json:"cupsToday"`
	RevenueToday string        `json:"revenueToday"`
	LastSeen     time.Time     `json:"lastSeen"`
	CreatedAt    time.Time     `json:"createdAt"`
}
