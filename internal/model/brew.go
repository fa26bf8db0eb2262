package model

import "time"

// BrewStatus is the closed set of brew lifecycle states.
//
// BrewFailed exists in the taxonomy but no transition produces it: the
// simulator only walks pending -> brewing -> completed. Wiring a failure
// path is a deliberate gap until there is real hardware feedback.
type BrewStatus string

const (
	BrewPending   BrewStatus = "pending"
	BrewBrewing   BrewStatus = "brewing"
	BrewCompleted BrewStatus = "completed"
	BrewFailed    BrewStatus = "failed"
)

// Brew is a single requested coffee-preparation event tied to one machine.
// MachineID is a weak reference; it is not validated against machine
// existence at creation time.
type Brew struct {
	ID           string     `json:"id"`
	MachineID    string     `json:"machineId"`
	CoffeeType   string     `json:"coffeeType"`
	CustomerName *string    `json:"customerName"`
	Status       BrewStatus `json:"status"`
	CreatedAt    time.Time  `json:"createdAt"`
}
