package model

import "time"

// Analytics is one immutable revenue/volume datapoint for a machine.
// Revenue is decimal-as-text, same as Machine.RevenueToday.
type Analytics struct {
	ID         string    `json:"id"`
	MachineID  string    `json:"machineId"`
	Date       time.Time `json:"date"`
	CoffeeType string    `json:"coffeeType"`
	Revenue    string    `json:"revenue"`
	Cups       int       `json:"cups"`
}
