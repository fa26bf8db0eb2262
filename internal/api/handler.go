package api

import (
	"coffee-fleet-backend/internal/store"

	"github.com/SherClockHolmes/webpush-go"
)

// BrewScheduler starts the simulated lifecycle for a newly created brew.
type BrewScheduler interface {
	Schedule(brewID string)
}

// Handler holds shared dependencies for API handlers.
type Handler struct {
	store   store.Store
	brews   BrewScheduler
	webpush *webpush.Options
}

// NewHandler creates a new API handler.
func NewHandler(s store.Store, brews BrewScheduler, webpushOptions *webpush.Options) *Handler {
	return &Handler{
		store:   s,
		brews:   brews,
		webpush: webpushOptions,
	}
}
