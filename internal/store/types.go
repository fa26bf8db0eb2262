package store

import "coffee-fleet-backend/internal/model"

// MachineUpdate is a partial machine payload. Nil fields are left unchanged
// by UpdateMachine.
type MachineUpdate struct {
	Name         *string              `json:"name"`
	Location     *string              `json:"location"`
	Status       *model.MachineStatus `json:"status"`
	Latitude     *string              `json:"latitude"`
	Longitude    *string              `json:"longitude"`
	CoffeeBeans  *int                 `json:"coffeeBeans"`
	Milk         *int                 `json:"milk"`
	Water        *int                 `json:"water"`
	CupsToday    *int                 `json:"cupsToday"`
	RevenueToday *string              `json:"revenueToday"`
}

// UserSettingsUpsert is the payload for UpsertUserSettings, keyed by the
// logical foreign key UserID rather than by record identity.
type UserSettingsUpsert struct {
	UserID      string         `json:"userId"`
	Theme       *string        `json:"theme"`
	Preferences map[string]any `json:"preferences"`
}

// DefaultTheme is applied when settings are first created without an
// explicit theme.
const DefaultTheme = "dark-professional"
