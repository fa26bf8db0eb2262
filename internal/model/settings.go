package model

// UserSettings holds per-user dashboard preferences. One record per user,
// enforced by upsert-by-UserID semantics rather than a unique constraint.
type UserSettings struct {
	ID          string         `json:"id"`
	UserID      string         `json:"userId"`
	Theme       string         `json:"theme"`
	Preferences map[string]any `json:"preferences"`
}
