package models

import "time"

// Preset is a saved itinerary: an ordered chain of route IDs under a name.
// Order is significant; it is the travel order fed to the prediction engine.
type Preset struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"-" db:"user_id"`
	Name      string    `json:"name" db:"name"`
	RouteIDs  []string  `json:"route_ids" db:"route_ids"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// CreatePresetRequest is the body for POST /presets.
type CreatePresetRequest struct {
	Name     string   `json:"name" validate:"required,min=1,max=100"`
	RouteIDs []string `json:"route_ids" validate:"required,min=1,dive,required"`
}
