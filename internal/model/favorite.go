package model

import "time"

// Favorite is keyed by (user_id, item_name); its existence is the state.
type Favorite struct {
	UserID   int       `json:"-"`
	ItemName string    `json:"item_name"`
	City     string    `json:"city"`
	AddedAt  time.Time `json:"-"`
}

// ToggleFavoriteRequest flips a favorite on or off for the caller
type ToggleFavoriteRequest struct {
	ItemName string `json:"item_name" binding:"required"`
	City     string `json:"city" binding:"required"`
}
