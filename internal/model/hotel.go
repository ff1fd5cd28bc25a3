package model

// Hotel is a seeded inventory row, read-only through the API
type Hotel struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	City     string  `json:"city"`
	Price    float64 `json:"price"`
	Rating   float64 `json:"rating"`
	ImageURL *string `json:"image_url,omitempty"`
}
