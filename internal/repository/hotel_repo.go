package repository

import (
	"context"
	"fmt"

	"restavo/internal/model"

	"github.com/jackc/pgx/v5"
)

// HotelRepository defines read operations over the seeded hotel inventory
type HotelRepository interface {
	SearchByCity(ctx context.Context, city string) ([]model.Hotel, error)
	ListAll(ctx context.Context) ([]model.Hotel, error)
}

type hotelRepository struct {
	db DB
}

// NewHotelRepository creates a new HotelRepository
func NewHotelRepository(db DB) HotelRepository {
	return &hotelRepository{db: db}
}

// SearchByCity returns hotels whose city matches exactly, case-insensitively
func (r *hotelRepository) SearchByCity(ctx context.Context, city string) ([]model.Hotel, error) {
	sql := `SELECT id, name, city, price, rating, image_url FROM hotels WHERE LOWER(city) = LOWER($1)`
	rows, err := r.db.Query(ctx, sql, city)
	if err != nil {
		return nil, fmt.Errorf("failed to search hotels: %w", err)
	}
	return scanHotels(rows)
}

// ListAll returns the whole inventory, used to build the AI grounding context
func (r *hotelRepository) ListAll(ctx context.Context) ([]model.Hotel, error) {
	sql := `SELECT id, name, city, price, rating, image_url FROM hotels`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to list hotels: %w", err)
	}
	return scanHotels(rows)
}

func scanHotels(rows pgx.Rows) ([]model.Hotel, error) {
	defer rows.Close()

	hotels := []model.Hotel{}
	for rows.Next() {
		var h model.Hotel
		if err := rows.Scan(&h.ID, &h.Name, &h.City, &h.Price, &h.Rating, &h.ImageURL); err != nil {
			return nil, fmt.Errorf("failed to scan hotel row: %w", err)
		}
		hotels = append(hotels, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating hotel rows: %w", err)
	}
	return hotels, nil
}
