package repository

import (
	"context"
	"errors"
	"fmt"

	"restavo/internal/model"

	"github.com/jackc/pgx/v5"
)

// BookingRepository defines operations for booking data. Reads and deletes
// are scoped by (booking_id, user_id) so cross-user access is impossible at
// the query level.
type BookingRepository interface {
	Create(ctx context.Context, booking *model.Booking) error
	FindByUser(ctx context.Context, userID int) ([]model.Booking, error)
	FindByID(ctx context.Context, id int64, userID int) (*model.Booking, error)
	Delete(ctx context.Context, id int64, userID int) (bool, error)
}

type bookingRepository struct {
	db DB
}

// NewBookingRepository creates a new BookingRepository
func NewBookingRepository(db DB) BookingRepository {
	return &bookingRepository{db: db}
}

// Create inserts a new booking and fills in its generated id
func (r *bookingRepository) Create(ctx context.Context, b *model.Booking) error {
	sql := `INSERT INTO bookings (user_id, user_name, hotel_name, city, check_in, check_out, price, hotel_image_url)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	err := r.db.QueryRow(ctx, sql, b.UserID, b.BookingName, b.HotelName, b.City, b.CheckIn, b.CheckOut, b.Price, b.HotelImageURL).Scan(&b.ID)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// FindByUser retrieves the user's bookings, newest first
func (r *bookingRepository) FindByUser(ctx context.Context, userID int) ([]model.Booking, error) {
	sql := `SELECT id, user_id, user_name, hotel_name, city, check_in, check_out, price, hotel_image_url
            FROM bookings WHERE user_id = $1 ORDER BY id DESC`
	rows, err := r.db.Query(ctx, sql, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings by user: %w", err)
	}
	defer rows.Close()

	bookings := []model.Booking{}
	for rows.Next() {
		var b model.Booking
		if err := rows.Scan(&b.ID, &b.UserID, &b.BookingName, &b.HotelName, &b.City, &b.CheckIn, &b.CheckOut, &b.Price, &b.HotelImageURL); err != nil {
			return nil, fmt.Errorf("failed to scan booking row: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating booking rows: %w", err)
	}
	return bookings, nil
}

// FindByID retrieves a booking only if it belongs to userID. A booking
// owned by someone else reads as absent.
func (r *bookingRepository) FindByID(ctx context.Context, id int64, userID int) (*model.Booking, error) {
	b := &model.Booking{}
	sql := `SELECT id, user_id, user_name, hotel_name, city, check_in, check_out, price, hotel_image_url
            FROM bookings WHERE id = $1 AND user_id = $2`
	err := r.db.QueryRow(ctx, sql, id, userID).Scan(&b.ID, &b.UserID, &b.BookingName, &b.HotelName, &b.City, &b.CheckIn, &b.CheckOut, &b.Price, &b.HotelImageURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found, or not yours; callers can't tell
		}
		return nil, fmt.Errorf("failed to find booking by ID: %w", err)
	}
	return b, nil
}

// Delete removes a booking scoped by owner and reports whether a row went away
func (r *bookingRepository) Delete(ctx context.Context, id int64, userID int) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM bookings WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete booking: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
