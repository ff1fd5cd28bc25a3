package service

import (
	"context"
	"errors"
	"fmt"

	"restavo/internal/model"
	"restavo/internal/repository"
)

// ErrBookingNotFound covers both "no such booking" and "booking owned by
// someone else"; the repository folds ownership into the query so the two
// are indistinguishable here.
var ErrBookingNotFound = errors.New("booking not found")

// BookingService provides the booking lifecycle, always scoped to the
// authenticated owner.
type BookingService interface {
	Create(ctx context.Context, userID int, req model.CreateBookingRequest) (*model.Booking, error)
	ListByUser(ctx context.Context, userID int) ([]model.Booking, error)
	GetByID(ctx context.Context, id int64, userID int) (*model.Booking, error)
	Delete(ctx context.Context, id int64, userID int) error
}

type bookingService struct {
	bookingRepo repository.BookingRepository
}

// NewBookingService creates a new BookingService
func NewBookingService(bookingRepo repository.BookingRepository) BookingService {
	return &bookingService{bookingRepo: bookingRepo}
}

func (s *bookingService) Create(ctx context.Context, userID int, req model.CreateBookingRequest) (*model.Booking, error) {
	booking := &model.Booking{
		UserID:        userID,
		BookingName:   req.BookingName,
		HotelName:     req.HotelName,
		City:          req.City,
		CheckIn:       req.CheckIn,
		CheckOut:      req.CheckOut,
		Price:         req.Price,
		HotelImageURL: req.HotelImageURL,
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to create booking in repo: %w", err)
	}
	return booking, nil
}

func (s *bookingService) ListByUser(ctx context.Context, userID int) ([]model.Booking, error) {
	bookings, err := s.bookingRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

func (s *bookingService) GetByID(ctx context.Context, id int64, userID int) (*model.Booking, error) {
	booking, err := s.bookingRepo.FindByID(ctx, id, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find booking: %w", err)
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	return booking, nil
}

func (s *bookingService) Delete(ctx context.Context, id int64, userID int) error {
	removed, err := s.bookingRepo.Delete(ctx, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}
	if !removed {
		return ErrBookingNotFound
	}
	return nil
}
