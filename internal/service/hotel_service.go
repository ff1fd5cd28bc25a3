package service

import (
	"context"
	"fmt"
	"strings"

	"restavo/internal/model"
	"restavo/internal/repository"
)

const (
	emptyInventoryContext      = "No hotel data is currently available."
	unreadableInventoryContext = "Unable to load hotel data."
)

// HotelService provides searches over the seeded inventory and formats it
// as grounding context for the AI assistant.
type HotelService interface {
	SearchByCity(ctx context.Context, city string) ([]model.Hotel, error)
	InventoryContext(ctx context.Context) string
}

type hotelService struct {
	hotelRepo repository.HotelRepository
}

// NewHotelService creates a new HotelService
func NewHotelService(hotelRepo repository.HotelRepository) HotelService {
	return &hotelService{hotelRepo: hotelRepo}
}

func (s *hotelService) SearchByCity(ctx context.Context, city string) ([]model.Hotel, error) {
	hotels, err := s.hotelRepo.SearchByCity(ctx, city)
	if err != nil {
		return nil, fmt.Errorf("failed to search hotels: %w", err)
	}
	return hotels, nil
}

// InventoryContext formats every hotel as a grounding line. Failures and an
// empty inventory both degrade to a fallback sentence rather than an error,
// so chat stays usable.
func (s *hotelService) InventoryContext(ctx context.Context) string {
	hotels, err := s.hotelRepo.ListAll(ctx)
	if err != nil {
		return unreadableInventoryContext
	}
	if len(hotels) == 0 {
		return emptyInventoryContext
	}

	lines := make([]string, 0, len(hotels))
	for _, h := range hotels {
		lines = append(lines, fmt.Sprintf("- %s in %s (price: $%g, rating: %g)", h.Name, h.City, h.Price, h.Rating))
	}
	return strings.Join(lines, "\n")
}
