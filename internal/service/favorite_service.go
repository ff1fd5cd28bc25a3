package service

import (
	"context"
	"fmt"

	"restavo/internal/model"
	"restavo/internal/repository"
)

// FavoriteService provides the toggle-only favorite lifecycle
type FavoriteService interface {
	// Toggle reports the resulting existence state: true means favorited.
	Toggle(ctx context.Context, userID int, itemName, city string) (bool, error)
	ListByUser(ctx context.Context, userID int) ([]model.Favorite, error)
}

type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
}

// NewFavoriteService creates a new FavoriteService
func NewFavoriteService(favoriteRepo repository.FavoriteRepository) FavoriteService {
	return &favoriteService{favoriteRepo: favoriteRepo}
}

func (s *favoriteService) Toggle(ctx context.Context, userID int, itemName, city string) (bool, error) {
	isFavorite, err := s.favoriteRepo.Toggle(ctx, userID, itemName, city)
	if err != nil {
		return false, fmt.Errorf("failed to toggle favorite: %w", err)
	}
	return isFavorite, nil
}

func (s *favoriteService) ListByUser(ctx context.Context, userID int) ([]model.Favorite, error) {
	favorites, err := s.favoriteRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	return favorites, nil
}
