package repository

import (
	"context"
	"fmt"
	"time"

	"restavo/internal/model"
)

// FavoriteRepository defines operations for favorite data
type FavoriteRepository interface {
	// Toggle inserts the favorite if absent or deletes it if present, and
	// returns the resulting existence state.
	Toggle(ctx context.Context, userID int, itemName, city string) (bool, error)
	ListByUser(ctx context.Context, userID int) ([]model.Favorite, error)
}

type favoriteRepository struct {
	db DB
}

// NewFavoriteRepository creates a new FavoriteRepository
func NewFavoriteRepository(db DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

// Toggle runs the check-then-act inside a single transaction; the composite
// primary key rejects a duplicate insert if two toggles ever race.
func (r *favoriteRepository) Toggle(ctx context.Context, userID int, itemName, city string) (bool, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to begin toggle transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var exists bool
	err = tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM favorites WHERE user_id = $1 AND item_name = $2)`, userID, itemName).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check favorite existence: %w", err)
	}

	if exists {
		if _, err = tx.Exec(ctx, `DELETE FROM favorites WHERE user_id = $1 AND item_name = $2`, userID, itemName); err != nil {
			return false, fmt.Errorf("failed to remove favorite: %w", err)
		}
	} else {
		if _, err = tx.Exec(ctx, `INSERT INTO favorites (user_id, item_name, city, added_at) VALUES ($1, $2, $3, $4)`,
			userID, itemName, city, time.Now()); err != nil {
			return false, fmt.Errorf("failed to add favorite: %w", err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("failed to commit toggle: %w", err)
	}
	return !exists, nil
}

// ListByUser retrieves the user's favorites as (item_name, city) pairs
func (r *favoriteRepository) ListByUser(ctx context.Context, userID int) ([]model.Favorite, error) {
	rows, err := r.db.Query(ctx, `SELECT item_name, city FROM favorites WHERE user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query favorites: %w", err)
	}
	defer rows.Close()

	favorites := []model.Favorite{}
	for rows.Next() {
		f := model.Favorite{UserID: userID}
		if err := rows.Scan(&f.ItemName, &f.City); err != nil {
			return nil, fmt.Errorf("failed to scan favorite row: %w", err)
		}
		favorites = append(favorites, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating favorite rows: %w", err)
	}
	return favorites, nil
}
