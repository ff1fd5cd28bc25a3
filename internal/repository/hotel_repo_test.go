package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHotelRepository_SearchByCity(t *testing.T) {
	mock := newMockPool(t)
	repo := NewHotelRepository(mock)

	url := "https://example.com/burj.jpg"
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, city, price, rating, image_url FROM hotels WHERE LOWER(city) = LOWER($1)`)).
		WithArgs("dubai").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "city", "price", "rating", "image_url"}).
			AddRow(1, "Burj Al Arab", "Dubai", 1000.0, 4.9, &url))

	hotels, err := repo.SearchByCity(context.Background(), "dubai")

	require.NoError(t, err)
	require.Len(t, hotels, 1)
	assert.Equal(t, "Burj Al Arab", hotels[0].Name)
	assert.Equal(t, 4.9, hotels[0].Rating)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHotelRepository_SearchByCity_NoMatch(t *testing.T) {
	mock := newMockPool(t)
	repo := NewHotelRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE LOWER(city) = LOWER($1)`)).
		WithArgs("Atlantis").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "city", "price", "rating", "image_url"}))

	hotels, err := repo.SearchByCity(context.Background(), "Atlantis")

	require.NoError(t, err)
	assert.NotNil(t, hotels)
	assert.Empty(t, hotels)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHotelRepository_ListAll(t *testing.T) {
	mock := newMockPool(t)
	repo := NewHotelRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, city, price, rating, image_url FROM hotels`)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "city", "price", "rating", "image_url"}).
			AddRow(1, "Burj Al Arab", "Dubai", 1000.0, 4.9, (*string)(nil)).
			AddRow(2, "The Plaza", "New York", 700.0, 4.7, (*string)(nil)))

	hotels, err := repo.ListAll(context.Background())

	require.NoError(t, err)
	assert.Len(t, hotels, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}
