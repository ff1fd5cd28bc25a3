package handler

import (
	"context"
	"net/http"
	"testing"

	"restavo/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newHotelRouter(svc *stubHotelService) *gin.Engine {
	router := gin.New()
	h := NewHotelHandler(svc)
	h.RegisterHotelRoutes(router.Group("/api/v1"))
	return router
}

func TestHotelHandler_Search(t *testing.T) {
	var searchedCity string
	svc := &stubHotelService{
		searchByCityFn: func(ctx context.Context, city string) ([]model.Hotel, error) {
			searchedCity = city
			return []model.Hotel{{ID: 1, Name: "The Plaza", City: "New York", Price: 700, Rating: 4.7}}, nil
		},
	}
	router := newHotelRouter(svc)

	w := doJSON(t, router, http.MethodGet, "/api/v1/hotels/search?city=New%20York", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "New York", searchedCity)
	assert.JSONEq(t, `[{"id":1,"name":"The Plaza","city":"New York","price":700,"rating":4.7}]`, w.Body.String())
}

func TestHotelHandler_Search_DefaultsToDubai(t *testing.T) {
	var searchedCity string
	svc := &stubHotelService{
		searchByCityFn: func(ctx context.Context, city string) ([]model.Hotel, error) {
			searchedCity = city
			return []model.Hotel{}, nil
		},
	}
	router := newHotelRouter(svc)

	w := doJSON(t, router, http.MethodGet, "/api/v1/hotels/search", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Dubai", searchedCity)
}

func TestHotelHandler_Search_UnknownCity(t *testing.T) {
	svc := &stubHotelService{
		searchByCityFn: func(ctx context.Context, city string) ([]model.Hotel, error) {
			return []model.Hotel{}, nil
		},
	}
	router := newHotelRouter(svc)

	w := doJSON(t, router, http.MethodGet, "/api/v1/hotels/search?city=Atlantis", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}
