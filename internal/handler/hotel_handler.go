package handler

import (
	"net/http"

	"restavo/internal/service"

	"github.com/gin-gonic/gin"
)

// HotelHandler handles hotel search requests
type HotelHandler struct {
	service service.HotelService
}

// NewHotelHandler creates a new HotelHandler
func NewHotelHandler(s service.HotelService) *HotelHandler {
	return &HotelHandler{service: s}
}

// Search returns the seeded hotels for a city; unknown cities yield an
// empty list, not an error.
func (h *HotelHandler) Search(c *gin.Context) {
	city := c.DefaultQuery("city", "Dubai")

	hotels, err := h.service.SearchByCity(c.Request.Context(), city)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search hotels"})
		return
	}
	c.JSON(http.StatusOK, hotels)
}

// RegisterHotelRoutes registers hotel routes
func (h *HotelHandler) RegisterHotelRoutes(rg *gin.RouterGroup) {
	rg.GET("/hotels/search", h.Search)
}
