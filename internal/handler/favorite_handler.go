package handler

import (
	"net/http"

	"restavo/internal/model"
	"restavo/internal/service"

	"github.com/gin-gonic/gin"
)

// FavoriteHandler handles favorite requests
type FavoriteHandler struct {
	service service.FavoriteService
}

// NewFavoriteHandler creates a new FavoriteHandler
func NewFavoriteHandler(s service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{service: s}
}

func (h *FavoriteHandler) List(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	favorites, err := h.service.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve favorites"})
		return
	}
	c.JSON(http.StatusOK, favorites)
}

func (h *FavoriteHandler) Toggle(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req model.ToggleFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	isFavorite, err := h.service.Toggle(c.Request.Context(), userID, req.ItemName, req.City)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle favorite"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"is_favorite": isFavorite,
	})
}

// RegisterFavoriteRoutes registers favorite routes, all behind authentication
func (h *FavoriteHandler) RegisterFavoriteRoutes(rg *gin.RouterGroup, jwtAuthMW gin.HandlerFunc) {
	favoriteGroup := rg.Group("/favorites", jwtAuthMW)
	{
		favoriteGroup.GET("", h.List)
		favoriteGroup.POST("/toggle", h.Toggle)
	}
}
