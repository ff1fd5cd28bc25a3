package handler

import (
	"errors"
	"fmt"
	"net/http"

	"restavo/internal/model"
	"restavo/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionCookieName = "chat_session"
const sessionCookieMaxAge = 24 * 60 * 60

// ChatHandler handles AI chat and booking-analysis requests
type ChatHandler struct {
	service service.ChatService
}

// NewChatHandler creates a new ChatHandler
func NewChatHandler(s service.ChatService) *ChatHandler {
	return &ChatHandler{service: s}
}

// sessionID ties a transcript to the caller: the user id when
// authenticated, otherwise a uuid cookie issued on first contact.
func (h *ChatHandler) sessionID(c *gin.Context) string {
	if userID, err := getAuthUserID(c); err == nil {
		return fmt.Sprintf("user:%d", userID)
	}

	sid, err := c.Cookie(sessionCookieName)
	if err != nil || sid == "" {
		sid = uuid.NewString()
		c.SetCookie(sessionCookieName, sid, sessionCookieMaxAge, "/", "", false, true)
	}
	return sid
}

// Chat serves both anonymous and authenticated callers
func (h *ChatHandler) Chat(c *gin.Context) {
	var req model.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	reply, err := h.service.Chat(c.Request.Context(), h.sessionID(c), req.Prompt)
	if err != nil {
		writeAIError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"response": reply})
}

func (h *ChatHandler) AnalyzeBooking(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req model.AnalyzeBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	analysis, err := h.service.AnalyzeBooking(c.Request.Context(), userID, req.BookingID)
	if err != nil {
		if errors.Is(err, service.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		writeAIError(c, err)
		return
	}

	c.Data(http.StatusOK, "application/json", analysis)
}

func writeAIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrAIDisabled):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrUpstream):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "AI request failed"})
	}
}

// RegisterChatRoutes registers AI routes; chat is public, analysis is not
func (h *ChatHandler) RegisterChatRoutes(rg *gin.RouterGroup, optionalAuthMW, jwtAuthMW gin.HandlerFunc) {
	aiGroup := rg.Group("/ai")
	{
		aiGroup.POST("/chat", optionalAuthMW, h.Chat)
		aiGroup.POST("/analyze", jwtAuthMW, h.AnalyzeBooking)
	}
}
