package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"restavo/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChatRouter(svc service.ChatService, optionalAuthMW, jwtAuthMW gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	h := NewChatHandler(svc)
	h.RegisterChatRoutes(router.Group("/api/v1"), optionalAuthMW, jwtAuthMW)
	return router
}

func TestChatHandler_Chat_Authenticated(t *testing.T) {
	var sessionID string
	svc := &stubChatService{
		chatFn: func(ctx context.Context, sid, prompt string) (string, error) {
			sessionID = sid
			return "We have hotels in Dubai.", nil
		},
	}
	router := newChatRouter(svc, authAs(7), rejectAuth())

	w := doJSON(t, router, http.MethodPost, "/api/v1/ai/chat", gin.H{"prompt": "Hotels in Dubai?"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "We have hotels in Dubai.", decodeBody(t, w)["response"])
	assert.Equal(t, "user:7", sessionID)
}

func TestChatHandler_Chat_AnonymousGetsSessionCookie(t *testing.T) {
	var sessionID string
	svc := &stubChatService{
		chatFn: func(ctx context.Context, sid, prompt string) (string, error) {
			sessionID = sid
			return "hello", nil
		},
	}
	router := newChatRouter(svc, anonymous(), rejectAuth())

	w := doJSON(t, router, http.MethodPost, "/api/v1/ai/chat", gin.H{"prompt": "hi"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, sessionID)

	var cookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == "chat_session" {
			cookie = c
		}
	}
	require.NotNil(t, cookie, "anonymous caller must receive a session cookie")
	assert.Equal(t, sessionID, cookie.Value)
	assert.True(t, cookie.HttpOnly)
}

func TestChatHandler_Chat_ReusesExistingCookie(t *testing.T) {
	var sessionID string
	svc := &stubChatService{
		chatFn: func(ctx context.Context, sid, prompt string) (string, error) {
			sessionID = sid
			return "hello again", nil
		},
	}
	router := newChatRouter(svc, anonymous(), rejectAuth())

	req := httptestRequest(t, http.MethodPost, "/api/v1/ai/chat", gin.H{"prompt": "hi"})
	req.AddCookie(&http.Cookie{Name: "chat_session", Value: "existing-session"})
	w := serve(router, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "existing-session", sessionID)
}

func TestChatHandler_Chat_Disabled(t *testing.T) {
	svc := &stubChatService{
		chatFn: func(ctx context.Context, sid, prompt string) (string, error) {
			return "", service.ErrAIDisabled
		},
	}
	router := newChatRouter(svc, anonymous(), rejectAuth())

	w := doJSON(t, router, http.MethodPost, "/api/v1/ai/chat", gin.H{"prompt": "hi"})

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestChatHandler_Chat_UpstreamFailure(t *testing.T) {
	svc := &stubChatService{
		chatFn: func(ctx context.Context, sid, prompt string) (string, error) {
			return "", service.ErrUpstream
		},
	}
	router := newChatRouter(svc, anonymous(), rejectAuth())

	w := doJSON(t, router, http.MethodPost, "/api/v1/ai/chat", gin.H{"prompt": "hi"})

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestChatHandler_Chat_MissingPrompt(t *testing.T) {
	router := newChatRouter(&stubChatService{}, anonymous(), rejectAuth())

	w := doJSON(t, router, http.MethodPost, "/api/v1/ai/chat", gin.H{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChatHandler_AnalyzeBooking(t *testing.T) {
	svc := &stubChatService{
		analyzeBookingFn: func(ctx context.Context, userID int, bookingID int64) (json.RawMessage, error) {
			assert.Equal(t, 7, userID)
			assert.Equal(t, int64(42), bookingID)
			return json.RawMessage(`{"title":"Your Dubai stay","summary":"Enjoy."}`), nil
		},
	}
	router := newChatRouter(svc, anonymous(), authAs(7))

	w := doJSON(t, router, http.MethodPost, "/api/v1/ai/analyze", gin.H{"booking_id": 42})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"title":"Your Dubai stay","summary":"Enjoy."}`, w.Body.String())
}

func TestChatHandler_AnalyzeBooking_NotFound(t *testing.T) {
	svc := &stubChatService{
		analyzeBookingFn: func(ctx context.Context, userID int, bookingID int64) (json.RawMessage, error) {
			return nil, service.ErrBookingNotFound
		},
	}
	router := newChatRouter(svc, anonymous(), authAs(7))

	w := doJSON(t, router, http.MethodPost, "/api/v1/ai/analyze", gin.H{"booking_id": 42})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestChatHandler_AnalyzeBooking_Unauthenticated(t *testing.T) {
	router := newChatRouter(&stubChatService{}, anonymous(), rejectAuth())

	w := doJSON(t, router, http.MethodPost, "/api/v1/ai/analyze", gin.H{"booking_id": 42})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
