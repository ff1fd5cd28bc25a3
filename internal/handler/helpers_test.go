package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"restavo/internal/middleware"
	"restavo/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// authAs simulates a validated token for userID
func authAs(userID int) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.AuthUserKey, userID)
		c.Next()
	}
}

// anonymous passes the request through without an identity
func anonymous() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
	}
}

// rejectAuth simulates the strict middleware refusing an unauthenticated call
func rejectAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
	}
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func httptestRequest(t *testing.T, method, path string, body any) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

type stubAuthService struct {
	registerFn    func(ctx context.Context, username, password string, age any) (string, error)
	loginFn       func(ctx context.Context, username, password string) (*model.User, string, error)
	getUserByIDFn func(ctx context.Context, id int) (*model.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, username, password string, age any) (string, error) {
	return s.registerFn(ctx, username, password, age)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (*model.User, string, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubAuthService) GetUserByID(ctx context.Context, id int) (*model.User, error) {
	return s.getUserByIDFn(ctx, id)
}

type stubUserService struct {
	updateProfileFn func(ctx context.Context, userID int, req model.UpdateProfileRequest) (*model.User, error)
}

func (s *stubUserService) UpdateProfile(ctx context.Context, userID int, req model.UpdateProfileRequest) (*model.User, error) {
	return s.updateProfileFn(ctx, userID, req)
}

type stubHotelService struct {
	searchByCityFn func(ctx context.Context, city string) ([]model.Hotel, error)
}

func (s *stubHotelService) SearchByCity(ctx context.Context, city string) ([]model.Hotel, error) {
	return s.searchByCityFn(ctx, city)
}

func (s *stubHotelService) InventoryContext(ctx context.Context) string {
	return ""
}

type stubBookingService struct {
	createFn     func(ctx context.Context, userID int, req model.CreateBookingRequest) (*model.Booking, error)
	listByUserFn func(ctx context.Context, userID int) ([]model.Booking, error)
	getByIDFn    func(ctx context.Context, id int64, userID int) (*model.Booking, error)
	deleteFn     func(ctx context.Context, id int64, userID int) error
}

func (s *stubBookingService) Create(ctx context.Context, userID int, req model.CreateBookingRequest) (*model.Booking, error) {
	return s.createFn(ctx, userID, req)
}

func (s *stubBookingService) ListByUser(ctx context.Context, userID int) ([]model.Booking, error) {
	return s.listByUserFn(ctx, userID)
}

func (s *stubBookingService) GetByID(ctx context.Context, id int64, userID int) (*model.Booking, error) {
	return s.getByIDFn(ctx, id, userID)
}

func (s *stubBookingService) Delete(ctx context.Context, id int64, userID int) error {
	return s.deleteFn(ctx, id, userID)
}

type stubFavoriteService struct {
	toggleFn     func(ctx context.Context, userID int, itemName, city string) (bool, error)
	listByUserFn func(ctx context.Context, userID int) ([]model.Favorite, error)
}

func (s *stubFavoriteService) Toggle(ctx context.Context, userID int, itemName, city string) (bool, error) {
	return s.toggleFn(ctx, userID, itemName, city)
}

func (s *stubFavoriteService) ListByUser(ctx context.Context, userID int) ([]model.Favorite, error) {
	return s.listByUserFn(ctx, userID)
}

type stubChatService struct {
	chatFn           func(ctx context.Context, sessionID, prompt string) (string, error)
	analyzeBookingFn func(ctx context.Context, userID int, bookingID int64) (json.RawMessage, error)
}

func (s *stubChatService) Chat(ctx context.Context, sessionID, prompt string) (string, error) {
	return s.chatFn(ctx, sessionID, prompt)
}

func (s *stubChatService) AnalyzeBooking(ctx context.Context, userID int, bookingID int64) (json.RawMessage, error) {
	return s.analyzeBookingFn(ctx, userID, bookingID)
}
