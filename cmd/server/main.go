package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"restavo/internal/ai"
	"restavo/internal/config"
	"restavo/internal/handler"
	"restavo/internal/logger"
	"restavo/internal/middleware"
	"restavo/internal/repository"
	"restavo/internal/service"
	"restavo/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	log := logger.NewLogger("server")

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found, relying on environment variables")
	}

	// --- Configuration ---
	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load DB config")
	}

	jwtSecret := os.Getenv("JWT_SECRET_KEY")
	if jwtSecret == "" {
		log.Fatal().Msg("JWT_SECRET_KEY not set in environment")
	}
	jwtExpHours := int64(24)
	if raw := os.Getenv("JWT_EXPIRATION_HOURS"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			log.Warn().Str("value", raw).Msg("invalid JWT_EXPIRATION_HOURS, defaulting to 24")
		} else {
			jwtExpHours = parsed
		}
	}

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080" // Default port
	}

	// --- Database Connection ---
	dbPool, err := config.ConnectDB(dbCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer dbPool.Close()

	// --- Schema + Seed ---
	if err := config.AutoMigrate(dbPool); err != nil {
		log.Fatal().Err(err).Msg("failed to auto-migrate database")
	}
	if err := config.SeedHotels(dbPool); err != nil {
		log.Fatal().Err(err).Msg("failed to seed hotel inventory")
	}

	// --- Initialize Utilities ---
	jwtUtil := utils.NewJWTUtil(jwtSecret, jwtExpHours)

	// --- Initialize Repositories ---
	userRepo := repository.NewUserRepository(dbPool)
	hotelRepo := repository.NewHotelRepository(dbPool)
	bookingRepo := repository.NewBookingRepository(dbPool)
	favoriteRepo := repository.NewFavoriteRepository(dbPool)

	// --- Completion service (optional) ---
	aiCfg := config.LoadAIConfig()
	var completer service.Completer
	if aiCfg.APIKey != "" {
		gemini, err := ai.NewGeminiCompleter(context.Background(), aiCfg.APIKey, aiCfg.Model)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize gemini client")
		}
		completer = gemini
	} else {
		log.Warn().Msg("GEMINI_API_KEY not set, AI endpoints disabled")
	}

	// --- Initialize Services ---
	authService := service.NewAuthService(userRepo, jwtUtil)
	userService := service.NewUserService(userRepo)
	hotelService := service.NewHotelService(hotelRepo)
	bookingService := service.NewBookingService(bookingRepo)
	favoriteService := service.NewFavoriteService(favoriteRepo)
	chatService := service.NewChatService(hotelService, bookingService, completer, log)

	// --- Initialize Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	hotelHandler := handler.NewHotelHandler(hotelService)
	bookingHandler := handler.NewBookingHandler(bookingService)
	favoriteHandler := handler.NewFavoriteHandler(favoriteService)
	chatHandler := handler.NewChatHandler(chatService)

	// --- Setup Gin Router ---
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging(log))

	// Simple CORS middleware (allow all for development)
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// --- Initialize Middlewares ---
	jwtAuthMW := middleware.JWTAuthMiddleware(jwtUtil)
	optionalAuthMW := middleware.OptionalJWTAuthMiddleware(jwtUtil)

	// --- Register Routes ---
	apiGroup := router.Group("/api/v1")
	authHandler.RegisterAuthRoutes(apiGroup, optionalAuthMW, jwtAuthMW)
	userHandler.RegisterUserRoutes(apiGroup, jwtAuthMW)
	hotelHandler.RegisterHotelRoutes(apiGroup)
	bookingHandler.RegisterBookingRoutes(apiGroup, jwtAuthMW)
	favoriteHandler.RegisterFavoriteRoutes(apiGroup, jwtAuthMW)
	chatHandler.RegisterChatRoutes(apiGroup, optionalAuthMW, jwtAuthMW)

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		if err := dbPool.Ping(context.Background()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "db": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "healthy"})
	})

	// --- Start Server ---
	srv := &http.Server{
		Addr:    ":" + serverPort,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", serverPort).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("listen failed")
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exiting")
}
