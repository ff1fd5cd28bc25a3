package config

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// DBConfig holds database connection parameters
type DBConfig struct {
	DSN string
}

// LoadDBConfig loads database configuration from environment variables
func LoadDBConfig() (*DBConfig, error) {
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")

	if dbHost == "" || dbPort == "" || dbUser == "" || dbName == "" {
		return nil, fmt.Errorf("database environment variables not set (DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, DB_NAME)")
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		dbHost, dbPort, dbUser, dbPassword, dbName)

	return &DBConfig{DSN: dsn}, nil
}

// ConnectDB establishes a connection to the PostgreSQL database
func ConnectDB(cfg *DBConfig) (*pgxpool.Pool, error) {
	var pool *pgxpool.Pool
	var err error

	// Retry connecting to the database a few times
	maxRetries := 5
	retryInterval := 5 * time.Second

	for i := 0; i < maxRetries; i++ {
		pool, err = pgxpool.New(context.Background(), cfg.DSN)
		if err == nil {
			err = pool.Ping(context.Background())
			if err == nil {
				log.Info().Msg("connected to PostgreSQL")
				return pool, nil
			}
		}
		log.Warn().Err(err).Msgf("failed to connect to database (attempt %d/%d), retrying in %v", i+1, maxRetries, retryInterval)
		time.Sleep(retryInterval)
	}
	return nil, fmt.Errorf("unable to connect to database after %d attempts: %w", maxRetries, err)
}

// AutoMigrate creates tables if they don't exist and additively reconciles
// columns on users so older databases keep their rows across upgrades.
func AutoMigrate(db *pgxpool.Pool) error {
	sql := `
	CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		username TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		full_name TEXT,
		phone TEXT,
		age INTEGER
	);

	-- Columns added after the first release; safe to re-run
	ALTER TABLE users ADD COLUMN IF NOT EXISTS full_name TEXT;
	ALTER TABLE users ADD COLUMN IF NOT EXISTS phone TEXT;
	ALTER TABLE users ADD COLUMN IF NOT EXISTS age INTEGER;

	CREATE TABLE IF NOT EXISTS hotels (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		city TEXT NOT NULL,
		price DOUBLE PRECISION NOT NULL,
		rating DOUBLE PRECISION NOT NULL,
		image_url TEXT
	);

	CREATE TABLE IF NOT EXISTS bookings (
		id SERIAL PRIMARY KEY,
		user_id INTEGER NOT NULL,
		user_name TEXT NOT NULL,
		hotel_name TEXT NOT NULL,
		city TEXT NOT NULL,
		check_in TEXT NOT NULL,
		check_out TEXT NOT NULL,
		price DOUBLE PRECISION NOT NULL,
		hotel_image_url TEXT,
		FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS favorites (
		user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		item_name TEXT NOT NULL,
		city TEXT NOT NULL,
		added_at TIMESTAMP WITH TIME ZONE NOT NULL,
		PRIMARY KEY (user_id, item_name)
	);

	CREATE INDEX IF NOT EXISTS idx_bookings_user_id ON bookings(user_id);
	`
	_, err := db.Exec(context.Background(), sql)
	if err != nil {
		return fmt.Errorf("unable to apply migrations: %w", err)
	}

	log.Info().Msg("AutoMigrate applied successfully")
	return nil
}

type hotelSeed struct {
	name     string
	city     string
	price    float64
	rating   float64
	imageURL string
}

var seedHotels = []hotelSeed{
	{"Grand Hotel Dubai", "Dubai", 250, 4.8, "./static/image/Hotel1.jpg"},
	{"Dubai Marina View", "Dubai", 300, 4.9, "./static/image/Hotel2.jpg"},
	{"Palm Resort", "Dubai", 450, 5.0, "./static/image/Hotel3.jpg"},
	{"Cairo Nile View", "Cairo", 120, 4.5, "./static/image/Hotel4.jpg"},
	{"Pyramids Plaza", "Cairo", 150, 4.6, "./static/image/Hotel5.jpg"},
	{"Riyadh Business Stay", "Riyadh", 200, 4.7, "./static/image/Hotel6.jpg"},
	{"Kingdom Tower Hotel", "Riyadh", 350, 4.8, "./static/image/Hotel7.jpg"},
	{"London Bridge Inn", "London", 180, 4.3, "./static/image/Hotel8.jpg"},
	{"Hyde Park Suites", "London", 220, 4.6, "./static/image/Hotel9.jpg"},
}

// SeedHotels inserts the default inventory exactly once, gated by a
// row-count check so restarts never duplicate rows.
func SeedHotels(db *pgxpool.Pool) error {
	var count int
	if err := db.QueryRow(context.Background(), "SELECT COUNT(*) FROM hotels").Scan(&count); err != nil {
		return fmt.Errorf("unable to count hotels: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, h := range seedHotels {
		_, err := db.Exec(context.Background(),
			"INSERT INTO hotels (name, city, price, rating, image_url) VALUES ($1, $2, $3, $4, $5)",
			h.name, h.city, h.price, h.rating, h.imageURL)
		if err != nil {
			return fmt.Errorf("unable to seed hotels: %w", err)
		}
	}

	log.Info().Int("hotels", len(seedHotels)).Msg("seeded default hotel inventory")
	return nil
}
