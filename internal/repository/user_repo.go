package repository

import (
	"context"
	"errors"
	"fmt"

	"restavo/internal/model"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrDuplicateUsername is returned when the users.username uniqueness
// constraint rejects an insert or update.
var ErrDuplicateUsername = errors.New("username already exists")

// UserRepository defines operations for user data
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	FindByID(ctx context.Context, id int) (*model.User, error)
	UsernameTakenByOther(ctx context.Context, username string, userID int) (bool, error)
	UpdateProfile(ctx context.Context, userID int, username string, fullName, phone, passwordHash *string) error
}

type userRepository struct {
	db DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts a new user into the database
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	sql := `INSERT INTO users (username, password_hash, age)
            VALUES ($1, $2, $3) RETURNING id`
	err := r.db.QueryRow(ctx, sql, user.Username, user.PasswordHash, user.Age).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateUsername
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindByUsername retrieves a user by username
func (r *userRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	user := &model.User{}
	sql := `SELECT id, username, password_hash, full_name, phone, COALESCE(age, 0) FROM users WHERE username = $1`
	err := r.db.QueryRow(ctx, sql, username).Scan(&user.ID, &user.Username, &user.PasswordHash, &user.FullName, &user.Phone, &user.Age)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found is not an error here, service layer handles it
		}
		return nil, fmt.Errorf("failed to find user by username: %w", err)
	}
	return user, nil
}

// FindByID retrieves a user by their ID
func (r *userRepository) FindByID(ctx context.Context, id int) (*model.User, error) {
	user := &model.User{}
	sql := `SELECT id, username, password_hash, full_name, phone, COALESCE(age, 0) FROM users WHERE id = $1`
	err := r.db.QueryRow(ctx, sql, id).Scan(&user.ID, &user.Username, &user.PasswordHash, &user.FullName, &user.Phone, &user.Age)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // User not found
		}
		return nil, fmt.Errorf("failed to find user by ID: %w", err)
	}
	return user, nil
}

// UsernameTakenByOther reports whether username belongs to a user other
// than userID.
func (r *userRepository) UsernameTakenByOther(ctx context.Context, username string, userID int) (bool, error) {
	var taken bool
	sql := `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1 AND id != $2)`
	if err := r.db.QueryRow(ctx, sql, username, userID).Scan(&taken); err != nil {
		return false, fmt.Errorf("failed to check username availability: %w", err)
	}
	return taken, nil
}

// UpdateProfile rewrites username, full_name and phone unconditionally
// (full replace, not a patch). The password hash is only touched when a
// new one is supplied.
func (r *userRepository) UpdateProfile(ctx context.Context, userID int, username string, fullName, phone, passwordHash *string) error {
	var err error
	if passwordHash != nil {
		sql := `UPDATE users SET username = $1, full_name = $2, phone = $3, password_hash = $4 WHERE id = $5`
		_, err = r.db.Exec(ctx, sql, username, fullName, phone, *passwordHash, userID)
	} else {
		sql := `UPDATE users SET username = $1, full_name = $2, phone = $3 WHERE id = $4`
		_, err = r.db.Exec(ctx, sql, username, fullName, phone, userID)
	}
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateUsername
		}
		return fmt.Errorf("failed to update user profile: %w", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
