package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"restavo/internal/model"
	"restavo/internal/repository"
	"restavo/internal/utils"
)

var (
	ErrAgeRequired        = errors.New("age is required")
	ErrInvalidAge         = errors.New("invalid age")
	ErrUnderage           = errors.New("you must be 18 years or older")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrUserAlreadyExists  = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)

// Anchored rendering of the local@domain.tld shape: at least one non-@
// segment, an @, another non-@ segment, a dot and a trailing non-@ segment.
var emailPattern = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

const minPasswordLength = 8

// AuthService provides registration and authentication
type AuthService interface {
	// Register validates and creates an account, returning a confirmation
	// message. Age is duck-typed because callers send it as either a JSON
	// number or a string.
	Register(ctx context.Context, username, password string, age any) (string, error)
	Login(ctx context.Context, username, password string) (*model.User, string, error)
	GetUserByID(ctx context.Context, id int) (*model.User, error)
}

type authService struct {
	userRepo repository.UserRepository
	jwtUtil  *utils.JWTUtil
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, jwtUtil *utils.JWTUtil) AuthService {
	return &authService{
		userRepo: userRepo,
		jwtUtil:  jwtUtil,
	}
}

// Register creates a new user account. Checks run in a fixed order so error
// reporting is deterministic: age presence, age validity, age threshold,
// password strength, email shape, then uniqueness (the only one needing a
// store round-trip, so it goes last).
func (s *authService) Register(ctx context.Context, username, password string, age any) (string, error) {
	ageValue, err := parseAge(age)
	if err != nil {
		return "", err
	}
	if ageValue < 18 {
		return "", ErrUnderage
	}
	if len(password) < minPasswordLength {
		return "", ErrWeakPassword
	}
	if !emailPattern.MatchString(username) {
		return "", ErrInvalidEmail
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Username:     username,
		PasswordHash: hashedPassword,
		Age:          ageValue,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return "", ErrUserAlreadyExists
		}
		return "", fmt.Errorf("failed to create user in repository: %w", err)
	}

	return "Registration successful", nil
}

// parseAge normalizes the untyped age field. Absent and falsy values report
// ErrAgeRequired; values that are present but not integers report
// ErrInvalidAge.
func parseAge(age any) (int, error) {
	switch v := age.(type) {
	case nil:
		return 0, ErrAgeRequired
	case float64:
		if v == 0 {
			return 0, ErrAgeRequired
		}
		if v != float64(int(v)) {
			return 0, ErrInvalidAge
		}
		return int(v), nil
	case int:
		if v == 0 {
			return 0, ErrAgeRequired
		}
		return v, nil
	case json.Number:
		return parseAgeString(v.String())
	case string:
		return parseAgeString(v)
	default:
		return 0, ErrInvalidAge
	}
}

func parseAgeString(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, ErrAgeRequired
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, ErrInvalidAge
	}
	if n == 0 {
		return 0, ErrAgeRequired
	}
	return n, nil
}

// Login verifies credentials and returns the user with a signed token.
// Bad credentials never distinguish between unknown user and wrong password.
func (s *authService) Login(ctx context.Context, username, password string) (*model.User, string, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, "", fmt.Errorf("error finding user by username: %w", err)
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwtUtil.GenerateToken(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return user, token, nil
}

// GetUserByID maps a stored row to an identity; nil means no such user
func (s *authService) GetUserByID(ctx context.Context, id int) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find user by ID: %w", err)
	}
	return user, nil
}
