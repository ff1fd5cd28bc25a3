package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"restavo/internal/model"
	"restavo/internal/repository"
	"restavo/internal/utils"
)

var ErrEmailTaken = errors.New("email is already in use")

// UserService provides profile management
type UserService interface {
	// UpdateProfile is a full replace of username, full_name and phone; the
	// password only changes when a new one is supplied.
	UpdateProfile(ctx context.Context, userID int, req model.UpdateProfileRequest) (*model.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) UpdateProfile(ctx context.Context, userID int, req model.UpdateProfileRequest) (*model.User, error) {
	current, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load current profile: %w", err)
	}
	if current == nil {
		return nil, ErrUserNotFound
	}

	// Keep the current username when the request omits one
	newUsername := current.Username
	if req.Username != nil && *req.Username != "" {
		newUsername = *req.Username
	}
	if !strings.Contains(newUsername, "@") {
		return nil, ErrInvalidEmail
	}

	taken, err := s.userRepo.UsernameTakenByOther(ctx, newUsername, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check email availability: %w", err)
	}
	if taken {
		return nil, ErrEmailTaken
	}

	var passwordHash *string
	if req.NewPassword != nil && *req.NewPassword != "" {
		hashed, err := utils.HashPassword(*req.NewPassword)
		if err != nil {
			return nil, fmt.Errorf("failed to hash new password: %w", err)
		}
		passwordHash = &hashed
	}

	err = s.userRepo.UpdateProfile(ctx, userID, newUsername, req.FullName, req.Phone, passwordHash)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	updated, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload profile: %w", err)
	}
	return updated, nil
}
