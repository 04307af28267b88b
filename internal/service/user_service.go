package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/edgarceron/toptal-project/internal/domain"
	"github.com/edgarceron/toptal-project/internal/repository"
	"github.com/edgarceron/toptal-project/pkg/hasher"
)

var (
	ErrUsernameTaken = errors.New("username already taken")
	ErrEmailTaken    = errors.New("email already taken")
)

type UserService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
	Role     string `json:"user_type"`
}

// Create hashes the candidate's password and persists the user. Uniqueness
// of username and email is enforced by the collection's unique indexes, not
// by a lookup here, so concurrent registrations cannot both succeed.
func (s *UserService) Create(ctx context.Context, input RegisterInput) (*domain.User, error) {
	hash, err := hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &domain.User{
		Username:     input.Username,
		Email:        input.Email,
		FullName:     input.FullName,
		Disabled:     false,
		Role:         domain.UserRole(input.Role),
		PasswordHash: hash,
	}

	created, err := s.users.Add(ctx, user)
	if err != nil {
		var dup *repository.DuplicateKeyError
		if errors.As(err, &dup) {
			switch dup.Field {
			case "email":
				return nil, ErrEmailTaken
			default:
				return nil, ErrUsernameTaken
			}
		}
		return nil, fmt.Errorf("creating user: %w", err)
	}
	return created, nil
}

// GetByUsername returns the internal user record, hash included. It exists
// for authentication; handlers never expose its result directly.
func (s *UserService) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.users.GetByUsername(ctx, username)
}
