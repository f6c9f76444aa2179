// Package service provides the business logic for users and products.
package service

import (
	"context"
	"fmt"

	"github.com/abgdnv/crudapi/internal/store"
	"github.com/abgdnv/crudapi/internal/store/db"
)

// UserService defines the methods for managing users.
type UserService interface {
	// FindAll returns all users in storage order.
	// Returns an empty slice if no users exist.
	FindAll(ctx context.Context) ([]UserDto, error)

	// Create adds a new user and returns it with its assigned ID.
	Create(ctx context.Context, user UserCreateDto) (*UserDto, error)

	// Update replaces the details of the user with the given ID.
	// Returns ErrUserNotFound if no user exists with the given ID.
	Update(ctx context.Context, id int64, user UserCreateDto) (*UserDto, error)

	// DeleteByID removes a user by its ID.
	// Returns ErrUserNotFound if no user exists with the given ID.
	DeleteByID(ctx context.Context, id int64) error
}

// UserCreateDto is the request body for creating or replacing a user.
type UserCreateDto struct {
	Name  string `json:"name"  validate:"required"`
	Email string `json:"email" validate:"required"`
}

// UserDto represents the data transfer object for a user.
type UserDto struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Users implements UserService.
type Users struct {
	repository store.UserStore
}

// NewUserService creates a new instance of UserService with the provided repository.
func NewUserService(repo store.UserStore) *Users {
	return &Users{repository: repo}
}

// FindAll retrieves all users.
func (s *Users) FindAll(ctx context.Context) ([]UserDto, error) {
	users, err := s.repository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	userDTOs := make([]UserDto, len(users))
	for i, item := range users {
		userDTOs[i] = *toUserDto(&item)
	}
	return userDTOs, nil
}

// Create creates a new user and returns it as a UserDto.
func (s *Users) Create(ctx context.Context, user UserCreateDto) (*UserDto, error) {
	u, err := s.repository.Create(ctx, user.Name, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return toUserDto(u), nil
}

// Update replaces the user's details. The returned DTO echoes the given ID and
// values; the row is not read back.
func (s *Users) Update(ctx context.Context, id int64, user UserCreateDto) (*UserDto, error) {
	if err := s.repository.Update(ctx, id, user.Name, user.Email); err != nil {
		return nil, fmt.Errorf("failed to update user with ID %d: %w", id, err)
	}
	return &UserDto{ID: id, Name: user.Name, Email: user.Email}, nil
}

// DeleteByID deletes a user by its ID.
func (s *Users) DeleteByID(ctx context.Context, id int64) error {
	if err := s.repository.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete user with ID %d: %w", id, err)
	}
	return nil
}

func toUserDto(user *db.User) *UserDto {
	return &UserDto{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}
}
