package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	errs "examdesk/internal/errors"
	"examdesk/internal/model"
	"examdesk/internal/repository"
)

// UserService exposes the admin-facing user operations. Registration for the
// public surface lives on AuthService; Create here behaves identically.
type UserService interface {
	List(ctx context.Context) ([]model.User, error)
	Create(ctx context.Context, email, password string, roles []string) (*model.User, error)
	Update(ctx context.Context, id uuid.UUID, email string, roles []string, active bool, password string) (*model.User, error)
	Delete(ctx context.Context, id uuid.UUID) (*model.User, error)
}

type userService struct {
	users    repository.UserRepository
	validate *validator.Validate
}

// NewUserService builds a UserService.
func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users, validate: validator.New()}
}

func (s *userService) List(ctx context.Context) ([]model.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	if len(users) == 0 {
		return nil, errs.Message(errs.ErrNotFound, "No users found")
	}
	return users, nil
}

func (s *userService) Create(ctx context.Context, email, password string, roles []string) (*model.User, error) {
	if email == "" || password == "" {
		return nil, errs.Message(errs.ErrMissingFields, "All fields are required")
	}

	if err := s.validate.Var(email, "email"); err != nil {
		return nil, errs.Message(errs.ErrInvalidEmail, "Invalid Email")
	}

	if _, err := s.users.FindByEmailFold(ctx, email); err == nil {
		return nil, errs.Message(errs.ErrDuplicate, "Duplicate email")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check duplicate email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Email:        email,
		PasswordHash: string(hash),
		Active:       true,
	}
	if len(roles) > 0 {
		user.Roles = datatypes.NewJSONSlice(roles)
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Update overwrites email, roles and active; the password is re-hashed only
// when a new one is supplied.
func (s *userService) Update(ctx context.Context, id uuid.UUID, email string, roles []string, active bool, password string) (*model.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.Message(errs.ErrNotFound, "User not found")
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if dup, err := s.users.FindByEmailFold(ctx, email); err == nil && dup.ID != id {
		return nil, errs.Message(errs.ErrDuplicate, "Duplicate email")
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check duplicate email: %w", err)
	}

	user.Email = email
	user.Roles = datatypes.NewJSONSlice(roles)
	user.Active = active

	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = string(hash)
	}

	if err := s.users.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}
	return user, nil
}

func (s *userService) Delete(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.Message(errs.ErrNotFound, "User not found")
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("delete user: %w", err)
	}
	return user, nil
}
