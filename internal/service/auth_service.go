package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"examdesk/internal/auth"
	errs "examdesk/internal/errors"
	"examdesk/internal/model"
	"examdesk/internal/repository"
)

const bcryptCost = 10

// AuthService handles authentication operations. Sessions are stateless: no
// token is persisted server-side, the refresh token alone reconstructs the
// session.
type AuthService interface {
	Login(ctx context.Context, email, password string) (accessToken, refreshToken string, err error)
	Refresh(ctx context.Context, refreshToken string) (accessToken string, err error)
	Register(ctx context.Context, email, password string, roles []string) (*model.User, error)
	ResetPassword(ctx context.Context, email, newPassword string) error
}

type authService struct {
	users      repository.UserRepository
	jwtService *auth.JWTService
	validate   *validator.Validate
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, jwtService *auth.JWTService) AuthService {
	return &authService{
		users:      users,
		jwtService: jwtService,
		validate:   validator.New(),
	}
}

// Login authenticates a user and returns access and refresh tokens. The
// lookup is by exact email; the caller learns nothing about whether the email
// or the password was wrong.
func (s *authService) Login(ctx context.Context, email, password string) (string, string, error) {
	if email == "" || password == "" {
		return "", "", errs.Message(errs.ErrMissingFields, "All fields are required")
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil || !user.Active {
		return "", "", errs.Message(errs.ErrUnauthorized, "Unauthorized")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", "", errs.Message(errs.ErrUnauthorized, "Unauthorized")
	}

	accessToken, err := s.jwtService.GenerateAccessToken(user.ID, user.Email, user.Roles)
	if err != nil {
		return "", "", fmt.Errorf("generate access token: %w", err)
	}

	refreshToken, err := s.jwtService.GenerateRefreshToken(user.Email)
	if err != nil {
		return "", "", fmt.Errorf("generate refresh token: %w", err)
	}

	return accessToken, refreshToken, nil
}

// Refresh validates a refresh token and mints a new access token. The refresh
// token itself is never rotated.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.jwtService.ParseRefreshToken(refreshToken)
	if err != nil {
		return "", errs.Message(errs.ErrForbidden, "Forbidden")
	}

	user, err := s.users.FindByEmail(ctx, claims.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", errs.Message(errs.ErrUnauthorized, "Unauthorized")
		}
		return "", fmt.Errorf("find user: %w", err)
	}

	accessToken, err := s.jwtService.GenerateAccessToken(user.ID, user.Email, user.Roles)
	if err != nil {
		return "", fmt.Errorf("generate access token: %w", err)
	}

	return accessToken, nil
}

// Register creates a new user with a hashed password. Roles default when none
// are supplied.
func (s *authService) Register(ctx context.Context, email, password string, roles []string) (*model.User, error) {
	if email == "" || password == "" {
		return nil, errs.Message(errs.ErrMissingFields, "All fields are required")
	}

	if err := s.validate.Var(email, "email"); err != nil {
		return nil, errs.Message(errs.ErrInvalidEmail, "Invalid Email")
	}

	if _, err := s.users.FindByEmailFold(ctx, email); err == nil {
		return nil, errs.Message(errs.ErrDuplicate, "Email in Use")
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

// ResetPassword overwrites the stored hash for an existing user.
func (s *authService) ResetPassword(ctx context.Context, email, newPassword string) error {
	if email == "" || newPassword == "" {
		return errs.Message(errs.ErrMissingFields, "All fields are required")
	}

	if err := s.validate.Var(email, "email"); err != nil {
		return errs.Message(errs.ErrInvalidEmail, "Invalid Email")
	}

	user, err := s.users.FindByEmailFold(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.Message(errs.ErrNotFound, "No Such User")
		}
		return fmt.Errorf("find user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user.PasswordHash = string(hash)
	if err := s.users.Save(ctx, user); err != nil {
		return fmt.Errorf("save user: %w", err)
	}

	return nil
}
