package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Apollo297/newsnote/internal/apperror"
	"github.com/Apollo297/newsnote/internal/auth"
	"github.com/Apollo297/newsnote/internal/form"
	"github.com/Apollo297/newsnote/internal/model"
	"github.com/Apollo297/newsnote/internal/repository"
)

// LoginFailedMessage is shown for any login failure. It is one message
// on purpose: "no such user" and "wrong password" must be
// indistinguishable, or the form becomes a username oracle.
const LoginFailedMessage = "Неверное имя пользователя или пароль."

// AuthService handles signup and login.
type AuthService struct {
	users     repository.UserRepository
	passwords *auth.PasswordService
	logger    *slog.Logger
}

func NewAuthService(users repository.UserRepository, passwords *auth.PasswordService, logger *slog.Logger) *AuthService {
	return &AuthService{
		users:     users,
		passwords: passwords,
		logger:    logger,
	}
}

// Signup registers a new account. A taken username surfaces as a
// Conflict from the repository; the handler renders it on the username
// field.
func (s *AuthService) Signup(ctx context.Context, f *form.SignupForm) (*model.User, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	hash, err := s.passwords.Hash(f.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &model.User{
		Username:     f.Username,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, apperror.ErrConflict) {
			return nil, apperror.ValidationFailed("username", "Пользователь с таким именем уже существует.")
		}
		s.logger.Error("failed to create user", slog.String("error", err.Error()))
		return nil, fmt.Errorf("creating user: %w", err)
	}

	s.logger.Info("user signed up",
		slog.String("id", user.ID),
		slog.String("username", user.Username),
	)
	return user, nil
}

// Login checks credentials and returns the account. All failure modes
// collapse into the same validation error.
func (s *AuthService) Login(ctx context.Context, f *form.LoginForm) (*model.User, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByUsername(ctx, f.Username)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.ValidationFailed("", LoginFailedMessage)
		}
		s.logger.Error("failed to look up user", slog.String("error", err.Error()))
		return nil, fmt.Errorf("looking up user: %w", err)
	}

	if err := s.passwords.Verify(user.PasswordHash, f.Password); err != nil {
		return nil, apperror.ValidationFailed("", LoginFailedMessage)
	}

	s.logger.Info("user logged in", slog.String("id", user.ID))
	return user, nil
}

// GetUser fetches an account by ID; pages use it to show the username
// of the current session.
func (s *AuthService) GetUser(ctx context.Context, id string) (*model.User, error) {
	return s.users.GetByID(ctx, id)
}
