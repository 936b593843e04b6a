package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Agent-cat/Expence-Tracker/internal/logger"
	"github.com/Agent-cat/Expence-Tracker/internal/model"
	"github.com/Agent-cat/Expence-Tracker/internal/password"
)

// AuthResult carries the issued token and the authenticated user's email.
type AuthResult struct {
	Token string
	Email string
}

type Auth struct {
	userStore    model.UserStore
	tokenManager model.TokenManager
	logger       *logger.Logger
}

func NewAuth(
	userStore model.UserStore,
	tokenManager model.TokenManager,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:    userStore,
		tokenManager: tokenManager,
		logger:       logger,
	}
}

func (a *Auth) Register(ctx context.Context, email, plaintext string) (AuthResult, error) {
	a.logger.Debug("Auth service: starting user registration",
		"email", email)

	existingUser, err := a.userStore.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return AuthResult{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if existingUser.ID != uuid.Nil {
		a.logger.Info("Auth service: user already exists",
			"email", email)
		return AuthResult{}, model.ErrEmailTaken
	}

	hash, err := password.Hash(plaintext)
	if err != nil {
		return AuthResult{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := a.userStore.Create(ctx, model.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		a.logger.Error("Auth service: failed to create user",
			"email", email,
			"error", err.Error())
		return AuthResult{}, fmt.Errorf("failed to create user: %w", err)
	}

	tokenString, err := a.tokenManager.GenerateAccessToken(model.Principal{UserID: user.ID, Email: user.Email})
	if err != nil {
		return AuthResult{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	a.logger.Info("Auth service: user registered",
		"user_id", user.ID,
		"email", user.Email)

	return AuthResult{Token: tokenString, Email: user.Email}, nil
}

func (a *Auth) Login(ctx context.Context, email, plaintext string) (AuthResult, error) {
	a.logger.Debug("Auth service: starting user login",
		"email", email)

	user, err := a.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return AuthResult{}, model.ErrInvalidCredentials
	}
	if err != nil {
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return AuthResult{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if !password.Compare(user.PasswordHash, plaintext) {
		a.logger.Info("Auth service: password mismatch",
			"email", email)
		return AuthResult{}, model.ErrInvalidCredentials
	}

	tokenString, err := a.tokenManager.GenerateAccessToken(model.Principal{UserID: user.ID, Email: user.Email})
	if err != nil {
		return AuthResult{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	a.logger.Info("Auth service: user logged in",
		"user_id", user.ID,
		"email", user.Email)

	return AuthResult{Token: tokenString, Email: user.Email}, nil
}

func (a *Auth) Profile(ctx context.Context, principal model.Principal) (model.User, error) {
	user, err := a.userStore.GetByID(ctx, principal.UserID)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, model.ErrUserNotFound
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}
