package model

import "errors"

var (
	// ErrNotFound signals that the requested entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized signals that the entity exists but belongs to a different user.
	ErrUnauthorized = errors.New("entity owned by different user")
	// ErrUserNotFound signals that the resolved identity matches no known user.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken signals a registration attempt with an already used email.
	ErrEmailTaken = errors.New("email already taken")
	// ErrInvalidCredentials signals a failed login attempt.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
