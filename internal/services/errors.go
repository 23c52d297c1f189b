package services

import "errors"

// Error variables
var (
	ErrEmailAlreadyExists    = errors.New("email already registered")
	ErrUsernameAlreadyExists = errors.New("username already taken")
	ErrUserNotFound          = errors.New("user not found")
	ErrInvalidCredentials    = errors.New("invalid password")
	ErrUnauthenticated       = errors.New("not authenticated")
	ErrInvalidToken          = errors.New("invalid token")
	ErrExpiredToken          = errors.New("token expired")
	ErrSessionNotFound       = errors.New("session not found")
	ErrInvalidScore          = errors.New("score must be a non-negative integer")
	ErrInvalidMode           = errors.New("mode must be walls or pass-through")
)
