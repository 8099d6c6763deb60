// Package common defines shared sentinel errors and small helpers used
// across nutrio components. Callers should use errors.Is to match the values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// Credential errors.
	ErrorInvalidLoginPassword = errors.New("invalid login credentials")
	ErrorLoginAlreadyExists   = errors.New("user already registered")
)
