package models

import (
	"errors"
	"sort"
	"strings"
)

// Model validation and operation errors
var (
	// General errors
	ErrNotFound      = errors.New("resource not found")
	ErrAlreadyExists = errors.New("resource already exists")
	ErrInvalidInput  = errors.New("invalid input")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")

	// Diagnosis errors
	ErrDiagnosisNotFound = errors.New("diagnosis not found")
	ErrInvalidFeedback   = errors.New("invalid feedback value")
	ErrInvalidRole       = errors.New("invalid role")
	ErrIncompleteAnswers = errors.New("all questions must be answered")

	// Challenge response errors
	ErrChallengeNotFound = errors.New("challenge response not found")

	// Analytics errors
	ErrMissingSessionID = errors.New("session id is required")
	ErrMissingEventType = errors.New("event type is required")

	// Admin user errors
	ErrUserNotFound       = errors.New("user not found")
	ErrUserInactive       = errors.New("user is inactive")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrWeakPassword       = errors.New("password does not meet strength requirements")
)

// ValidationErrors maps field names to user-facing messages. Services return
// it before any store call is made; handlers surface it as a 400 with the
// full field map so the client can focus the first invalid field.
type ValidationErrors map[string]string

// Error implements the error interface.
func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return "validation failed"
	}
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return "validation failed: " + strings.Join(fields, ", ")
}

// IsNotFoundError returns true if the error is a not found error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrDiagnosisNotFound) ||
		errors.Is(err, ErrChallengeNotFound) ||
		errors.Is(err, ErrUserNotFound)
}

// IsValidationError returns true if the error is a validation error
func IsValidationError(err error) bool {
	var v ValidationErrors
	if errors.As(err, &v) {
		return true
	}
	return errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrInvalidFeedback) ||
		errors.Is(err, ErrInvalidRole) ||
		errors.Is(err, ErrIncompleteAnswers) ||
		errors.Is(err, ErrMissingSessionID) ||
		errors.Is(err, ErrMissingEventType) ||
		errors.Is(err, ErrWeakPassword)
}

// IsAuthError returns true if the error is an authentication/authorization error
func IsAuthError(err error) bool {
	return errors.Is(err, ErrUnauthorized) ||
		errors.Is(err, ErrForbidden) ||
		errors.Is(err, ErrUserInactive) ||
		errors.Is(err, ErrInvalidCredentials)
}

// IsConflictError returns true if the error is a conflict/duplicate error
func IsConflictError(err error) bool {
	return errors.Is(err, ErrAlreadyExists) ||
		errors.Is(err, ErrEmailAlreadyExists)
}
