// Package server provides the HTTP REST API for the resume tailor.
package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ErrInvalidAPIKey indicates the presented API key does not match.
type ErrInvalidAPIKey struct{}

func (e *ErrInvalidAPIKey) Error() string {
	return "invalid API key"
}

// ErrResumeNotFound indicates the requested resume does not exist.
type ErrResumeNotFound struct {
	ResumeID uuid.UUID
}

func (e *ErrResumeNotFound) Error() string {
	return fmt.Sprintf("resume not found: %s", e.ResumeID)
}

// ErrJobNotFound indicates the requested job posting does not exist.
type ErrJobNotFound struct {
	JobID uuid.UUID
}

func (e *ErrJobNotFound) Error() string {
	return fmt.Sprintf("job posting not found: %s", e.JobID)
}

// ErrNoDatabase indicates a persistence endpoint was called on a server
// running without a database.
type ErrNoDatabase struct{}

func (e *ErrNoDatabase) Error() string {
	return "no database configured"
}

// ErrValidation indicates request validation failure.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrInvalidAPIKey:
		return http.StatusUnauthorized
	case *ErrResumeNotFound, *ErrJobNotFound:
		return http.StatusNotFound
	case *ErrNoDatabase:
		return http.StatusServiceUnavailable
	case *ErrValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
