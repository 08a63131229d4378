package domain

import "errors"

var (
	// Common domain errors
	ErrNotFound        = errors.New("no matching drinks")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnavailable     = errors.New("upstream service unavailable")
	ErrNotConfigured   = errors.New("feature not configured")
	ErrAlreadyExists   = errors.New("entity already exists")
)
