package agent

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidAgentID        = errors.New("invalid agent id")
	ErrInvalidName           = errors.New("invalid name")
	ErrInvalidPhone          = errors.New("invalid phone")
	ErrInvalidEmail          = errors.New("invalid email")
	ErrInvalidVehicle        = errors.New("invalid vehicle")
	ErrInvalidGeoCodes       = errors.New("invalid geo codes")
	ErrInvalidRating         = errors.New("invalid rating")

	ErrAgentNotFound = errors.New("agent not found")
	ErrConflict      = errors.New("resource already exists")
)
