package dispatch

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrInvalidWeight         = errors.New("invalid consignment weight")
	ErrInvalidGeoCode        = errors.New("invalid geo code")

	ErrNoAgentAvailable  = errors.New("no agent available")
	ErrNoSuitableVehicle = errors.New("no suitable vehicle")
	ErrDuplicateDispatch = errors.New("order already dispatched")
)
