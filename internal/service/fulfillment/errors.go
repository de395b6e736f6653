package fulfillment

import "errors"

var (
	ErrInvalidDeliveryID = errors.New("invalid delivery id")
	ErrInvalidOrderID    = errors.New("invalid order id")
	ErrInvalidRating     = errors.New("invalid rating")

	ErrDeliveryNotFound  = errors.New("delivery not found")
	ErrIllegalTransition = errors.New("illegal status transition")
	ErrNotDeliverable    = errors.New("delivery is not in DELIVERED status")
	ErrAlreadyRated      = errors.New("delivery already rated")
	ErrActorNotAllowed   = errors.New("actor is not allowed to modify this delivery")
	ErrConflict          = errors.New("delivery status changed concurrently")
)
