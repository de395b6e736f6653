package ordermirror

import "errors"

var (
	ErrInvalidOrderID   = errors.New("invalid order id")
	ErrUnmappedStatus   = errors.New("delivery status has no order mirror target")
	ErrMirrorQueueEmpty = errors.New("mirror queue is empty")
)
