package booking

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrSlotTaken  = errors.New("slot already booked")
	ErrNotFound   = errors.New("booking not found")
	ErrForbidden  = errors.New("forbidden")
)
