package domain

import "errors"

var (
	ErrSlotNotFound        = errors.New("slot not found")
	ErrApplicationNotFound = errors.New("application not found")
	ErrInterviewNotFound   = errors.New("interview not found")
)

var (
	ErrSlotFull              = errors.New("slot is fully booked")
	ErrAlreadyScheduled      = errors.New("application already has a scheduled interview")
	ErrInterviewNotScheduled = errors.New("interview is not in scheduled status")
	ErrSlotHasBookings       = errors.New("slot has active bookings")
)

var (
	ErrNotSlotOwner = errors.New("slot belongs to another interviewer")
)

var (
	ErrValidation = errors.New("validation error")
)

// ErrStoreTimeout marks a persistence call that exceeded its bounded
// timeout; the API layer surfaces it as 503.
var ErrStoreTimeout = errors.New("storage timeout")
