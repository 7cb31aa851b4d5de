package usecase

import (
	"errors"
	"fmt"
)

// Sentinel errors surfaced to callers as user-visible failures. They
// never propagate past the handler layer.
var (
	ErrScreeningNotFound  = errors.New("screening not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidID wraps malformed identifier input so handlers can
	// map it with errors.Is instead of matching message text.
	ErrInvalidID          = errors.New("invalid id")
	ErrInvalidDate        = errors.New("invalid date")
	ErrInvalidTicketCount = errors.New("number of tickets must be positive")
)

// InsufficientSeatsError rejects a reservation that asks for more
// tickets than the screening has left. Available carries the count at
// rejection time so the caller can re-prompt; no state was mutated.
type InsufficientSeatsError struct {
	Available int
}

func (e *InsufficientSeatsError) Error() string {
	return fmt.Sprintf("only %d tickets left for this screening", e.Available)
}
