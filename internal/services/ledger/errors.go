package ledger

import "errors"

var (
	// ErrInvalidAmount is returned when a gold amount is zero, negative,
	// or above the single-transaction cap
	ErrInvalidAmount = errors.New("gold amount out of range")

	// ErrNoRecipients is returned when a gold command names nobody
	ErrNoRecipients = errors.New("no recipients")
)
