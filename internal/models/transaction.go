package models

import (
	"time"
)

// TransactionType classifies a gold ledger entry
type TransactionType string

const (
	// TransactionTypeAdd credits gold to a user
	TransactionTypeAdd TransactionType = "add"

	// TransactionTypeDeduct removes gold from a user
	TransactionTypeDeduct TransactionType = "deduct"

	// TransactionTypePayout credits a booster's share of a processed boost
	TransactionTypePayout TransactionType = "payout"
)

// MaxGoldAmount bounds single-transaction amounts to the 32-bit signed range
const MaxGoldAmount = int64(1<<31 - 1)

// Transaction records one gold movement on the ledger
type Transaction struct {
	// ID is the unique identifier for the transaction
	ID string

	// Type is the transaction classification
	Type TransactionType

	// UserID is the recipient's Discord user ID
	UserID string

	// AuthorID is the Discord user ID of whoever recorded the transaction
	AuthorID string

	// Amount is the signed gold amount applied to the recipient's balance
	Amount int64

	// GuildID is the Discord guild the transaction belongs to
	GuildID string

	// Comment is an optional operator note
	Comment string

	// Timestamp is when the transaction was recorded
	Timestamp time.Time
}
