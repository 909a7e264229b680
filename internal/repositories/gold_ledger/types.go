package gold_ledger

import (
	"github.com/keyblasters/boostbot/internal/models"
)

// AddUserInput contains parameters for registering a user
type AddUserInput struct {
	// UserID is the Discord user ID
	UserID string

	// RealmName is the user's home realm
	RealmName string
}

// RemoveUserInput contains parameters for removing a user
type RemoveUserInput struct {
	// UserID is the Discord user ID
	UserID string
}

// GetUserRealmInput contains parameters for looking up a user's realm
type GetUserRealmInput struct {
	// UserID is the Discord user ID
	UserID string
}

// GetUserRealmOutput contains a user's home realm
type GetUserRealmOutput struct {
	// RealmName is the user's home realm
	RealmName string
}

// RecordTransactionInput contains parameters for appending a transaction
type RecordTransactionInput struct {
	// Transaction is the ledger entry to persist
	Transaction *models.Transaction

	// RealmName attributes payout earnings to a realm leaderboard.
	// Ignored for non-payout transactions.
	RealmName string
}

// GetBalanceInput contains parameters for a balance lookup
type GetBalanceInput struct {
	// UserID is the Discord user ID
	UserID string

	// GuildID is the Discord guild the balance belongs to
	GuildID string
}

// GetBalanceOutput contains a user's balance
type GetBalanceOutput struct {
	// Total is the user's gold balance in the guild
	Total int64
}

// ListTransactionsInput contains parameters for listing recent transactions
type ListTransactionsInput struct {
	// UserID is the Discord user ID
	UserID string

	// Limit caps the number of returned entries, most recent first
	Limit int
}

// ListTransactionsOutput contains a user's recent transactions
type ListTransactionsOutput struct {
	// Transactions is ordered most recent first
	Transactions []*models.Transaction
}

// ListTopBoostersInput contains parameters for the earnings leaderboard
type ListTopBoostersInput struct {
	// GuildID is the Discord guild to rank within
	GuildID string

	// RealmName restricts the ranking to one realm when non-empty
	RealmName string

	// Limit caps the number of returned entries
	Limit int
}

// TopBooster is one leaderboard entry
type TopBooster struct {
	// UserID is the Discord user ID
	UserID string

	// Total is the user's accumulated payout earnings
	Total int64
}

// ListTopBoostersOutput contains the earnings leaderboard
type ListTopBoostersOutput struct {
	// Boosters is ordered highest earnings first
	Boosters []TopBooster
}
