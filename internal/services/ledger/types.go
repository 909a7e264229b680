package ledger

import (
	"github.com/keyblasters/boostbot/internal/models"
)

// RegisterUserInput is the input for RegisterUser.
type RegisterUserInput struct {
	// UserID is the Discord user ID
	UserID string

	// RealmName is the user's home realm, already validated
	RealmName string
}

// RemoveUserInput is the input for RemoveUser.
type RemoveUserInput struct {
	UserID string
}

// UserRealmInput is the input for UserRealm.
type UserRealmInput struct {
	UserID string
}

// UserRealmOutput is the output for UserRealm.
type UserRealmOutput struct {
	RealmName string
}

// Recipient is one target of a manual gold command.
type Recipient struct {
	// UserID is the Discord user ID
	UserID string

	// Mention is the recipient's mention string, echoed back in the
	// confirmation
	Mention string
}

// RecordGoldInput is the input for RecordGold.
type RecordGoldInput struct {
	// Type is add or deduct
	Type models.TransactionType

	// Recipients are the users the amount applies to
	Recipients []Recipient

	// AuthorID is the user issuing the command
	AuthorID string

	// Amount is the unsigned gold amount per recipient
	Amount int64

	// GuildID is the guild the balances belong to
	GuildID string

	// Comment is an optional operator note
	Comment string
}

// RecordGoldOutput is the output for RecordGold.
type RecordGoldOutput struct {
	// Transactions are the recorded ledger entries, one per recipient
	Transactions []*models.Transaction
}

// PayoutBoostInput is the input for PayoutBoost.
type PayoutBoostInput struct {
	// Boost is the processed boost
	Boost *models.Boost

	// Lines are the payout lines computed for the boost
	Lines []models.PayoutLine

	// AuthorID is the user triggering the payout
	AuthorID string

	// GuildID is the guild the balances belong to
	GuildID string
}

// PayoutBoostOutput is the output for PayoutBoost.
type PayoutBoostOutput struct {
	// Transactions are the recorded ledger entries, one per payout line
	Transactions []*models.Transaction
}

// BalanceInput is the input for Balance.
type BalanceInput struct {
	UserID  string
	GuildID string
}

// BalanceOutput is the output for Balance.
type BalanceOutput struct {
	Total int64
}

// ListTransactionsInput is the input for ListTransactions.
type ListTransactionsInput struct {
	UserID string

	// Limit caps the number of returned entries; zero means the default
	Limit int
}

// ListTransactionsOutput is the output for ListTransactions.
type ListTransactionsOutput struct {
	Transactions []*models.Transaction
}

// TopBoosterEntry is one leaderboard row.
type TopBoosterEntry struct {
	UserID string
	Total  int64
}

// TopBoostersInput is the input for TopBoosters.
type TopBoostersInput struct {
	GuildID string

	// RealmName restricts the ranking to one realm when non-empty
	RealmName string

	// Limit caps the number of returned entries; zero means the default
	Limit int
}

// TopBoostersOutput is the output for TopBoosters.
type TopBoostersOutput struct {
	Boosters []TopBoosterEntry
}
