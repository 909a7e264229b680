package gold_ledger

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/keyblasters/boostbot/internal/repositories/gold_ledger Repository

import (
	"context"
)

// Repository defines the interface for gold ledger data persistence
type Repository interface {
	// AddUser registers a user and their home realm. Re-adding an existing
	// user updates the realm.
	AddUser(ctx context.Context, input *AddUserInput) error

	// RemoveUser removes a user from the active users set. Past
	// transactions are unaffected.
	RemoveUser(ctx context.Context, input *RemoveUserInput) error

	// GetUserRealm retrieves a registered user's home realm
	GetUserRealm(ctx context.Context, input *GetUserRealmInput) (*GetUserRealmOutput, error)

	// RecordTransaction appends a transaction and updates the derived
	// balance and leaderboard entries
	RecordTransaction(ctx context.Context, input *RecordTransactionInput) error

	// GetBalance retrieves a user's gold balance within a guild
	GetBalance(ctx context.Context, input *GetBalanceInput) (*GetBalanceOutput, error)

	// ListTransactions retrieves a user's most recent transactions
	ListTransactions(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error)

	// ListTopBoosters retrieves the highest-earning boosters for a guild,
	// optionally restricted to one realm
	ListTopBoosters(ctx context.Context, input *ListTopBoostersInput) (*ListTopBoostersOutput, error)
}
