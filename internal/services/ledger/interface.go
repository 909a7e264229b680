package ledger

import (
	"context"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/keyblasters/boostbot/internal/services/ledger Service

// Service is the gold ledger: manual credits and debits, boost payouts,
// balances, and the earnings leaderboard.
type Service interface {
	// RegisterUser binds a user to a home realm.
	RegisterUser(ctx context.Context, input *RegisterUserInput) error

	// RemoveUser drops a user's realm binding. Their transaction history
	// is kept.
	RemoveUser(ctx context.Context, input *RemoveUserInput) error

	// UserRealm returns a user's home realm.
	UserRealm(ctx context.Context, input *UserRealmInput) (*UserRealmOutput, error)

	// RecordGold applies one manual add, deduct, or payout transaction to
	// each recipient.
	RecordGold(ctx context.Context, input *RecordGoldInput) (*RecordGoldOutput, error)

	// PayoutBoost writes one payout transaction per payout line of a
	// processed boost. It fails fast on the first storage error so the
	// caller can retry without closing the boost.
	PayoutBoost(ctx context.Context, input *PayoutBoostInput) (*PayoutBoostOutput, error)

	// Balance returns a user's gold balance within a guild.
	Balance(ctx context.Context, input *BalanceInput) (*BalanceOutput, error)

	// ListTransactions returns a user's recent transactions, most recent
	// first.
	ListTransactions(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error)

	// TopBoosters returns the payout earnings leaderboard for a guild,
	// optionally restricted to one realm.
	TopBoosters(ctx context.Context, input *TopBoostersInput) (*TopBoostersOutput, error)
}
