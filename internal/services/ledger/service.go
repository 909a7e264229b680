package ledger

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/keyblasters/boostbot/internal/common/clock"
	"github.com/keyblasters/boostbot/internal/common/logger"
	"github.com/keyblasters/boostbot/internal/common/uuid"
	"github.com/keyblasters/boostbot/internal/models"
	"github.com/keyblasters/boostbot/internal/repositories/gold_ledger"
)

type service struct {
	repo          gold_ledger.Repository
	clock         clock.Clock
	uuidGenerator uuid.UUID
}

// Config is the configuration for the ledger service.
type Config struct {
	// Repository stores users, transactions, and leaderboards.
	Repository gold_ledger.Repository

	// Clock may be nil, in which case the system clock is used.
	Clock clock.Clock

	// UUIDGenerator may be nil, in which case random UUIDs are used.
	UUIDGenerator uuid.UUID
}

// New creates a new ledger service.
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("cfg cannot be nil")
	}

	if cfg.Repository == nil {
		return nil, errors.New("cfg.Repository cannot be nil")
	}

	clockImpl := cfg.Clock
	if clockImpl == nil {
		clockImpl = &clock.DefaultClock{}
	}

	uuidImpl := cfg.UUIDGenerator
	if uuidImpl == nil {
		uuidImpl = uuid.New()
	}

	return &service{
		repo:          cfg.Repository,
		clock:         clockImpl,
		uuidGenerator: uuidImpl,
	}, nil
}

func (s *service) RegisterUser(ctx context.Context, input *RegisterUserInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	if input.UserID == "" || input.RealmName == "" {
		return errors.New("input.UserID and input.RealmName cannot be empty")
	}

	return s.repo.AddUser(ctx, &gold_ledger.AddUserInput{
		UserID:    input.UserID,
		RealmName: input.RealmName,
	})
}

func (s *service) RemoveUser(ctx context.Context, input *RemoveUserInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	return s.repo.RemoveUser(ctx, &gold_ledger.RemoveUserInput{
		UserID: input.UserID,
	})
}

func (s *service) UserRealm(ctx context.Context, input *UserRealmInput) (*UserRealmOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	out, err := s.repo.GetUserRealm(ctx, &gold_ledger.GetUserRealmInput{
		UserID: input.UserID,
	})
	if err != nil {
		return nil, err
	}

	return &UserRealmOutput{RealmName: out.RealmName}, nil
}

func (s *service) RecordGold(ctx context.Context, input *RecordGoldInput) (*RecordGoldOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	switch input.Type {
	case models.TransactionTypeAdd, models.TransactionTypeDeduct, models.TransactionTypePayout:
	default:
		return nil, fmt.Errorf("unknown transaction type: %s", input.Type)
	}

	if len(input.Recipients) == 0 {
		return nil, ErrNoRecipients
	}

	if input.Amount <= 0 || input.Amount > models.MaxGoldAmount {
		return nil, ErrInvalidAmount
	}

	amount := input.Amount
	if input.Type == models.TransactionTypeDeduct {
		amount = -amount
	}

	out := &RecordGoldOutput{}
	for _, recipient := range input.Recipients {
		txn := &models.Transaction{
			ID:        s.uuidGenerator.NewUUID(),
			Type:      input.Type,
			UserID:    recipient.UserID,
			AuthorID:  input.AuthorID,
			Amount:    amount,
			GuildID:   input.GuildID,
			Comment:   input.Comment,
			Timestamp: s.clock.Now(),
		}

		err := s.repo.RecordTransaction(ctx, &gold_ledger.RecordTransactionInput{
			Transaction: txn,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to record transaction for %s: %w", recipient.UserID, err)
		}

		out.Transactions = append(out.Transactions, txn)
	}

	logger.Info("gold recorded",
		zap.String("type", string(input.Type)),
		zap.Int64("amount", input.Amount),
		zap.Int("recipients", len(input.Recipients)),
		zap.String("author_id", input.AuthorID))

	return out, nil
}

func (s *service) PayoutBoost(ctx context.Context, input *PayoutBoostInput) (*PayoutBoostOutput, error) {
	if input == nil || input.Boost == nil {
		return nil, errors.New("input and input.Boost cannot be nil")
	}

	out := &PayoutBoostOutput{}
	for _, line := range input.Lines {
		txn := &models.Transaction{
			ID:        s.uuidGenerator.NewUUID(),
			Type:      models.TransactionTypePayout,
			UserID:    line.UserID,
			AuthorID:  input.AuthorID,
			Amount:    line.Amount,
			GuildID:   input.GuildID,
			Comment:   "boost " + input.Boost.UUID,
			Timestamp: s.clock.Now(),
		}

		err := s.repo.RecordTransaction(ctx, &gold_ledger.RecordTransactionInput{
			Transaction: txn,
			RealmName:   input.Boost.RealmName,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to record payout for %s: %w", line.UserID, err)
		}

		out.Transactions = append(out.Transactions, txn)
	}

	logger.Info("boost paid out",
		zap.String("boost_id", input.Boost.UUID),
		zap.Int("lines", len(out.Transactions)))

	return out, nil
}

func (s *service) Balance(ctx context.Context, input *BalanceInput) (*BalanceOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	out, err := s.repo.GetBalance(ctx, &gold_ledger.GetBalanceInput{
		UserID:  input.UserID,
		GuildID: input.GuildID,
	})
	if err != nil {
		return nil, err
	}

	return &BalanceOutput{Total: out.Total}, nil
}

func (s *service) ListTransactions(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	out, err := s.repo.ListTransactions(ctx, &gold_ledger.ListTransactionsInput{
		UserID: input.UserID,
		Limit:  input.Limit,
	})
	if err != nil {
		return nil, err
	}

	return &ListTransactionsOutput{Transactions: out.Transactions}, nil
}

func (s *service) TopBoosters(ctx context.Context, input *TopBoostersInput) (*TopBoostersOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	out, err := s.repo.ListTopBoosters(ctx, &gold_ledger.ListTopBoostersInput{
		GuildID:   input.GuildID,
		RealmName: input.RealmName,
		Limit:     input.Limit,
	})
	if err != nil {
		return nil, err
	}

	result := &TopBoostersOutput{}
	for _, booster := range out.Boosters {
		result.Boosters = append(result.Boosters, TopBoosterEntry{
			UserID: booster.UserID,
			Total:  booster.Total,
		})
	}

	return result, nil
}
