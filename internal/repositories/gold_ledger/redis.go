package gold_ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/keyblasters/boostbot/internal/models"
)

const (
	// Key prefixes for Redis
	txnKeyPrefix      = "gold_txn:"
	userTxnsKeyPrefix = "user_txns:"
	balancesKeyPrefix = "guild_balances:"
	guildTopKeyPrefix = "guild_top:"
	realmTopKeyPrefix = "realm_top:"
	userRealmsKey     = "user_realms"
)

// ErrUserNotFound is returned when a user is not in the active users set
var ErrUserNotFound = errors.New("user not found")

// Config holds configuration for the Redis gold ledger repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed gold ledger repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// AddUser registers a user and their home realm
func (r *redisRepository) AddUser(ctx context.Context, input *AddUserInput) error {
	if input == nil || input.UserID == "" || input.RealmName == "" {
		return errors.New("input, user ID and realm name cannot be empty")
	}

	if err := r.client.HSet(ctx, userRealmsKey, input.UserID, input.RealmName).Err(); err != nil {
		return fmt.Errorf("failed to add user: %w", err)
	}

	return nil
}

// RemoveUser removes a user from the active users set
func (r *redisRepository) RemoveUser(ctx context.Context, input *RemoveUserInput) error {
	if input == nil || input.UserID == "" {
		return errors.New("input and user ID cannot be empty")
	}

	if err := r.client.HDel(ctx, userRealmsKey, input.UserID).Err(); err != nil {
		return fmt.Errorf("failed to remove user: %w", err)
	}

	return nil
}

// GetUserRealm retrieves a registered user's home realm
func (r *redisRepository) GetUserRealm(ctx context.Context, input *GetUserRealmInput) (*GetUserRealmOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	realmName, err := r.client.HGet(ctx, userRealmsKey, input.UserID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user realm: %w", err)
	}

	return &GetUserRealmOutput{
		RealmName: realmName,
	}, nil
}

// RecordTransaction appends a transaction and updates derived balances and
// leaderboards in one pipeline
func (r *redisRepository) RecordTransaction(ctx context.Context, input *RecordTransactionInput) error {
	if input == nil || input.Transaction == nil {
		return errors.New("input and transaction cannot be nil")
	}

	txn := input.Transaction
	if txn.ID == "" {
		return errors.New("transaction ID cannot be empty")
	}

	if txn.Timestamp.IsZero() {
		txn.Timestamp = time.Now()
	}

	txnJSON, err := json.Marshal(txn)
	if err != nil {
		return fmt.Errorf("failed to marshal transaction: %w", err)
	}

	pipe := r.client.Pipeline()

	// Store the transaction record
	txnKey := fmt.Sprintf("%s%s", txnKeyPrefix, txn.ID)
	pipe.Set(ctx, txnKey, txnJSON, 0)

	// Add to the user's transaction history sorted set
	userKey := fmt.Sprintf("%s%s", userTxnsKeyPrefix, txn.UserID)
	pipe.ZAdd(ctx, userKey, redis.Z{
		Score:  float64(txn.Timestamp.Unix()),
		Member: txn.ID,
	})

	// Update the user's guild balance
	balanceKey := fmt.Sprintf("%s%s", balancesKeyPrefix, txn.GuildID)
	pipe.HIncrBy(ctx, balanceKey, txn.UserID, txn.Amount)

	// Payouts also count toward the earnings leaderboards
	if txn.Type == models.TransactionTypePayout {
		guildTopKey := fmt.Sprintf("%s%s", guildTopKeyPrefix, txn.GuildID)
		pipe.ZIncrBy(ctx, guildTopKey, float64(txn.Amount), txn.UserID)

		if input.RealmName != "" {
			realmTopKey := fmt.Sprintf("%s%s:%s", realmTopKeyPrefix, txn.GuildID, input.RealmName)
			pipe.ZIncrBy(ctx, realmTopKey, float64(txn.Amount), txn.UserID)
		}
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record transaction: %w", err)
	}

	return nil
}

// GetBalance retrieves a user's gold balance within a guild
func (r *redisRepository) GetBalance(ctx context.Context, input *GetBalanceInput) (*GetBalanceOutput, error) {
	if input == nil || input.UserID == "" || input.GuildID == "" {
		return nil, errors.New("input, user ID and guild ID cannot be empty")
	}

	balanceKey := fmt.Sprintf("%s%s", balancesKeyPrefix, input.GuildID)
	raw, err := r.client.HGet(ctx, balanceKey, input.UserID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			// no transactions yet means a zero balance
			return &GetBalanceOutput{Total: 0}, nil
		}
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}

	total, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse balance %q: %w", raw, err)
	}

	return &GetBalanceOutput{Total: total}, nil
}

// ListTransactions retrieves a user's most recent transactions
func (r *redisRepository) ListTransactions(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	limit := input.Limit
	if limit <= 0 {
		limit = 10
	}

	userKey := fmt.Sprintf("%s%s", userTxnsKeyPrefix, input.UserID)
	txnIDs, err := r.client.ZRevRange(ctx, userKey, 0, int64(limit)-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction IDs: %w", err)
	}

	if len(txnIDs) == 0 {
		return &ListTransactionsOutput{
			Transactions: []*models.Transaction{},
		}, nil
	}

	pipe := r.client.Pipeline()
	commands := make([]*redis.StringCmd, len(txnIDs))
	for i, txnID := range txnIDs {
		txnKey := fmt.Sprintf("%s%s", txnKeyPrefix, txnID)
		commands[i] = pipe.Get(ctx, txnKey)
	}

	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}

	transactions := make([]*models.Transaction, 0, len(txnIDs))
	for i, cmd := range commands {
		txnJSON, err := cmd.Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				// record deleted between listing and fetching
				continue
			}
			return nil, fmt.Errorf("failed to get transaction %s: %w", txnIDs[i], err)
		}

		var txn models.Transaction
		if err := json.Unmarshal([]byte(txnJSON), &txn); err != nil {
			return nil, fmt.Errorf("failed to unmarshal transaction %s: %w", txnIDs[i], err)
		}

		transactions = append(transactions, &txn)
	}

	return &ListTransactionsOutput{
		Transactions: transactions,
	}, nil
}

// ListTopBoosters retrieves the highest-earning boosters for a guild
func (r *redisRepository) ListTopBoosters(ctx context.Context, input *ListTopBoostersInput) (*ListTopBoostersOutput, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	limit := input.Limit
	if limit <= 0 {
		limit = 10
	}

	topKey := fmt.Sprintf("%s%s", guildTopKeyPrefix, input.GuildID)
	if input.RealmName != "" {
		topKey = fmt.Sprintf("%s%s:%s", realmTopKeyPrefix, input.GuildID, input.RealmName)
	}

	entries, err := r.client.ZRevRangeWithScores(ctx, topKey, 0, int64(limit)-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get top boosters: %w", err)
	}

	boosters := make([]TopBooster, 0, len(entries))
	for _, entry := range entries {
		userID, ok := entry.Member.(string)
		if !ok {
			continue
		}
		boosters = append(boosters, TopBooster{
			UserID: userID,
			Total:  int64(entry.Score),
		})
	}

	return &ListTopBoostersOutput{
		Boosters: boosters,
	}, nil
}
