package alias

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const aliasHashKey = "realm_aliases"

var (
	// ErrAliasExists is returned when an alias is already stored and
	// overwrite was not requested
	ErrAliasExists = errors.New("alias already exists")

	// ErrAliasNotFound is returned when an alias is not stored
	ErrAliasNotFound = errors.New("alias not found")
)

// Config holds configuration for the Redis alias repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed alias repository
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

// SetAlias creates or overwrites an alias for a realm name
func (r *redisRepository) SetAlias(ctx context.Context, input *SetAliasInput) error {
	if input == nil || input.Alias == "" || input.RealmName == "" {
		return errors.New("input, alias and realm name cannot be empty")
	}

	if input.Overwrite {
		if err := r.client.HSet(ctx, aliasHashKey, input.Alias, input.RealmName).Err(); err != nil {
			return fmt.Errorf("failed to set alias: %w", err)
		}
		return nil
	}

	set, err := r.client.HSetNX(ctx, aliasHashKey, input.Alias, input.RealmName).Result()
	if err != nil {
		return fmt.Errorf("failed to set alias: %w", err)
	}
	if !set {
		return ErrAliasExists
	}

	return nil
}

// GetAlias resolves an alias to its realm name
func (r *redisRepository) GetAlias(ctx context.Context, input *GetAliasInput) (*GetAliasOutput, error) {
	if input == nil || input.Alias == "" {
		return nil, errors.New("input and alias cannot be empty")
	}

	realmName, err := r.client.HGet(ctx, aliasHashKey, input.Alias).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrAliasNotFound
		}
		return nil, fmt.Errorf("failed to get alias: %w", err)
	}

	return &GetAliasOutput{
		RealmName: realmName,
	}, nil
}

// ListAliases returns every stored alias
func (r *redisRepository) ListAliases(ctx context.Context, input *ListAliasesInput) (*ListAliasesOutput, error) {
	aliases, err := r.client.HGetAll(ctx, aliasHashKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list aliases: %w", err)
	}

	return &ListAliasesOutput{
		Aliases: aliases,
	}, nil
}
