package boost

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	snapshotKeyPrefix = "open_boost:"
	snapshotIndexKey  = "open_boosts"
)

type redisRepository struct {
	client redis.UniversalClient
}

// Config is the configuration for the redis repository.
type Config struct {
	Client redis.UniversalClient
}

// NewRedis creates a new redis repository for boost snapshots.
func NewRedis(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.New("cfg cannot be nil")
	}

	if cfg.Client == nil {
		return nil, errors.New("cfg.Client cannot be nil")
	}

	if err := cfg.Client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

func (r *redisRepository) SaveSnapshot(ctx context.Context, input *SaveSnapshotInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	if input.Snapshot == nil {
		return errors.New("input.Snapshot cannot be nil")
	}

	if input.Snapshot.Boost == nil {
		return errors.New("input.Snapshot.Boost cannot be nil")
	}

	if input.Snapshot.Boost.UUID == "" {
		return errors.New("input.Snapshot.Boost.UUID cannot be empty")
	}

	data, err := json.Marshal(input.Snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, snapshotKeyPrefix+input.Snapshot.Boost.UUID, data, 0)
	pipe.SAdd(ctx, snapshotIndexKey, input.Snapshot.Boost.UUID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	return nil
}

func (r *redisRepository) DeleteSnapshot(ctx context.Context, input *DeleteSnapshotInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	if input.BoostID == "" {
		return errors.New("input.BoostID cannot be empty")
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, snapshotKeyPrefix+input.BoostID)
	pipe.SRem(ctx, snapshotIndexKey, input.BoostID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}

	return nil
}

func (r *redisRepository) ListSnapshots(ctx context.Context) (*ListSnapshotsOutput, error) {
	ids, err := r.client.SMembers(ctx, snapshotIndexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshot ids: %w", err)
	}

	out := &ListSnapshotsOutput{}

	for _, id := range ids {
		data, err := r.client.Get(ctx, snapshotKeyPrefix+id).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				// Index entry without a body. Clean it up and move on.
				r.client.SRem(ctx, snapshotIndexKey, id)
				continue
			}

			return nil, fmt.Errorf("failed to load snapshot %s: %w", id, err)
		}

		var snap Snapshot
		if err := json.Unmarshal([]byte(data), &snap); err != nil {
			return nil, fmt.Errorf("failed to unmarshal snapshot %s: %w", id, err)
		}

		out.Snapshots = append(out.Snapshots, &snap)
	}

	return out, nil
}
