package boost

import (
	"context"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/keyblasters/boostbot/internal/repositories/boost Repository

// Repository persists snapshots of in-flight boosts so they survive a
// bot restart.
type Repository interface {
	// SaveSnapshot stores the current state of a boost along with the
	// channel and message it is rendered on. Saving the same boost
	// again overwrites the previous snapshot.
	SaveSnapshot(ctx context.Context, input *SaveSnapshotInput) error

	// DeleteSnapshot removes a boost's snapshot once it is closed or
	// cancelled. Deleting a snapshot that does not exist is not an
	// error.
	DeleteSnapshot(ctx context.Context, input *DeleteSnapshotInput) error

	// ListSnapshots returns every stored snapshot.
	ListSnapshots(ctx context.Context) (*ListSnapshotsOutput, error)
}
