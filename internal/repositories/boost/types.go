package boost

import (
	"github.com/keyblasters/boostbot/internal/models"
)

// Snapshot is a stored boost plus the Discord message it is rendered on.
type Snapshot struct {
	// ChannelID is the channel holding the boost message.
	ChannelID string `json:"channel_id"`

	// MessageID is the message the boost embed lives on.
	MessageID string `json:"message_id"`

	// Boost is the full boost state.
	Boost *models.Boost `json:"boost"`
}

// SaveSnapshotInput is the input for SaveSnapshot.
type SaveSnapshotInput struct {
	Snapshot *Snapshot
}

// DeleteSnapshotInput is the input for DeleteSnapshot.
type DeleteSnapshotInput struct {
	// BoostID is the UUID of the boost to remove.
	BoostID string
}

// ListSnapshotsOutput is the output for ListSnapshots.
type ListSnapshotsOutput struct {
	Snapshots []*Snapshot
}
