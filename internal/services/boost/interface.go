package boost

import (
	"context"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/keyblasters/boostbot/internal/services/boost Service

// Service tracks every in-flight boost and serializes all mutations of a
// boost behind its own lock. Returned boosts are deep copies and safe to
// read without further locking.
type Service interface {
	// CreateBoost registers a new open boost and persists its first
	// snapshot once RegisterMessage is called.
	CreateBoost(ctx context.Context, input *CreateBoostInput) (*CreateBoostOutput, error)

	// RegisterMessage binds a boost to the Discord message it is rendered
	// on and persists the snapshot.
	RegisterMessage(ctx context.Context, input *RegisterMessageInput) error

	// RestoreBoosts reloads every persisted snapshot into the registry.
	// Called once at startup.
	RestoreBoosts(ctx context.Context) (*RestoreBoostsOutput, error)

	// AddBooster applies one sign-up claim. Claims during the privileged
	// window from users without the privileged rank are dropped.
	AddBooster(ctx context.Context, input *AddBoosterInput) (*AddBoosterOutput, error)

	// RemoveBooster applies one reaction-removal's worth of role claim.
	RemoveBooster(ctx context.Context, input *RemoveBoosterInput) (*RemoveBoosterOutput, error)

	// ClaimTeamTake reserves the roster for a team.
	ClaimTeamTake(ctx context.Context, input *ClaimTeamTakeInput) (*ClaimTeamTakeOutput, error)

	// StartBoost transitions a full, valid roster to started. Only the
	// seated keyholder may start.
	StartBoost(ctx context.Context, input *StartBoostInput) (*StartBoostOutput, error)

	// ProcessBoost computes the payout lines for a started boost. It does
	// not close the boost; callers close it once the payout is recorded.
	ProcessBoost(ctx context.Context, input *ProcessBoostInput) (*ProcessBoostOutput, error)

	// CloseBoost closes a boost and drops it from the registry and the
	// snapshot store. Used both for cancellation and after payout.
	CloseBoost(ctx context.Context, input *CloseBoostInput) (*CloseBoostOutput, error)

	// BeginEdit pauses a boost for field edits.
	BeginEdit(ctx context.Context, input *BeginEditInput) (*BeginEditOutput, error)

	// UpdateBoost applies field edits to a boost paused by BeginEdit.
	UpdateBoost(ctx context.Context, input *UpdateBoostInput) (*UpdateBoostOutput, error)

	// FinishEdit resumes a boost paused by BeginEdit.
	FinishEdit(ctx context.Context, input *FinishEditInput) (*FinishEditOutput, error)

	// GetBoost returns a copy of a tracked boost and its message binding.
	GetBoost(ctx context.Context, input *GetBoostInput) (*GetBoostOutput, error)

	// LookupByMessage returns the boost rendered on the given message.
	LookupByMessage(ctx context.Context, input *LookupByMessageInput) (*LookupByMessageOutput, error)

	// TickAll advances every tracked boost's countdowns by one scheduler
	// interval and reports the display changes the caller must render.
	TickAll(ctx context.Context) (*TickAllOutput, error)
}
