package boost

import (
	"github.com/keyblasters/boostbot/internal/models"
)

// CreateBoostInput is the input for CreateBoost.
type CreateBoostInput struct {
	// AuthorID is the Discord user ID of the creator
	AuthorID string

	// BoostAuthor is the creator's display name
	BoostAuthor string

	// Pot is the total gold price
	Pot int64

	// AdvertiserID is the Discord user ID of the advertiser
	AdvertiserID string

	// AdvertiserMention is the advertiser's mention string
	AdvertiserMention string

	// AdvertiserName is the advertiser's display name
	AdvertiserName string

	// RealmName is the buyer's realm, already validated by the caller
	RealmName string

	// CharacterToWhisper is the in-game character buyers whisper
	CharacterToWhisper string

	// Key is the dungeon key identifier
	Key string

	// ArmorStack restricts sign-up to one equipment-type role; nil means
	// no armor stack
	ArmorStack *models.RoleRef

	// Pings is free text appended when the boost is announced
	Pings string

	// BoostsNumber is the repeat count for the run
	BoostsNumber int

	// Note is optional free text shown on the boost
	Note string

	// IncludeAdvertiserInPayout controls whether the advertiser cut is
	// paid out
	IncludeAdvertiserInPayout bool

	// BiggerAdvCuts selects per-realm cut rates when available
	BiggerAdvCuts bool
}

// CreateBoostOutput is the output for CreateBoost.
type CreateBoostOutput struct {
	Boost *models.Boost
}

// RegisterMessageInput is the input for RegisterMessage.
type RegisterMessageInput struct {
	BoostID   string
	ChannelID string
	MessageID string
}

// RestoreBoostsOutput is the output for RestoreBoosts.
type RestoreBoostsOutput struct {
	// Restored is the number of boosts loaded back into the registry
	Restored int
}

// AddBoosterInput is the input for AddBooster.
type AddBoosterInput struct {
	BoostID string

	// Booster carries the role claim from one reaction
	Booster *models.Booster

	// HasBlasterRank reports whether the user holds the privileged
	// sign-up rank
	HasBlasterRank bool
}

// AddBoosterOutput is the output for AddBooster.
type AddBoosterOutput struct {
	// Updated reports whether the roster changed and the display should
	// be re-rendered
	Updated bool

	Boost *models.Boost
}

// RemoveBoosterInput is the input for RemoveBooster.
type RemoveBoosterInput struct {
	BoostID string
	Booster *models.Booster
}

// RemoveBoosterOutput is the output for RemoveBooster.
type RemoveBoosterOutput struct {
	Updated bool
	Boost   *models.Boost
}

// ClaimTeamTakeInput is the input for ClaimTeamTake.
type ClaimTeamTakeInput struct {
	BoostID string

	// Team is the role reserving the roster
	Team *models.RoleRef

	// TeamMemberIDs is the set of user IDs holding the team role
	TeamMemberIDs map[string]struct{}
}

// ClaimTeamTakeOutput is the output for ClaimTeamTake.
type ClaimTeamTakeOutput struct {
	Claimed bool
	Boost   *models.Boost
}

// StartBoostInput is the input for StartBoost.
type StartBoostInput struct {
	BoostID string

	// UserID is the user requesting the start
	UserID string
}

// StartBoostOutput is the output for StartBoost.
type StartBoostOutput struct {
	Started bool
	Boost   *models.Boost
}

// ProcessBoostInput is the input for ProcessBoost.
type ProcessBoostInput struct {
	BoostID string
}

// ProcessBoostOutput is the output for ProcessBoost.
type ProcessBoostOutput struct {
	Lines []models.PayoutLine
	Boost *models.Boost
}

// CloseBoostInput is the input for CloseBoost.
type CloseBoostInput struct {
	BoostID string
}

// CloseBoostOutput is the output for CloseBoost.
type CloseBoostOutput struct {
	Boost *models.Boost
}

// BeginEditInput is the input for BeginEdit.
type BeginEditInput struct {
	BoostID string
}

// BeginEditOutput is the output for BeginEdit.
type BeginEditOutput struct {
	Boost *models.Boost
}

// UpdateBoostInput is the input for UpdateBoost. Nil fields are left
// untouched.
type UpdateBoostInput struct {
	BoostID string

	Pot                *int64
	RealmName          *string
	CharacterToWhisper *string
	Key                *string
	Note               *string
	Pings              *string
	BoostsNumber       *int
	AdvertiserID       *string
	AdvertiserMention  *string
	AdvertiserName     *string

	// SetArmorStack applies ArmorStack, including setting it to nil
	SetArmorStack bool
	ArmorStack    *models.RoleRef
}

// UpdateBoostOutput is the output for UpdateBoost.
type UpdateBoostOutput struct {
	Boost *models.Boost
}

// FinishEditInput is the input for FinishEdit.
type FinishEditInput struct {
	BoostID string
}

// FinishEditOutput is the output for FinishEdit.
type FinishEditOutput struct {
	Boost *models.Boost
}

// GetBoostInput is the input for GetBoost.
type GetBoostInput struct {
	BoostID string
}

// GetBoostOutput is the output for GetBoost.
type GetBoostOutput struct {
	Boost     *models.Boost
	ChannelID string
	MessageID string
}

// LookupByMessageInput is the input for LookupByMessage.
type LookupByMessageInput struct {
	MessageID string
}

// LookupByMessageOutput is the output for LookupByMessage.
type LookupByMessageOutput struct {
	Boost     *models.Boost
	ChannelID string
}

// TickEventKind classifies what a tick changed on a boost.
type TickEventKind string

const (
	// TickEventRedisplay means the boost display changed and must be
	// re-rendered (a team reservation expired)
	TickEventRedisplay TickEventKind = "redisplay"

	// TickEventBlasterWindowClosed means the privileged sign-up window
	// just ended and the channel should be told sign-ups are open to all
	TickEventBlasterWindowClosed TickEventKind = "blaster_window_closed"

	// TickEventStarted means the roster filled and the boost started
	TickEventStarted TickEventKind = "started"
)

// TickEvent is one display change produced by TickAll.
type TickEvent struct {
	Kind      TickEventKind
	BoostID   string
	ChannelID string
	MessageID string
	Boost     *models.Boost
}

// TickAllOutput is the output for TickAll.
type TickAllOutput struct {
	Events []TickEvent
}
