package models

import (
	"sort"
)

// BoostStatus represents the current state of a boost
type BoostStatus string

const (
	// BoostStatusOpen indicates a boost is accepting sign-ups
	BoostStatusOpen BoostStatus = "open"

	// BoostStatusEditing indicates a boost is paused for field edits
	BoostStatusEditing BoostStatus = "editing"

	// BoostStatusStarted indicates a boost run is underway
	BoostStatusStarted BoostStatus = "started"

	// BoostStatusClosed indicates a boost was cancelled or paid out
	BoostStatusClosed BoostStatus = "closed"
)

const (
	// RosterCapacity is the fixed number of roster slots per boost
	RosterCapacity = 4

	// DefaultBlasterOnlyTicks is the initial length of the window during
	// which only the privileged booster tier may sign up
	DefaultBlasterOnlyTicks = 24

	// TempSlotHoldTicks is how long a pending keyholder override is held
	// before it is discarded
	TempSlotHoldTicks = 2
)

// RoleRef identifies a Discord role used as an eligibility gate (armor stack)
// or a team reservation marker. A nil *RoleRef means explicit absence.
type RoleRef struct {
	// ID is the Discord role ID
	ID string

	// Name is the role's display name
	Name string

	// Mention is the role's mention string
	Mention string
}

// CutRates holds the payout fractions taken off the pot before the booster
// split
type CutRates struct {
	// Advertiser is the advertiser's fraction of the pot
	Advertiser float64

	// Management is the house fraction of the pot
	Management float64
}

// CutTable maps realm names to cut rates. The "default" entry must exist.
type CutTable map[string]CutRates

// DefaultCutKey is the fallback entry of a CutTable
const DefaultCutKey = "default"

// RatesFor returns the realm-specific rates only when the bigger-advertiser-cuts
// option is set and the realm has an entry; otherwise the default rates.
func (t CutTable) RatesFor(realmName string, biggerAdvCuts bool) CutRates {
	if biggerAdvCuts {
		if rates, ok := t[realmName]; ok {
			return rates
		}
	}
	return t[DefaultCutKey]
}

// PayoutLine is one ledger transaction produced by processing a boost
type PayoutLine struct {
	// UserID is the recipient's Discord user ID
	UserID string

	// Mention is the recipient's mention string
	Mention string

	// Amount is the gold amount owed
	Amount int64
}

// Boost is a scheduled group service run: a fixed-capacity roster of role
// slots, a price pot, timed sign-up windows, and a payout split. All methods
// assume the caller holds the boost's lock.
type Boost struct {
	// UUID is the opaque correlation ID for the boost
	UUID string

	// AuthorID is the Discord user ID of the boost creator
	AuthorID string

	// BoostAuthor is the creator's display name
	BoostAuthor string

	// Pot is the total gold price of the boost
	Pot int64

	// AdvertiserID is the Discord user ID of the advertiser
	AdvertiserID string

	// AdvertiserMention is the advertiser's mention string
	AdvertiserMention string

	// AdvertiserName is the advertiser's display name
	AdvertiserName string

	// Boosters is the ordered roster, capacity RosterCapacity
	Boosters []*Booster

	// RealmName is the buyer's realm, validated against the known-realm set
	RealmName string

	// CharacterToWhisper is the in-game character buyers whisper
	CharacterToWhisper string

	// Key is the dungeon key identifier
	Key string

	// ArmorStack restricts sign-up to one equipment-type role; nil means no
	// armor stack
	ArmorStack *RoleRef

	// Pings is free text appended when the boost is announced
	Pings string

	// BoostsNumber is the repeat count for the run
	BoostsNumber int

	// Note is optional free text shown on the boost
	Note string

	// TeamTake is the team currently holding an exclusive reservation of
	// the roster, if any
	TeamTake *RoleRef

	// PastTeamTakes records teams whose reservation of this boost already
	// expired; they may not reserve it again
	PastTeamTakes map[string]struct{}

	// Status is the current lifecycle state
	Status BoostStatus

	// SuspendedStatus holds the status to restore when an edit finishes.
	// Only meaningful while Status is editing.
	SuspendedStatus BoostStatus

	// BlasterOnlyClock counts down the privileged-tier sign-up window
	BlasterOnlyClock int

	// TeamTakeClock counts down the current team reservation
	TeamTakeClock int

	// IncludeAdvertiserInPayout controls whether the advertiser cut is paid
	// out or kept by the house
	IncludeAdvertiserInPayout bool

	// BiggerAdvCuts selects the per-realm cut rates when available
	BiggerAdvCuts bool

	// TempBoosterSlot holds a pending keyholder override candidate
	TempBoosterSlot *Booster

	// TempBoosterClock counts down the pending override hold
	TempBoosterClock int

	// AdvCut is the advertiser fraction resolved at construction
	AdvCut float64

	// MngCut is the management fraction resolved at construction
	MngCut float64
}

// hasKeyholder reports whether any seated booster holds the key
func (bo *Boost) hasKeyholder() bool {
	for _, b := range bo.Boosters {
		if b.IsKeyholder {
			return true
		}
	}
	return false
}

// findBooster returns the roster index of the booster with the given user ID,
// or -1
func (bo *Boost) findBooster(userID string) int {
	for i, b := range bo.Boosters {
		if b.UserID == userID {
			return i
		}
	}
	return -1
}

// AddBooster applies one sign-up claim to the roster. It reports whether the
// roster changed, so the caller knows to re-render the boost. Sign-ups on a
// non-open boost and sign-ups beyond capacity are dropped silently.
func (bo *Boost) AddBooster(candidate *Booster) bool {
	if bo.Status != BoostStatusOpen {
		return false
	}

	// same participant reacting again: merge the extra claim in place
	if idx := bo.findBooster(candidate.UserID); idx >= 0 {
		_ = bo.Boosters[idx].Combine(candidate)
		return true
	}

	if len(bo.Boosters) < RosterCapacity {
		bo.Boosters = append(bo.Boosters, candidate)
		if bo.IsValidSetup(false, nil) {
			return true
		}
		bo.Boosters = bo.Boosters[:len(bo.Boosters)-1]
	}

	// Keyholder override protocol: a designated keyholder may displace one
	// seated booster, but only through a two-step pending slot and only
	// while the roster has no keyholder of its own.
	if bo.hasKeyholder() {
		return false
	}

	if candidate.IsKeyholder && !candidate.HasCombatRole() && bo.TempBoosterSlot == nil {
		bo.TempBoosterSlot = candidate
		bo.TempBoosterClock = TempSlotHoldTicks
		return false
	}

	if bo.TempBoosterSlot != nil && candidate.HasCombatRole() && bo.TempBoosterSlot.UserID == candidate.UserID {
		_ = bo.TempBoosterSlot.Combine(candidate)

		// try to substitute the stashed keyholder for each seated member,
		// newest seat first, keeping the first strictly valid roster
		for idx := len(bo.Boosters) - 1; idx >= 0; idx-- {
			trial := make([]*Booster, len(bo.Boosters))
			copy(trial, bo.Boosters)
			trial[idx] = bo.TempBoosterSlot

			if bo.IsValidSetup(true, trial) {
				bo.Boosters = trial
				bo.TempBoosterSlot = nil
				bo.TempBoosterClock = 0
				return true
			}
		}
	}

	return false
}

// RemoveBooster applies one reaction-removal's worth of role claim. The seated
// member loses the claimed flags; the member is dropped entirely when the
// remaining roster fails the strict check or the member has no combat role
// left.
func (bo *Boost) RemoveBooster(candidate *Booster) bool {
	if bo.Status != BoostStatusOpen {
		return false
	}

	idx := bo.findBooster(candidate.UserID)
	if idx < 0 {
		return false
	}

	_ = bo.Boosters[idx].Subtract(candidate)

	// Removal re-validates with the keyholder requirement even though
	// additions do not enforce it until start.
	if !bo.IsValidSetup(true, nil) {
		bo.Boosters = append(bo.Boosters[:idx], bo.Boosters[idx+1:]...)
		return true
	}

	if !bo.Boosters[idx].HasCombatRole() {
		bo.Boosters = append(bo.Boosters[:idx], bo.Boosters[idx+1:]...)
	}

	return true
}

// IsValidSetup checks roster composition. A roster below capacity is always
// valid (it is still filling). A full roster needs at least one tank flag,
// one healer flag, optionally one keyholder flag, and a greedy assignment of
// distinct members to the tank/healer/dps/dps slots.
//
// roster is checked in place of the seated roster when non-nil.
func (bo *Boost) IsValidSetup(strictKeyholder bool, roster []*Booster) bool {
	if roster == nil {
		roster = bo.Boosters
	}

	if len(roster) < RosterCapacity {
		return true
	}

	var anyTank, anyHealer, anyKeyholder bool
	for _, b := range roster {
		anyTank = anyTank || b.IsTank
		anyHealer = anyHealer || b.IsHealer
		anyKeyholder = anyKeyholder || b.IsKeyholder
	}

	if !anyHealer || !anyTank {
		return false
	}
	if strictKeyholder && !anyKeyholder {
		return false
	}

	// Assign members claiming fewer roles first so a hybrid member fills
	// whichever slot is otherwise unfillable. The stable ascending order is
	// load-bearing.
	ordered := make([]*Booster, len(roster))
	copy(ordered, roster)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].RoleCount() < ordered[j].RoleCount()
	})

	var tankTaken, healerTaken bool
	dpsTaken := 0
	for _, b := range ordered {
		if b.IsTank && !tankTaken {
			tankTaken = true
			continue
		}
		if b.IsHealer && !healerTaken {
			healerTaken = true
			continue
		}
		if b.IsDPS && dpsTaken < 2 {
			dpsTaken++
			continue
		}
		return false
	}

	return true
}

// ClaimTeamTake reserves the roster for one team. The reservation is recorded
// in PastTeamTakes immediately, so a team that lets its window lapse cannot
// reserve the same boost twice. Seated boosters that are neither locked nor
// members of the claiming team are dropped.
func (bo *Boost) ClaimTeamTake(team *RoleRef, teamMemberIDs map[string]struct{}, holdTicks int) bool {
	if bo.Status != BoostStatusOpen || bo.TeamTake != nil || team == nil {
		return false
	}

	if bo.PastTeamTakes == nil {
		bo.PastTeamTakes = make(map[string]struct{})
	}
	if _, alreadyTried := bo.PastTeamTakes[team.ID]; alreadyTried {
		return false
	}

	bo.TeamTake = team
	bo.TeamTakeClock = holdTicks
	bo.PastTeamTakes[team.ID] = struct{}{}

	kept := make([]*Booster, 0, len(bo.Boosters))
	for _, b := range bo.Boosters {
		_, inTeam := teamMemberIDs[b.UserID]
		if b.IsLocked || inTeam {
			kept = append(kept, b)
		}
	}
	bo.Boosters = kept

	return true
}

// ClockTick advances every countdown by one scheduler interval. It reports
// whether the boost display changed (only on team-take expiry).
func (bo *Boost) ClockTick() bool {
	shouldUpdate := false

	if bo.BlasterOnlyClock > 0 {
		bo.BlasterOnlyClock--
	}

	if bo.TeamTakeClock > 0 && bo.Status == BoostStatusOpen {
		bo.TeamTakeClock--
		if bo.TeamTakeClock == 0 {
			bo.TeamTake = nil
			shouldUpdate = true
		}
	}

	if bo.TempBoosterClock > 0 {
		bo.TempBoosterClock--
		if bo.TempBoosterClock == 0 {
			bo.TempBoosterSlot = nil
		}
	}

	return shouldUpdate
}

// StartBoost transitions open -> started once the roster is full and strictly
// valid, keyholder included. Returns true exactly once per boost.
func (bo *Boost) StartBoost() bool {
	if len(bo.Boosters) == RosterCapacity && bo.IsValidSetup(true, nil) && bo.Status == BoostStatusOpen {
		bo.Status = BoostStatusStarted
		return true
	}

	return false
}

// Close cancels the boost regardless of its current state
func (bo *Boost) Close() {
	bo.Status = BoostStatusClosed
}

// BeginEdit pauses the boost for field edits, remembering the status to
// restore. A second BeginEdit while one is outstanding is rejected.
func (bo *Boost) BeginEdit() bool {
	if bo.Status == BoostStatusEditing {
		return false
	}

	bo.SuspendedStatus = bo.Status
	bo.Status = BoostStatusEditing
	return true
}

// FinishEdit restores the status suspended by BeginEdit
func (bo *Boost) FinishEdit() {
	if bo.Status != BoostStatusEditing {
		return
	}

	bo.Status = bo.SuspendedStatus
	bo.SuspendedStatus = ""
}

// BoosterCut is the per-booster share of the pot after both cuts, rounded down
func (bo *Boost) BoosterCut() int64 {
	return int64(float64(bo.Pot) * (1 - (bo.AdvCut + bo.MngCut)) / RosterCapacity)
}

// AdvertiserCutAmount is the advertiser's share of the pot, rounded down
func (bo *Boost) AdvertiserCutAmount() int64 {
	return int64(float64(bo.Pot) * bo.AdvCut)
}

// Process computes the payout lines for the ledger. It returns nil while the
// boost is still open; processing never mutates the boost or the ledger.
func (bo *Boost) Process() []PayoutLine {
	if bo.Status == BoostStatusOpen {
		return nil
	}

	boosterCut := bo.BoosterCut()
	lines := make([]PayoutLine, 0, len(bo.Boosters)+1)
	for _, b := range bo.Boosters {
		lines = append(lines, PayoutLine{
			UserID:  b.UserID,
			Mention: b.Mention,
			Amount:  boosterCut,
		})
	}

	if bo.IncludeAdvertiserInPayout {
		lines = append(lines, PayoutLine{
			UserID:  bo.AdvertiserID,
			Mention: bo.AdvertiserMention,
			Amount:  bo.AdvertiserCutAmount(),
		})
	}

	return lines
}

// Clone returns a deep copy of the boost, safe to read outside the boost lock
func (bo *Boost) Clone() *Boost {
	copied := *bo

	copied.Boosters = make([]*Booster, len(bo.Boosters))
	for i, b := range bo.Boosters {
		copied.Boosters[i] = b.Clone()
	}

	if bo.TempBoosterSlot != nil {
		copied.TempBoosterSlot = bo.TempBoosterSlot.Clone()
	}
	if bo.ArmorStack != nil {
		armorStack := *bo.ArmorStack
		copied.ArmorStack = &armorStack
	}
	if bo.TeamTake != nil {
		teamTake := *bo.TeamTake
		copied.TeamTake = &teamTake
	}

	copied.PastTeamTakes = make(map[string]struct{}, len(bo.PastTeamTakes))
	for id := range bo.PastTeamTakes {
		copied.PastTeamTakes[id] = struct{}{}
	}

	return &copied
}
