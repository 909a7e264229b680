package models

import "errors"

// ErrBoosterMismatch is returned when role algebra is attempted across two
// different participants
var ErrBoosterMismatch = errors.New("boosters must have the same user ID")

// Booster represents a participant's claimed roles for a single boost
type Booster struct {
	// UserID is the Discord user ID of the participant
	UserID string

	// Mention is the participant's Discord mention string
	Mention string

	// IsDPS indicates the participant claims a dps slot
	IsDPS bool

	// IsTank indicates the participant claims the tank slot
	IsTank bool

	// IsHealer indicates the participant claims the healer slot
	IsHealer bool

	// IsKeyholder indicates the participant holds the dungeon key.
	// Keyholder is an auxiliary claim, not a combat role.
	IsKeyholder bool

	// IsLocked prevents the participant from being displaced by
	// roster-repair logic (team takes, keyholder overrides)
	IsLocked bool
}

// HasCombatRole reports whether any of the dps/tank/healer flags is set.
// Keyholder alone does not count.
func (b *Booster) HasCombatRole() bool {
	return b.IsDPS || b.IsTank || b.IsHealer
}

// RoleCount returns the number of combat roles claimed. Used as the sort key
// for roster assignment: members claiming fewer roles are seated first.
func (b *Booster) RoleCount() int {
	count := 0
	if b.IsDPS {
		count++
	}
	if b.IsTank {
		count++
	}
	if b.IsHealer {
		count++
	}
	return count
}

// Combine merges another claim by the same participant into this one.
// The resulting flag set is the union of both claims.
func (b *Booster) Combine(other *Booster) error {
	if b.UserID != other.UserID {
		return ErrBoosterMismatch
	}

	b.IsDPS = b.IsDPS || other.IsDPS
	b.IsHealer = b.IsHealer || other.IsHealer
	b.IsTank = b.IsTank || other.IsTank
	b.IsKeyholder = b.IsKeyholder || other.IsKeyholder

	return nil
}

// Subtract removes one reaction's worth of role claim: each flag set in other
// is toggled off here. Flags not claimed by other are untouched.
func (b *Booster) Subtract(other *Booster) error {
	if b.UserID != other.UserID {
		return ErrBoosterMismatch
	}

	if b.IsDPS {
		b.IsDPS = b.IsDPS != other.IsDPS
	}
	if b.IsHealer {
		b.IsHealer = b.IsHealer != other.IsHealer
	}
	if b.IsTank {
		b.IsTank = b.IsTank != other.IsTank
	}
	if b.IsKeyholder {
		b.IsKeyholder = b.IsKeyholder != other.IsKeyholder
	}

	return nil
}

// Clone returns an independent copy of the booster
func (b *Booster) Clone() *Booster {
	copied := *b
	return &copied
}
