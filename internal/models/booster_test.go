package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoosterCombine(t *testing.T) {
	a := &Booster{UserID: "u1", Mention: "<@u1>", IsTank: true}
	b := &Booster{UserID: "u1", Mention: "<@u1>", IsDPS: true, IsKeyholder: true}

	require.NoError(t, a.Combine(b))

	assert.True(t, a.IsTank)
	assert.True(t, a.IsDPS)
	assert.True(t, a.IsKeyholder)
	assert.False(t, a.IsHealer)
}

func TestBoosterCombineMismatch(t *testing.T) {
	a := &Booster{UserID: "u1", IsTank: true}
	b := &Booster{UserID: "u2", IsDPS: true}

	assert.ErrorIs(t, a.Combine(b), ErrBoosterMismatch)
	assert.ErrorIs(t, a.Subtract(b), ErrBoosterMismatch)
}

func TestBoosterSubtract(t *testing.T) {
	a := &Booster{UserID: "u1", IsTank: true, IsDPS: true}

	require.NoError(t, a.Subtract(&Booster{UserID: "u1", IsDPS: true}))

	assert.True(t, a.IsTank)
	assert.False(t, a.IsDPS)
}

// combining a claim and then subtracting it restores the original flags;
// subtracting a flag that was never set is a per-flag no-op
func TestBoosterCombineSubtractRoundTrip(t *testing.T) {
	original := &Booster{UserID: "u1", IsHealer: true}
	claim := &Booster{UserID: "u1", IsDPS: true, IsKeyholder: true}

	working := original.Clone()
	require.NoError(t, working.Combine(claim))
	require.NoError(t, working.Subtract(claim))

	assert.Equal(t, original, working)

	// subtracting a never-set flag changes nothing
	require.NoError(t, working.Subtract(&Booster{UserID: "u1", IsTank: true}))
	assert.Equal(t, original, working)
}

func TestBoosterRoleCountExcludesKeyholder(t *testing.T) {
	b := &Booster{UserID: "u1", IsTank: true, IsDPS: true, IsKeyholder: true}

	assert.Equal(t, 2, b.RoleCount())
	assert.True(t, b.HasCombatRole())

	keyholderOnly := &Booster{UserID: "u2", IsKeyholder: true}
	assert.Equal(t, 0, keyholderOnly.RoleCount())
	assert.False(t, keyholderOnly.HasCombatRole())
}
