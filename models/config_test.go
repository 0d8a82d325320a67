package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvedForcesDependencies(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AutoMode = true

	resolved := cfg.Resolved()
	assert.True(t, resolved.HasController)
	assert.True(t, resolved.HasTempSensor)
	assert.True(t, resolved.HasHumiditySensor)
	assert.True(t, resolved.HasLightSensor)
	assert.True(t, resolved.HasFan)
	assert.True(t, resolved.HasLight)
	assert.True(t, resolved.HasPump)

	// not part of the dependency set
	assert.False(t, resolved.HasHeater)
	assert.False(t, resolved.HasTimer)
	assert.False(t, resolved.HasCamera)
	assert.False(t, resolved.HasMusic)
}

func TestResolvedIsIdempotent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AutoMode = true
	once := cfg.Resolved()
	assert.Equal(t, once, once.Resolved())
}

func TestResolvedReForcesClearedFlags(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AutoMode = true
	resolved := cfg.Resolved()

	// A client clearing a dependent flag loses to the next resolve pass.
	resolved.HasFan = false
	assert.True(t, resolved.Resolved().HasFan)
}

func TestResolvedOffRevertsNothing(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AutoMode = true
	resolved := cfg.Resolved()

	resolved.AutoMode = false
	after := resolved.Resolved()
	assert.True(t, after.HasController)
	assert.True(t, after.HasPump)
}

func TestLidTypeBits(t *testing.T) {
	assert.True(t, LidDomedVent.Domed())
	assert.True(t, LidDomedVent.Vented())
	assert.False(t, LidFlat.Domed())
	assert.False(t, LidFlat.Vented())

	// each setter preserves the other bit
	assert.Equal(t, LidDomedVent, LidFlatVent.WithDomed(true))
	assert.Equal(t, LidFlatVent, LidDomedVent.WithDomed(false))
	assert.Equal(t, LidDomedVent, LidDomed.WithVented(true))
	assert.Equal(t, LidDomed, LidDomedVent.WithVented(false))
	assert.Equal(t, LidFlat, LidFlat.WithVented(false))
}

func TestValidateRejectsMalformedEnums(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	cfg.Substrate = "gravel"
	err := cfg.Validate()
	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "substrate", verr.Field)

	cfg = DefaultConfig()
	cfg.LidType = "open"
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Layout = "octo"
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.PowerType = "steam"
	assert.Error(t, cfg.Validate())
}

func TestUnitMultiplier(t *testing.T) {
	assert.Equal(t, 1, LayoutSingle.UnitMultiplier())
	assert.Equal(t, 2, LayoutDoubleH.UnitMultiplier())
	assert.Equal(t, 2, LayoutDoubleV.UnitMultiplier())
	assert.Equal(t, 4, LayoutQuad.UnitMultiplier())
}
