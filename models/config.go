package models

// Substrate is the growing medium placed in each tray.
type Substrate string

const (
	SubstrateCoco  Substrate = "coco"
	SubstrateLinen Substrate = "linen"
	SubstrateWool  Substrate = "wool"
)

func (s Substrate) Valid() bool {
	switch s {
	case SubstrateCoco, SubstrateLinen, SubstrateWool:
		return true
	}
	return false
}

// LidType encodes two independent properties in one tag:
// domed vs flat, and vented vs sealed.
type LidType string

const (
	LidFlat      LidType = "flat"
	LidFlatVent  LidType = "flat-vent"
	LidDomed     LidType = "domed"
	LidDomedVent LidType = "domed-vent"
)

func (l LidType) Valid() bool {
	switch l {
	case LidFlat, LidFlatVent, LidDomed, LidDomedVent:
		return true
	}
	return false
}

func (l LidType) Domed() bool {
	return l == LidDomed || l == LidDomedVent
}

func (l LidType) Vented() bool {
	return l == LidFlatVent || l == LidDomedVent
}

func lidTypeOf(domed, vented bool) LidType {
	switch {
	case domed && vented:
		return LidDomedVent
	case domed:
		return LidDomed
	case vented:
		return LidFlatVent
	default:
		return LidFlat
	}
}

// WithDomed switches the dome bit, preserving the vent bit.
func (l LidType) WithDomed(domed bool) LidType {
	return lidTypeOf(domed, l.Vented())
}

// WithVented switches the vent bit, preserving the dome bit.
func (l LidType) WithVented(vented bool) LidType {
	return lidTypeOf(l.Domed(), vented)
}

// Layout is the count and arrangement of physical grow units.
type Layout string

const (
	LayoutSingle  Layout = "single"
	LayoutDoubleH Layout = "double-h"
	LayoutDoubleV Layout = "double-v"
	LayoutQuad    Layout = "quad"
)

func (l Layout) Valid() bool {
	switch l {
	case LayoutSingle, LayoutDoubleH, LayoutDoubleV, LayoutQuad:
		return true
	}
	return false
}

// UnitMultiplier is the number of physical units the layout produces.
func (l Layout) UnitMultiplier() int {
	switch l {
	case LayoutDoubleH, LayoutDoubleV:
		return 2
	case LayoutQuad:
		return 4
	default:
		return 1
	}
}

type PowerType string

const (
	PowerGrid    PowerType = "grid"
	PowerBattery PowerType = "battery"
	PowerMixed   PowerType = "mixed"
	PowerNone    PowerType = "none"
)

func (p PowerType) Valid() bool {
	switch p {
	case PowerGrid, PowerBattery, PowerMixed, PowerNone:
		return true
	}
	return false
}

// CustomKitConfig is the in-progress specification of a custom grow farm.
type CustomKitConfig struct {
	TrayColor         string    `json:"trayColor"`
	Substrate         Substrate `json:"substrate"`
	Seeds             []string  `json:"seeds"`
	LidType           LidType   `json:"lidType"`
	Layout            Layout    `json:"layout"`
	PowerType         PowerType `json:"powerType"`
	HasLight          bool      `json:"hasLight"`
	HasFan            bool      `json:"hasFan"`
	HasPump           bool      `json:"hasPump"`
	HasHeater         bool      `json:"hasHeater"`
	HasTempSensor     bool      `json:"hasTempSensor"`
	HasHumiditySensor bool      `json:"hasHumiditySensor"`
	HasLightSensor    bool      `json:"hasLightSensor"`
	HasTimer          bool      `json:"hasTimer"`
	HasController     bool      `json:"hasController"`
	HasCamera         bool      `json:"hasCamera"`
	HasMusic          bool      `json:"hasMusic"`
	AutoMode          bool      `json:"autoMode"`
}

// DefaultConfig is the starting point of every builder session.
func DefaultConfig() CustomKitConfig {
	return CustomKitConfig{
		TrayColor: "#e2e8f0",
		Substrate: SubstrateLinen,
		Seeds:     []string{},
		LidType:   LidFlat,
		Layout:    LayoutSingle,
		PowerType: PowerGrid,
	}
}

// Resolved applies the auto-mode dependency rule and returns the result.
// While autoMode is on it is the authority over the dependent flags: they
// are forced true on every pass. Turning autoMode off reverts nothing.
func (c CustomKitConfig) Resolved() CustomKitConfig {
	if !c.AutoMode {
		return c
	}
	c.HasController = true
	c.HasTempSensor = true
	c.HasHumiditySensor = true
	c.HasLightSensor = true
	c.HasFan = true
	c.HasLight = true
	c.HasPump = true
	return c
}

// Validate rejects malformed enum values. Seed ids are checked separately
// against the catalog at the mutation boundary.
func (c CustomKitConfig) Validate() error {
	if !c.Substrate.Valid() {
		return ErrInvalidConfig("substrate", string(c.Substrate))
	}
	if !c.LidType.Valid() {
		return ErrInvalidConfig("lidType", string(c.LidType))
	}
	if !c.Layout.Valid() {
		return ErrInvalidConfig("layout", string(c.Layout))
	}
	if !c.PowerType.Valid() {
		return ErrInvalidConfig("powerType", string(c.PowerType))
	}
	return nil
}

// HasSeed reports whether the seed id is already selected.
func (c CustomKitConfig) HasSeed(id string) bool {
	for _, s := range c.Seeds {
		if s == id {
			return true
		}
	}
	return false
}
