// Package pricing derives prices for custom kit configurations and catalog
// products. All functions are pure and deterministic.
package pricing

import (
	"errors"
	"math"

	"github.com/Equatrans/MicroGreen-Labs-App/models"
)

// Prices are integer currency units.
const (
	BasePrice = 1500

	LightSurcharge          = 1200
	FanSurcharge            = 600
	PumpSurcharge           = 800
	HeaterSurcharge         = 900
	TempSensorSurcharge     = 300
	HumiditySensorSurcharge = 350
	LightSensorSurcharge    = 250
	TimerSurcharge          = 450
	CameraSurcharge         = 2000
	MusicSurcharge          = 1800
	ControllerSurcharge     = 2500

	BatterySurcharge = 1000
)

// BulkDiscountFactor applies once, after the unit multiplication, whenever
// the layout produces more than one physical unit.
const BulkDiscountFactor = 0.9

var ErrUnknownVariant = errors.New("product variant does not exist")

// Price computes the price of a configuration: per-unit subtotal, times the
// layout's unit count, with the bulk discount for multi-unit layouts,
// rounded to the nearest currency unit.
func Price(cfg models.CustomKitConfig) int {
	subtotal := BasePrice
	if cfg.HasLight {
		subtotal += LightSurcharge
	}
	if cfg.HasFan {
		subtotal += FanSurcharge
	}
	if cfg.HasPump {
		subtotal += PumpSurcharge
	}
	if cfg.HasHeater {
		subtotal += HeaterSurcharge
	}
	if cfg.HasTempSensor {
		subtotal += TempSensorSurcharge
	}
	if cfg.HasHumiditySensor {
		subtotal += HumiditySensorSurcharge
	}
	if cfg.HasLightSensor {
		subtotal += LightSensorSurcharge
	}
	if cfg.HasTimer {
		subtotal += TimerSurcharge
	}
	if cfg.HasCamera {
		subtotal += CameraSurcharge
	}
	if cfg.HasMusic {
		subtotal += MusicSurcharge
	}
	if cfg.HasController {
		subtotal += ControllerSurcharge
	}
	if cfg.PowerType == models.PowerBattery {
		subtotal += BatterySurcharge
	}

	multiplier := cfg.Layout.UnitMultiplier()
	total := float64(subtotal * multiplier)
	if multiplier > 1 {
		total *= BulkDiscountFactor
	}
	return int(math.Round(total))
}

// ProductPrice is the snapshot price for a catalog line: the stored product
// price, or the selected variant's price when a variant id is given. A
// product that carries variants requires a valid variant id.
func ProductPrice(p models.Product, variantID string) (int, error) {
	if len(p.Variants) == 0 {
		if variantID != "" {
			return 0, ErrUnknownVariant
		}
		return p.Price, nil
	}
	v, ok := p.Variant(variantID)
	if !ok {
		return 0, ErrUnknownVariant
	}
	return v.Price, nil
}
