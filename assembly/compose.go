package assembly

import "github.com/Equatrans/MicroGreen-Labs-App/models"

// Placement constants. Units are abstract scene units, matching the tray
// footprint of 4 x 1.5 x 3 around its local origin.
const (
	unitHalfPitch = 2.1 // horizontal offset of each unit in a row

	stackOffsetFlat  = 2.5 // vertical pitch between stacked units
	stackOffsetDomed = 3.5 // domed lids add height

	stackBaseDrop = -1.5 // stacked arrangements sit lower so the pair centers

	strutX = 1.9 // struts at the four tray corners
	strutZ = 1.4
)

// stackOffset is the vertical pitch rule shared by every stacked layout.
func stackOffset(cfg models.CustomKitConfig) float64 {
	if cfg.LidType.Domed() {
		return stackOffsetDomed
	}
	return stackOffsetFlat
}

// Compose lays out the configured farm. Layouts are built recursively from
// two sub-assemblies: a stacked pair (double-v) and a side-by-side row
// (double-h); quad is a row of two stacks. New layout variants only need a
// new arrangement of these, not new geometry rules.
func Compose(cfg models.CustomKitConfig) Assembly {
	var asm Assembly
	switch cfg.Layout {
	case models.LayoutDoubleH:
		composeRow(&asm, Vec3{}, func(a *Assembly, origin Vec3) {
			composeUnit(a, cfg, origin)
		})
	case models.LayoutDoubleV:
		composeStack(&asm, cfg, Vec3{Y: stackBaseDrop})
	case models.LayoutQuad:
		base := Vec3{Y: stackBaseDrop}
		composeRow(&asm, base, func(a *Assembly, origin Vec3) {
			composeStack(a, cfg, origin)
		})
		// Second connector joins the stacks at the upper level; the row
		// already placed the base-level one.
		asm.Connectors = append(asm.Connectors, Connector{
			Position: base.Add(Vec3{Y: stackOffset(cfg)}),
		})
	default:
		composeUnit(&asm, cfg, Vec3{})
	}
	return asm
}

// composeRow places two sub-assemblies side by side along X with a
// connector at the midpoint.
func composeRow(asm *Assembly, origin Vec3, sub func(*Assembly, Vec3)) {
	sub(asm, origin.Add(Vec3{X: -unitHalfPitch}))
	asm.Connectors = append(asm.Connectors, Connector{Position: origin})
	sub(asm, origin.Add(Vec3{X: unitHalfPitch}))
}

// composeStack places two units one above the other, joined by four corner
// struts whose length follows the lid-dependent stacking pitch.
func composeStack(asm *Assembly, cfg models.CustomKitConfig, origin Vec3) {
	offset := stackOffset(cfg)
	composeUnit(asm, cfg, origin)
	for _, x := range []float64{-strutX, strutX} {
		for _, z := range []float64{-strutZ, strutZ} {
			asm.Struts = append(asm.Struts, Strut{
				Position: origin.Add(Vec3{X: x, Y: offset/2 - 0.5, Z: z}),
				Length:   offset,
			})
		}
	}
	composeUnit(asm, cfg, origin.Add(Vec3{Y: offset}))
}

func composeUnit(asm *Assembly, cfg models.CustomKitConfig, origin Vec3) {
	asm.Units = append(asm.Units, Unit{
		Position:    origin,
		Attachments: unitAttachments(cfg),
	})
}

// unitAttachments places the conditional modules at their fixed offsets
// inside one unit. Light and vent placement depend on the lid's domed-ness.
func unitAttachments(cfg models.CustomKitConfig) []Attachment {
	domed := cfg.LidType.Domed()
	var at []Attachment

	if cfg.HasHeater {
		at = append(at, Attachment{Kind: AttachHeater, Offset: Vec3{Y: 0.2}})
	}
	if cfg.PowerType == models.PowerBattery {
		at = append(at, Attachment{Kind: AttachBattery, Offset: Vec3{X: 2.1}})
	}
	if cfg.HasLight {
		lightY := 2.5
		if domed {
			lightY = 3.5
		} else {
			// Flat lids need posts to carry the light bar.
			at = append(at,
				Attachment{Kind: AttachLightPost, Offset: Vec3{X: -1.8, Y: lightY - 0.75}},
				Attachment{Kind: AttachLightPost, Offset: Vec3{X: 1.8, Y: lightY - 0.75}},
			)
		}
		at = append(at, Attachment{Kind: AttachLight, Offset: Vec3{Y: lightY}})
		if cfg.HasLightSensor {
			at = append(at, Attachment{Kind: AttachLightSensor, Offset: Vec3{X: 1.5, Y: lightY - 0.1}})
		}
	}
	if cfg.HasTimer && !cfg.HasController {
		at = append(at, Attachment{Kind: AttachTimer, Offset: Vec3{X: 2.05, Y: 0.8}})
	}
	if cfg.HasController {
		at = append(at, Attachment{Kind: AttachController, Offset: Vec3{X: -2.1, Y: 0.2, Z: 1}})
	}
	if cfg.HasPump {
		at = append(at, Attachment{Kind: AttachPump, Offset: Vec3{X: -2.3, Y: -0.5, Z: -0.8}})
	}
	if cfg.HasTempSensor || cfg.HasHumiditySensor {
		at = append(at, Attachment{Kind: AttachSensorDisplay, Offset: Vec3{X: -2.02, Y: 0.4}})
	}
	if cfg.HasTempSensor {
		at = append(at, Attachment{Kind: AttachTempSensor, Offset: Vec3{X: 1.4, Y: 0.7, Z: 0.8}})
	}
	if cfg.HasHumiditySensor {
		at = append(at, Attachment{Kind: AttachHumidSensor, Offset: Vec3{X: -1.4, Y: 0.7, Z: 0.8}})
	}
	if cfg.HasCamera {
		y := 1.2
		if domed {
			y = 2.8
		}
		at = append(at, Attachment{Kind: AttachCamera, Offset: Vec3{Y: y}})
	}
	if cfg.HasFan {
		y := 0.8
		if domed {
			y = 1.5
		}
		at = append(at, Attachment{Kind: AttachFan, Offset: Vec3{X: 1.5, Y: y}})
	}
	if cfg.HasMusic {
		at = append(at, Attachment{Kind: AttachMusic, Offset: Vec3{X: 1.0, Y: -0.2, Z: 1.55}})
	}
	if cfg.LidType.Vented() {
		at = append(at, ventAttachments(domed)...)
	}
	return at
}

// ventAttachments places three vents on each side wall. Domed lids take
// larger vents mounted higher and spread wider than flat lids.
func ventAttachments(domed bool) []Attachment {
	y, radius, spread := 0.1, 0.05, 0.5
	if domed {
		y, radius, spread = 1.0, 0.3, 0.8
	}
	var at []Attachment
	for _, x := range []float64{-2.01, 2.01} {
		for _, z := range []float64{-spread, 0, spread} {
			at = append(at, Attachment{Kind: AttachVent, Offset: Vec3{X: x, Y: y, Z: z}, Radius: radius})
		}
	}
	return at
}
