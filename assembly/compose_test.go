package assembly

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Equatrans/MicroGreen-Labs-App/models"
)

func kinds(at []Attachment) map[AttachmentKind]int {
	counts := make(map[AttachmentKind]int)
	for _, a := range at {
		counts[a.Kind]++
	}
	return counts
}

func findKind(t *testing.T, at []Attachment, kind AttachmentKind) Attachment {
	t.Helper()
	for _, a := range at {
		if a.Kind == kind {
			return a
		}
	}
	t.Fatalf("attachment %s not found", kind)
	return Attachment{}
}

func TestComposeSingle(t *testing.T) {
	asm := Compose(models.DefaultConfig())
	require.Len(t, asm.Units, 1)
	assert.Empty(t, asm.Connectors)
	assert.Empty(t, asm.Struts)
	assert.Equal(t, Vec3{}, asm.Units[0].Position)
}

func TestComposeDoubleH(t *testing.T) {
	cfg := models.DefaultConfig()
	cfg.Layout = models.LayoutDoubleH

	asm := Compose(cfg)
	require.Len(t, asm.Units, 2)
	require.Len(t, asm.Connectors, 1)
	assert.Empty(t, asm.Struts)

	assert.Equal(t, Vec3{X: -2.1}, asm.Units[0].Position)
	assert.Equal(t, Vec3{X: 2.1}, asm.Units[1].Position)
	assert.Equal(t, Vec3{}, asm.Connectors[0].Position)
}

func TestComposeDoubleVFlat(t *testing.T) {
	cfg := models.DefaultConfig()
	cfg.Layout = models.LayoutDoubleV

	asm := Compose(cfg)
	require.Len(t, asm.Units, 2)
	assert.Empty(t, asm.Connectors)
	require.Len(t, asm.Struts, 4)

	// flat lids stack at 2.5, base dropped to -1.5
	assert.Equal(t, Vec3{Y: -1.5}, asm.Units[0].Position)
	assert.Equal(t, Vec3{Y: 1.0}, asm.Units[1].Position)
	for _, s := range asm.Struts {
		assert.Equal(t, 2.5, s.Length)
		assert.Equal(t, -1.5+2.5/2-0.5, s.Position.Y)
	}
}

func TestComposeDoubleVDomedRaisesPitch(t *testing.T) {
	cfg := models.DefaultConfig()
	cfg.Layout = models.LayoutDoubleV
	cfg.LidType = models.LidDomed

	asm := Compose(cfg)
	require.Len(t, asm.Units, 2)
	assert.Equal(t, Vec3{Y: -1.5 + 3.5}, asm.Units[1].Position)
	for _, s := range asm.Struts {
		assert.Equal(t, 3.5, s.Length)
	}
}

func TestComposeQuad(t *testing.T) {
	cfg := models.DefaultConfig()
	cfg.Layout = models.LayoutQuad

	asm := Compose(cfg)
	require.Len(t, asm.Units, 4)
	require.Len(t, asm.Connectors, 2)
	require.Len(t, asm.Struts, 8)

	positions := make(map[Vec3]bool)
	for _, u := range asm.Units {
		positions[u.Position] = true
	}
	assert.True(t, positions[Vec3{X: -2.1, Y: -1.5}])
	assert.True(t, positions[Vec3{X: -2.1, Y: 1.0}])
	assert.True(t, positions[Vec3{X: 2.1, Y: -1.5}])
	assert.True(t, positions[Vec3{X: 2.1, Y: 1.0}])

	// connectors at base and upper level
	assert.Equal(t, Vec3{Y: -1.5}, asm.Connectors[0].Position)
	assert.Equal(t, Vec3{Y: -1.5 + 2.5}, asm.Connectors[1].Position)
}

func TestLightPlacement(t *testing.T) {
	cfg := models.DefaultConfig()
	cfg.HasLight = true

	at := Compose(cfg).Units[0].Attachments
	counts := kinds(at)
	assert.Equal(t, 1, counts[AttachLight])
	// flat lids carry the light bar on two posts
	assert.Equal(t, 2, counts[AttachLightPost])
	assert.Equal(t, 2.5, findKind(t, at, AttachLight).Offset.Y)

	cfg.LidType = models.LidDomed
	at = Compose(cfg).Units[0].Attachments
	counts = kinds(at)
	assert.Zero(t, counts[AttachLightPost])
	assert.Equal(t, 3.5, findKind(t, at, AttachLight).Offset.Y)
}

func TestLightSensorRequiresLight(t *testing.T) {
	cfg := models.DefaultConfig()
	cfg.HasLightSensor = true
	assert.Zero(t, kinds(Compose(cfg).Units[0].Attachments)[AttachLightSensor])

	cfg.HasLight = true
	assert.Equal(t, 1, kinds(Compose(cfg).Units[0].Attachments)[AttachLightSensor])
}

func TestTimerYieldsToController(t *testing.T) {
	cfg := models.DefaultConfig()
	cfg.HasTimer = true
	assert.Equal(t, 1, kinds(Compose(cfg).Units[0].Attachments)[AttachTimer])

	cfg.HasController = true
	counts := kinds(Compose(cfg).Units[0].Attachments)
	assert.Zero(t, counts[AttachTimer])
	assert.Equal(t, 1, counts[AttachController])
}

func TestSensorDisplayShared(t *testing.T) {
	cfg := models.DefaultConfig()
	cfg.HasTempSensor = true
	cfg.HasHumiditySensor = true

	counts := kinds(Compose(cfg).Units[0].Attachments)
	assert.Equal(t, 1, counts[AttachSensorDisplay])
	assert.Equal(t, 1, counts[AttachTempSensor])
	assert.Equal(t, 1, counts[AttachHumidSensor])
}

func TestVentPlacement(t *testing.T) {
	cfg := models.DefaultConfig()
	cfg.LidType = models.LidFlatVent

	at := Compose(cfg).Units[0].Attachments
	counts := kinds(at)
	require.Equal(t, 6, counts[AttachVent])
	vent := findKind(t, at, AttachVent)
	assert.Equal(t, 0.1, vent.Offset.Y)
	assert.Equal(t, 0.05, vent.Radius)

	cfg.LidType = models.LidDomedVent
	at = Compose(cfg).Units[0].Attachments
	require.Equal(t, 6, kinds(at)[AttachVent])
	vent = findKind(t, at, AttachVent)
	assert.Equal(t, 1.0, vent.Offset.Y)
	assert.Equal(t, 0.3, vent.Radius)
}

func TestFanAndCameraHeightsFollowLid(t *testing.T) {
	cfg := models.DefaultConfig()
	cfg.HasFan = true
	cfg.HasCamera = true

	at := Compose(cfg).Units[0].Attachments
	assert.Equal(t, 0.8, findKind(t, at, AttachFan).Offset.Y)
	assert.Equal(t, 1.2, findKind(t, at, AttachCamera).Offset.Y)

	cfg.LidType = models.LidDomed
	at = Compose(cfg).Units[0].Attachments
	assert.Equal(t, 1.5, findKind(t, at, AttachFan).Offset.Y)
	assert.Equal(t, 2.8, findKind(t, at, AttachCamera).Offset.Y)
}

func TestBatteryAttachment(t *testing.T) {
	cfg := models.DefaultConfig()
	cfg.PowerType = models.PowerBattery
	assert.Equal(t, 1, kinds(Compose(cfg).Units[0].Attachments)[AttachBattery])
}
