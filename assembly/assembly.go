// Package assembly turns a kit configuration into a tree of positioned
// physical units and connectors. Output is geometry-free: abstract offsets
// for the rendering collaborator, no materials or primitives.
package assembly

type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

type AttachmentKind string

const (
	AttachLight         AttachmentKind = "light"
	AttachLightPost     AttachmentKind = "light-post"
	AttachLightSensor   AttachmentKind = "light-sensor"
	AttachFan           AttachmentKind = "fan"
	AttachPump          AttachmentKind = "pump"
	AttachHeater        AttachmentKind = "heater"
	AttachController    AttachmentKind = "controller"
	AttachTimer         AttachmentKind = "timer"
	AttachCamera        AttachmentKind = "camera"
	AttachMusic         AttachmentKind = "music"
	AttachSensorDisplay AttachmentKind = "sensor-display"
	AttachTempSensor    AttachmentKind = "temp-sensor"
	AttachHumidSensor   AttachmentKind = "humidity-sensor"
	AttachBattery       AttachmentKind = "battery"
	AttachVent          AttachmentKind = "vent"
)

// Attachment is a module mounted at a fixed offset inside one unit.
type Attachment struct {
	Kind   AttachmentKind `json:"kind"`
	Offset Vec3           `json:"offset"`
	Radius float64        `json:"radius,omitempty"`
}

type Unit struct {
	Position    Vec3         `json:"position"`
	Attachments []Attachment `json:"attachments"`
}

// Connector joins two side-by-side units or stacks.
type Connector struct {
	Position Vec3 `json:"position"`
}

// Strut is a vertical support between stacked units.
type Strut struct {
	Position Vec3    `json:"position"`
	Length   float64 `json:"length"`
}

type Assembly struct {
	Units      []Unit      `json:"units"`
	Connectors []Connector `json:"connectors"`
	Struts     []Strut     `json:"struts"`
}
