package nativeshell

import "io/fs"

// Renderer draws frames into the current surface.
//
// Init and Unload are called in pairs whenever GPU resources have to be
// rebuilt, which happens after every surface or context loss, so both must
// tolerate repeated calls.
type Renderer interface {
	// Init creates GPU resources. assets may be nil.
	Init(assets fs.FS) error
	// Render draws one frame. The engine presents it afterwards.
	Render()
	// Unload releases GPU resources.
	Unload()
	// TextureType reports the texture target the renderer samples from.
	TextureType() int
}

// Acceleration is one accelerometer sample in m/s².
type Acceleration struct {
	X, Y, Z float32
}

// SensorSource delivers motion sensor readings. The engine enables it while
// the app has focus.
type SensorSource interface {
	Resume()
	Suspend()
	// Process drains pending readings.
	Process()
	// Acceleration returns the latest reading.
	Acceleration() Acceleration
}

// SensorBinder is implemented by renderers that read sensors. The engine
// binds its SensorSource every time resources are loaded.
type SensorBinder interface {
	BindSensors(s SensorSource)
}

// GestureSink receives every recognized gesture after the engine's own
// handlers ran.
type GestureSink interface {
	EmitGesture(ev GestureEvent)
}
