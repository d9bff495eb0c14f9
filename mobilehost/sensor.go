package mobilehost

import (
	"time"

	"golang.org/x/mobile/exp/sensor"

	"github.com/phanxgames/nativeshell"
)

// AccelerometerRate is the sampling delay requested while sensors are on.
const AccelerometerRate = time.Second / 60

// Accelerometer is a nativeshell.SensorSource backed by x/mobile's sensor
// package. Readings arrive as sensor.Events on the app's event channel; a
// Host hands them to Queue and the engine drains them in Process.
//
// Pass it to the engine with nativeshell.WithSensors. The host notices it
// through Engine.Sensors.
type Accelerometer struct {
	// Rate is the delay between samples passed to sensor.Enable.
	Rate time.Duration

	enable  func(sensor.Type, time.Duration) error
	disable func(sensor.Type) error
	notify  func(Source)

	notified bool
	enabled  bool
	pending  []sensor.Event
	latest   nativeshell.Acceleration
}

var _ nativeshell.SensorSource = (*Accelerometer)(nil)

// NewAccelerometer returns a disabled accelerometer sampling at
// AccelerometerRate once resumed.
func NewAccelerometer() *Accelerometer {
	return &Accelerometer{
		Rate:    AccelerometerRate,
		enable:  sensor.Enable,
		disable: sensor.Disable,
		notify:  func(s Source) { sensor.Notify(s) },
	}
}

// Enabled reports whether the sensor is currently on.
func (a *Accelerometer) Enabled() bool { return a.enabled }

// bind routes sensor events to src. x/mobile accepts a single sender per
// process, so only the first call has an effect.
func (a *Accelerometer) bind(src Source) {
	if a.notified {
		return
	}
	a.notify(src)
	a.notified = true
}

// Resume turns the sensor on. A platform without sensors leaves it off.
func (a *Accelerometer) Resume() {
	if a.enabled {
		return
	}
	if err := a.enable(sensor.Accelerometer, a.Rate); err != nil {
		logger().Warn("accelerometer unavailable", "err", err)
		return
	}
	a.enabled = true
}

// Suspend turns the sensor off and drops readings not yet processed.
func (a *Accelerometer) Suspend() {
	a.pending = a.pending[:0]
	if !a.enabled {
		return
	}
	if err := a.disable(sensor.Accelerometer); err != nil {
		logger().Warn("accelerometer disable failed", "err", err)
	}
	a.enabled = false
}

// Queue stores an accelerometer event until the next Process. Other sensor
// types and events that arrive while disabled are ignored.
func (a *Accelerometer) Queue(e sensor.Event) {
	if !a.enabled || e.Sensor != sensor.Accelerometer || len(e.Data) < 3 {
		return
	}
	a.pending = append(a.pending, e)
}

// Process drains queued readings. The last one becomes the current
// acceleration.
func (a *Accelerometer) Process() {
	for _, e := range a.pending {
		a.latest = nativeshell.Acceleration{
			X: float32(e.Data[0]),
			Y: float32(e.Data[1]),
			Z: float32(e.Data[2]),
		}
	}
	clear(a.pending)
	a.pending = a.pending[:0]
}

// Acceleration returns the last processed reading in m/s².
func (a *Accelerometer) Acceleration() nativeshell.Acceleration {
	return a.latest
}
