package ebitenhost

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/nativeshell"
	"github.com/phanxgames/nativeshell/gesture"
)

// viewAnim holds the tweens of an animated reset.
type viewAnim struct {
	tweens [3]*gween.Tween
	done   [3]bool
}

// View is a pan and zoom camera driven by gestures. Drag pans, pinch zooms
// and double tap animates back to the home position.
type View struct {
	// X and Y are the world-space position shown at the viewport center.
	X, Y float64
	// Zoom is the scale factor (1.0 = no zoom, >1 = zoom in).
	Zoom float64
	// Width and Height are the viewport size in pixels.
	Width, Height float64
	// MinZoom and MaxZoom bound pinch zooming.
	MinZoom, MaxZoom float64
	// ResetDuration is the double-tap reset time in seconds.
	ResetDuration float32

	homeX, homeY float64

	dragging     bool
	lastX, lastY float32

	pinching  bool
	startSpan float64
	startZoom float64

	anim    *viewAnim
	handles []nativeshell.CallbackHandle
}

// NewView creates a View of the given viewport whose home position maps
// world (0, 0) to the top-left corner at zoom 1.
func NewView(width, height float64) *View {
	return &View{
		X:             width / 2,
		Y:             height / 2,
		Zoom:          1,
		Width:         width,
		Height:        height,
		MinZoom:       0.25,
		MaxZoom:       8,
		ResetDuration: 0.3,
		homeX:         width / 2,
		homeY:         height / 2,
	}
}

// SetViewport resizes the viewport. The world point at the top-left corner
// stays put and the home position follows the new center.
func (v *View) SetViewport(width, height float64) {
	if width == v.Width && height == v.Height {
		return
	}
	v.X += (width - v.Width) / (2 * v.Zoom)
	v.Y += (height - v.Height) / (2 * v.Zoom)
	v.Width, v.Height = width, height
	v.homeX, v.homeY = width/2, height/2
	if v.anim != nil {
		v.ResetTo(v.homeX, v.homeY, 1, v.ResetDuration, ease.OutQuad)
	}
}

// Attach registers the view's gesture handlers on e. Call Detach to remove
// them.
func (v *View) Attach(e *nativeshell.Engine) {
	v.Detach()
	v.handles = append(v.handles,
		e.OnDrag(v.onDrag),
		e.OnPinch(v.onPinch),
		e.OnDoubleTap(v.onDoubleTap),
	)
}

// Detach removes the handlers installed by Attach.
func (v *View) Detach() {
	for _, h := range v.handles {
		h.Remove()
	}
	v.handles = v.handles[:0]
}

func (v *View) onDrag(ev nativeshell.GestureEvent) {
	// Pinching owns the view until both fingers lift.
	if v.pinching {
		v.dragging = false
		return
	}
	switch ev.State {
	case gesture.StateStart:
		v.dragging = true
		v.lastX, v.lastY = ev.X, ev.Y
	case gesture.StateMove, gesture.StateEnd:
		if !v.dragging {
			return
		}
		v.anim = nil
		v.X -= float64(ev.X-v.lastX) / v.Zoom
		v.Y -= float64(ev.Y-v.lastY) / v.Zoom
		v.lastX, v.lastY = ev.X, ev.Y
		v.dragging = ev.State == gesture.StateMove
	}
}

func (v *View) onPinch(ev nativeshell.GestureEvent) {
	span := math.Hypot(float64(ev.X2-ev.X), float64(ev.Y2-ev.Y))
	switch ev.State {
	case gesture.StateStart:
		v.anim = nil
		v.pinching = true
		v.startSpan = span
		v.startZoom = v.Zoom
	case gesture.StateMove:
		if !v.pinching || v.startSpan == 0 {
			return
		}
		v.Zoom = v.clampZoom(v.startZoom * span / v.startSpan)
	default:
		v.pinching = false
	}
}

func (v *View) onDoubleTap(ev nativeshell.GestureEvent) {
	if ev.State&gesture.StateStart == 0 {
		return
	}
	v.ResetTo(v.homeX, v.homeY, 1, v.ResetDuration, ease.OutQuad)
}

func (v *View) clampZoom(z float64) float64 {
	return math.Max(v.MinZoom, math.Min(z, v.MaxZoom))
}

// ResetTo animates the view to the given center and zoom over duration
// seconds.
func (v *View) ResetTo(x, y, zoom float64, duration float32, fn ease.TweenFunc) {
	v.anim = &viewAnim{tweens: [3]*gween.Tween{
		gween.New(float32(v.X), float32(x), duration, fn),
		gween.New(float32(v.Y), float32(y), duration, fn),
		gween.New(float32(v.Zoom), float32(zoom), duration, fn),
	}}
}

// Animating reports whether a reset is in progress.
func (v *View) Animating() bool {
	return v.anim != nil
}

// Update advances a running reset by dt seconds.
func (v *View) Update(dt float32) {
	if v.anim == nil {
		return
	}
	fields := [3]*float64{&v.X, &v.Y, &v.Zoom}
	for i, tw := range v.anim.tweens {
		if v.anim.done[i] {
			continue
		}
		val, done := tw.Update(dt)
		*fields[i] = float64(val)
		v.anim.done[i] = done
	}
	if v.anim.done == [3]bool{true, true, true} {
		v.anim = nil
	}
}

// GeoM returns the world-to-screen transform.
func (v *View) GeoM() ebiten.GeoM {
	var m ebiten.GeoM
	m.Translate(-v.X, -v.Y)
	m.Scale(v.Zoom, v.Zoom)
	m.Translate(v.Width/2, v.Height/2)
	return m
}

// WorldToScreen converts world coordinates to screen coordinates.
func (v *View) WorldToScreen(wx, wy float64) (sx, sy float64) {
	m := v.GeoM()
	return m.Apply(wx, wy)
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (v *View) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	m := v.GeoM()
	m.Invert()
	return m.Apply(sx, sy)
}
