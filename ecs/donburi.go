package ecs

import (
	"github.com/phanxgames/nativeshell"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// GestureEventType is the Donburi event type for recognized gestures.
var GestureEventType = events.NewEventType[nativeshell.GestureEvent]()

// GestureState is the component holding the most recent gesture of a world.
type GestureState struct {
	Last  nativeshell.GestureEvent
	Count int
}

// GestureComponent stores GestureState on the sink's tracking entity.
var GestureComponent = donburi.NewComponentType[GestureState]()

type donburiSink struct {
	world   donburi.World
	tracker donburi.Entity
}

// NewDonburiSink creates a GestureSink backed by a Donburi world.
// Gestures are published to GestureEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) nativeshell.GestureSink {
	return &donburiSink{
		world:   world,
		tracker: world.Create(GestureComponent),
	}
}

func (s *donburiSink) EmitGesture(ev nativeshell.GestureEvent) {
	if s.world.Valid(s.tracker) {
		st := GestureComponent.Get(s.world.Entry(s.tracker))
		st.Last = ev
		st.Count++
	}
	GestureEventType.Publish(s.world, ev)
}

// LastGesture returns the state kept by the sink created for world. ok is
// false when no sink was created for it.
func LastGesture(world donburi.World) (GestureState, bool) {
	entry, ok := GestureComponent.First(world)
	if !ok {
		return GestureState{}, false
	}
	return *GestureComponent.Get(entry), true
}
