// Package ecs bridges nativeshell gestures into a [Donburi] world.
//
// [NewDonburiSink] returns a nativeshell.GestureSink that publishes every
// arbitrated gesture as a typed event. Subscribe to [GestureEventType] in
// your ECS systems to receive them. The sink also keeps the latest gesture
// on a tracking entity, readable through [LastGesture].
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	engine := nativeshell.NewEngine(r, sc, nil, nativeshell.WithGestureSink(sink))
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
