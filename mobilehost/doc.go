// Package mobilehost drives a nativeshell.Engine from the event stream of a
// golang.org/x/mobile app.
//
// Lifecycle stage crossings become lifecycle commands, size events update
// the display density, touch sequences become motion events and every paint
// event ticks the engine:
//
//	app.Main(func(a app.App) {
//		h := mobilehost.New(engine, mobilehost.WithPublish(func() { a.Publish() }))
//		h.Run(a)
//	})
//
// An Accelerometer passed to the engine with nativeshell.WithSensors is
// switched on while the app has focus and receives the app's sensor events.
package mobilehost
