// Package nativeshell is the application shell of a native graphics app. It
// sits between the window system and a renderer.
//
// The [Engine] consumes lifecycle [Command] values from the platform,
// drives a [surface.Context] through window loss, focus changes, memory
// pressure and context loss, and feeds pointer input to a
// [gesture.Arbiter] that recognizes taps, double taps, drags and pinches.
//
// # Quick start
//
// Hosts own the platform loop. A desktop host built on Ebitengine lives in
// nativeshell/ebitenhost and a mobile host built on golang.org/x/mobile in
// nativeshell/mobilehost. Either way the shape is the same:
//
//	cfg, _ := nativeshell.LoadConfig("shell.toml")
//	drv, _ := egl.Open()
//	engine := nativeshell.NewEngineFromConfig(cfg, renderer, drv)
//
//	// platform callbacks
//	engine.HandleCommand(nativeshell.CmdInitWindow, win)
//	engine.HandleInput(ev)
//	engine.Tick()
//
// # Gestures
//
// Register callbacks per gesture type with [Engine.OnTap],
// [Engine.OnDoubleTap], [Engine.OnDrag] and [Engine.OnPinch]. These fire
// whenever their detector reports a state. [Engine.OnGesture] and
// [WithGestureSink] only see the one gesture the arbiter selects per event.
//
//	engine.OnDoubleTap(func(ev nativeshell.GestureEvent) {
//		camera.ResetZoom()
//	})
//
// # Scripted runs
//
// [LoadTestScript] parses a JSON script of injected input, lifecycle
// commands, driver faults and expectations. Attach it with
// [Engine.SetTestRunner] and call [Engine.Update] once per frame; pair it
// with [surface.Headless] to run without a display:
//
//	{"steps": [
//		{"action": "command", "command": "init_window", "window": 1},
//		{"action": "doubletap", "x": 100, "y": 100},
//		{"action": "expect", "gesture": "doubletap"},
//		{"action": "fail_swap", "code": "context_lost"},
//		{"action": "draw"}
//	]}
//
// # Logging
//
// Every package logs through log/slog. The default logger discards
// everything; install one with [SetLogger] or [Config.NewLogger].
package nativeshell
