// Package ebitenhost runs a nativeshell.Engine inside an Ebitengine window.
//
// Ebitengine owns the real graphics context, so the engine's surface
// lifecycle runs against a surface.Headless driver sized to the window.
// Mouse and touch input are diffed each tick into motion events, and window
// focus and close requests become lifecycle commands.
//
//	cfg, _ := nativeshell.LoadConfig("shell.toml")
//	if err := ebitenhost.Run(cfg, renderer); err != nil {
//		log.Fatal(err)
//	}
//
// Renderers that implement [Target] receive the screen image before every
// Render call.
package ebitenhost
