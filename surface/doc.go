// Package surface manages the lifetime of a native window's display
// connection, drawable surface and rendering context.
//
// A [Context] is a state machine driven by the window system:
//
//	Uninitialized -> Initialized -> Suspended -> Initialized ...
//	                      |
//	                      +-> Invalidated -> Initialized ...
//
// It talks to the platform through a [Driver], which hands out opaque
// handles and reports failures as platform [Code]s. Loss of the surface or
// of the context is detected from those codes and recovered in place; the
// caller learns about it from the code returned by [Context.Swap] and
// [Context.Resume] and reloads its GPU resources when that code is not
// [Success].
//
// The egl package provides a Driver for real EGL implementations;
// [Headless] is an in-memory driver for tests and tools.
//
// A Context is not safe for concurrent use. All calls are expected from the
// thread that owns the window.
package surface
