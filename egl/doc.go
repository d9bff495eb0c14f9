// Package egl implements surface.Driver on top of the system EGL and
// OpenGL ES libraries.
//
// The libraries are loaded at run time with purego, so the package builds
// without cgo. On platforms without EGL, Open returns ErrUnsupported and the
// caller is expected to fall back to another driver.
//
//	drv, err := egl.Open()
//	if err != nil {
//		return err
//	}
//	defer drv.Close()
//	ctx := surface.New(drv)
package egl
