//go:build !linux

package egl

// Open reports ErrUnsupported on platforms without EGL.
func Open() (*Driver, error) {
	return nil, ErrUnsupported
}
