//go:build linux

package egl

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/ebitengine/purego"
)

func libraryNames() (eglLib, glesLib []string) {
	if runtime.GOOS == "android" {
		return []string{"libEGL.so"}, []string{"libGLESv3.so", "libGLESv2.so"}
	}
	return []string{"libEGL.so.1", "libEGL.so"}, []string{"libGLESv2.so.2", "libGLESv2.so"}
}

func dlopenAny(names []string) (uintptr, error) {
	var errs []error
	for _, name := range names {
		h, err := purego.Dlopen(name, purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if err == nil {
			return h, nil
		}
		errs = append(errs, err)
	}
	return 0, errors.Join(errs...)
}

// Open loads the EGL and OpenGL ES libraries and binds their entry points.
func Open() (drv *Driver, err error) {
	eglNames, glesNames := libraryNames()
	eglLib, err := dlopenAny(eglNames)
	if err != nil {
		return nil, fmt.Errorf("egl: load %v: %w", eglNames, err)
	}
	glesLib, err := dlopenAny(glesNames)
	if err != nil {
		purego.Dlclose(eglLib)
		return nil, fmt.Errorf("egl: load %v: %w", glesNames, err)
	}

	// RegisterLibFunc panics on a missing symbol.
	defer func() {
		if r := recover(); r != nil {
			purego.Dlclose(glesLib)
			purego.Dlclose(eglLib)
			drv, err = nil, fmt.Errorf("egl: bind: %v", r)
		}
	}()

	d := &Driver{}
	purego.RegisterLibFunc(&d.getDisplay, eglLib, "eglGetDisplay")
	purego.RegisterLibFunc(&d.initialize, eglLib, "eglInitialize")
	purego.RegisterLibFunc(&d.chooseConfig, eglLib, "eglChooseConfig")
	purego.RegisterLibFunc(&d.createWindowSurface, eglLib, "eglCreateWindowSurface")
	purego.RegisterLibFunc(&d.querySurface, eglLib, "eglQuerySurface")
	purego.RegisterLibFunc(&d.createContext, eglLib, "eglCreateContext")
	purego.RegisterLibFunc(&d.makeCurrent, eglLib, "eglMakeCurrent")
	purego.RegisterLibFunc(&d.swapBuffers, eglLib, "eglSwapBuffers")
	purego.RegisterLibFunc(&d.destroySurface, eglLib, "eglDestroySurface")
	purego.RegisterLibFunc(&d.destroyContext, eglLib, "eglDestroyContext")
	purego.RegisterLibFunc(&d.terminate, eglLib, "eglTerminate")
	purego.RegisterLibFunc(&d.getError, eglLib, "eglGetError")
	purego.RegisterLibFunc(&d.glGetString, glesLib, "glGetString")

	d.close = func() error {
		return errors.Join(purego.Dlclose(glesLib), purego.Dlclose(eglLib))
	}
	logger().Info("egl loaded", "egl", eglNames, "gles", glesNames)
	return d, nil
}
