package egl

import (
	"testing"
	"unsafe"

	"github.com/google/go-cmp/cmp"

	"github.com/phanxgames/nativeshell/surface"
)

func TestConfigAttribs(t *testing.T) {
	got := configAttribs(surface.ConfigRequest{RedSize: 8, GreenSize: 8, BlueSize: 8, DepthSize: 24})
	want := []int32{
		0x3040, 0x0040,
		0x3033, 0x0004,
		0x3022, 8,
		0x3023, 8,
		0x3024, 8,
		0x3025, 24,
		0x3038,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("configAttribs mismatch (-want +got):\n%s", diff)
	}
}

func TestContextAttribs(t *testing.T) {
	if diff := cmp.Diff([]int32{0x3098, 3, 0x3038}, contextAttribs(3)); diff != "" {
		t.Errorf("contextAttribs mismatch (-want +got):\n%s", diff)
	}
}

// fakeEGL answers the bound entry points from memory so the Driver can be
// exercised without the system libraries.
type fakeEGL struct {
	lastErr   int32
	swapFails int32
	depths    []int32
	next      uintptr
}

func (f *fakeEGL) handle() uintptr {
	f.next++
	return f.next
}

func (f *fakeEGL) driver() *Driver {
	return &Driver{api: api{
		getDisplay: func(uintptr) uintptr { return f.handle() },
		initialize: func(_ uintptr, major, minor *int32) uint32 {
			*major, *minor = 1, 5
			return 1
		},
		chooseConfig: func(_ uintptr, attribs *int32, cfg *uintptr, _ int32, n *int32) uint32 {
			// depth value sits at index 11 of the attribute list
			a := unsafe.Slice(attribs, 13)
			f.depths = append(f.depths, a[11])
			if a[11] == 24 {
				*n = 0
				return 1
			}
			*cfg = f.handle()
			*n = 1
			return 1
		},
		createWindowSurface: func(_, _, win uintptr, _ *int32) uintptr {
			if win == 0 {
				f.lastErr = int32(surface.BadNativeWindow)
				return 0
			}
			return f.handle()
		},
		querySurface: func(_, _ uintptr, attr int32, v *int32) uint32 {
			switch attr {
			case eglWidth:
				*v = 640
			case eglHeight:
				*v = 480
			}
			return 1
		},
		createContext:  func(_, _, _ uintptr, _ *int32) uintptr { return f.handle() },
		makeCurrent:    func(_, _, _, _ uintptr) uint32 { return 1 },
		destroySurface: func(_, _ uintptr) uint32 { return 1 },
		destroyContext: func(_, _ uintptr) uint32 { return 1 },
		terminate:      func(uintptr) uint32 { return 1 },
		swapBuffers: func(_, _ uintptr) uint32 {
			if f.swapFails != 0 {
				f.lastErr, f.swapFails = f.swapFails, 0
				return 0
			}
			return 1
		},
		getError: func() int32 {
			e := f.lastErr
			f.lastErr = int32(surface.Success)
			return e
		},
		glGetString: func(name uint32) string {
			if surface.StringName(name) == surface.StringVersion {
				return "OpenGL ES 3.1 fake"
			}
			return "GL_OES_depth24"
		},
	}}
}

func TestDriverWithContext(t *testing.T) {
	f := &fakeEGL{}
	c := surface.New(f.driver())

	if err := c.Init(7); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if diff := cmp.Diff([]int32{24, 16}, f.depths); diff != "" {
		t.Errorf("requested depths mismatch (-want +got):\n%s", diff)
	}
	if c.Width() != 640 || c.Height() != 480 || !c.HasGLES3() {
		t.Errorf("size %dx%d gles3=%v", c.Width(), c.Height(), c.HasGLES3())
	}
	if !c.CheckExtension("GL_OES_depth24") {
		t.Error("extension not reported")
	}

	f.swapFails = int32(surface.BadSurface)
	if got := c.Swap(); got != surface.Success {
		t.Errorf("Swap() after surface loss = %v, want success", got)
	}
	f.swapFails = int32(surface.ContextLost)
	if got := c.Swap(); got != surface.ContextLost {
		t.Errorf("Swap() after context loss = %v, want %v", got, surface.ContextLost)
	}
	if !c.ContextValid() {
		t.Error("context not rebuilt")
	}
}

func TestDriverCreateSurfaceError(t *testing.T) {
	f := &fakeEGL{}
	d := f.driver()
	s, code := d.CreateWindowSurface(1, 2, surface.NoWindow)
	if s != surface.NoSurface || code != surface.BadNativeWindow {
		t.Errorf("CreateWindowSurface = %d, %v", s, code)
	}
}

func TestDriverCloseIdempotent(t *testing.T) {
	calls := 0
	d := &Driver{close: func() error { calls++; return nil }}
	if err := d.Close(); err != nil {
		t.Fatal(err)
	}
	if err := d.Close(); err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Errorf("close calls = %d, want 1", calls)
	}
}
