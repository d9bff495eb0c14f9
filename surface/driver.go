package surface

// Opaque platform handles. The zero value of each means "none".
type (
	Display       uintptr
	Config        uintptr
	Surface       uintptr
	RenderContext uintptr
	Window        uintptr
)

const (
	NoDisplay Display       = 0
	NoConfig  Config        = 0
	NoSurface Surface       = 0
	NoContext RenderContext = 0
	NoWindow  Window        = 0
)

// ConfigRequest describes a pixel format.
type ConfigRequest struct {
	RedSize   int32
	GreenSize int32
	BlueSize  int32
	DepthSize int32
}

// DefaultConfigRequests prefers 8-bit color with a 24-bit depth buffer and
// falls back to a 16-bit depth buffer.
var DefaultConfigRequests = []ConfigRequest{
	{RedSize: 8, GreenSize: 8, BlueSize: 8, DepthSize: 24},
	{RedSize: 8, GreenSize: 8, BlueSize: 8, DepthSize: 16},
}

// StringName selects a driver string. Values match the GL enums.
type StringName uint32

const (
	StringVendor     StringName = 0x1F00
	StringRenderer   StringName = 0x1F01
	StringVersion    StringName = 0x1F02
	StringExtensions StringName = 0x1F03
)

// Driver is the platform graphics interface a Context is built on.
//
// Every create call has a matching destroy call. Passing NoSurface and
// NoContext to MakeCurrent releases the current binding.
type Driver interface {
	OpenDisplay() Display
	Initialize(d Display) Code
	ChooseConfig(d Display, req ConfigRequest) (Config, bool)
	CreateWindowSurface(d Display, c Config, w Window) (Surface, Code)
	QuerySurfaceSize(d Display, s Surface) (width, height int32)
	CreateContext(d Display, c Config, clientVersion int32) (RenderContext, Code)
	MakeCurrent(d Display, s Surface, ctx RenderContext) Code
	SwapBuffers(d Display, s Surface) Code
	DestroySurface(d Display, s Surface)
	DestroyContext(d Display, ctx RenderContext)
	Terminate(d Display)
	GetString(name StringName) string
}
