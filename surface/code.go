package surface

import (
	"errors"
	"fmt"
	"strings"
)

// Code is a platform status code. Values match the EGL error codes.
type Code int32

const (
	Success           Code = 0x3000
	NotInitialized    Code = 0x3001
	BadAccess         Code = 0x3002
	BadAlloc          Code = 0x3003
	BadAttribute      Code = 0x3004
	BadConfig         Code = 0x3005
	BadContext        Code = 0x3006
	BadCurrentSurface Code = 0x3007
	BadDisplay        Code = 0x3008
	BadMatch          Code = 0x3009
	BadNativePixmap   Code = 0x300A
	BadNativeWindow   Code = 0x300B
	BadParameter      Code = 0x300C
	BadSurface        Code = 0x300D
	ContextLost       Code = 0x300E
)

var codeNames = map[Code]string{
	Success:           "success",
	NotInitialized:    "not initialized",
	BadAccess:         "bad access",
	BadAlloc:          "bad alloc",
	BadAttribute:      "bad attribute",
	BadConfig:         "bad config",
	BadContext:        "bad context",
	BadCurrentSurface: "bad current surface",
	BadDisplay:        "bad display",
	BadMatch:          "bad match",
	BadNativePixmap:   "bad native pixmap",
	BadNativeWindow:   "bad native window",
	BadParameter:      "bad parameter",
	BadSurface:        "bad surface",
	ContextLost:       "context lost",
}

func (c Code) String() string {
	if s, ok := codeNames[c]; ok {
		return s
	}
	return fmt.Sprintf("code 0x%04x", int32(c))
}

func (c Code) Error() string {
	return "surface: " + c.String()
}

// Err returns nil for Success and c otherwise.
func (c Code) Err() error {
	if c == Success {
		return nil
	}
	return c
}

// IsContextLoss reports whether c means the rendering context is gone.
func (c Code) IsContextLoss() bool {
	return c == ContextLost || c == BadContext
}

var (
	// ErrNoDisplay is returned when the platform has no display connection.
	ErrNoDisplay = errors.New("surface: no display")
	// ErrNoConfig is returned when no pixel format satisfies any request.
	ErrNoConfig = errors.New("surface: no matching config")
)

// CodeOf extracts the platform code carried by err. Sentinel errors map to
// the closest code; nil maps to Success.
func CodeOf(err error) Code {
	if err == nil {
		return Success
	}
	var c Code
	if errors.As(err, &c) {
		return c
	}
	switch {
	case errors.Is(err, ErrNoDisplay):
		return BadDisplay
	case errors.Is(err, ErrNoConfig):
		return BadConfig
	}
	return NotInitialized
}

// ParseCode maps a code name such as "context lost" back to its Code.
// Underscores and dashes are accepted in place of spaces.
func ParseCode(s string) (Code, bool) {
	s = strings.ToLower(strings.NewReplacer("_", " ", "-", " ").Replace(s))
	for c, name := range codeNames {
		if name == s {
			return c, true
		}
	}
	return 0, false
}
