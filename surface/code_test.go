package surface

import (
	"errors"
	"fmt"
	"testing"
)

func TestCodeString(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{Success, "success"},
		{BadSurface, "bad surface"},
		{ContextLost, "context lost"},
		{Code(0x3100), "code 0x3100"},
	}
	for _, tt := range tests {
		if got := tt.code.String(); got != tt.want {
			t.Errorf("Code(%#x).String() = %q, want %q", int32(tt.code), got, tt.want)
		}
	}
	if got := BadAlloc.Error(); got != "surface: bad alloc" {
		t.Errorf("Error() = %q", got)
	}
}

func TestCodeErr(t *testing.T) {
	if err := Success.Err(); err != nil {
		t.Errorf("Success.Err() = %v, want nil", err)
	}
	if err := BadMatch.Err(); !errors.Is(err, BadMatch) {
		t.Errorf("BadMatch.Err() = %v", err)
	}
}

func TestCodeIsContextLoss(t *testing.T) {
	for _, c := range []Code{ContextLost, BadContext} {
		if !c.IsContextLoss() {
			t.Errorf("%v.IsContextLoss() = false", c)
		}
	}
	for _, c := range []Code{Success, BadSurface, BadAlloc} {
		if c.IsContextLoss() {
			t.Errorf("%v.IsContextLoss() = true", c)
		}
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{"nil", nil, Success},
		{"code", BadSurface, BadSurface},
		{"wrapped code", fmt.Errorf("swap: %w", ContextLost), ContextLost},
		{"no display", fmt.Errorf("init: %w", ErrNoDisplay), BadDisplay},
		{"no config", ErrNoConfig, BadConfig},
		{"other", errors.New("boom"), NotInitialized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.want {
				t.Errorf("CodeOf(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestParseCode(t *testing.T) {
	tests := []struct {
		in   string
		want Code
		ok   bool
	}{
		{"context lost", ContextLost, true},
		{"context_lost", ContextLost, true},
		{"Bad-Surface", BadSurface, true},
		{"success", Success, true},
		{"explode", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseCode(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseCode(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
