package nativeshell

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/phanxgames/nativeshell/gesture"
	"github.com/phanxgames/nativeshell/internal/logging"
)

// Config holds the settings of a shell process. It is usually read from a
// TOML file:
//
//	title = "gestures"
//	width = 960
//	height = 540
//	density = 320.0
//	arbitration = "first"
//	log_level = "debug"
//	asset_dir = "assets"
//	run_unfocused = true
type Config struct {
	// Title is the window title on desktop hosts.
	Title string `toml:"title"`
	// Width and Height are the initial window size in pixels.
	Width  int `toml:"width"`
	Height int `toml:"height"`
	// Density is the display density in dots per inch. Hosts that know the
	// real value override it. Zero means 160.
	Density float32 `toml:"density"`
	// Arbitration is "first" or "compat"; see gesture.Arbitration.
	Arbitration string `toml:"arbitration"`
	// LogLevel is "debug", "info", "warn", "error" or "off".
	LogLevel string `toml:"log_level"`
	// AssetDir is handed to the renderer as an fs.FS. Empty means none.
	AssetDir string `toml:"asset_dir"`
	// RunUnfocused keeps drawing while the window has no focus.
	RunUnfocused bool `toml:"run_unfocused"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Title:       "nativeshell",
		Width:       960,
		Height:      540,
		Density:     gesture.BaselineDensity,
		Arbitration: gesture.ArbitrateFirst.String(),
		LogLevel:    "off",
	}
}

// LoadConfig reads a TOML file on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := checkUndecoded(md); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// DecodeConfig parses TOML text on top of DefaultConfig.
func DecodeConfig(data string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := checkUndecoded(md); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, cfg.Validate()
}

// WriteConfig encodes cfg as TOML.
func WriteConfig(w io.Writer, cfg Config) error {
	return toml.NewEncoder(w).Encode(cfg)
}

func checkUndecoded(md toml.MetaData) error {
	keys := md.Undecoded()
	if len(keys) == 0 {
		return nil
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	return fmt.Errorf("unknown keys: %s", strings.Join(names, ", "))
}

// Validate reports every invalid field.
func (c Config) Validate() error {
	var errs []error
	if c.Width < 0 || c.Height < 0 {
		errs = append(errs, fmt.Errorf("invalid window size %dx%d", c.Width, c.Height))
	}
	if c.Density < 0 {
		errs = append(errs, fmt.Errorf("invalid density %v", c.Density))
	}
	if _, ok := gesture.ParseArbitration(c.Arbitration); !ok {
		errs = append(errs, fmt.Errorf("unknown arbitration %q", c.Arbitration))
	}
	if _, _, err := parseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Configuration returns the gesture configuration for Density.
func (c Config) Configuration() gesture.Configuration {
	return gesture.Configuration{Density: c.Density}
}

// ArbitrationMode returns the parsed Arbitration. Unknown values fall back
// to gesture.ArbitrateFirst.
func (c Config) ArbitrationMode() gesture.Arbitration {
	a, _ := gesture.ParseArbitration(c.Arbitration)
	return a
}

// NewLogger builds a text logger writing to w at LogLevel. "off" and the
// empty string yield a logger that discards everything.
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	level, on, err := parseLevel(c.LogLevel)
	if err != nil || !on {
		return logging.NewNop()
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func parseLevel(s string) (level slog.Level, on bool, err error) {
	switch strings.ToLower(s) {
	case "", "off", "none":
		return 0, false, nil
	}
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, false, fmt.Errorf("unknown log level %q", s)
	}
	return level, true, nil
}
