// Package cli provides the functions to parse the command line flags.
package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.creack.net/texquad/assets"
	"go.creack.net/texquad/camera"
)

// Defaults.
const (
	DefaultWidth  = 640
	DefaultHeight = 495
	DefaultTitle  = "Example (Mouse wheel to zoom)"
)

// Config is the runtime configuration of the demo.
type Config struct {
	Width, Height int
	Title         string
	TexturePath   string
	OrthoSize     float32
	MinOrthoSize  float32
}

// DefaultConfig returns the configuration used when no flag is given.
func DefaultConfig() Config {
	return Config{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		Title:       DefaultTitle,
		TexturePath: assets.DefaultTexturePath,
		OrthoSize:   camera.DefaultOrthoSize,
	}
}

func parseSize(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid size %q, expected <width>x<height>", s)
	}
	w, err := strconv.Atoi(ws)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid width in %q: %w", s, err)
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid height in %q: %w", s, err)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("invalid size %q, must be positive", s)
	}
	return w, h, nil
}

func parseFloat(name, s string) (float32, error) {
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s flag: %q", name, s)
	}
	return float32(f), nil
}

// Parse builds a Config from the given arguments, without the program name.
// Flags take their value either as the next argument or after '='.
func Parse(args []string) (Config, error) {
	cfg := DefaultConfig()

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") {
			return Config{}, fmt.Errorf("unexpected argument %q", arg)
		}

		name, value, hasValue := strings.Cut(strings.TrimLeft(arg, "-"), "=")
		if !hasValue {
			if i+1 >= len(args) {
				return Config{}, fmt.Errorf("missing value for -%s flag", name)
			}
			value = args[i+1]
			i++ // Skip the value.
		}

		switch name {
		case "asset":
			if value == "" {
				return Config{}, fmt.Errorf("empty asset path")
			}
			cfg.TexturePath = value
		case "size":
			w, h, err := parseSize(value)
			if err != nil {
				return Config{}, err
			}
			cfg.Width, cfg.Height = w, h
		case "title":
			cfg.Title = value
		case "zoom":
			f, err := parseFloat(name, value)
			if err != nil {
				return Config{}, err
			}
			if f == 0 {
				return Config{}, fmt.Errorf("invalid zoom %q, must not be zero", value)
			}
			cfg.OrthoSize = f
		case "min-zoom":
			f, err := parseFloat(name, value)
			if err != nil {
				return Config{}, err
			}
			if f < 0 {
				return Config{}, fmt.Errorf("invalid min-zoom %q, must not be negative", value)
			}
			cfg.MinOrthoSize = f
		default:
			return Config{}, fmt.Errorf("unknown flag %q", arg)
		}
	}

	return cfg, nil
}

// ParseConfig parses os.Args.
func ParseConfig() (Config, error) {
	cfg, err := Parse(os.Args[1:])
	if err != nil {
		return Config{}, fmt.Errorf("parse: %w", err)
	}
	return cfg, nil
}
