// Package config loads and persists the annotator's shell settings.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"

	"pose-annotator/internal/annotation"
	"pose-annotator/internal/logger"
)

const appDirName = "pose-annotator"

type Config struct {
	Log     LogConfig     `toml:"log"`
	Overlay OverlayConfig `toml:"overlay"`
	Window  WindowConfig  `toml:"window"`
	Dialogs DialogConfig  `toml:"dialogs"`

	path string
	// file holds the values read from disk, before environment and flag
	// overrides, so that Save does not persist them.
	file *Config
}

type LogConfig struct {
	Level string `toml:"level" validate:"oneof=debug info warn warning error"`
	JSON  bool   `toml:"json"`
	File  string `toml:"file"`
}

type OverlayConfig struct {
	PointRadius int    `toml:"point_radius" validate:"min=1,max=64"`
	PointColor  string `toml:"point_color" validate:"hexcolor"`
	LineWidth   int    `toml:"line_width" validate:"min=1,max=32"`
	LineColor   string `toml:"line_color" validate:"hexcolor"`
}

type WindowConfig struct {
	Width  float32 `toml:"width" validate:"gte=400"`
	Height float32 `toml:"height" validate:"gte=300"`
}

// DialogConfig remembers where the last file dialog was used so the next
// one opens there.
type DialogConfig struct {
	LastDirectory string `toml:"last_directory"`
}

func Default() *Config {
	return &Config{
		Log: LogConfig{Level: "info"},
		Overlay: OverlayConfig{
			PointRadius: 5,
			PointColor:  "#ff0000",
			LineWidth:   3,
			LineColor:   "#800000",
		},
		Window: WindowConfig{Width: 1200, Height: 800},
	}
}

// DefaultPath is $XDG_CONFIG_HOME/pose-annotator/config.toml or the
// platform equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	return filepath.Join(dir, appDirName, "config.toml"), nil
}

// Load reads path over the defaults, applies environment overrides and
// validates the result. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	cfg.path = path

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	file := *cfg
	cfg.file = &file

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("POSE_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("POSE_JSON_LOGS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Log.JSON = b
		}
	}
	if v := os.Getenv("POSE_LOG_FILE"); v != "" {
		c.Log.File = v
	}
	if v := os.Getenv("POSE_START_DIR"); v != "" {
		c.Dialogs.LastDirectory = v
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Save writes the config back to the file it was loaded from. Overrides
// from the environment or the command line are not written, except for the
// remembered dialog directory.
func (c *Config) Save() error {
	if c.path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(c.path)
	if err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	defer f.Close()

	out := *c
	if c.file != nil {
		out = *c.file
	}
	out.Dialogs = c.Dialogs

	if err := toml.NewEncoder(f).Encode(out); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

func (c *Config) Path() string {
	return c.path
}

func (c *Config) LoggerOptions() logger.Options {
	level, _ := logger.ParseLevel(c.Log.Level)
	return logger.Options{
		Level: level,
		JSON:  c.Log.JSON,
		File:  c.Log.File,
	}
}

// OverlayStyle converts the validated colour strings into a render style.
func (c *Config) OverlayStyle() annotation.Style {
	style := annotation.DefaultStyle()
	style.PointRadius = c.Overlay.PointRadius
	style.LineWidth = c.Overlay.LineWidth
	if rgba, err := parseHexColor(c.Overlay.PointColor); err == nil {
		style.PointColor = rgba
	}
	if rgba, err := parseHexColor(c.Overlay.LineColor); err == nil {
		style.LineColor = rgba
	}
	return style
}

func parseHexColor(s string) (color.RGBA, error) {
	var r, g, b uint8
	switch len(s) {
	case 7:
		_, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b)
		return color.RGBA{R: r, G: g, B: b, A: 255}, err
	case 4:
		_, err := fmt.Sscanf(s, "#%1x%1x%1x", &r, &g, &b)
		return color.RGBA{R: r * 17, G: g * 17, B: b * 17, A: 255}, err
	default:
		return color.RGBA{}, fmt.Errorf("invalid colour %q", s)
	}
}
