package win

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// RunConfig configures a Window.
type RunConfig struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	// TPS is the fixed tick rate that drives input and the scheduler.
	TPS        int   `toml:"tps"`
	Background Color `toml:"background"`
	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string `toml:"screenshot_dir"`
	ShowFPS       bool   `toml:"show_fps"`
	Debug         bool   `toml:"debug"`
}

const (
	defaultWidth         = 1080
	defaultHeight        = 720
	defaultTPS           = 30
	defaultScreenshotDir = "screenshots"
)

// withDefaults fills zero fields.
func (c RunConfig) withDefaults() RunConfig {
	if c.Width <= 0 {
		c.Width = defaultWidth
	}
	if c.Height <= 0 {
		c.Height = defaultHeight
	}
	if c.TPS <= 0 {
		c.TPS = defaultTPS
	}
	if c.Background.isZero() {
		c.Background = ColorWhite
	}
	if c.ScreenshotDir == "" {
		c.ScreenshotDir = defaultScreenshotDir
	}
	return c
}

// LoadConfig reads a RunConfig from a TOML file. Keys left out keep their
// defaults.
func LoadConfig(path string) (RunConfig, error) {
	var cfg RunConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return RunConfig{}, fmt.Errorf("win: load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return RunConfig{}, fmt.Errorf("win: load config %s: unknown key %q", path, undecoded[0].String())
	}
	return cfg.withDefaults(), nil
}
