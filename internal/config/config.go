// Package config provides configuration loading and validation for the progress bar demo.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"waterbar/internal/compose"
	"waterbar/internal/feed"
	"waterbar/internal/loop"
)

// Config represents the application configuration.
type Config struct {
	Bar    BarConfig    `yaml:"bar"`
	Render RenderConfig `yaml:"render"`
	Feed   FeedConfig   `yaml:"feed"`
	Log    LogConfig    `yaml:"log"`
}

// BarConfig contains the bar's colours, label and animation speeds.
type BarConfig struct {
	Background     string  `yaml:"background"`
	Foreground     string  `yaml:"foreground"`
	Indicator      string  `yaml:"indicator"`
	PrepareText    string  `yaml:"prepare_text"`
	WaterSpeed     float64 `yaml:"water_speed"`
	DegreePerFrame int     `yaml:"degree_per_frame"`
	SpreadPerFrame float64 `yaml:"spread_per_frame"`
}

// RenderConfig selects the host surface and the frame pacing.
type RenderConfig struct {
	Host    string `yaml:"host"`
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	FrameMS int    `yaml:"frame_ms"`
	SpinUS  int    `yaml:"spin_us"`
	Quiet   bool   `yaml:"quiet"` // no run summary on exit
}

// FeedConfig contains the demo progress feed timing.
type FeedConfig struct {
	IntervalMS     int `yaml:"interval_ms"`
	PrepareDelayMS int `yaml:"prepare_delay_ms"`
}

// LogConfig contains debug log settings.
type LogConfig struct {
	Debug bool   `yaml:"debug"`
	File  string `yaml:"file"`
}

// Host names accepted by render.host.
const (
	HostANSI  = "ansi"
	HostTcell = "tcell"
)

// DefaultConfigPath is the default path to look for the configuration file.
const DefaultConfigPath = "config.yaml"

// xdgConfigPath is the config file path relative to the XDG config dirs.
var xdgConfigPath = filepath.Join("waterbar", "config.yaml")

// Default values for optional configuration fields.
const (
	DefaultBackground     = "#ffccff"
	DefaultForeground     = "#ff3366"
	DefaultIndicator      = "#ffffff"
	DefaultPrepareText    = "下载"
	DefaultHost           = HostANSI
	DefaultWidth          = 160
	DefaultHeight         = 40
	DefaultFrameMS        = 30
	DefaultSpinUS         = 1000
	DefaultIntervalMS     = 300
	DefaultPrepareDelayMS = 1000
	DefaultLogFile        = "logs/waterbar.log"
)

// Load reads and parses the configuration from the specified file path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply defaults for optional fields
	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadDefault loads config.yaml from the working directory, then from the
// XDG config dirs. Without either it returns the defaults.
func LoadDefault() (*Config, error) {
	if _, err := os.Stat(DefaultConfigPath); err == nil {
		return Load(DefaultConfigPath)
	}
	if path, err := xdg.SearchConfigFile(xdgConfigPath); err == nil {
		return Load(path)
	}
	return Default(), nil
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

// applyDefaults sets default values for optional configuration fields.
func (c *Config) applyDefaults() {
	if c.Bar.Background == "" {
		c.Bar.Background = DefaultBackground
	}
	if c.Bar.Foreground == "" {
		c.Bar.Foreground = DefaultForeground
	}
	if c.Bar.Indicator == "" {
		c.Bar.Indicator = DefaultIndicator
	}
	if c.Bar.PrepareText == "" {
		c.Bar.PrepareText = DefaultPrepareText
	}
	if c.Bar.WaterSpeed == 0 {
		c.Bar.WaterSpeed = compose.DefaultWaterSpeed
	}
	if c.Bar.DegreePerFrame == 0 {
		c.Bar.DegreePerFrame = compose.DefaultDegreePerFrame
	}
	if c.Bar.SpreadPerFrame == 0 {
		c.Bar.SpreadPerFrame = compose.DefaultSpreadPerFrame
	}

	if c.Render.Host == "" {
		c.Render.Host = DefaultHost
	}
	if c.Render.Width == 0 {
		c.Render.Width = DefaultWidth
	}
	if c.Render.Height == 0 {
		c.Render.Height = DefaultHeight
	}
	if c.Render.FrameMS == 0 {
		c.Render.FrameMS = DefaultFrameMS
	}
	if c.Render.SpinUS == 0 {
		c.Render.SpinUS = DefaultSpinUS
	}

	if c.Feed.IntervalMS == 0 {
		c.Feed.IntervalMS = DefaultIntervalMS
	}
	if c.Feed.PrepareDelayMS == 0 {
		c.Feed.PrepareDelayMS = DefaultPrepareDelayMS
	}

	if c.Log.File == "" {
		c.Log.File = DefaultLogFile
	}
}

// validate checks that every field holds a usable value.
func (c *Config) validate() error {
	var errs []error
	for _, field := range []struct{ name, hex string }{
		{"bar.background", c.Bar.Background},
		{"bar.foreground", c.Bar.Foreground},
		{"bar.indicator", c.Bar.Indicator},
	} {
		if _, err := colorful.Hex(field.hex); err != nil {
			errs = append(errs, fmt.Errorf("%s: invalid colour %q: %w", field.name, field.hex, err))
		}
	}
	if c.Bar.WaterSpeed < 0 || c.Bar.DegreePerFrame < 0 || c.Bar.SpreadPerFrame < 0 {
		errs = append(errs, errors.New("bar speeds must be positive"))
	}
	if c.Render.Host != HostANSI && c.Render.Host != HostTcell {
		errs = append(errs, fmt.Errorf("render.host must be %q or %q, got %q", HostANSI, HostTcell, c.Render.Host))
	}
	if c.Render.Width < 0 || c.Render.Height < 0 {
		errs = append(errs, errors.New("render.width and render.height must be positive"))
	}
	if c.Render.FrameMS < 0 || c.Render.SpinUS < 0 {
		errs = append(errs, errors.New("render.frame_ms and render.spin_us must be positive"))
	}
	if c.Feed.IntervalMS < 0 || c.Feed.PrepareDelayMS < 0 {
		errs = append(errs, errors.New("feed timings must be positive"))
	}
	return errors.Join(errs...)
}

// Style returns the bar style. Colours were checked by validate.
func (c *Config) Style() compose.Style {
	return compose.Style{
		Background:  parseHex(c.Bar.Background),
		Foreground:  parseHex(c.Bar.Foreground),
		Indicator:   parseHex(c.Bar.Indicator),
		PrepareText: c.Bar.PrepareText,
	}
}

// Params returns the bar's animation speeds.
func (c *Config) Params() compose.Params {
	return compose.Params{
		WaterSpeed:     c.Bar.WaterSpeed,
		DegreePerFrame: c.Bar.DegreePerFrame,
		SpreadPerFrame: c.Bar.SpreadPerFrame,
	}
}

// LoopOptions returns the render loop pacing.
func (c *Config) LoopOptions() []loop.Option {
	return []loop.Option{
		loop.WithFrameBudget(time.Duration(c.Render.FrameMS) * time.Millisecond),
		loop.WithSpinWindow(time.Duration(c.Render.SpinUS) * time.Microsecond),
	}
}

// Driver returns the demo feed.
func (c *Config) Driver() feed.Driver {
	return feed.Driver{
		Interval:     time.Duration(c.Feed.IntervalMS) * time.Millisecond,
		PrepareDelay: time.Duration(c.Feed.PrepareDelayMS) * time.Millisecond,
	}
}

func parseHex(s string) colorful.Color {
	col, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}
	}
	return col
}
