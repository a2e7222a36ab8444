package framework

import (
	"bytes"
	"flag"
	"io"
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/cogentcore/webgpu/wgpu"
	"gopkg.in/yaml.v3"
)

const (
	defaultWidth         = 1280
	defaultHeight        = 720
	defaultStatsInterval = 5 * time.Second
)

// Config controls the window, adapter selection and loop of a Run.
type Config struct {
	Title           string        `yaml:"title"`
	Width           int           `yaml:"width"`
	Height          int           `yaml:"height"`
	PowerPreference string        `yaml:"power_preference"`
	PresentMode     string        `yaml:"present_mode"`
	MaxFrames       uint64        `yaml:"max_frames"` // 0 runs until the window closes
	Debug           bool          `yaml:"debug"`
	StatsInterval   time.Duration `yaml:"stats_interval"`
}

func DefaultConfig(title string) Config {
	return Config{
		Title:           title,
		Width:           defaultWidth,
		Height:          defaultHeight,
		PowerPreference: "high",
		PresentMode:     "fifo",
		StatsInterval:   defaultStatsInterval,
	}
}

var presentModes = map[string]wgpu.PresentMode{
	"fifo":         wgpu.PresentModeFifo,
	"fifo-relaxed": wgpu.PresentModeFifoRelaxed,
	"immediate":    wgpu.PresentModeImmediate,
	"mailbox":      wgpu.PresentModeMailbox,
}

var powerPreferences = map[string]wgpu.PowerPreference{
	"high": wgpu.PowerPreferenceHighPerformance,
	"low":  wgpu.PowerPreferenceLowPower,
	"none": wgpu.PowerPreferenceUndefined,
}

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Newf("invalid window size %dx%d", c.Width, c.Height)
	}
	if _, ok := powerPreferences[c.PowerPreference]; !ok {
		return errors.Newf("unknown power preference %q", c.PowerPreference)
	}
	if _, ok := presentModes[c.PresentMode]; !ok {
		return errors.Newf("unknown present mode %q", c.PresentMode)
	}
	if c.StatsInterval < 0 {
		return errors.Newf("negative stats interval %s", c.StatsInterval)
	}
	return nil
}

func (c Config) WGPUPresentMode() wgpu.PresentMode {
	if m, ok := presentModes[c.PresentMode]; ok {
		return m
	}
	return wgpu.PresentModeFifo
}

func (c Config) WGPUPowerPreference() wgpu.PowerPreference {
	if p, ok := powerPreferences[c.PowerPreference]; ok {
		return p
	}
	return wgpu.PowerPreferenceHighPerformance
}

// LoadConfigFile overlays the YAML document at path onto cfg. Keys missing
// from the file keep their current value.
func LoadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "read config %s", path)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return errors.Wrapf(err, "parse config %s", path)
	}
	return nil
}

// ParseFlags builds a Config from defaults, an optional -config file and the
// flags set explicitly in args, in that order of precedence.
func ParseFlags(args []string, title string) (Config, error) {
	cfg := DefaultConfig(title)

	fs := flag.NewFlagSet(title, flag.ContinueOnError)
	configPath := fs.String("config", "", "YAML config file")
	width := fs.Int("width", cfg.Width, "Window width")
	height := fs.Int("height", cfg.Height, "Window height")
	power := fs.String("power", cfg.PowerPreference, "Adapter power preference (high, low, none)")
	present := fs.String("present-mode", cfg.PresentMode, "Present mode (fifo, fifo-relaxed, immediate, mailbox)")
	frames := fs.Uint64("frames", cfg.MaxFrames, "Exit after this many frames (0 = until closed)")
	debug := fs.Bool("debug", cfg.Debug, "Enable debug logging")
	stats := fs.Duration("stats", cfg.StatsInterval, "Frame stats logging interval (0 disables)")
	if err := fs.Parse(args); err != nil {
		return Config{}, errors.Wrap(err, "parse flags")
	}

	if *configPath != "" {
		if err := LoadConfigFile(*configPath, &cfg); err != nil {
			return Config{}, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "power":
			cfg.PowerPreference = *power
		case "present-mode":
			cfg.PresentMode = *present
		case "frames":
			cfg.MaxFrames = *frames
		case "debug":
			cfg.Debug = *debug
		case "stats":
			cfg.StatsInterval = *stats
		}
	})

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
