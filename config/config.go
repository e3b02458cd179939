package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/lixenwraith/parallax/background"
	"github.com/lixenwraith/parallax/logging"
	"github.com/lixenwraith/parallax/parameter"
	"github.com/lixenwraith/parallax/render"
)

// Host names accepted by display.host
const (
	HostTerminal = "terminal"
	HostWindow   = "window"
)

// Config is the resolved application configuration
type Config struct {
	Background background.Config `mapstructure:"-"`
	Display    DisplayConfig     `mapstructure:"display"`
	Log        LogConfig         `mapstructure:"log"`
}

// DisplayConfig selects and sizes the host
type DisplayConfig struct {
	Host        string        `mapstructure:"host"`
	FrameBudget time.Duration `mapstructure:"frameBudget"`
	Width       int           `mapstructure:"width"`
	Height      int           `mapstructure:"height"`
	Title       string        `mapstructure:"title"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Debug bool   `mapstructure:"debug"`
	Dir   string `mapstructure:"dir"`
}

// tint is the file form of a palette entry
type tint struct {
	Inner string `mapstructure:"inner"`
	Outer string `mapstructure:"outer"`
}

// flagKeys maps command-line flag names onto config keys
var flagKeys = map[string]string{
	"variant": "background.variant",
	"stars":   "background.starCount",
	"blobs":   "background.blobCount",
	"resize":  "background.resizePolicy",
	"seed":    "background.seed",
	"host":    "display.host",
	"width":   "display.width",
	"height":  "display.height",
	"debug":   "log.debug",
}

// Load reads configuration from file, environment (PARALLAX_*) and flags, in rising precedence
// Background knobs left unset fall back to the chosen variant's defaults
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault("background.variant", string(background.VariantStarfield))
	v.SetDefault("background.resizePolicy", string(background.ResizeReset))
	v.SetDefault("display.host", HostTerminal)
	v.SetDefault("display.frameBudget", parameter.FrameBudget)
	v.SetDefault("display.width", 1280)
	v.SetDefault("display.height", 720)
	v.SetDefault("display.title", "parallax")
	v.SetDefault("log.debug", false)
	v.SetDefault("log.dir", logging.DefaultDir)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("PARALLAX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	bg, err := backgroundConfig(v)
	if err != nil {
		return nil, err
	}
	cfg.Background = bg

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// backgroundConfig overlays explicitly set keys on the variant defaults
func backgroundConfig(v *viper.Viper) (background.Config, error) {
	variant, err := background.ParseVariant(v.GetString("background.variant"))
	if err != nil {
		return background.Config{}, err
	}
	cfg := background.DefaultConfig(variant)

	policy, err := background.ParseResizePolicy(v.GetString("background.resizePolicy"))
	if err != nil {
		return background.Config{}, err
	}
	cfg.ResizePolicy = policy

	if v.IsSet("background.starCount") {
		cfg.StarCount = v.GetInt("background.starCount")
	}
	if v.IsSet("background.blobCount") {
		cfg.BlobCount = v.GetInt("background.blobCount")
	}
	if v.IsSet("background.focalLength") {
		cfg.FocalLength = v.GetFloat64("background.focalLength")
	}
	if v.IsSet("background.starSpeed") {
		cfg.StarSpeed = v.GetFloat64("background.starSpeed")
	}
	if v.IsSet("background.starRadiusMin") {
		cfg.StarRadius[0] = v.GetFloat64("background.starRadiusMin")
	}
	if v.IsSet("background.starRadiusMax") {
		cfg.StarRadius[1] = v.GetFloat64("background.starRadiusMax")
	}
	if v.IsSet("background.seed") {
		cfg.Seed = v.GetUint64("background.seed")
	}

	if v.IsSet("background.clearColor") {
		c, err := render.ParseHex(v.GetString("background.clearColor"))
		if err != nil {
			return background.Config{}, fmt.Errorf("background.clearColor: %w", err)
		}
		cfg.ClearColor = c
	}

	if v.IsSet("background.palette") {
		var raw []tint
		if err := v.UnmarshalKey("background.palette", &raw); err != nil {
			return background.Config{}, fmt.Errorf("background.palette: %w", err)
		}
		palette := make([]background.Tint, 0, len(raw))
		for i, t := range raw {
			inner, err := render.ParseHex(t.Inner)
			if err != nil {
				return background.Config{}, fmt.Errorf("background.palette[%d].inner: %w", i, err)
			}
			outer, err := render.ParseHex(t.Outer)
			if err != nil {
				return background.Config{}, fmt.Errorf("background.palette[%d].outer: %w", i, err)
			}
			palette = append(palette, background.Tint{Inner: inner, Outer: outer})
		}
		cfg.Palette = palette
	}

	if err := cfg.Validate(); err != nil {
		return background.Config{}, fmt.Errorf("background: %w", err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Display.Host {
	case HostTerminal, HostWindow:
	default:
		return fmt.Errorf("display.host: unknown host %q (use %s or %s)", c.Display.Host, HostTerminal, HostWindow)
	}
	if c.Display.FrameBudget <= 0 {
		return fmt.Errorf("display.frameBudget must be > 0, got %s", c.Display.FrameBudget)
	}
	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		return fmt.Errorf("display size must be positive, got %dx%d", c.Display.Width, c.Display.Height)
	}
	return nil
}
