// Package config persists ruler preferences and host settings with viper.
//
// The three user preferences use the keys ruler_show_pointer,
// ruler_is_metric and ruler_color. Host settings (display density, axis,
// surface size, locale, log level) live next to them. Every key can be
// overridden from the environment with the RULER_ prefix, for example
// RULER_DPI=220.
package config

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"log/slog"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/text/language"

	"github.com/gogpu/ruler"
)

// Keys.
const (
	KeyPointerShown = "ruler_show_pointer"
	KeyMetric       = "ruler_is_metric"
	KeyColor        = "ruler_color"

	KeyAxis     = "axis"
	KeyDPI      = "dpi"
	KeyWidth    = "width"
	KeyHeight   = "height"
	KeyLocale   = "locale"
	KeyLogLevel = "logLevel"
)

// EnvPrefix prefixes environment overrides.
const EnvPrefix = "RULER"

// ErrInvalid is returned when a stored value cannot be interpreted.
var ErrInvalid = errors.New("config: invalid value")

// Config is the decoded configuration.
type Config struct {
	PointerShown bool        `mapstructure:"ruler_show_pointer"`
	Metric       bool        `mapstructure:"ruler_is_metric"`
	Accent       color.NRGBA `mapstructure:"-"`

	Axis     ruler.Axis   `mapstructure:"-"`
	DPI      float64      `mapstructure:"dpi"`
	Width    int          `mapstructure:"width"`
	Height   int          `mapstructure:"height"`
	Locale   language.Tag `mapstructure:"-"`
	LogLevel slog.Level   `mapstructure:"-"`
}

// UnitSystem returns the configured unit system.
func (c Config) UnitSystem() ruler.UnitSystem {
	if c.Metric {
		return ruler.Metric
	}
	return ruler.Imperial
}

// Options returns the ruler options for c. The display is only attached
// when a density is configured.
func (c Config) Options() []ruler.Option {
	opts := []ruler.Option{
		ruler.WithAxis(c.Axis),
		ruler.WithUnitSystem(c.UnitSystem()),
		ruler.WithPointerVisible(c.PointerShown),
		ruler.WithAccentColor(c.Accent),
		ruler.WithLocale(c.Locale),
	}
	if c.DPI > 0 {
		opts = append(opts, ruler.WithDisplay(ruler.UniformDisplay(c.DPI)))
	}
	return opts
}

// Store is a viper-backed configuration file.
type Store struct {
	mu   sync.Mutex
	v    *viper.Viper
	path string
}

// New returns a store holding the defaults and environment overrides.
func New() *Store {
	v := viper.New()

	v.SetDefault(KeyPointerShown, true)
	v.SetDefault(KeyMetric, false)
	v.SetDefault(KeyColor, ruler.FormatHex(ruler.DefaultAccent))

	v.SetDefault(KeyAxis, ruler.Horizontal.String())
	v.SetDefault(KeyDPI, 0.0)
	v.SetDefault(KeyWidth, 1080)
	v.SetDefault(KeyHeight, 320)
	v.SetDefault(KeyLocale, "en")
	v.SetDefault(KeyLogLevel, "warn")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Store{v: v}
}

// Load reads path into the store. A missing file is not an error: the
// store keeps its defaults and Save creates the file.
func (s *Store) Load(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.path = path
	s.v.SetConfigFile(path)
	if err := s.v.ReadInConfig(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			ruler.Logger().Debug("config: no file, using defaults", "path", path)
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	ruler.Logger().Debug("config: loaded", "path", path)
	return nil
}

// Path returns the file the store was loaded from.
func (s *Store) Path() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.path
}

// Set overrides key for the lifetime of the store.
func (s *Store) Set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.Set(key, value)
}

// FlagKeys maps command line flag names to configuration keys.
var FlagKeys = map[string]string{
	"pointer":   KeyPointerShown,
	"metric":    KeyMetric,
	"color":     KeyColor,
	"axis":      KeyAxis,
	"dpi":       KeyDPI,
	"width":     KeyWidth,
	"height":    KeyHeight,
	"locale":    KeyLocale,
	"log-level": KeyLogLevel,
}

// BindFlags lets the flags of fs named in FlagKeys override the file and
// the environment when they are set on the command line.
func (s *Store) BindFlags(fs *pflag.FlagSet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for name, key := range FlagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := s.v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("config: bind flag %s: %w", name, err)
		}
	}
	return nil
}

// Config decodes the current values.
func (s *Store) Config() (Config, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return decode(s.v)
}

func decode(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	var err error
	if c.Accent, err = parseColor(v.Get(KeyColor)); err != nil {
		return Config{}, err
	}
	if c.Axis, err = ParseAxis(v.GetString(KeyAxis)); err != nil {
		return Config{}, err
	}
	if c.Locale, err = language.Parse(v.GetString(KeyLocale)); err != nil {
		return Config{}, fmt.Errorf("%w: %s: %w", ErrInvalid, KeyLocale, err)
	}
	if err = c.LogLevel.UnmarshalText([]byte(v.GetString(KeyLogLevel))); err != nil {
		return Config{}, fmt.Errorf("%w: %s: %w", ErrInvalid, KeyLogLevel, err)
	}
	if c.DPI < 0 {
		return Config{}, fmt.Errorf("%w: %s=%v", ErrInvalid, KeyDPI, c.DPI)
	}
	return c, nil
}

// parseColor accepts a hex string or a packed 0xAARRGGBB integer.
func parseColor(raw any) (color.NRGBA, error) {
	if s, ok := raw.(string); ok {
		if c, err := ruler.ParseHex(s); err == nil {
			return c, nil
		}
	}
	n, err := cast.ToInt64E(raw)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %s=%v", ErrInvalid, KeyColor, raw)
	}
	return ruler.ColorFromARGB(uint32(n)), nil
}

// ParseAxis parses "horizontal" or "vertical".
func ParseAxis(s string) (ruler.Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", ruler.Horizontal.String():
		return ruler.Horizontal, nil
	case ruler.Vertical.String():
		return ruler.Vertical, nil
	default:
		return ruler.Horizontal, fmt.Errorf("%w: %s=%q", ErrInvalid, KeyAxis, s)
	}
}

// Persist records a preference change. Save writes it to disk.
func (s *Store) Persist(c ruler.Change) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch c.Pref {
	case ruler.PrefPointerShown:
		s.v.Set(KeyPointerShown, c.Prefs.PointerShown)
	case ruler.PrefMetric:
		s.v.Set(KeyMetric, c.Prefs.Metric)
	case ruler.PrefAccentColor:
		s.v.Set(KeyColor, ruler.FormatHex(c.Prefs.Accent))
	}
}

// Save writes the current values to the loaded path.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.path == "" {
		return fmt.Errorf("config: save: no path loaded")
	}
	if err := s.v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("config: save %s: %w", s.path, err)
	}
	return nil
}

// Watch calls fn with the decoded configuration each time the loaded file
// changes, until ctx is done. fn runs on the watcher goroutine; hosts must
// hand the value to their UI thread before touching a ruler.
func (s *Store) Watch(ctx context.Context, fn func(Config)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.v.OnConfigChange(func(e fsnotify.Event) {
		if ctx.Err() != nil || !e.Has(fsnotify.Write|fsnotify.Create) {
			return
		}
		s.mu.Lock()
		c, err := decode(s.v)
		s.mu.Unlock()
		if err != nil {
			ruler.Logger().Warn("config: ignoring invalid reload", "path", e.Name, "err", err)
			return
		}
		ruler.Logger().Info("config: reloaded", "path", e.Name)
		fn(c)
	})
	s.v.WatchConfig()
}

// Apply moves r to the preferences in c. The accent color is animated;
// unit system and pointer visibility change at once.
func Apply(r *ruler.Ruler, c Config) {
	r.SetUnitSystem(c.UnitSystem())
	if r.PointerVisible() != c.PointerShown {
		r.AnimatedTogglePointer()
	}
	if r.AccentColor() != c.Accent {
		r.AnimatedSetAccentColor(c.Accent)
	}
}
