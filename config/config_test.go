package config

import (
	"context"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/gogpu/ruler"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestNew_DefaultValues(t *testing.T) {
	c, err := New().Config()
	require.NoError(t, err)

	assert.True(t, c.PointerShown)
	assert.False(t, c.Metric)
	assert.Equal(t, ruler.DefaultAccent, c.Accent)
	assert.Equal(t, ruler.Horizontal, c.Axis)
	assert.Equal(t, 0.0, c.DPI)
	assert.Equal(t, 1080, c.Width)
	assert.Equal(t, 320, c.Height)
	assert.Equal(t, language.English, c.Locale)
	assert.Equal(t, slog.LevelWarn, c.LogLevel)
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ruler.yaml")
	writeFile(t, path, `
ruler_show_pointer: false
ruler_is_metric: true
ruler_color: "#3F51B5"
axis: vertical
dpi: 441
width: 400
height: 2000
locale: de
logLevel: debug
`)

	s := New()
	require.NoError(t, s.Load(path))
	assert.Equal(t, path, s.Path())

	c, err := s.Config()
	require.NoError(t, err)
	assert.False(t, c.PointerShown)
	assert.True(t, c.Metric)
	assert.Equal(t, ruler.Metric, c.UnitSystem())
	assert.Equal(t, color.NRGBA{R: 0x3F, G: 0x51, B: 0xB5, A: 0xFF}, c.Accent)
	assert.Equal(t, ruler.Vertical, c.Axis)
	assert.Equal(t, 441.0, c.DPI)
	assert.Equal(t, 400, c.Width)
	assert.Equal(t, 2000, c.Height)
	assert.Equal(t, language.German, c.Locale)
	assert.Equal(t, slog.LevelDebug, c.LogLevel)
}

func TestLoad_MissingFileKeepsDefaults(t *testing.T) {
	s := New()
	require.NoError(t, s.Load(filepath.Join(t.TempDir(), "absent.json")))

	c, err := s.Config()
	require.NoError(t, err)
	assert.True(t, c.PointerShown)
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ruler.json")
	writeFile(t, path, `{"dpi": `)

	err := New().Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: read")
}

func TestConfig_ColorAsPackedInteger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ruler.json")
	writeFile(t, path, `{"ruler_color": 4294918273}`)

	s := New()
	require.NoError(t, s.Load(path))
	c, err := s.Config()
	require.NoError(t, err)
	assert.Equal(t, ruler.DefaultAccent, c.Accent)
}

func TestConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		key   string
		value any
	}{
		{KeyAxis, "diagonal"},
		{KeyLocale, "not a locale!"},
		{KeyColor, "chartreuse"},
		{KeyLogLevel, "loud"},
		{KeyDPI, -1},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			s := New()
			s.Set(tt.key, tt.value)
			_, err := s.Config()
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestConfig_EnvOverride(t *testing.T) {
	t.Setenv("RULER_DPI", "220")
	t.Setenv("RULER_RULER_IS_METRIC", "true")

	c, err := New().Config()
	require.NoError(t, err)
	assert.Equal(t, 220.0, c.DPI)
	assert.True(t, c.Metric)
}

func TestParseAxis(t *testing.T) {
	a, err := ParseAxis(" Vertical ")
	require.NoError(t, err)
	assert.Equal(t, ruler.Vertical, a)

	a, err = ParseAxis("")
	require.NoError(t, err)
	assert.Equal(t, ruler.Horizontal, a)
}

func TestPersistAndSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ruler.yaml")
	s := New()
	require.NoError(t, s.Load(path))

	blue := color.NRGBA{B: 255, A: 255}
	r := ruler.New(ruler.WithOnChange(s.Persist))
	r.ToggleUnit()
	r.SetPointerVisible(false)
	r.SetAccentColor(blue)
	require.NoError(t, s.Save())

	reloaded := New()
	require.NoError(t, reloaded.Load(path))
	c, err := reloaded.Config()
	require.NoError(t, err)
	assert.True(t, c.Metric)
	assert.False(t, c.PointerShown)
	assert.Equal(t, blue, c.Accent)
}

func TestSave_NoPath(t *testing.T) {
	assert.Error(t, New().Save())
}

func TestOptions(t *testing.T) {
	c := Config{
		PointerShown: false,
		Metric:       true,
		Accent:       ruler.White,
		Axis:         ruler.Vertical,
		DPI:          200,
		Locale:       language.English,
	}
	r := ruler.New(c.Options()...)
	assert.Equal(t, ruler.Vertical, r.Axis())
	assert.Equal(t, ruler.Metric, r.UnitSystem())
	assert.False(t, r.PointerVisible())
	assert.Equal(t, ruler.White, r.AccentColor())

	_, ok := r.Frame(100, 400)
	assert.True(t, ok, "configured density should calibrate")

	c.DPI = 0
	_, ok = ruler.New(c.Options()...).Frame(100, 400)
	assert.False(t, ok, "no density configured")
}

func TestApply(t *testing.T) {
	r := ruler.New()
	Apply(r, Config{PointerShown: false, Metric: true, Accent: ruler.White})

	assert.Equal(t, ruler.Metric, r.UnitSystem())
	assert.True(t, r.Animating())
	r.Step(ruler.AnimationDuration)
	assert.False(t, r.PointerVisible())
	assert.Equal(t, ruler.White, r.AccentColor())
}

func TestApply_HiddenDuringFadeOut(t *testing.T) {
	r := ruler.New()
	r.AnimatedTogglePointer()
	r.Step(ruler.AnimationDuration / 4)
	require.True(t, r.PointerVisible())

	Apply(r, Config{PointerShown: false, Accent: ruler.DefaultAccent})
	r.Step(ruler.AnimationDuration)
	assert.False(t, r.PointerVisible())
	assert.Equal(t, uint8(0), r.PointerAlpha())
}

func TestWatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ruler.json")
	writeFile(t, path, `{"ruler_is_metric": false}`)

	s := New()
	require.NoError(t, s.Load(path))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	got := make(chan Config, 4)
	s.Watch(ctx, func(c Config) { got <- c })

	writeFile(t, path, `{"ruler_is_metric": true}`)

	select {
	case c := <-got:
		assert.True(t, c.Metric)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload observed")
	}
}

func TestBindFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ruler.json")
	writeFile(t, path, `{"dpi": 300, "width": 640}`)

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Float64("dpi", 0, "")
	fs.Int("width", 1080, "")
	fs.Bool("metric", false, "")
	require.NoError(t, fs.Parse([]string{"--dpi=96", "--metric"}))

	s := New()
	require.NoError(t, s.BindFlags(fs))
	require.NoError(t, s.Load(path))

	c, err := s.Config()
	require.NoError(t, err)
	assert.Equal(t, 96.0, c.DPI, "set flag overrides the file")
	assert.Equal(t, 640, c.Width, "unset flag leaves the file value")
	assert.True(t, c.Metric)
}
