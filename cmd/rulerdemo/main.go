// Command rulerdemo renders a calibrated ruler to PNG.
//
// Settings come from an optional config file, RULER_* environment
// variables and flags, in increasing priority:
//
//	rulerdemo --dpi 441 --metric --pointer-at 300 -o ruler.png
//	rulerdemo --config ruler.yaml --frames 12 -o fade.png
//	rulerdemo --config ruler.yaml --watch
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/gogpu/gg"
	"github.com/gogpu/ruler"
	"github.com/gogpu/ruler/config"
	"github.com/gogpu/ruler/record"
)

// fallbackDPI is used when neither the config nor the flags set a density.
const fallbackDPI = 160

// frameInterval paces animations in watch mode.
const frameInterval = time.Second / 60

type demo struct {
	store  *config.Store
	cfg    config.Config
	ruler  *ruler.Ruler
	output string
	replay bool
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		log.Fatalf("rulerdemo: %v", err)
	}
}

func run(args []string) error {
	fs := pflag.NewFlagSet("rulerdemo", pflag.ContinueOnError)
	var (
		cfgPath   = fs.String("config", "", "config file (json, yaml or toml)")
		output    = fs.StringP("output", "o", "ruler.png", "output file")
		pointerAt = fs.Float64("pointer-at", -1, "move the pointer to this pixel offset")
		frames    = fs.Int("frames", 0, "also write this many frames of a pointer fade")
		replay    = fs.Bool("record", false, "render through a recording and raster playback (no labels)")
		watch     = fs.Bool("watch", false, "re-render whenever the config file changes")
		save      = fs.Bool("save", false, "write the effective preferences back to --config")
		verbose   = fs.BoolP("verbose", "v", false, "debug logging")
	)
	fs.Bool("pointer", true, "show the pointer")
	fs.Bool("metric", false, "metric graduation")
	fs.String("color", ruler.FormatHex(ruler.DefaultAccent), "accent color")
	fs.String("axis", "horizontal", "horizontal or vertical")
	fs.Float64("dpi", 0, fmt.Sprintf("display density (0 uses %d)", fallbackDPI))
	fs.Int("width", 1080, "image width")
	fs.Int("height", 320, "image height")
	fs.String("locale", "en", "measurement locale")
	fs.String("log-level", "warn", "log level")
	if err := fs.Parse(args); err != nil {
		return err
	}

	store := config.New()
	if err := store.BindFlags(fs); err != nil {
		return err
	}
	if *cfgPath != "" {
		if err := store.Load(*cfgPath); err != nil {
			return err
		}
	}
	cfg, err := store.Config()
	if err != nil {
		return err
	}
	if cfg.DPI == 0 {
		cfg.DPI = fallbackDPI
	}

	level := cfg.LogLevel
	if *verbose {
		level = slog.LevelDebug
	}
	ruler.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	d := &demo{store: store, cfg: cfg, output: *output, replay: *replay}
	d.ruler = ruler.New(append(cfg.Options(),
		ruler.WithOnChange(store.Persist),
		ruler.WithDiagnostics(func(err error) {
			log.Printf("rulerdemo: %v", err)
		}),
	)...)

	if *pointerAt >= 0 {
		d.ruler.Frame(cfg.Width, cfg.Height)
		d.ruler.OnInputAt(*pointerAt, *pointerAt)
	}
	if err := d.render(d.output); err != nil {
		return err
	}
	if label, ok := d.ruler.MeasurementLabel(); ok && d.ruler.PointerVisible() {
		log.Printf("Ruler saved to %s (%dx%d), pointer at %s %s", d.output, cfg.Width, cfg.Height, label, unitName(d.ruler.UnitSystem()))
	} else {
		log.Printf("Ruler saved to %s (%dx%d)", d.output, cfg.Width, cfg.Height)
	}

	if *frames > 0 {
		if err := d.fade(*frames); err != nil {
			return err
		}
	}
	if *save {
		if *cfgPath == "" {
			return errors.New("--save needs --config")
		}
		if err := store.Save(); err != nil {
			return err
		}
	}
	if *watch {
		if *cfgPath == "" {
			return errors.New("--watch needs --config")
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		return d.watch(ctx)
	}
	return nil
}

// render draws one frame into path.
func (d *demo) render(path string) error {
	w, h := d.cfg.Width, d.cfg.Height
	if d.replay {
		rec, err := record.Render(d.ruler, w, h)
		if err != nil {
			return err
		}
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if _, err := record.Export(rec, "raster", f); err != nil {
			_ = f.Close()
			return err
		}
		return f.Close()
	}

	dc := gg.NewContext(w, h)
	defer func() { _ = dc.Close() }()
	dc.ClearWithColor(gg.White)
	if err := d.ruler.Render(dc); err != nil {
		return err
	}
	return dc.SavePNG(path)
}

// fade toggles the pointer and writes n evenly spaced frames of the
// animation, ending on the final state.
func (d *demo) fade(n int) error {
	if !d.ruler.AnimatedTogglePointer() {
		return nil
	}
	ext := filepath.Ext(d.output)
	base := strings.TrimSuffix(d.output, ext)
	start := time.Now()
	for i := range n + 1 {
		d.ruler.Tick(start.Add(ruler.AnimationDuration * time.Duration(i) / time.Duration(n)))
		path := fmt.Sprintf("%s-%03d%s", base, i, ext)
		if err := d.render(path); err != nil {
			return err
		}
		ruler.Logger().Debug("rulerdemo: frame", "path", path, "alpha", d.ruler.PointerAlpha())
	}
	log.Printf("Wrote %d fade frames to %s-NNN%s", n+1, base, ext)
	return nil
}

// watch re-renders the output each time the config file changes until ctx
// is cancelled. Reloaded preferences are applied with animation.
func (d *demo) watch(ctx context.Context) error {
	updates := make(chan config.Config, 1)
	d.store.Watch(ctx, func(c config.Config) {
		select {
		case updates <- c:
		case <-ctx.Done():
		}
	})
	log.Printf("Watching %s", d.store.Path())

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case c := <-updates:
			c.DPI, c.Width, c.Height = d.cfg.DPI, d.cfg.Width, d.cfg.Height
			d.cfg = c
			config.Apply(d.ruler, c)
			if !d.ruler.Animating() {
				if err := d.render(d.output); err != nil {
					return err
				}
				log.Printf("Ruler updated in %s", d.output)
			}
		case now := <-ticker.C:
			if !d.ruler.Animating() {
				continue
			}
			if !d.ruler.Tick(now) {
				if err := d.render(d.output); err != nil {
					return err
				}
				log.Printf("Ruler updated in %s", d.output)
			}
		}
	}
}

func unitName(u ruler.UnitSystem) string {
	if u == ruler.Metric {
		return "cm"
	}
	return "in"
}
