package ruler

import (
	"bytes"
	"errors"
	"image/color"
	"log/slog"
	"slices"
	"strings"
	"testing"
	"time"
)

func TestRulerMeasurementImperial(t *testing.T) {
	r := New(WithDisplay(UniformDisplay(150)))
	s := newFakeSurface(300, 160)

	if err := r.Render(s); err != nil {
		t.Fatal(err)
	}
	if !r.OnInputAt(225, 40) {
		t.Fatal("input not consumed")
	}
	label, ok := r.MeasurementLabel()
	if !ok || label != "1.50" {
		t.Errorf("label = %q, %v; want 1.50", label, ok)
	}

	r.ToggleUnit()
	label, _ = r.MeasurementLabel()
	if label != "3.81" {
		t.Errorf("metric label = %q, want 3.81", label)
	}
}

func TestRulerRenderTicks(t *testing.T) {
	r := New(WithDisplay(UniformDisplay(150)), WithPointerVisible(false))
	s := newFakeSurface(300, 160)
	if err := r.Render(s); err != nil {
		t.Fatal(err)
	}
	if len(s.strokes) != 32 {
		t.Errorf("strokes = %d, want 32", len(s.strokes))
	}
	var labels []string
	for _, tx := range s.texts {
		labels = append(labels, tx.s)
	}
	if strings.Join(labels, ",") != "0,1" {
		t.Errorf("labels = %v", labels)
	}
}

func TestRulerPointerClampedToSurface(t *testing.T) {
	r := New(WithDisplay(UniformDisplay(150)))
	s := newFakeSurface(300, 160)
	_ = r.Render(s)

	r.OnInputAt(1000, 0)
	if got := r.PointerPosition(); got != 300 {
		t.Errorf("position = %v, want 300", got)
	}
	r.OnInputAt(-20, 0)
	if got := r.PointerPosition(); got != 0 {
		t.Errorf("position = %v, want 0", got)
	}
}

func TestRulerHiddenPointerIgnoresInput(t *testing.T) {
	r := New(WithDisplay(UniformDisplay(150)), WithPointerVisible(false))
	_ = r.Render(newFakeSurface(300, 160))
	if r.OnInputAt(50, 10) {
		t.Error("hidden pointer consumed input")
	}
	if r.PointerPosition() != DefaultPointerPosition {
		t.Errorf("position = %v", r.PointerPosition())
	}
}

func TestRulerUncalibratedDrawsNothing(t *testing.T) {
	var diag []error
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	r := New(WithDiagnostics(func(err error) { diag = append(diag, err) }))
	s := newFakeSurface(300, 160)
	for range 3 {
		if err := r.Render(s); err != nil {
			t.Fatalf("Render: %v", err)
		}
	}
	if len(s.strokes) != 0 || len(s.texts) != 0 || s.fills != 0 {
		t.Error("uncalibrated ruler drew something")
	}
	if len(diag) != 3 || !errors.Is(diag[0], ErrCalibrationUnavailable) {
		t.Errorf("diagnostics = %v", diag)
	}
	if n := strings.Count(buf.String(), "level=WARN"); n != 1 {
		t.Errorf("warnings = %d, want 1 per failure transition\n%s", n, buf.String())
	}
	if _, ok := r.Measurement(); ok {
		t.Error("measurement available without calibration")
	}

	r.SetDisplay(UniformDisplay(150))
	if err := r.Render(s); err != nil {
		t.Fatal(err)
	}
	if len(s.strokes) == 0 {
		t.Error("ruler did not recover after display attached")
	}
}

func TestRulerInvalidDensity(t *testing.T) {
	var diag error
	r := New(WithDisplay(UniformDisplay(0)), WithDiagnostics(func(err error) { diag = err }))
	s := newFakeSurface(300, 160)
	if err := r.Render(s); err != nil {
		t.Fatal(err)
	}
	if !errors.Is(diag, ErrInvalidDensity) {
		t.Errorf("diag = %v", diag)
	}
	if len(s.strokes) != 0 {
		t.Error("drew with invalid density")
	}
}

func TestRulerDoubleToggleRoundTrip(t *testing.T) {
	var changes []Change
	r := New(WithDisplay(UniformDisplay(150)), WithOnChange(func(c Change) { changes = append(changes, c) }))
	before, ok := r.Frame(300, 160)
	if !ok {
		t.Fatal("frame not calibrated")
	}

	r.ToggleUnit()
	metric, _ := r.Frame(300, 160)
	if slices.Equal(metric.Ticks, before.Ticks) {
		t.Error("metric ticks equal imperial ticks")
	}
	r.ToggleUnit()
	after, _ := r.Frame(300, 160)

	if r.UnitSystem() != Imperial {
		t.Errorf("unit = %v", r.UnitSystem())
	}
	if !slices.Equal(after.Ticks, before.Ticks) {
		t.Errorf("ticks after two toggles differ:\n got %v\nwant %v", after.Ticks, before.Ticks)
	}
	if len(changes) != 2 || !changes[0].Prefs.Metric || changes[1].Prefs.Metric {
		t.Errorf("changes = %+v", changes)
	}
	if changes[0].Pref != PrefMetric {
		t.Errorf("pref = %v", changes[0].Pref)
	}
}

func TestRulerRepaintRequests(t *testing.T) {
	repaints := 0
	r := New(WithRepaint(func() { repaints++ }))

	r.SetUnitSystem(Imperial)
	r.SetAccentColor(DefaultAccent)
	r.SetPointerVisible(true)
	if repaints != 0 {
		t.Errorf("no-op setters repainted %d times", repaints)
	}

	r.SetUnitSystem(Metric)
	if repaints != 1 {
		t.Errorf("repaints = %d, want 1", repaints)
	}
}

func TestRulerAnimatedTogglePointer(t *testing.T) {
	var changes []Change
	r := New(WithOnChange(func(c Change) { changes = append(changes, c) }))
	start := time.Unix(0, 0)

	if !r.AnimatedTogglePointer() {
		t.Fatal("toggle not started")
	}
	if len(changes) != 1 || changes[0].Pref != PrefPointerShown || changes[0].Prefs.PointerShown {
		t.Errorf("changes = %+v", changes)
	}
	if !r.Animating() {
		t.Fatal("not animating")
	}

	if !r.Tick(start) {
		t.Fatal("first tick ended the animation")
	}
	if r.PointerAlpha() != 255 {
		t.Errorf("first tick moved alpha to %d", r.PointerAlpha())
	}
	r.Tick(start.Add(AnimationDuration / 2))
	if got := r.PointerAlpha(); got != 128 {
		t.Errorf("halfway alpha = %d", got)
	}
	if r.Tick(start.Add(AnimationDuration)) {
		t.Error("animation should have finished")
	}
	if r.PointerVisible() || r.Animating() {
		t.Errorf("visible %v animating %v", r.PointerVisible(), r.Animating())
	}
	if r.Tick(start.Add(time.Hour)) {
		t.Error("tick with no animation reported work")
	}
}

func TestRulerToggleDuringFadeOutIsNoop(t *testing.T) {
	var changes []Change
	r := New(WithOnChange(func(c Change) { changes = append(changes, c) }))
	r.AnimatedTogglePointer()
	r.Step(AnimationDuration / 4)
	mid := r.PointerAlpha()

	if r.AnimatedTogglePointer() {
		t.Error("toggle during fade-out started an animation")
	}
	if r.PointerAlpha() != mid {
		t.Errorf("alpha moved from %d to %d", mid, r.PointerAlpha())
	}
	if len(changes) != 1 {
		t.Errorf("changes = %d, want 1", len(changes))
	}
	r.Step(AnimationDuration)
	if r.PointerVisible() || r.PointerAlpha() != 0 {
		t.Errorf("alpha = %d, want 0", r.PointerAlpha())
	}
}

func TestRulerToggleDuringFadeInReverses(t *testing.T) {
	r := New(WithPointerVisible(false))
	r.AnimatedTogglePointer()
	r.Step(AnimationDuration / 4)
	mid := r.PointerAlpha()
	if mid == 0 {
		t.Fatal("fade in did not start")
	}

	if !r.AnimatedTogglePointer() {
		t.Fatal("reverse not started")
	}
	if r.PointerAlpha() != mid {
		t.Errorf("reverse jumped from %d to %d", mid, r.PointerAlpha())
	}
	prev := mid
	for range 10 {
		r.Step(AnimationDuration / 10)
		if a := r.PointerAlpha(); a > prev {
			t.Fatalf("fade out not monotonic: %d after %d", a, prev)
		} else {
			prev = a
		}
	}
	if r.PointerVisible() {
		t.Errorf("alpha = %d, want 0", r.PointerAlpha())
	}
}

func TestRulerHiddenMidFadeStillTakesInput(t *testing.T) {
	r := New(WithDisplay(UniformDisplay(150)))
	_ = r.Render(newFakeSurface(300, 160))
	r.AnimatedTogglePointer()
	r.Step(AnimationDuration / 2)
	if !r.OnInputAt(20, 0) {
		t.Error("partially visible pointer should take input")
	}
	r.Step(AnimationDuration)
	if r.OnInputAt(40, 0) {
		t.Error("faded out pointer took input")
	}
}

func TestRulerAnimatedAccent(t *testing.T) {
	var changes []Change
	blue := color.NRGBA{B: 255, A: 255}
	r := New(WithOnChange(func(c Change) { changes = append(changes, c) }))

	if !r.AnimatedSetAccentColor(blue) {
		t.Fatal("not started")
	}
	if r.AnimatedSetAccentColor(blue) {
		t.Error("same target restarted")
	}
	if len(changes) != 1 || changes[0].Prefs.Accent != blue {
		t.Errorf("changes = %+v", changes)
	}
	r.Step(AnimationDuration / 2)
	mid := r.AccentColor()
	if mid == DefaultAccent || mid == blue {
		t.Errorf("mid color = %v", mid)
	}
	r.Step(AnimationDuration / 2)
	if r.AccentColor() != blue {
		t.Errorf("accent = %v", r.AccentColor())
	}
}

func TestRulerSetCancelsAnimation(t *testing.T) {
	r := New()
	r.AnimatedSetAccentColor(color.NRGBA{G: 255, A: 255})
	r.AnimatedTogglePointer()
	r.Step(AnimationDuration / 3)

	r.SetAccentColor(White)
	r.SetPointerVisible(true)
	if r.Animating() {
		t.Error("setters did not cancel animations")
	}
	r.Step(AnimationDuration)
	if r.AccentColor() != White || r.PointerAlpha() != 255 {
		t.Errorf("accent %v alpha %d", r.AccentColor(), r.PointerAlpha())
	}
}

func TestRulerPreferences(t *testing.T) {
	r := New(WithUnitSystem(Metric), WithPointerVisible(false))
	p := r.Preferences()
	if !p.Metric || p.PointerShown || p.Accent != DefaultAccent {
		t.Errorf("prefs = %+v", p)
	}
}

func TestRulerVerticalMeasurement(t *testing.T) {
	r := New(WithAxis(Vertical), WithDisplay(FixedDisplay{X: 100, Y: 200}))
	_ = r.Render(newFakeSurface(160, 600))
	r.OnInputAt(10, 300)
	v, ok := r.Measurement()
	if !ok || v != 1.5 {
		t.Errorf("measurement = %v, %v; want 1.5", v, ok)
	}
}
