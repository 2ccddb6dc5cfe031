package ruler

import (
	"image/color"
	"time"
)

// Preference identifies a user-facing setting a host persists.
type Preference uint8

const (
	PrefPointerShown Preference = iota
	PrefMetric
	PrefAccentColor
)

// String returns the preference name.
func (p Preference) String() string {
	switch p {
	case PrefPointerShown:
		return "pointerShown"
	case PrefMetric:
		return "metric"
	case PrefAccentColor:
		return "accentColor"
	default:
		return "unknown"
	}
}

// Preferences is the persisted view of a ruler.
type Preferences struct {
	PointerShown bool
	Metric       bool
	Accent       color.NRGBA
}

// Change reports which preference changed and the preferences after the
// change. For animated changes Prefs holds the animation target.
type Change struct {
	Pref  Preference
	Prefs Preferences
}

// Ruler is a calibrated, interactive ruler. It owns its State, pointer
// Tracker and Animator and renders onto any Surface.
//
// A Ruler is driven from a single UI thread: input, toggles, Tick and
// Render must not be called concurrently.
type Ruler struct {
	opts     options
	display  Display
	state    *State
	tracker  *Tracker
	anim     *Animator
	renderer Renderer
	format   MeasurementFormatter

	last     Calibration
	hasLast  bool
	failing  bool
	lastTick time.Time
}

var _ Renderable = (*Ruler)(nil)

// New creates a ruler.
func New(opts ...Option) *Ruler {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	r := &Ruler{
		opts:     o,
		display:  o.display,
		anim:     NewAnimator(),
		renderer: Renderer{Style: o.style},
		format:   NewMeasurementFormatter(o.locale),
	}
	r.anim.SetEasing(o.easing)
	r.state = NewState(o.unit, o.accent, o.pointerVisible, r.requestRepaint)
	r.tracker = NewTracker(r.state, o.axis)
	return r
}

func (r *Ruler) requestRepaint() {
	if r.opts.repaint != nil {
		r.opts.repaint()
	}
}

func (r *Ruler) notify(p Preference, prefs Preferences) {
	if r.opts.onChange != nil {
		r.opts.onChange(Change{Pref: p, Prefs: prefs})
	}
}

// SetRepaint replaces the callback registered with WithRepaint.
func (r *Ruler) SetRepaint(fn func()) { r.opts.repaint = fn }

// SetDisplay attaches (or with nil detaches) the display metrics.
func (r *Ruler) SetDisplay(d Display) {
	r.display = d
	r.requestRepaint()
}

// Axis returns the measuring axis.
func (r *Ruler) Axis() Axis { return r.opts.axis }

// Style returns the visual style.
func (r *Ruler) Style() Style { return r.renderer.Style }

// UnitSystem returns the active unit system.
func (r *Ruler) UnitSystem() UnitSystem { return r.state.Unit() }

// AccentColor returns the current, possibly mid-animation, accent color.
func (r *Ruler) AccentColor() color.NRGBA { return r.state.Accent() }

// PointerAlpha returns the current pointer opacity.
func (r *Ruler) PointerAlpha() uint8 { return r.state.Alpha() }

// PointerVisible reports whether the pointer is shown and takes input.
func (r *Ruler) PointerVisible() bool { return r.state.PointerVisible() }

// PointerPosition returns the pointer offset in pixels.
func (r *Ruler) PointerPosition() float64 { return r.state.Position() }

// Preferences returns the current persisted view.
func (r *Ruler) Preferences() Preferences {
	return Preferences{
		PointerShown: r.state.PointerVisible(),
		Metric:       r.state.Unit() == Metric,
		Accent:       r.state.Accent(),
	}
}

// SetUnitSystem switches the graduation.
func (r *Ruler) SetUnitSystem(u UnitSystem) {
	if r.state.SetUnit(u) {
		r.notify(PrefMetric, r.Preferences())
	}
}

// ToggleUnit switches between imperial and metric graduation.
func (r *Ruler) ToggleUnit() UnitSystem {
	u := r.state.ToggleUnit()
	r.notify(PrefMetric, r.Preferences())
	return u
}

// SetPointerVisible shows or hides the pointer immediately, cancelling a
// running fade.
func (r *Ruler) SetPointerVisible(visible bool) {
	r.anim.Cancel(PropertyAlpha)
	was := r.state.PointerVisible()
	var a uint8
	if visible {
		a = 255
	}
	r.state.SetAlpha(a)
	if was != visible {
		r.notify(PrefPointerShown, r.Preferences())
	}
}

// SetAccentColor sets the accent color immediately, cancelling a running
// color transition.
func (r *Ruler) SetAccentColor(c color.NRGBA) {
	r.anim.Cancel(PropertyAccentColor)
	if r.state.SetAccent(c) {
		r.notify(PrefAccentColor, r.Preferences())
	}
}

// pointerToggleTarget is the opacity a toggle fades to: hidden while any
// part of the pointer shows, fully shown otherwise.
func (r *Ruler) pointerToggleTarget() uint8 {
	if r.state.PointerVisible() {
		return 0
	}
	return 255
}

// AnimatedTogglePointer fades the pointer in or out over
// AnimationDuration. It reports whether an animation was started; a
// toggle during a fade-out targets the running fade and does nothing.
func (r *Ruler) AnimatedTogglePointer() bool {
	target := r.pointerToggleTarget()
	if !animateAlpha(r.anim, r.state, target) {
		return false
	}
	prefs := r.Preferences()
	prefs.PointerShown = target > 0
	r.notify(PrefPointerShown, prefs)
	r.requestRepaint()
	return true
}

// AnimatedSetAccentColor transitions the accent color to c over
// AnimationDuration. It reports whether an animation was started.
func (r *Ruler) AnimatedSetAccentColor(c color.NRGBA) bool {
	if !animateAccent(r.anim, r.state, c) {
		return false
	}
	prefs := r.Preferences()
	prefs.Accent = c
	r.notify(PrefAccentColor, prefs)
	r.requestRepaint()
	return true
}

// OnInputAt moves the pointer to the input coordinate. It returns false,
// leaving the event to the host, while the pointer is hidden.
func (r *Ruler) OnInputAt(x, y float64) bool {
	return r.tracker.OnInputAt(x, y)
}

// Animating reports whether a transition is in progress. Hosts keep
// delivering frames (Tick) while it is true.
func (r *Ruler) Animating() bool { return r.anim.Active() }

// Step advances running animations by dt.
func (r *Ruler) Step(dt time.Duration) {
	r.anim.Step(dt)
	if !r.anim.Active() {
		r.lastTick = time.Time{}
	}
}

// Tick advances running animations to the frame time now and reports
// whether more frames are needed. The first tick of an animation only
// records the start time.
func (r *Ruler) Tick(now time.Time) bool {
	if !r.anim.Active() {
		r.lastTick = time.Time{}
		return false
	}
	var dt time.Duration
	if !r.lastTick.IsZero() {
		dt = now.Sub(r.lastTick)
	}
	r.Step(dt)
	if r.anim.Active() {
		r.lastTick = now
	}
	return r.anim.Active()
}

// Calibrate resolves the physical extent of a width x height surface on
// the attached display. Failures are reported through the logger and the
// diagnostics callback; the previous calibration is forgotten.
func (r *Ruler) Calibrate(width, height int) (Calibration, bool) {
	c, err := Calibrate(width, height, r.display, r.opts.axis)
	if err != nil {
		r.hasLast = false
		if !r.failing {
			Logger().Warn("ruler: skipping ticks and pointer", "err", err)
		} else {
			Logger().Debug("ruler: still uncalibrated", "err", err)
		}
		r.failing = true
		if r.opts.diagnostics != nil {
			r.opts.diagnostics(err)
		}
		return Calibration{}, false
	}
	if r.failing {
		Logger().Info("ruler: calibration restored", "dpi", c.DPI, "extent_in", c.ExtentInches)
	}
	r.failing = false
	r.last, r.hasLast = c, true
	r.tracker.Layout(c)
	return c, true
}

// Measurement returns the pointer position in the active unit, using the
// calibration of the last rendered frame.
func (r *Ruler) Measurement() (float64, bool) {
	if !r.hasLast {
		return 0, false
	}
	p := r.last.Clamp(r.state.Position())
	return Measure(p, r.last.DPI, r.state.Unit()), true
}

// MeasurementLabel returns the formatted pointer measurement.
func (r *Ruler) MeasurementLabel() (string, bool) {
	v, ok := r.Measurement()
	if !ok {
		return "", false
	}
	return r.format.Format(v), true
}

// Frame builds the frame for a surface of the given size without drawing.
func (r *Ruler) Frame(width, height int) (Frame, bool) {
	c, ok := r.Calibrate(width, height)
	if !ok {
		return Frame{}, false
	}
	f := Frame{
		Calibration: c,
		Ticks:       Generate(c.ExtentInches, r.state.Unit()),
		Accent:      r.state.Accent(),
		Pointer: PointerSnapshot{
			Position: c.Clamp(r.state.Position()),
			Alpha:    r.state.Alpha(),
		},
	}
	if f.Pointer.Alpha > 0 {
		f.Pointer.Label, _ = r.MeasurementLabel()
	}
	return f, true
}

// Render paints the ruler onto s. A surface that cannot be calibrated is
// left untouched and Render returns nil.
func (r *Ruler) Render(s Surface) error {
	f, ok := r.Frame(s.Width(), s.Height())
	if !ok {
		return nil
	}
	return r.renderer.Draw(s, f)
}
