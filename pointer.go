package ruler

import (
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Measure converts a pointer offset in pixels into a physical length in
// the given unit system: inches for Imperial, centimetres for Metric.
func Measure(positionPx, dpi float64, u UnitSystem) float64 {
	if !(dpi > 0) {
		return 0
	}
	return positionPx / dpi * u.unitsPerInch()
}

// MeasurementFormatter renders measurement values with two decimals using
// the number conventions of a locale.
type MeasurementFormatter struct {
	p *message.Printer
}

// NewMeasurementFormatter returns a formatter for tag.
func NewMeasurementFormatter(tag language.Tag) MeasurementFormatter {
	return MeasurementFormatter{p: message.NewPrinter(tag)}
}

// Format formats v with exactly two decimals.
func (f MeasurementFormatter) Format(v float64) string {
	if f.p == nil {
		f.p = message.NewPrinter(language.English)
	}
	return f.p.Sprintf("%.2f", v)
}

// Tracker maps input coordinates onto the pointer of a State.
type Tracker struct {
	state *State
	axis  Axis

	// limit is the measuring-axis extent of the last laid-out surface, or
	// -1 before the first layout.
	limit float64
}

// NewTracker returns a tracker moving the pointer of s along axis.
func NewTracker(s *State, axis Axis) *Tracker {
	return &Tracker{state: s, axis: axis, limit: -1}
}

// Layout records the surface bounds that input is clamped to.
func (t *Tracker) Layout(c Calibration) {
	t.limit = c.LengthPx
}

// Bounds returns the measuring-axis extent input is clamped to, or -1
// before the first layout.
func (t *Tracker) Bounds() float64 { return t.limit }

// OnInputAt moves the pointer to the input coordinate (x, y). Only the
// coordinate along the measuring axis is used; it is clamped to the
// surface. When the pointer is hidden the event is not consumed and
// OnInputAt returns false so the host can apply its default handling.
func (t *Tracker) OnInputAt(x, y float64) bool {
	if !t.state.PointerVisible() {
		return false
	}
	px := x
	if t.axis == Vertical {
		px = y
	}
	t.state.SetPosition(clampPx(px, t.limit))
	return true
}

// pointerLabelShiftRunes is the label length beyond which the label is
// nudged further toward the zero edge to stay centred in the handle.
const pointerLabelShiftRunes = 4

// pointerGeometry is the layout of the pointer for one frame.
type pointerGeometry struct {
	// Line from (x1, y1) to (x2, y2), handle centred at (cx, cy).
	x1, y1, x2, y2 float64
	cx, cy, radius float64

	// Label baseline origin. The label is rotated by angle about the
	// handle centre.
	lx, ly, angle float64
}

// layoutPointer places the pointer at position along the measuring axis
// of a surface calibrated by c.
func layoutPointer(c Calibration, st Style, position float64, label string) pointerGeometry {
	p := c.Clamp(position)

	var g pointerGeometry
	if c.Axis == Vertical {
		w := c.CrossPx
		g.radius = w / 8
		g.cx, g.cy = w-g.radius-st.Margin, p
		g.x1, g.y1 = 0, p
		g.x2, g.y2 = w-2*g.radius-st.Margin, p
		g.angle = quarterTurn
	} else {
		h := c.CrossPx
		g.radius = h / 16
		g.cx, g.cy = p, h/2+st.Margin
		g.x1, g.y1 = p, g.cy+g.radius
		g.x2, g.y2 = p, h
	}

	size := st.LabelSize
	g.lx = g.cx - size
	if utf8.RuneCountInString(label) > pointerLabelShiftRunes {
		g.lx -= size / 4
	}
	g.ly = g.cy + size/3
	return g
}
