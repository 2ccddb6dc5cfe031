package ruler

import (
	"errors"
	"image/color"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// Surface is the drawing target of a ruler. *gg.Context implements it; so
// does record.Surface for vector output.
type Surface interface {
	Width() int
	Height() int

	Push()
	Pop()
	RotateAbout(angle, x, y float64)

	SetColor(c color.Color)
	SetLineWidth(width float64)
	SetFont(face text.Face)

	DrawLine(x1, y1, x2, y2 float64)
	DrawCircle(x, y, r float64)
	DrawString(s string, x, y float64)
	MeasureString(s string) (w, h float64)

	Stroke() error
	Fill() error
}

var _ Surface = (*gg.Context)(nil)

// Renderable is anything that can paint itself onto a Surface.
type Renderable interface {
	Render(s Surface) error
}

// quarterTurn rotates labels of a vertical ruler so they read along it.
const quarterTurn = math.Pi / 2

// Style holds the fixed visual parameters of a ruler.
type Style struct {
	// StrokeWidth is the width of every tick and of the pointer line.
	StrokeWidth float64

	// LabelSize is the font size of tick and pointer labels in pixels.
	LabelSize float64

	// Margin offsets the pointer handle from the ruler centre.
	Margin float64

	// Foreground colors non-unit ticks and tick labels.
	Foreground color.NRGBA

	// PointerLabel colors the measurement drawn inside the handle.
	PointerLabel color.NRGBA

	// Face is the label font. nil uses the bundled bold Go font.
	Face text.Face
}

// DefaultStyle returns the style used when none is configured.
func DefaultStyle() Style {
	return Style{
		StrokeWidth:  4,
		LabelSize:    28,
		Margin:       28,
		Foreground:   Black,
		PointerLabel: White,
	}
}

// face returns the configured face or the default one at LabelSize.
func (st Style) face() text.Face {
	if st.Face != nil {
		return st.Face
	}
	return defaultFace(st.LabelSize)
}

// PointerSnapshot is the pointer as seen by one frame.
type PointerSnapshot struct {
	Position float64
	Alpha    uint8
	Label    string
}

// Frame is everything the Renderer needs for one repaint.
type Frame struct {
	Calibration Calibration
	Ticks       []TickMark
	Accent      color.NRGBA
	Pointer     PointerSnapshot
}

// Renderer draws frames. It keeps no per-frame state.
type Renderer struct {
	Style Style
}

// Draw paints the ticks of f and, when visible, its pointer. Errors from
// the surface are collected and returned together; drawing continues
// past them.
func (r *Renderer) Draw(s Surface, f Frame) error {
	var errs []error
	errs = append(errs, r.drawTicks(s, f)...)
	if f.Pointer.Alpha > 0 {
		errs = append(errs, r.drawPointer(s, f)...)
	}
	return errors.Join(errs...)
}

// tickSegment returns the stroke of t: it starts on the zero edge of the
// cross axis and extends Weight.LengthFraction of the cross extent.
func tickSegment(c Calibration, t TickMark) (x1, y1, x2, y2 float64) {
	pos := c.Position(t.Inches)
	length := c.CrossPx * t.Weight.LengthFraction()
	if c.Axis == Vertical {
		return 0, pos, length, pos
	}
	return pos, c.CrossPx - length, pos, c.CrossPx
}

// tickLabelOrigin returns the baseline origin of t's label and its
// rotation. The label sits past the stroke end so the two do not overlap;
// on a vertical ruler it is rotated about its origin and reads downward.
func tickLabelOrigin(c Calibration, st Style, t TickMark) (x, y, angle float64) {
	x1, y1, x2, y2 := tickSegment(c, t)
	if c.Axis == Vertical {
		return x2 + st.LabelSize/4, y2 + st.LabelSize/4, quarterTurn
	}
	return x1 + st.LabelSize/2, y1, 0
}

func (r *Renderer) drawTicks(s Surface, f Frame) []error {
	var errs []error
	c := f.Calibration
	st := r.Style

	s.SetLineWidth(st.StrokeWidth)
	for _, t := range f.Ticks {
		if t.Weight == WeightUnit {
			s.SetColor(f.Accent)
		} else {
			s.SetColor(st.Foreground)
		}
		s.DrawLine(tickSegment(c, t))
		if err := s.Stroke(); err != nil {
			errs = append(errs, err)
		}
	}

	s.SetFont(st.face())
	s.SetColor(st.Foreground)
	for _, t := range f.Ticks {
		if !t.Labeled {
			continue
		}
		x, y, angle := tickLabelOrigin(c, st, t)
		drawLabel(s, t.Label, x, y, angle, x, y)
	}
	return errs
}

func (r *Renderer) drawPointer(s Surface, f Frame) []error {
	var errs []error
	st := r.Style
	p := f.Pointer
	g := layoutPointer(f.Calibration, st, p.Position, p.Label)

	s.SetColor(WithAlpha(f.Accent, p.Alpha))
	s.SetLineWidth(st.StrokeWidth)
	s.DrawLine(g.x1, g.y1, g.x2, g.y2)
	if err := s.Stroke(); err != nil {
		errs = append(errs, err)
	}
	s.DrawCircle(g.cx, g.cy, g.radius)
	if err := s.Fill(); err != nil {
		errs = append(errs, err)
	}

	s.SetFont(st.face())
	if w, _ := s.MeasureString(p.Label); w > 0 {
		// Centre on the handle; the fixed offsets only apply without metrics.
		g.lx = g.cx - w/2
	}
	s.SetColor(WithAlpha(st.PointerLabel, p.Alpha))
	drawLabel(s, p.Label, g.lx, g.ly, g.angle, g.cx, g.cy)
	return errs
}

// drawLabel draws str at (x, y), rotated by angle about (px, py).
func drawLabel(s Surface, str string, x, y, angle, px, py float64) {
	if angle == 0 {
		s.DrawString(str, x, y)
		return
	}
	s.Push()
	s.RotateAbout(angle, px, py)
	s.DrawString(str, x, y)
	s.Pop()
}
