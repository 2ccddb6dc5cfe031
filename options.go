package ruler

import (
	"image/color"

	"golang.org/x/text/language"
)

// Option configures a Ruler during creation.
//
// Example:
//
//	// Horizontal imperial ruler on a 160 dpi display
//	r := ruler.New(ruler.WithDisplay(ruler.UniformDisplay(160)))
//
//	// Vertical metric ruler that asks the host to repaint
//	r := ruler.New(
//	    ruler.WithAxis(ruler.Vertical),
//	    ruler.WithUnitSystem(ruler.Metric),
//	    ruler.WithRepaint(window.RequestRedraw),
//	)
type Option func(*options)

// options holds optional configuration for Ruler creation.
type options struct {
	axis           Axis
	unit           UnitSystem
	accent         color.NRGBA
	pointerVisible bool
	display        Display
	style          Style
	locale         language.Tag
	easing         Easing
	repaint        func()
	diagnostics    func(error)
	onChange       func(Change)
}

// defaultOptions returns the default ruler options: a horizontal imperial
// ruler with a visible pointer and no display attached.
func defaultOptions() options {
	return options{
		axis:           Horizontal,
		unit:           Imperial,
		accent:         DefaultAccent,
		pointerVisible: true,
		style:          DefaultStyle(),
		locale:         language.English,
		easing:         Linear,
	}
}

// WithAxis selects the measuring axis.
func WithAxis(a Axis) Option {
	return func(o *options) {
		o.axis = a
	}
}

// WithUnitSystem sets the initial unit system.
func WithUnitSystem(u UnitSystem) Option {
	return func(o *options) {
		o.unit = u
	}
}

// WithAccentColor sets the initial accent color.
func WithAccentColor(c color.NRGBA) Option {
	return func(o *options) {
		o.accent = c
	}
}

// WithPointerVisible sets whether the pointer starts shown.
func WithPointerVisible(visible bool) Option {
	return func(o *options) {
		o.pointerVisible = visible
	}
}

// WithDisplay attaches the display metrics used for calibration. A ruler
// without a display draws nothing until one is attached with
// Ruler.SetDisplay.
func WithDisplay(d Display) Option {
	return func(o *options) {
		o.display = d
	}
}

// WithStyle replaces the visual style.
func WithStyle(st Style) Option {
	return func(o *options) {
		o.style = st
	}
}

// WithLocale sets the locale used to format the pointer measurement.
func WithLocale(tag language.Tag) Option {
	return func(o *options) {
		o.locale = tag
	}
}

// WithEasing sets the easing curve of animations. The default is Linear.
func WithEasing(e Easing) Option {
	return func(o *options) {
		if e != nil {
			o.easing = e
		}
	}
}

// WithRepaint registers the callback fired whenever visible state changes.
// The host should schedule a Render in response.
func WithRepaint(fn func()) Option {
	return func(o *options) {
		o.repaint = fn
	}
}

// WithDiagnostics registers the callback fired when a frame cannot be
// calibrated. The error wraps ErrCalibrationUnavailable.
func WithDiagnostics(fn func(error)) Option {
	return func(o *options) {
		o.diagnostics = fn
	}
}

// WithOnChange registers the callback fired when a user-facing preference
// (unit system, pointer visibility, accent color) changes, so the host can
// persist it.
func WithOnChange(fn func(Change)) Option {
	return func(o *options) {
		o.onChange = fn
	}
}
