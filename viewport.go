package ruler

import (
	"fmt"
	"math"
)

// Display reports the physical pixel density of the screen a surface is
// attached to, in dots per inch along each axis.
type Display interface {
	DensityDPI() (x, y float64)
}

// FixedDisplay is a Display with constant densities, for hosts that read
// metrics once (or from configuration) and for tests.
type FixedDisplay struct {
	X, Y float64
}

// DensityDPI returns the configured densities.
func (d FixedDisplay) DensityDPI() (x, y float64) { return d.X, d.Y }

// UniformDisplay returns a FixedDisplay with the same density on both axes.
func UniformDisplay(dpi float64) FixedDisplay {
	return FixedDisplay{X: dpi, Y: dpi}
}

// Viewport is the pixel extent of a surface together with the density of
// the display showing it.
type Viewport struct {
	WidthPx, HeightPx int
	DPIX, DPIY        float64
}

// Calibration is the physical coordinate system of one layout pass.
type Calibration struct {
	Axis Axis

	// LengthPx is the surface extent along the measuring axis.
	LengthPx float64

	// CrossPx is the surface extent across the measuring axis.
	CrossPx float64

	// DPI is the density along the measuring axis.
	DPI float64

	// ExtentInches is LengthPx / DPI.
	ExtentInches float64
}

// Calibrate resolves the viewport of a width x height surface shown on d
// into a physical extent along axis.
//
// It returns ErrCalibrationUnavailable when d is nil and ErrInvalidDensity
// when the density along the axis is not a positive finite number.
// Negative pixel extents are treated as zero.
func Calibrate(width, height int, d Display, axis Axis) (Calibration, error) {
	if d == nil {
		return Calibration{}, ErrCalibrationUnavailable
	}
	dx, dy := d.DensityDPI()
	return Viewport{WidthPx: width, HeightPx: height, DPIX: dx, DPIY: dy}.Calibrate(axis)
}

// Calibrate computes the calibration of v along axis.
func (v Viewport) Calibrate(axis Axis) (Calibration, error) {
	w := float64(max(v.WidthPx, 0))
	h := float64(max(v.HeightPx, 0))

	c := Calibration{Axis: axis, LengthPx: w, CrossPx: h, DPI: v.DPIX}
	if axis == Vertical {
		c.LengthPx, c.CrossPx, c.DPI = h, w, v.DPIY
	}
	if !(c.DPI > 0) || math.IsInf(c.DPI, 0) {
		return Calibration{}, fmt.Errorf("%w: %s dpi=%v", ErrInvalidDensity, axis, c.DPI)
	}
	c.ExtentInches = c.LengthPx / c.DPI
	return c, nil
}

// Position converts a physical position in inches into a pixel offset
// along the measuring axis.
func (c Calibration) Position(inches float64) float64 {
	return inches * c.DPI
}

// Clamp limits a pixel coordinate to [0, LengthPx].
func (c Calibration) Clamp(px float64) float64 {
	return clampPx(px, c.LengthPx)
}

// clampPx limits px to [0, limit]; a negative limit leaves the upper bound
// open. NaN maps to zero.
func clampPx(px, limit float64) float64 {
	if !(px > 0) {
		return 0
	}
	if limit >= 0 && px > limit {
		return limit
	}
	return px
}
