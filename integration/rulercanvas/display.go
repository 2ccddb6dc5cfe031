// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package rulercanvas

import (
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/ruler"
)

// DefaultBaseDPI is the density of one logical point at scale factor 1.
const DefaultBaseDPI = 96

// WindowDisplay reports the density of a window as BaseDPI scaled by the
// window scale factor.
type WindowDisplay struct {
	Window gpucontext.WindowProvider

	// BaseDPI is the physical density at scale factor 1. Zero uses
	// DefaultBaseDPI.
	BaseDPI float64
}

var _ ruler.Display = WindowDisplay{}

// DensityDPI returns the same density on both axes. A nil window reports
// zero, which the ruler treats as uncalibrated.
func (d WindowDisplay) DensityDPI() (x, y float64) {
	if d.Window == nil {
		return 0, 0
	}
	base := d.BaseDPI
	if base == 0 {
		base = DefaultBaseDPI
	}
	dpi := base * d.Window.ScaleFactor()
	return dpi, dpi
}

// physicalSize returns the window client area in physical pixels.
func physicalSize(w gpucontext.WindowProvider) (width, height int) {
	lw, lh := w.Size()
	sf := w.ScaleFactor()
	return int(float64(lw)*sf + 0.5), int(float64(lh)*sf + 0.5)
}
