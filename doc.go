// Package ruler provides a physically calibrated on-screen ruler.
//
// # Overview
//
// A Ruler turns the pixel extent of a surface and the density of the
// display showing it into true physical graduations: sixteenths of an inch
// or millimetres. A draggable pointer reads off the position under the
// finger or mouse, and unit system, pointer visibility and accent color
// can be changed with short animations.
//
// Drawing goes through the small Surface interface, which *gg.Context
// satisfies, so a ruler renders with any gg backend.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/gg"
//		"github.com/gogpu/ruler"
//	)
//
//	r := ruler.New(ruler.WithDisplay(ruler.UniformDisplay(160)))
//
//	dc := gg.NewContext(1080, 320)
//	dc.ClearWithColor(gg.White)
//	_ = r.Render(dc)
//	_ = dc.SavePNG("ruler.png")
//
// # Frame Loop
//
// A Ruler has no goroutines. The host forwards input with OnInputAt,
// repaints when the WithRepaint callback fires and, while Animating
// reports true, calls Tick with the frame time before each Render.
//
// # Coordinate System
//
// Positions are pixels along the measuring axis, from the left edge of a
// horizontal ruler or the top edge of a vertical one. Ticks grow from the
// bottom edge (horizontal) or the left edge (vertical).
//
// # Calibration
//
// When no display is attached, or the display reports an unusable
// density, Render draws nothing and reports the problem through the
// package logger and the WithDiagnostics callback. See SetLogger.
package ruler

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
