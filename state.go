package ruler

import "image/color"

// State is the mutable state of one ruler: unit system, accent color and
// pointer. Every setter is idempotent at the value level; it requests a
// repaint only when the stored value actually changes and reports whether
// it did.
//
// State is owned by a single Ruler and is not safe for concurrent use.
type State struct {
	unit     UnitSystem
	accent   color.NRGBA
	alpha    uint8
	position float64

	repaint func()
}

// NewState returns a state with the given initial values. repaint may be
// nil.
func NewState(unit UnitSystem, accent color.NRGBA, pointerVisible bool, repaint func()) *State {
	s := &State{unit: unit, accent: accent, position: DefaultPointerPosition, repaint: repaint}
	if pointerVisible {
		s.alpha = 255
	}
	return s
}

// DefaultPointerPosition is the pixel offset of the pointer before the
// first input event.
const DefaultPointerPosition = 100

func (s *State) changed() {
	if s.repaint != nil {
		s.repaint()
	}
}

// Unit returns the active unit system.
func (s *State) Unit() UnitSystem { return s.unit }

// SetUnit sets the active unit system.
func (s *State) SetUnit(u UnitSystem) bool {
	if s.unit == u {
		return false
	}
	s.unit = u
	s.changed()
	return true
}

// ToggleUnit flips the unit system. It always repaints.
func (s *State) ToggleUnit() UnitSystem {
	s.SetUnit(s.unit.Toggle())
	return s.unit
}

// Accent returns the accent color.
func (s *State) Accent() color.NRGBA { return s.accent }

// SetAccent sets the accent color.
func (s *State) SetAccent(c color.NRGBA) bool {
	if s.accent == c {
		return false
	}
	s.accent = c
	s.changed()
	return true
}

// Alpha returns the pointer opacity.
func (s *State) Alpha() uint8 { return s.alpha }

// SetAlpha sets the pointer opacity.
func (s *State) SetAlpha(a uint8) bool {
	if s.alpha == a {
		return false
	}
	s.alpha = a
	s.changed()
	return true
}

// PointerVisible reports whether the pointer is drawn and accepts input.
func (s *State) PointerVisible() bool { return s.alpha > 0 }

// Position returns the pointer offset in pixels along the measuring axis.
func (s *State) Position() float64 { return s.position }

// SetPosition moves the pointer.
func (s *State) SetPosition(px float64) bool {
	if s.position == px {
		return false
	}
	s.position = px
	s.changed()
	return true
}

// alphaValue adapts the pointer opacity to Animatable.
type alphaValue struct{ s *State }

func (v alphaValue) Value() uint8     { return v.s.Alpha() }
func (v alphaValue) SetValue(a uint8) { v.s.SetAlpha(a) }

// accentValue adapts the accent color to Animatable.
type accentValue struct{ s *State }

func (v accentValue) Value() color.NRGBA     { return v.s.Accent() }
func (v accentValue) SetValue(c color.NRGBA) { v.s.SetAccent(c) }
