package ruler

import (
	"image/color"
	"math"
	"time"
)

// AnimationDuration is the length of every state transition.
const AnimationDuration = 200 * time.Millisecond

// Property identifies an animated value. At most one animation per
// property is in flight.
type Property uint8

const (
	PropertyAlpha Property = iota
	PropertyAccentColor
)

// String returns the property name.
func (p Property) String() string {
	switch p {
	case PropertyAlpha:
		return "alpha"
	case PropertyAccentColor:
		return "accentColor"
	default:
		return "unknown"
	}
}

// Animatable is a value the Animator can drive.
type Animatable[T any] interface {
	Value() T
	SetValue(T)
}

// Lerp interpolates between two values; t is in [0, 1].
type Lerp[T any] func(from, to T, t float64) T

// Easing maps linear progress in [0, 1] onto eased progress in [0, 1].
type Easing func(t float64) float64

// Linear is the identity easing.
func Linear(t float64) float64 { return t }

// EaseInOut accelerates from rest and decelerates into the target.
func EaseInOut(t float64) float64 {
	return math.Cos((t+1)*math.Pi)/2 + 0.5
}

// track is one in-flight animation with its type parameter erased.
type track interface {
	// step advances by dt and reports whether the animation finished.
	step(dt time.Duration, ease Easing) bool
	target() any
}

type animation[T comparable] struct {
	value    Animatable[T]
	from, to T
	lerp     Lerp[T]
	duration time.Duration
	elapsed  time.Duration
}

func (a *animation[T]) step(dt time.Duration, ease Easing) bool {
	a.elapsed += max(dt, 0)
	if a.elapsed >= a.duration {
		a.value.SetValue(a.to)
		return true
	}
	t := float64(a.elapsed) / float64(a.duration)
	a.value.SetValue(a.lerp(a.from, a.to, ease(t)))
	return false
}

func (a *animation[T]) target() any { return a.to }

// Animator runs time-bounded interpolations of ruler properties. It has no
// goroutines: the host advances it from its frame loop with Step.
//
// Animator is not safe for concurrent use.
type Animator struct {
	duration time.Duration
	easing   Easing
	tracks   map[Property]track
	order    []Property
}

// NewAnimator returns an Animator using AnimationDuration and linear
// easing.
func NewAnimator() *Animator {
	return &Animator{
		duration: AnimationDuration,
		easing:   Linear,
		tracks:   make(map[Property]track),
	}
}

// SetEasing replaces the easing curve. nil restores Linear.
func (a *Animator) SetEasing(e Easing) {
	if e == nil {
		e = Linear
	}
	a.easing = e
}

// Animate starts animating p from the current value of v to to. A running
// animation of p is replaced, continuing from whatever value it reached.
// A request for the target p is already heading to is ignored and
// Animate returns false.
func Animate[T comparable](a *Animator, p Property, v Animatable[T], to T, lerp Lerp[T]) bool {
	if cur, ok := a.tracks[p]; ok {
		if prev, ok := cur.target().(T); ok && prev == to {
			return false
		}
	}
	from := v.Value()
	if from == to {
		a.Cancel(p)
		return false
	}
	if _, ok := a.tracks[p]; !ok {
		a.order = append(a.order, p)
	}
	a.tracks[p] = &animation[T]{
		value:    v,
		from:     from,
		to:       to,
		lerp:     lerp,
		duration: a.duration,
	}
	Logger().Debug("ruler: animation started", "property", p, "from", from, "to", to)
	return true
}

// Step advances every running animation by dt, applying the interpolated
// values. Finished animations are removed.
func (a *Animator) Step(dt time.Duration) {
	if len(a.tracks) == 0 {
		return
	}
	order := a.order[:0]
	for _, p := range a.order {
		t, ok := a.tracks[p]
		if !ok {
			continue
		}
		if t.step(dt, a.easing) {
			delete(a.tracks, p)
			Logger().Debug("ruler: animation finished", "property", p)
			continue
		}
		order = append(order, p)
	}
	a.order = order
}

// Cancel stops the animation of p, leaving the value where it is.
func (a *Animator) Cancel(p Property) {
	if _, ok := a.tracks[p]; !ok {
		return
	}
	delete(a.tracks, p)
	for i, q := range a.order {
		if q == p {
			a.order = append(a.order[:i], a.order[i+1:]...)
			break
		}
	}
}

// Active reports whether any animation is running.
func (a *Animator) Active() bool { return len(a.tracks) > 0 }

// Running reports whether p is being animated.
func (a *Animator) Running(p Property) bool {
	_, ok := a.tracks[p]
	return ok
}

// Convenience wrappers for the two ruler properties.

func animateAlpha(a *Animator, s *State, to uint8) bool {
	return Animate[uint8](a, PropertyAlpha, alphaValue{s}, to, LerpAlpha)
}

func animateAccent(a *Animator, s *State, to color.NRGBA) bool {
	return Animate[color.NRGBA](a, PropertyAccentColor, accentValue{s}, to, LerpColor)
}
