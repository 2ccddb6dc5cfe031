// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package rulercanvas

import (
	"errors"
	"fmt"
	"time"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/ruler"
)

// Common errors returned by Binding operations.
var (
	// ErrNilRuler is returned when New is called without a ruler.
	ErrNilRuler = errors.New("rulercanvas: nil ruler")

	// ErrNilWindow is returned when New is called without a window.
	ErrNilWindow = errors.New("rulercanvas: nil WindowProvider")
)

// Binding connects a ruler to a window.
//
// Binding is NOT safe for concurrent use.
type Binding struct {
	ruler      *ruler.Ruler
	window     gpucontext.WindowProvider
	canvas     *ggcanvas.Canvas
	background gg.RGBA

	// pressed is the pointer currently dragging the ruler, or 0.
	pressed int
	closed  bool
}

// Option configures a Binding.
type Option func(*Binding)

// WithBackground sets the color the canvas is cleared to before each
// frame. The default is white.
func WithBackground(c gg.RGBA) Option {
	return func(b *Binding) {
		b.background = c
	}
}

// WithBaseDPI attaches a WindowDisplay with the given base density instead
// of DefaultBaseDPI.
func WithBaseDPI(dpi float64) Option {
	return func(b *Binding) {
		b.ruler.SetDisplay(WindowDisplay{Window: b.window, BaseDPI: dpi})
	}
}

// New binds r to window. Frames are drawn into a canvas created on
// provider and sized to the physical window area.
//
// New attaches a WindowDisplay to r and routes its repaint requests to
// window.RequestRedraw.
func New(r *ruler.Ruler, provider gpucontext.DeviceProvider, window gpucontext.WindowProvider, opts ...Option) (*Binding, error) {
	if r == nil {
		return nil, ErrNilRuler
	}
	if window == nil {
		return nil, ErrNilWindow
	}
	w, h := physicalSize(window)
	canvas, err := ggcanvas.New(provider, max(w, 1), max(h, 1))
	if err != nil {
		return nil, fmt.Errorf("rulercanvas: %w", err)
	}

	b := &Binding{
		ruler:      r,
		window:     window,
		canvas:     canvas,
		background: gg.White,
	}
	r.SetDisplay(WindowDisplay{Window: window})
	for _, opt := range opts {
		opt(b)
	}
	r.SetRepaint(window.RequestRedraw)
	return b, nil
}

// Ruler returns the bound ruler.
func (b *Binding) Ruler() *ruler.Ruler { return b.ruler }

// Canvas returns the canvas frames are drawn into, for RenderTo.
func (b *Binding) Canvas() *ggcanvas.Canvas { return b.canvas }

// Attach routes the pointer events of src to the ruler.
func (b *Binding) Attach(src gpucontext.PointerEventSource) {
	src.OnPointer(func(ev gpucontext.PointerEvent) {
		b.HandlePointer(ev)
	})
}

// HandlePointer moves the ruler pointer for a press, a drag or a release
// and reports whether the event was consumed. Hover moves are ignored, as
// is everything while the ruler pointer is hidden.
func (b *Binding) HandlePointer(ev gpucontext.PointerEvent) bool {
	if b.closed {
		return false
	}
	sf := b.window.ScaleFactor()
	x, y := ev.X*sf, ev.Y*sf

	switch ev.Type {
	case gpucontext.PointerDown:
		if !b.ruler.OnInputAt(x, y) {
			return false
		}
		b.pressed = pointerKey(ev)
		return true
	case gpucontext.PointerMove:
		if b.pressed != pointerKey(ev) {
			return false
		}
		return b.ruler.OnInputAt(x, y)
	case gpucontext.PointerUp:
		if b.pressed != pointerKey(ev) {
			return false
		}
		b.pressed = 0
		return b.ruler.OnInputAt(x, y)
	case gpucontext.PointerCancel:
		if b.pressed == pointerKey(ev) {
			b.pressed = 0
		}
		return false
	default:
		return false
	}
}

// pointerKey identifies a pointer; IDs start at zero on some platforms.
func pointerKey(ev gpucontext.PointerEvent) int { return ev.PointerID + 1 }

// Frame advances animations to now, resizes the canvas to the window and
// draws the ruler. It reports whether the ruler is still animating, in
// which case the host should schedule another frame.
func (b *Binding) Frame(now time.Time) (bool, error) {
	if b.closed {
		return false, ggcanvas.ErrCanvasClosed
	}
	w, h := physicalSize(b.window)
	if w > 0 && h > 0 {
		if err := b.canvas.Resize(w, h); err != nil {
			return false, fmt.Errorf("rulercanvas: %w", err)
		}
	}

	more := b.ruler.Tick(now)

	var renderErr error
	err := b.canvas.Draw(func(dc *gg.Context) {
		dc.ClearWithColor(b.background)
		renderErr = b.ruler.Render(dc)
	})
	if err != nil {
		return false, fmt.Errorf("rulercanvas: %w", err)
	}
	if renderErr != nil {
		return more, fmt.Errorf("rulercanvas: render: %w", renderErr)
	}
	if more {
		b.window.RequestRedraw()
	}
	return more, nil
}

// Close releases the canvas and detaches the repaint callback.
// Close is idempotent.
func (b *Binding) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	b.ruler.SetRepaint(nil)
	return b.canvas.Close()
}
