// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package rulercanvas hosts a ruler in a gogpu window.
//
// A Binding ties together three things the ruler itself knows nothing
// about: the window (size, scale factor, redraw requests), its pointer
// events and the ggcanvas.Canvas the frames are drawn into. The data flow
// is:
//
//	PointerEvent -> Ruler.OnInputAt -> RequestRedraw -> Frame -> Canvas
//
// # Usage
//
//	r := ruler.New()
//	b, err := rulercanvas.New(r, app.GPUContextProvider(), window)
//	if err != nil {
//	    return err
//	}
//	defer b.Close()
//	b.Attach(events)
//
//	app.OnDraw(func(dc *gogpu.Context) {
//	    if _, err := b.Frame(time.Now()); err != nil {
//	        log.Print(err)
//	    }
//	    b.Canvas().RenderTo(dc.AsTextureDrawer())
//	})
//
// # Physical Calibration
//
// Window sizes and pointer coordinates arrive in logical points. The
// binding scales them by the window scale factor so the ruler works in
// physical pixels, and WindowDisplay reports BaseDPI times the scale
// factor as the display density.
//
// # Thread Safety
//
// Binding is NOT safe for concurrent use. Pointer callbacks and Frame
// must run on the UI thread.
package rulercanvas
