package record

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
	"github.com/gogpu/gg/text"

	// Register the raster backend.
	_ "github.com/gogpu/gg/recording/backends/raster"

	"github.com/gogpu/ruler"
)

// ErrNotWritable is returned by Export when the backend cannot stream its
// output.
var ErrNotWritable = errors.New("record: backend output is not writable")

// Surface is a ruler.Surface that records drawing commands.
type Surface struct {
	rec *recording.Recorder
}

var _ ruler.Surface = (*Surface)(nil)

// New creates a recording surface of the given size in pixels.
func New(width, height int) *Surface {
	return &Surface{rec: recording.NewRecorder(width, height)}
}

// Width returns the surface width.
func (s *Surface) Width() int { return s.rec.Width() }

// Height returns the surface height.
func (s *Surface) Height() int { return s.rec.Height() }

// Push saves the transform and style state.
func (s *Surface) Push() { s.rec.Push() }

// Pop restores the state saved by the matching Push.
func (s *Surface) Pop() { s.rec.Pop() }

// RotateAbout rotates subsequent drawing by angle radians about (x, y).
func (s *Surface) RotateAbout(angle, x, y float64) { s.rec.RotateAbout(angle, x, y) }

// SetColor sets both the fill and the stroke color.
func (s *Surface) SetColor(c color.Color) { s.rec.SetColor(gg.FromColor(c)) }

// SetLineWidth sets the stroke width.
func (s *Surface) SetLineWidth(width float64) { s.rec.SetLineWidth(width) }

// SetFont sets the label face. The face size is also recorded so that
// backends without face support can still lay text out.
func (s *Surface) SetFont(face text.Face) {
	s.rec.SetFont(face)
	if face != nil {
		s.rec.SetFontSize(face.Size())
	}
}

func (s *Surface) DrawLine(x1, y1, x2, y2 float64)     { s.rec.DrawLine(x1, y1, x2, y2) }
func (s *Surface) DrawCircle(x, y, r float64)          { s.rec.DrawCircle(x, y, r) }
func (s *Surface) DrawString(str string, x, y float64) { s.rec.DrawString(str, x, y) }

// MeasureString returns the extent of str in the current face.
func (s *Surface) MeasureString(str string) (w, h float64) { return s.rec.MeasureString(str) }

// Stroke records a stroke of the current path.
func (s *Surface) Stroke() error {
	s.rec.Stroke()
	return nil
}

// Fill records a fill of the current path.
func (s *Surface) Fill() error {
	s.rec.Fill()
	return nil
}

// Finish ends recording. The surface must not be drawn on afterwards.
func (s *Surface) Finish() *recording.Recording {
	return s.rec.FinishRecording()
}

// Render records one frame of r at the given size.
func Render(r ruler.Renderable, width, height int) (*recording.Recording, error) {
	s := New(width, height)
	if err := r.Render(s); err != nil {
		return nil, fmt.Errorf("record: render: %w", err)
	}
	return s.Finish(), nil
}

// Export plays rec back to the named backend and writes its output to w.
// Backends other than "raster" must be registered by importing them.
func Export(rec *recording.Recording, backend string, w io.Writer) (int64, error) {
	b, err := recording.NewBackend(backend)
	if err != nil {
		return 0, fmt.Errorf("record: %w", err)
	}
	wb, ok := b.(recording.WriterBackend)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrNotWritable, backend)
	}
	if err := rec.Playback(wb); err != nil {
		return 0, fmt.Errorf("record: playback to %s: %w", backend, err)
	}
	ruler.Logger().Debug("record: exported frame", "backend", backend, "commands", len(rec.Commands()))
	return wb.WriteTo(w)
}
