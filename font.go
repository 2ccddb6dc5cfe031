package ruler

import (
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
)

var (
	labelSourceOnce sync.Once
	labelSource     *text.FontSource
)

// defaultFace returns the bundled bold Go font at size, or nil if the font
// could not be parsed (labels are then skipped by the surface).
func defaultFace(size float64) text.Face {
	labelSourceOnce.Do(func() {
		src, err := text.NewFontSource(gobold.TTF)
		if err != nil {
			Logger().Warn("ruler: bundled label font unavailable", "err", err)
			return
		}
		labelSource = src
	})
	if labelSource == nil {
		return nil
	}
	return labelSource.Face(size)
}
