package ruler

import (
	"errors"
	"fmt"
)

// Errors reported by calibration. Neither is fatal: a frame that cannot be
// calibrated is drawn without ticks or pointer and the next frame retries.
var (
	// ErrCalibrationUnavailable is returned when no display metrics are
	// attached to the drawing surface.
	ErrCalibrationUnavailable = errors.New("ruler: display metrics unavailable")

	// ErrInvalidDensity is returned when the display reports a density that
	// is not a positive finite number. It wraps ErrCalibrationUnavailable.
	ErrInvalidDensity = fmt.Errorf("%w: invalid density", ErrCalibrationUnavailable)
)
