package ruler

// Physical conversion factors.
const (
	CmPerInch = 2.54
	MmPerInch = 25.4
)

// UnitSystem selects the graduation of the ruler.
type UnitSystem uint8

const (
	// Imperial graduates every 1/16 inch and labels whole inches.
	Imperial UnitSystem = iota

	// Metric graduates every millimetre and labels whole centimetres.
	Metric
)

// String returns the unit system name.
func (u UnitSystem) String() string {
	switch u {
	case Imperial:
		return "imperial"
	case Metric:
		return "metric"
	default:
		return "unknown"
	}
}

// Toggle returns the other unit system.
func (u UnitSystem) Toggle() UnitSystem {
	if u == Metric {
		return Imperial
	}
	return Metric
}

// stepsPerUnit is the number of ticks between two labeled ticks.
func (u UnitSystem) stepsPerUnit() int {
	if u == Metric {
		return 10
	}
	return 16
}

// unitsPerInch converts an inch length into the labeled unit.
func (u UnitSystem) unitsPerInch() float64 {
	if u == Metric {
		return CmPerInch
	}
	return 1
}

// Axis is the measuring direction of the ruler.
type Axis uint8

const (
	// Horizontal measures along the surface width. Ticks rise from the
	// bottom edge.
	Horizontal Axis = iota

	// Vertical measures along the surface height. Ticks extend from the
	// left edge and labels are rotated 90 degrees.
	Vertical
)

// String returns the axis name.
func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "unknown"
	}
}
