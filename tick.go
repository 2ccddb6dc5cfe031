package ruler

import (
	"math"
	"strconv"
)

// Weight is the visual prominence of a tick. Tiers are ordered from the
// most to the least prominent.
type Weight uint8

const (
	// WeightUnit marks a whole inch or a whole centimetre. Unit ticks are
	// labeled and stroked with the accent color.
	WeightUnit Weight = iota

	// WeightHalf marks half an inch or 5 mm.
	WeightHalf

	// WeightQuarter marks a quarter or three quarters of an inch.
	WeightQuarter

	// WeightMinor marks every other sixteenth of an inch or millimetre.
	WeightMinor
)

// String returns the weight name.
func (w Weight) String() string {
	switch w {
	case WeightUnit:
		return "unit"
	case WeightHalf:
		return "half"
	case WeightQuarter:
		return "quarter"
	case WeightMinor:
		return "minor"
	default:
		return "unknown"
	}
}

// LengthFraction is the stroke length of the tier as a fraction of the
// cross-axis extent. Fractions strictly decrease from WeightUnit to
// WeightMinor.
func (w Weight) LengthFraction() float64 {
	switch w {
	case WeightUnit:
		return 1.0 / 4
	case WeightHalf:
		return 1.0 / 8
	case WeightQuarter:
		return 1.0 / 16
	default:
		return 1.0 / 32
	}
}

// TickMark is one graduation of the ruler.
type TickMark struct {
	// Index is the tick's ordinal from the zero edge.
	Index int

	// Inches is the physical position from the zero edge.
	Inches float64

	// Value is the position in the active unit (inches or centimetres).
	Value float64

	Weight  Weight
	Labeled bool
	Label   string
}

// Classify returns the weight of a tick at position, measured in whole
// units (inches for the imperial ruler). It depends only on position mod 1.
func Classify(position float64) Weight {
	f := math.Mod(position, 1)
	if f < 0 {
		f++
	}
	switch f {
	case 0:
		return WeightUnit
	case 0.5:
		return WeightHalf
	case 0.25, 0.75:
		return WeightQuarter
	default:
		return WeightMinor
	}
}

// classifyIndex classifies the index-th tick of a ruler with perUnit ticks
// per labeled unit. Integer arithmetic keeps boundaries exact.
func classifyIndex(index, perUnit int) Weight {
	r := index % perUnit
	switch {
	case r == 0:
		return WeightUnit
	case 2*r == perUnit:
		return WeightHalf
	case 4*r == perUnit, 4*r == 3*perUnit:
		return WeightQuarter
	default:
		return WeightMinor
	}
}

// MaxTicks bounds the length of a generated sequence. A real display never
// gets close; it guards against nonsense densities.
const MaxTicks = 1 << 16

// TickCount returns the number of tick indices covering the extent, capped
// at MaxTicks.
func TickCount(extentInches float64, u UnitSystem) int {
	extent := sanitizeExtent(extentInches) * u.unitsPerInch()
	per := float64(u.stepsPerUnit())
	if extent*per >= MaxTicks {
		return MaxTicks
	}
	n := int(math.Ceil(extent * per))
	// Ceil can land one past or short of the boundary when extent*per
	// rounds; settle with the same comparison Generate uses.
	for n > 0 && float64(n-1)/per >= extent {
		n--
	}
	for float64(n)/per < extent {
		n++
	}
	return n
}

// Generate returns the ticks covering [0, extentInches) in strictly
// increasing position order. Positions are computed from the tick index
// so that unit, half and quarter boundaries compare exactly.
//
// A negative, NaN or infinite extent yields no ticks.
func Generate(extentInches float64, u UnitSystem) []TickMark {
	n := TickCount(extentInches, u)
	if n == 0 {
		return nil
	}
	per := u.stepsPerUnit()
	upi := u.unitsPerInch()

	ticks := make([]TickMark, n)
	for i := range ticks {
		value := float64(i) / float64(per)
		t := TickMark{
			Index:  i,
			Inches: value / upi,
			Value:  value,
			Weight: classifyIndex(i, per),
		}
		if t.Weight == WeightUnit {
			t.Labeled = true
			t.Label = strconv.Itoa(i / per)
		}
		ticks[i] = t
	}
	// The metric inch conversion may round the last position onto the edge.
	for len(ticks) > 0 && ticks[len(ticks)-1].Inches >= extentInches {
		ticks = ticks[:len(ticks)-1]
	}
	return ticks
}

func sanitizeExtent(e float64) float64 {
	if !(e > 0) || math.IsInf(e, 1) {
		return 0
	}
	return e
}
