package dfpmath

import "github.com/govalues/decimal"

// Landmark angles, accurate to the full precision of [decimal.Decimal].
// They are initialized once at package load and must not be modified.
var (
	// Pi is the circle constant, equal to [decimal.Pi].
	Pi = decimal.Pi
	// TwoPi is a full turn, 2 * Pi.
	TwoPi = decimal.MustParse("6.283185307179586477")
	// PiHalf is a quarter turn, Pi / 2.
	PiHalf = decimal.MustParse("1.570796326794896619")
	// ThreePiHalf is three quarters of a turn, 3 * Pi / 2.
	ThreePiHalf = decimal.MustParse("4.712388980384689858")
	// PiQuarter is an eighth of a turn, Pi / 4.
	PiQuarter = decimal.MustParse("0.7853981633974483096")
	// PiTwelfth is Pi / 12, the radian measure of 15 degrees.
	PiTwelfth = decimal.MustParse("0.2617993877991494365")
)

// degPerRad is the conversion ratio 180 / Pi used by [ToDeg].
var degPerRad = decimal.MustParse("57.29577951308232088")

// Degree landmarks for which [ToRad] bypasses the general conversion
// formula, paired with the radian value of one such landmark unit.
// The order defines the dispatch priority.
var radLandmarks = []struct {
	deg decimal.Decimal
	rad decimal.Decimal
}{
	{decimal.MustNew(360, 0), TwoPi},
	{decimal.MustNew(270, 0), ThreePiHalf},
	{decimal.MustNew(180, 0), Pi},
	{decimal.MustNew(90, 0), PiHalf},
	{decimal.MustNew(45, 0), PiQuarter},
	{decimal.MustNew(15, 0), PiTwelfth},
}

var (
	deg180 = decimal.MustNew(180, 0)
	deg360 = decimal.MustNew(360, 0)
)
