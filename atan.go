package dfpmath

import (
	"fmt"

	"github.com/govalues/decimal"
)

// Atan computes the arc tangent of x, returning an angle in (-Pi/2, Pi/2).
//
// The values -1, 0, and 1 are returned as the exact landmarks -Pi/4, 0,
// and Pi/4.
// Arguments with magnitude above 1 are folded once through the identity
// atan(x) = ±Pi/2 - atan(1/x), whose reciprocal argument always lands
// inside (-1, 1), the domain where the series converges quickly.
func Atan(x decimal.Decimal) (decimal.Decimal, error) {
	switch {
	case x.IsZero():
		return decimal.Zero, nil
	case x.Cmp(decimal.One) == 0:
		return PiQuarter, nil
	case x.Cmp(decimal.NegOne) == 0:
		return PiQuarter.Neg(), nil
	}
	if x.WithinOne() {
		f, err := atanSeries(x)
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("atan(%q): %w", x, err)
		}
		return f, nil
	}

	// |x| > 1: one fold, never more, since |1/x| < 1 here.
	inv, err := x.Inv()
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("atan(%q): %w", x, err)
	}
	f, err := atanSeries(inv)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("atan(%q): %w", x, err)
	}
	half := PiHalf
	if x.IsNeg() {
		half = PiHalf.Neg()
	}
	f, err = half.Sub(f)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("atan(%q): %w", x, err)
	}
	return f, nil
}

// Atan2 computes the angle of the point (x, y) in the plane, in the
// four-quadrant range (-Pi, Pi].
//
// The axis-aligned degeneracies are resolved explicitly:
//
//	Atan2(0, 0)  = 0
//	Atan2(y, 0)  = ±Pi/2 by the sign of y
//	Atan2(0, x)  = 0 for x > 0, Pi for x < 0
//
// The origin maps to 0 by convention, mirroring the usual treatment of the
// otherwise undefined point.
// All other points are computed as Atan(y/x), shifted by ±Pi when x lies in
// the negative half-plane.
// A point so extreme that the quotient leaves the decimal range, or that
// rounding would carry the result onto the excluded -Pi boundary, resolves
// to the same angle as the nearest axis.
func Atan2(y, x decimal.Decimal) (decimal.Decimal, error) {
	switch {
	case x.IsZero() && y.IsZero():
		return decimal.Zero, nil
	case x.IsZero():
		if y.IsNeg() {
			return PiHalf.Neg(), nil
		}
		return PiHalf, nil
	case y.IsZero():
		if x.IsNeg() {
			return Pi, nil
		}
		return decimal.Zero, nil
	}

	// With both coordinates nonzero the quotient can only fail by
	// overflow, which means |y/x| >= 10^19 and the direction is within
	// half an ULP of the vertical; resolve it by the x = 0 convention.
	q, err := y.Quo(x)
	if err != nil {
		if y.IsNeg() {
			return PiHalf.Neg(), nil
		}
		return PiHalf, nil
	}
	f, err := Atan(q)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("atan2(%q, %q): %w", y, x, err)
	}
	if x.IsNeg() {
		if y.IsNeg() {
			f, err = f.Sub(Pi)
		} else {
			f, err = f.Add(Pi)
		}
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("atan2(%q, %q): %w", y, x, err)
		}
		// For a point hugging the negative x axis from below, y/x either
		// underflows to zero or leaves a shifted result that rounds to
		// exactly -Pi. Such a point is indistinguishable from one on the
		// axis, which maps to Pi, keeping the result inside (-Pi, Pi].
		if f.Cmp(Pi.Neg()) <= 0 {
			return Pi, nil
		}
	}
	return f, nil
}

// atanSeries evaluates atan(x) for |x| < 1 using Euler's accelerated form:
//
//	y      = x^2 / (1 + x^2)
//	atan x = x/(1+x^2) * (1 + 2/3 y + 2*4/(3*5) y^2 + ...)
//
// Every term carries the sign of x and shrinks by at least y <= 1/2 per
// step, so unlike the naive Maclaurin series this converges quickly even
// near ±1.
// The sum terminates when a term underflows to zero at the working scale.
func atanSeries(x decimal.Decimal) (decimal.Decimal, error) {
	x2, err := x.Mul(x)
	if err != nil {
		return decimal.Decimal{}, err
	}
	onePlus, err := decimal.One.Add(x2)
	if err != nil {
		return decimal.Decimal{}, err
	}
	y, err := x2.Quo(onePlus)
	if err != nil {
		return decimal.Decimal{}, err
	}

	term, err := x.Quo(onePlus)
	if err != nil {
		return decimal.Decimal{}, err
	}
	sum := term
	for k := 1; ; k++ {
		if k > maxSeriesTerms {
			return decimal.Decimal{}, errNoConvergence
		}
		term, err = term.Mul(y)
		if err != nil {
			return decimal.Decimal{}, err
		}
		term, err = term.Mul(decimal.MustNew(int64(2*k), 0))
		if err != nil {
			return decimal.Decimal{}, err
		}
		term, err = term.Quo(decimal.MustNew(int64(2*k+1), 0))
		if err != nil {
			return decimal.Decimal{}, err
		}
		if term.IsZero() {
			return sum, nil
		}
		sum, err = sum.Add(term)
		if err != nil {
			return decimal.Decimal{}, err
		}
	}
}
