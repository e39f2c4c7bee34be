package dfpmath

import (
	"fmt"

	"github.com/govalues/decimal"
)

// Sin computes the sine of an angle in radians.
//
// The angle is first reduced by the exact decimal remainder against [TwoPi],
// which bounds its magnitude to a single turn without forcing it into
// [0, 2*Pi).
// Landmark angles whose sine is exactly 0, 1, or -1 are returned as exact
// identities.
// All other angles are evaluated with an alternating Maclaurin series that
// terminates when a term underflows to zero at the working scale.
func Sin(x decimal.Decimal) (decimal.Decimal, error) {
	_, r, err := x.QuoRem(TwoPi)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("sin(%q): %w", x, err)
	}

	// sin(-a) == -sin(a), so the landmark checks and the series only ever
	// see a non-negative angle below 2*Pi.
	neg := r.IsNeg()
	a := r.Abs()

	var f decimal.Decimal
	switch {
	case a.IsZero(), a.Cmp(Pi) == 0:
		f = decimal.Zero
	case a.Cmp(PiHalf) == 0:
		f = decimal.One
	case a.Cmp(ThreePiHalf) == 0:
		f = decimal.NegOne
	default:
		f, err = sinSeries(a)
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("sin(%q): %w", x, err)
		}
	}
	if neg {
		f = f.Neg()
	}
	return f, nil
}

// Cos computes the cosine of an angle in radians.
// The evaluation strategy mirrors [Sin]: exact reduction against [TwoPi],
// exact landmark identities, then a Maclaurin series.
func Cos(x decimal.Decimal) (decimal.Decimal, error) {
	_, r, err := x.QuoRem(TwoPi)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("cos(%q): %w", x, err)
	}

	// cos(-a) == cos(a).
	a := r.Abs()

	switch {
	case a.IsZero():
		return decimal.One, nil
	case a.Cmp(Pi) == 0:
		return decimal.NegOne, nil
	case a.Cmp(PiHalf) == 0, a.Cmp(ThreePiHalf) == 0:
		return decimal.Zero, nil
	}
	f, err := cosSeries(a)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("cos(%q): %w", x, err)
	}
	return f, nil
}

// Tan computes the tangent of an angle in radians as Sin(x) / Cos(x).
// It returns [ErrTangentUndefined] if the cosine of the angle is exactly
// zero, which happens at the representable landmark poles Pi/2, 3*Pi/2,
// and their full-turn translates.
func Tan(x decimal.Decimal) (decimal.Decimal, error) {
	s, err := Sin(x)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("tan(%q): %w", x, err)
	}
	c, err := Cos(x)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("tan(%q): %w", x, err)
	}
	// The decimal type has no infinity to return at a pole.
	// The check is an exact equality: the reduction and landmark logic in
	// Cos make a true zero reachable, and no epsilon is correct here.
	if c.IsZero() {
		return decimal.Decimal{}, fmt.Errorf("tan(%q): %w", x, ErrTangentUndefined)
	}
	f, err := s.Quo(c)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("tan(%q): %w", x, err)
	}
	return f, nil
}

// sinSeries evaluates sin(x) = x - x^3/3! + x^5/5! - ... for 0 < x < 2*Pi.
// Each term is derived from the previous one by multiplying by -x^2 and
// dividing by the next two factorial factors, so no power or factorial is
// ever recomputed from scratch.
// The series alternates with strictly shrinking terms, so the sum at
// termination is within one unit of the working scale of the true value.
func sinSeries(x decimal.Decimal) (decimal.Decimal, error) {
	negX2, err := x.Mul(x)
	if err != nil {
		return decimal.Decimal{}, err
	}
	negX2 = negX2.Neg()

	sum, term := x, x
	for k := 1; ; k++ {
		if k > maxSeriesTerms {
			return decimal.Decimal{}, errNoConvergence
		}
		term, err = term.Mul(negX2)
		if err != nil {
			return decimal.Decimal{}, err
		}
		term, err = term.Quo(decimal.MustNew(int64(2*k*(2*k+1)), 0))
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

// cosSeries evaluates cos(x) = 1 - x^2/2! + x^4/4! - ... for 0 < x < 2*Pi.
func cosSeries(x decimal.Decimal) (decimal.Decimal, error) {
	negX2, err := x.Mul(x)
	if err != nil {
		return decimal.Decimal{}, err
	}
	negX2 = negX2.Neg()

	sum, term := decimal.One, decimal.One
	for k := 1; ; k++ {
		if k > maxSeriesTerms {
			return decimal.Decimal{}, errNoConvergence
		}
		term, err = term.Mul(negX2)
		if err != nil {
			return decimal.Decimal{}, err
		}
		term, err = term.Quo(decimal.MustNew(int64((2*k-1)*(2*k)), 0))
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
