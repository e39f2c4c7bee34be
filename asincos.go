package dfpmath

import (
	"fmt"

	"github.com/govalues/decimal"
)

// Asin computes the arc sine of z, returning an angle in [-Pi/2, Pi/2].
// It returns [ErrDomainRange] if z is outside [-1, 1].
//
// Apart from the exact landmarks -1, 0, and 1, the result is computed
// through the identity
//
//	asin(z) = 2 * atan(z / (1 + sqrt(1 - z^2)))
//
// rather than a dedicated series, because the Taylor series for arc sine
// converges unacceptably slowly near ±1.
func Asin(z decimal.Decimal) (decimal.Decimal, error) {
	if z.Abs().Cmp(decimal.One) > 0 {
		return decimal.Decimal{}, fmt.Errorf("asin(%q): %w", z, ErrDomainRange)
	}
	switch {
	case z.IsZero():
		return decimal.Zero, nil
	case z.Cmp(decimal.One) == 0:
		return PiHalf, nil
	case z.Cmp(decimal.NegOne) == 0:
		return PiHalf.Neg(), nil
	}

	arg, err := asinAtanArg(z)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("asin(%q): %w", z, err)
	}
	f, err := Atan(arg)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("asin(%q): %w", z, err)
	}
	f, err = f.Mul(decimal.Two)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("asin(%q): %w", z, err)
	}
	return f, nil
}

// Acos computes the arc cosine of z, returning an angle in [0, Pi].
// It returns [ErrDomainRange] if z is outside [-1, 1].
//
// Like [Asin], the general case reduces to the arc tangent:
//
//	acos(z) = 2 * atan(sqrt(1 - z^2) / (1 + z))
func Acos(z decimal.Decimal) (decimal.Decimal, error) {
	if z.Abs().Cmp(decimal.One) > 0 {
		return decimal.Decimal{}, fmt.Errorf("acos(%q): %w", z, ErrDomainRange)
	}
	switch {
	case z.Cmp(decimal.One) == 0:
		return decimal.Zero, nil
	case z.IsZero():
		return PiHalf, nil
	case z.Cmp(decimal.NegOne) == 0:
		return Pi, nil
	}

	s, err := complementRoot(z)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("acos(%q): %w", z, err)
	}
	den, err := decimal.One.Add(z)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("acos(%q): %w", z, err)
	}
	arg, err := s.Quo(den)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("acos(%q): %w", z, err)
	}
	f, err := Atan(arg)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("acos(%q): %w", z, err)
	}
	f, err = f.Mul(decimal.Two)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("acos(%q): %w", z, err)
	}
	return f, nil
}

// asinAtanArg computes z / (1 + sqrt(1 - z^2)) for 0 < |z| < 1.
func asinAtanArg(z decimal.Decimal) (decimal.Decimal, error) {
	s, err := complementRoot(z)
	if err != nil {
		return decimal.Decimal{}, err
	}
	den, err := decimal.One.Add(s)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return z.Quo(den)
}

// complementRoot computes sqrt(1 - z^2) for |z| <= 1, relying on the
// correctly rounded decimal square root of the host type.
func complementRoot(z decimal.Decimal) (decimal.Decimal, error) {
	z2, err := z.Mul(z)
	if err != nil {
		return decimal.Decimal{}, err
	}
	rad, err := decimal.One.Sub(z2)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return rad.Sqrt()
}
