package dfpmath

import (
	"fmt"

	"github.com/govalues/decimal"
)

// NormalizeAngle reduces an angle in radians to the half-open interval
// [0, 2*Pi), regardless of the sign or magnitude of x.
// The reduction uses the exact decimal remainder against [TwoPi], so no
// accuracy is lost even for inputs many turns away from the interval.
// NormalizeAngle is idempotent.
func NormalizeAngle(x decimal.Decimal) (decimal.Decimal, error) {
	_, r, err := x.QuoRem(TwoPi)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("normalizing angle %q: %w", x, err)
	}
	if r.IsNeg() {
		r, err = r.Add(TwoPi)
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("normalizing angle %q: %w", x, err)
		}
		// For a remainder within half an ULP of zero the sum rounds up to
		// 2*Pi itself, which is congruent to 0 and must wrap to keep the
		// result inside [0, 2*Pi).
		if r.Cmp(TwoPi) >= 0 {
			return decimal.Zero, nil
		}
	}
	return r, nil
}

// NormalizeAngleDeg reduces an angle in degrees to the half-open interval
// [0, 360), regardless of the sign or magnitude of x.
// NormalizeAngleDeg is idempotent.
func NormalizeAngleDeg(x decimal.Decimal) (decimal.Decimal, error) {
	_, r, err := x.QuoRem(deg360)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("normalizing angle %q: %w", x, err)
	}
	if r.IsNeg() {
		r, err = r.Add(deg360)
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("normalizing angle %q: %w", x, err)
		}
		// See NormalizeAngle: a near-zero remainder can round up to a full
		// turn, which wraps to 0.
		if r.Cmp(deg360) >= 0 {
			return decimal.Zero, nil
		}
	}
	return r, nil
}

// ToRad converts an angle in degrees to radians.
//
// Angles that are exact multiples of 360, 270, 180, 90, 45, or 15 degrees
// (checked in that priority order) are converted as exact multiples of the
// corresponding landmark constant.
// This avoids the rounding that the general formula deg * Pi / 180 would
// introduce at precision-sensitive angles, so that, for example,
// ToRad(180) yields [Pi] exactly.
// All other angles fall back to the general formula.
func ToRad(deg decimal.Decimal) (decimal.Decimal, error) {
	for _, lm := range radLandmarks {
		q, r, err := deg.QuoRem(lm.deg)
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("converting %q to radians: %w", deg, err)
		}
		if !r.IsZero() {
			continue
		}
		f, err := lm.rad.Mul(q)
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("converting %q to radians: %w", deg, err)
		}
		return f, nil
	}
	f, err := deg.Mul(Pi)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %q to radians: %w", deg, err)
	}
	f, err = f.Quo(deg180)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %q to radians: %w", deg, err)
	}
	return f, nil
}

// ToDeg converts an angle in radians to degrees by a single multiplication
// with the precomputed ratio 180 / Pi.
// Unlike [ToRad], no landmark special-casing is applied.
func ToDeg(rad decimal.Decimal) (decimal.Decimal, error) {
	f, err := rad.Mul(degPerRad)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %q to degrees: %w", rad, err)
	}
	return f, nil
}
