package dfpmath

import (
	"fmt"

	"github.com/govalues/decimal"
)

// MustSin is like [Sin] but panics if computing error.
func MustSin(x decimal.Decimal) decimal.Decimal {
	f, err := Sin(x)
	if err != nil {
		panic(fmt.Sprintf("MustSin(%v) failed: %v", x, err))
	}
	return f
}

// MustCos is like [Cos] but panics if computing error.
func MustCos(x decimal.Decimal) decimal.Decimal {
	f, err := Cos(x)
	if err != nil {
		panic(fmt.Sprintf("MustCos(%v) failed: %v", x, err))
	}
	return f
}

// MustTan is like [Tan] but panics if computing error.
func MustTan(x decimal.Decimal) decimal.Decimal {
	f, err := Tan(x)
	if err != nil {
		panic(fmt.Sprintf("MustTan(%v) failed: %v", x, err))
	}
	return f
}

// MustAsin is like [Asin] but panics if computing error.
func MustAsin(z decimal.Decimal) decimal.Decimal {
	f, err := Asin(z)
	if err != nil {
		panic(fmt.Sprintf("MustAsin(%v) failed: %v", z, err))
	}
	return f
}

// MustAcos is like [Acos] but panics if computing error.
func MustAcos(z decimal.Decimal) decimal.Decimal {
	f, err := Acos(z)
	if err != nil {
		panic(fmt.Sprintf("MustAcos(%v) failed: %v", z, err))
	}
	return f
}

// MustAtan is like [Atan] but panics if computing error.
func MustAtan(x decimal.Decimal) decimal.Decimal {
	f, err := Atan(x)
	if err != nil {
		panic(fmt.Sprintf("MustAtan(%v) failed: %v", x, err))
	}
	return f
}

// MustAtan2 is like [Atan2] but panics if computing error.
func MustAtan2(y, x decimal.Decimal) decimal.Decimal {
	f, err := Atan2(y, x)
	if err != nil {
		panic(fmt.Sprintf("MustAtan2(%v, %v) failed: %v", y, x, err))
	}
	return f
}

// MustToRad is like [ToRad] but panics if computing error.
func MustToRad(deg decimal.Decimal) decimal.Decimal {
	f, err := ToRad(deg)
	if err != nil {
		panic(fmt.Sprintf("MustToRad(%v) failed: %v", deg, err))
	}
	return f
}

// MustToDeg is like [ToDeg] but panics if computing error.
func MustToDeg(rad decimal.Decimal) decimal.Decimal {
	f, err := ToDeg(rad)
	if err != nil {
		panic(fmt.Sprintf("MustToDeg(%v) failed: %v", rad, err))
	}
	return f
}

// MustNormalizeAngle is like [NormalizeAngle] but panics if computing error.
func MustNormalizeAngle(x decimal.Decimal) decimal.Decimal {
	f, err := NormalizeAngle(x)
	if err != nil {
		panic(fmt.Sprintf("MustNormalizeAngle(%v) failed: %v", x, err))
	}
	return f
}

// MustNormalizeAngleDeg is like [NormalizeAngleDeg] but panics if computing error.
func MustNormalizeAngleDeg(x decimal.Decimal) decimal.Decimal {
	f, err := NormalizeAngleDeg(x)
	if err != nil {
		panic(fmt.Sprintf("MustNormalizeAngleDeg(%v) failed: %v", x, err))
	}
	return f
}
