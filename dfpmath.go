package dfpmath

import "errors"

var (
	// ErrDomainRange indicates an argument outside the mathematically valid
	// input domain of a function, such as [Asin] or [Acos] of a value
	// outside [-1, 1].
	ErrDomainRange = errors.New("argument out of range")

	// ErrTangentUndefined indicates that [Tan] was evaluated at an angle
	// whose cosine is exactly zero, such as Pi/2 or 3*Pi/2.
	ErrTangentUndefined = errors.New("tangent undefined")

	errNoConvergence = errors.New("series did not converge")
)

// maxSeriesTerms caps every series loop.
// All series used in this package have strictly shrinking terms that
// underflow to zero at the maximum decimal scale long before the cap is reached,
// so hitting it indicates a defect rather than a slow input.
const maxSeriesTerms = 500
