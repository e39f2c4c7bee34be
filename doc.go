/*
Package dfpmath implements trigonometric and inverse trigonometric functions
for fixed-precision decimal numbers.
It operates on the exact base-10 [decimal.Decimal] type and computes every
transcendental result to the full precision of that type, without passing
through binary floating point at any step.

# Functions

The package provides:

  - direct trigonometry:
    [Sin], [Cos], [Tan].
  - inverse trigonometry:
    [Asin], [Acos], [Atan], [Atan2].
  - angle utilities:
    [NormalizeAngle], [NormalizeAngleDeg], [ToRad], [ToDeg].

All functions are pure: they share no mutable state, carry nothing across
calls, and are safe for concurrent use by multiple goroutines.

# Evaluation

Transcendental values are computed by iterative series evaluation:

 1. The argument is reduced to a single turn using the exact decimal
    remainder against [TwoPi], so inputs of any sign and magnitude lose no
    accuracy during reduction.
 2. Landmark angles such as 0, Pi/2, Pi, or 3*Pi/2 are short-circuited to
    their exact closed-form results, which a series could only approximate.
 3. All remaining arguments fall through to a series loop that accumulates
    terms until a term underflows to exactly zero at the working scale.
    Because the decimal type is exact with a hard scale limit, this
    underflow is a well-defined, always reachable event, and the series
    forms are chosen so that their terms shrink strictly.

[Sin] and [Cos] use the alternating Maclaurin series.
[Atan] uses Euler's accelerated series after folding arguments with
magnitude above 1 into (-1, 1), where that series converges quickly.
[Asin] and [Acos] carry no series of their own: they reduce to [Atan]
through closed-form identities built on the correctly rounded decimal
square root, because the direct arc sine series converges unacceptably
slowly near ±1.
[Tan] and [Atan2] are composed from the functions above.

# Conversions

[ToRad] recognizes degrees that are exact multiples of 360, 270, 180, 90,
45, or 15 and converts them as exact multiples of the matching landmark
constant, so ToRad(180) is [Pi] exactly and ToRad(90) is [PiHalf] exactly.
Only non-landmark angles pay the rounding of the general formula
deg * Pi / 180.

# Errors

Functions fail atomically: a call either succeeds with a result exact to
the working scale or returns an error before producing any value.

  - [ErrDomainRange] reports an argument outside the valid input domain,
    for example Asin(2).
  - [ErrTangentUndefined] reports [Tan] at an exact cosine zero, such as
    Pi/2.
    The decimal type has no infinity or NaN to return instead, and the
    singularity check is an exact equality, never an epsilon comparison.

Errors from the underlying decimal arithmetic, such as overflow of an
extreme argument, are wrapped and propagated unchanged.
No error is retried or recovered internally.

[decimal.Decimal]: https://pkg.go.dev/github.com/govalues/decimal#Decimal
*/
package dfpmath
