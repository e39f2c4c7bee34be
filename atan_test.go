package dfpmath

import (
	"testing"

	"github.com/govalues/decimal"
)

func TestAtan(t *testing.T) {
	t.Run("landmark", func(t *testing.T) {
		tests := []struct {
			x    string
			want decimal.Decimal
		}{
			{"0", decimal.Zero},
			{"1", PiQuarter},
			{"-1", PiQuarter.Neg()},
			{"1.000", PiQuarter},
			{"-1.0", PiQuarter.Neg()},
		}
		for _, tt := range tests {
			x := decimal.MustParse(tt.x)
			got, err := Atan(x)
			if err != nil {
				t.Errorf("Atan(%q) failed: %v", x, err)
				continue
			}
			if got.Cmp(tt.want) != 0 {
				t.Errorf("Atan(%q) = %q, want %q", x, got, tt.want)
			}
		}
	})

	t.Run("series", func(t *testing.T) {
		tests := []struct {
			x, want string
			ulps    int
		}{
			{"0.25", "0.2449786631268641542", 50},
			{"0.5", "0.4636476090008061162", 50},
			{"-0.5", "-0.4636476090008061162", 50},
			{"0.75", "0.6435011087932843868", 50},
			{"0.9999999999999999999", "0.7853981633974483096", 100},
		}
		for _, tt := range tests {
			x := decimal.MustParse(tt.x)
			got, err := Atan(x)
			if err != nil {
				t.Errorf("Atan(%q) failed: %v", x, err)
				continue
			}
			want := decimal.MustParse(tt.want)
			if cmp, err := cmpULP(got, want, tt.ulps); err != nil {
				t.Errorf("cmpULP(%q, %q) failed: %v", got, want, err)
			} else if cmp != 0 {
				t.Errorf("Atan(%q) = %q, want %q", x, got, want)
			}
		}
	})

	t.Run("folded", func(t *testing.T) {
		tests := []struct {
			x, want string
			ulps    int
		}{
			{"2", "1.107148717794090503", 50},
			{"-2", "-1.107148717794090503", 50},
			{"1000", "1.569796327128229753", 50},
			{"-1000", "-1.569796327128229753", 50},
			}
		for _, tt := range tests {
			x := decimal.MustParse(tt.x)
			got, err := Atan(x)
			if err != nil {
				t.Errorf("Atan(%q) failed: %v", x, err)
				continue
			}
			want := decimal.MustParse(tt.want)
			if cmp, err := cmpULP(got, want, tt.ulps); err != nil {
				t.Errorf("cmpULP(%q, %q) failed: %v", got, want, err)
			} else if cmp != 0 {
				t.Errorf("Atan(%q) = %q, want %q", x, got, want)
			}
		}
	})
}

func TestAtan2(t *testing.T) {
	t.Run("axis", func(t *testing.T) {
		tests := []struct {
			y, x string
			want decimal.Decimal
		}{
			{"0", "0", decimal.Zero},
			{"0", "1", decimal.Zero},
			{"0", "2.5", decimal.Zero},
			{"0", "-1", Pi},
			{"1", "0", PiHalf},
			{"2.5", "0", PiHalf},
			{"-1", "0", PiHalf.Neg()},
			{"1", "1", PiQuarter},
			{"-1", "1", PiQuarter.Neg()},
			// Points hugging the x axis: y/x underflows to zero, or the
			// quadrant shift rounds to exactly -Pi, and either way the
			// point resolves like one on the axis.
			{"-0.0000000000000000001", "-9999999999999999999", Pi},
			{"0.0000000000000000001", "-9999999999999999999", Pi},
			{"-3", "-9999999999999999999", Pi},
			{"-0.0000000000000000001", "9999999999999999999", decimal.Zero},
			// The mirrored steep case: y/x overflows the decimal range
			// and the point resolves like one on the y axis.
			{"9999999999999999999", "0.0000000000000000001", PiHalf},
			{"-9999999999999999999", "0.0000000000000000001", PiHalf.Neg()},
			{"9999999999999999999", "-0.0000000000000000001", PiHalf},
		}
		for _, tt := range tests {
			y := decimal.MustParse(tt.y)
			x := decimal.MustParse(tt.x)
			got, err := Atan2(y, x)
			if err != nil {
				t.Errorf("Atan2(%q, %q) failed: %v", y, x, err)
				continue
			}
			if got.Cmp(tt.want) != 0 {
				t.Errorf("Atan2(%q, %q) = %q, want %q", y, x, got, tt.want)
			}
		}
	})

	t.Run("quadrant", func(t *testing.T) {
		tests := []struct {
			y, x, want string
			ulps       int
		}{
			{"1", "-1", "2.356194490192344929", 5},
			{"-1", "-1", "-2.356194490192344929", 5},
			{"1", "2", "0.4636476090008061162", 50},
			{"-1", "2", "-0.4636476090008061162", 50},
			{"3", "-4", "2.498091544796508852", 50},
			{"-3", "-4", "-2.498091544796508852", 50},
			{"2", "1", "1.107148717794090503", 50},
		}
		for _, tt := range tests {
			y := decimal.MustParse(tt.y)
			x := decimal.MustParse(tt.x)
			got, err := Atan2(y, x)
			if err != nil {
				t.Errorf("Atan2(%q, %q) failed: %v", y, x, err)
				continue
			}
			want := decimal.MustParse(tt.want)
			if cmp, err := cmpULP(got, want, tt.ulps); err != nil {
				t.Errorf("cmpULP(%q, %q) failed: %v", got, want, err)
			} else if cmp != 0 {
				t.Errorf("Atan2(%q, %q) = %q, want %q", y, x, got, want)
			}
		}
	})

	t.Run("range", func(t *testing.T) {
		coords := []string{
			"-9999999999999999999", "-3", "-1", "-0.5", "-0.0000000000000000001",
			"0", "0.0000000000000000001", "0.5", "1", "3", "9999999999999999999",
		}
		negPi := Pi.Neg()
		for _, ys := range coords {
			for _, xs := range coords {
				y := decimal.MustParse(ys)
				x := decimal.MustParse(xs)
				got, err := Atan2(y, x)
				if err != nil {
					t.Errorf("Atan2(%q, %q) failed: %v", y, x, err)
					continue
				}
				if got.Cmp(negPi) <= 0 || got.Cmp(Pi) > 0 {
					t.Errorf("Atan2(%q, %q) = %q, want a value in (-Pi, Pi]", y, x, got)
				}
			}
		}
	})
}

func FuzzAtan_Fold(f *testing.F) {
	for _, coef := range []int64{1, -1, 123456789, -987654321, 5000000000000000001} {
		for _, scale := range []int{0, 5, 18, 19} {
			f.Add(coef, scale)
		}
	}

	tlr := decimal.MustParse("0.00000000000000005")

	f.Fuzz(func(t *testing.T, coef int64, scale int) {
		if scale < 0 || scale > decimal.MaxScale {
			t.Skip()
			return
		}
		x, err := decimal.New(coef, scale)
		if err != nil || x.IsZero() {
			t.Skip()
			return
		}
		inv, err := x.Inv()
		if err != nil {
			t.Skip()
			return
		}
		a, err := Atan(x)
		if err != nil {
			t.Errorf("Atan(%q) failed: %v", x, err)
			return
		}
		b, err := Atan(inv)
		if err != nil {
			t.Errorf("Atan(%q) failed: %v", inv, err)
			return
		}
		// atan(x) + atan(1/x) == ±Pi/2, the sign following x.
		sum, err := a.Add(b)
		if err != nil {
			t.Errorf("%q.Add(%q) failed: %v", a, b, err)
			return
		}
		want := PiHalf
		if x.IsNeg() {
			want = PiHalf.Neg()
		}
		dist, err := sum.SubAbs(want)
		if err != nil {
			t.Errorf("%q.SubAbs(%q) failed: %v", sum, want, err)
			return
		}
		if dist.Cmp(tlr) > 0 {
			t.Errorf("Atan(%q) + Atan(%q) = %q, want %q within %q", x, inv, sum, want, tlr)
		}
	})
}
