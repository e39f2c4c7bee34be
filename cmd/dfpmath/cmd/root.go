package cmd

import (
	"fmt"

	"github.com/govalues/decimal"
	"github.com/spf13/cobra"

	dfpmath "github.com/0xF6/libdfpmath"
)

var (
	scale   int
	degrees bool
)

var rootCmd = &cobra.Command{
	Use:   "dfpmath",
	Short: "Fixed-precision decimal trigonometry",
	Long: `dfpmath evaluates trigonometric and inverse trigonometric functions
on exact base-10 decimals, without passing through binary floating point.

Angle arguments are radians unless --deg is given.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().IntVar(&scale, "scale", -1, "round results to this many digits after the decimal point")
}

func parseArg(s string) (decimal.Decimal, error) {
	d, err := decimal.Parse(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parsing %q: %w", s, err)
	}
	return d, nil
}

// runAngle evaluates a function of one angle, honoring --deg.
func runAngle(arg string, fn func(decimal.Decimal) (decimal.Decimal, error)) error {
	x, err := parseArg(arg)
	if err != nil {
		return err
	}
	if degrees {
		x, err = dfpmath.ToRad(x)
		if err != nil {
			return err
		}
	}
	f, err := fn(x)
	if err != nil {
		return err
	}
	printResult(f)
	return nil
}

// runUnary evaluates a function of one plain decimal argument.
func runUnary(arg string, fn func(decimal.Decimal) (decimal.Decimal, error)) error {
	x, err := parseArg(arg)
	if err != nil {
		return err
	}
	f, err := fn(x)
	if err != nil {
		return err
	}
	printResult(f)
	return nil
}

func printResult(d decimal.Decimal) {
	if scale >= 0 && scale <= decimal.MaxScale && scale < d.Scale() {
		d = d.Round(scale)
	}
	fmt.Println(d)
}
