package cmd

import (
	"github.com/spf13/cobra"

	dfpmath "github.com/0xF6/libdfpmath"
)

func init() {
	for _, c := range []*cobra.Command{sinCmd, cosCmd, tanCmd} {
		c.Flags().BoolVar(&degrees, "deg", false, "treat the angle as degrees")
		rootCmd.AddCommand(c)
	}
	rootCmd.AddCommand(asinCmd, acosCmd, atanCmd, atan2Cmd)
}

var sinCmd = &cobra.Command{
	Use:   "sin <angle>",
	Short: "Sine of an angle",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAngle(args[0], dfpmath.Sin)
	},
}

var cosCmd = &cobra.Command{
	Use:   "cos <angle>",
	Short: "Cosine of an angle",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAngle(args[0], dfpmath.Cos)
	},
}

var tanCmd = &cobra.Command{
	Use:   "tan <angle>",
	Short: "Tangent of an angle",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAngle(args[0], dfpmath.Tan)
	},
}

var asinCmd = &cobra.Command{
	Use:   "asin <ratio>",
	Short: "Arc sine of a ratio in [-1, 1]",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUnary(args[0], dfpmath.Asin)
	},
}

var acosCmd = &cobra.Command{
	Use:   "acos <ratio>",
	Short: "Arc cosine of a ratio in [-1, 1]",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUnary(args[0], dfpmath.Acos)
	},
}

var atanCmd = &cobra.Command{
	Use:   "atan <ratio>",
	Short: "Arc tangent of a ratio",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUnary(args[0], dfpmath.Atan)
	},
}

var atan2Cmd = &cobra.Command{
	Use:   "atan2 <y> <x>",
	Short: "Four-quadrant angle of the point (x, y)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		y, err := parseArg(args[0])
		if err != nil {
			return err
		}
		x, err := parseArg(args[1])
		if err != nil {
			return err
		}
		f, err := dfpmath.Atan2(y, x)
		if err != nil {
			return err
		}
		printResult(f)
		return nil
	},
}
