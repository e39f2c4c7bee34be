package cmd

import (
	"github.com/spf13/cobra"

	dfpmath "github.com/0xF6/libdfpmath"
)

func init() {
	rootCmd.AddCommand(toradCmd, todegCmd, normCmd, normdegCmd)
}

var toradCmd = &cobra.Command{
	Use:   "torad <degrees>",
	Short: "Convert degrees to radians",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUnary(args[0], dfpmath.ToRad)
	},
}

var todegCmd = &cobra.Command{
	Use:   "todeg <radians>",
	Short: "Convert radians to degrees",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUnary(args[0], dfpmath.ToDeg)
	},
}

var normCmd = &cobra.Command{
	Use:   "norm <radians>",
	Short: "Normalize an angle to [0, 2*Pi)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUnary(args[0], dfpmath.NormalizeAngle)
	},
}

var normdegCmd = &cobra.Command{
	Use:   "normdeg <degrees>",
	Short: "Normalize an angle to [0, 360)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUnary(args[0], dfpmath.NormalizeAngleDeg)
	},
}
