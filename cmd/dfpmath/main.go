package main

import (
	"os"

	"github.com/0xF6/libdfpmath/cmd/dfpmath/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
