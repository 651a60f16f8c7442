// colmask - column name anonymizer
//
// A simple Go CLI tool that replaces sensitive column names in database
// table definition files with generic numbered placeholders.
package main

import (
	"os"

	"github.com/fatih/color"

	"github.com/colmask/colmask-go/internal/cli"
)

// Version information (set via ldflags at build time)
// These variables are intentionally unused in code but set via ldflags
var (
	version   = "dev"     //nolint:unused // Set via ldflags
	buildTime = "unknown" //nolint:unused // Set via ldflags
)

func main() {
	if err := cli.Execute(); err != nil {
		errorColor := color.New(color.FgRed, color.Bold)
		_, _ = errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
