// Package cmd defines the avatar-extract command line interface.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// Options holds shared configuration for the detect and grid subcommands.
type Options struct {
	InputPath  string
	OutputDir  string
	MinRadius  float64
	MaxRadius  float64
	MinDist    float64
	YThreshold float64
	Workers    int
}

// Version is the application version.
const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "avatar-extract",
	Short: "Extract circular avatars from a composite grid image",
	Long: `avatar-extract cuts individual circular avatar images out of a single
composite grid image.

Two strategies are available: "detect" locates circles geometrically
(Hough transform with a contour-fitting fallback) and works on arbitrary
layouts; "grid" slices a known rows x cols layout deterministically.
Either way, each avatar is written as a square transparent-background PNG
named avatar_<n>.png in reading order (top to bottom, left to right).`,
	Version: Version,
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
