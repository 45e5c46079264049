package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"avatar-extract/internal/detection"
	"avatar-extract/internal/extractor"
)

var detectOpts Options

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Detect circular avatars geometrically and extract them",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		return runDetect(detectOpts)
	},
}

func init() {
	detectCmd.Flags().StringVarP(&detectOpts.InputPath, "input", "i", "avatar_grid.png", "Composite grid image to extract from")
	detectCmd.Flags().StringVarP(&detectOpts.OutputDir, "out", "o", "avatars", "Directory for the extracted avatars")
	detectCmd.Flags().Float64Var(&detectOpts.MinRadius, "min-radius", 40, "Minimum avatar radius in pixels")
	detectCmd.Flags().Float64Var(&detectOpts.MaxRadius, "max-radius", 70, "Maximum avatar radius in pixels")
	detectCmd.Flags().Float64Var(&detectOpts.MinDist, "min-dist", 80, "Minimum distance between avatar centers in pixels")
	detectCmd.Flags().Float64Var(&detectOpts.YThreshold, "y-threshold", 30, "Maximum y-difference for two avatars to share a row")
	detectCmd.Flags().IntVar(&detectOpts.Workers, "workers", 0, "Compositing workers (0 = one per CPU)")
	rootCmd.AddCommand(detectCmd)
}

func runDetect(opts Options) error {
	if _, err := os.Stat(opts.InputPath); err != nil {
		return fmt.Errorf("input image %q: %w", opts.InputPath, err)
	}
	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}

	params := detection.DefaultParams().
		WithRadiusRange(opts.MinRadius, opts.MaxRadius).
		WithMinDist(opts.MinDist).
		WithYThreshold(opts.YThreshold)

	result, err := extractor.Run(extractor.Config{
		InputPath:    opts.InputPath,
		OutputDir:    opts.OutputDir,
		Params:       params,
		Workers:      opts.Workers,
		ShowProgress: true,
	})
	if errors.Is(err, detection.ErrNoAvatars) {
		fmt.Println("No avatars detected in the image.")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Printf("Extracted %d avatars to %s/\n", result.Count, opts.OutputDir)
	return nil
}
