package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"avatar-extract/internal/extractor"
)

var (
	gridOpts Options
	gridRows int
	gridCols int
	noZip    bool
)

var gridCmd = &cobra.Command{
	Use:   "grid",
	Short: "Slice a known rows x cols avatar grid deterministically",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		return runGrid(gridOpts, gridRows, gridCols, !noZip)
	},
}

func init() {
	gridCmd.Flags().StringVarP(&gridOpts.InputPath, "input", "i", "avatar_grid.png", "Composite grid image to slice")
	gridCmd.Flags().StringVarP(&gridOpts.OutputDir, "out", "o", "avatars", "Directory for the extracted avatars")
	gridCmd.Flags().IntVar(&gridRows, "rows", 8, "Number of grid rows")
	gridCmd.Flags().IntVar(&gridCols, "cols", 8, "Number of grid columns")
	gridCmd.Flags().BoolVar(&noZip, "no-zip", false, "Skip packaging the output directory into a zip archive")
	rootCmd.AddCommand(gridCmd)
}

func runGrid(opts Options, rows, cols int, archive bool) error {
	if _, err := os.Stat(opts.InputPath); err != nil {
		return fmt.Errorf("input image %q: %w", opts.InputPath, err)
	}
	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}

	result, err := extractor.RunGrid(extractor.GridConfig{
		Config: extractor.Config{
			InputPath:    opts.InputPath,
			OutputDir:    opts.OutputDir,
			ShowProgress: true,
		},
		Rows:    rows,
		Cols:    cols,
		Archive: archive,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Sliced %d avatars to %s/\n", result.Count, opts.OutputDir)
	if result.ArchivePath != "" {
		fmt.Printf("Packaged archive: %s\n", result.ArchivePath)
	}
	return nil
}
