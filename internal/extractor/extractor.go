// Package extractor orchestrates the avatar extraction pipeline: load the
// source image, detect and sequence circles (or slice a fixed grid),
// composite each avatar, and write the numbered PNG files.
package extractor

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	dimaging "github.com/disintegration/imaging"
	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"

	"avatar-extract/internal/detection"
	"avatar-extract/internal/imaging"
	"avatar-extract/internal/logger"
)

// Config controls a single extraction run.
type Config struct {
	// InputPath is the composite grid image to extract from.
	InputPath string

	// OutputDir receives the avatar_<n>.png files. It must exist; creating
	// it is the caller's responsibility.
	OutputDir string

	// Params tunes the detection strategies and the sequencer.
	Params detection.Params

	// Workers bounds the compositing pool. Zero or negative means one
	// worker per CPU.
	Workers int

	// ShowProgress draws a progress bar on stderr while files are written.
	ShowProgress bool
}

// GridConfig controls a grid-slicing run.
type GridConfig struct {
	Config

	// Rows and Cols define the fixed grid to slice.
	Rows int
	Cols int

	// Archive packages the output directory into <OutputDir>.zip after all
	// avatars are written.
	Archive bool
}

// Result summarizes a completed run.
type Result struct {
	// Count is the number of avatars written.
	Count int

	// Files are the written file paths, in sequence order.
	Files []string

	// ArchivePath is the zip file produced by the grid path, empty when no
	// archive was requested.
	ArchivePath string
}

// Run executes the detection pipeline: load, detect, sequence, composite,
// save. The returned error is detection.ErrNoAvatars (wrapped) when neither
// strategy found a circle; no files are written in that case.
func Run(cfg Config) (*Result, error) {
	src, info, err := imaging.Load(cfg.InputPath)
	if err != nil {
		return nil, err
	}
	logger.WithFields(logrus.Fields{
		"input":  cfg.InputPath,
		"format": info.Format,
		"size":   fmt.Sprintf("%dx%d", info.Width, info.Height),
		"alpha":  info.HasAlpha,
	}).Info("loaded source image")

	circles, strategy, err := detection.NewDetector().Detect(src, cfg.Params)
	if err != nil {
		return nil, fmt.Errorf("detection on %q: %w", cfg.InputPath, err)
	}

	radii := make([]float64, len(circles))
	for i, c := range circles {
		radii[i] = c.R
	}
	fields := logrus.Fields{
		"strategy":    strategy,
		"count":       len(circles),
		"mean_radius": stat.Mean(radii, nil),
	}
	if len(radii) > 1 {
		fields["radius_stddev"] = stat.StdDev(radii, nil)
	}
	logger.WithFields(fields).Info("detected avatars")

	ordered := detection.Sequence(circles, cfg.Params.YThreshold)

	// Output order is fixed by index here; the pool may composite in any
	// order without affecting file numbering.
	avatars := make([]*image.NRGBA, len(ordered))
	pool := newWorkerPool(cfg.Workers)
	for i, c := range ordered {
		i, c := i, c
		pool.Submit(func() {
			avatars[i] = imaging.CompositeCircle(src, c.X, c.Y, c.R)
		})
	}
	pool.Wait()
	pool.Close()

	files, err := saveAvatars(avatars, cfg.OutputDir, cfg.ShowProgress)
	if err != nil {
		return nil, err
	}
	return &Result{Count: len(files), Files: files}, nil
}

// RunGrid executes the deterministic slicing pipeline. It always produces
// exactly Rows*Cols avatars and optionally archives the output directory.
func RunGrid(cfg GridConfig) (*Result, error) {
	src, info, err := imaging.Load(cfg.InputPath)
	if err != nil {
		return nil, err
	}
	logger.WithFields(logrus.Fields{
		"input":  cfg.InputPath,
		"format": info.Format,
		"size":   fmt.Sprintf("%dx%d", info.Width, info.Height),
		"grid":   fmt.Sprintf("%dx%d", cfg.Rows, cfg.Cols),
	}).Info("loaded source image")

	avatars, err := imaging.SliceGrid(src, cfg.Rows, cfg.Cols)
	if err != nil {
		return nil, err
	}

	files, err := saveAvatars(avatars, cfg.OutputDir, cfg.ShowProgress)
	if err != nil {
		return nil, err
	}

	result := &Result{Count: len(files), Files: files}
	if cfg.Archive {
		zipPath := cfg.OutputDir + ".zip"
		if err := ZipDirectory(cfg.OutputDir, zipPath); err != nil {
			return nil, err
		}
		logger.WithFields(logrus.Fields{"archive": zipPath, "files": len(files)}).Info("packaged avatars")
		result.ArchivePath = zipPath
	}
	return result, nil
}

// saveAvatars writes each avatar as avatar_<n>.png (1-based) into dir and
// returns the paths in order.
func saveAvatars(avatars []*image.NRGBA, dir string, showProgress bool) ([]string, error) {
	var bar *progressbar.ProgressBar
	if showProgress {
		bar = progressbar.NewOptions(len(avatars),
			progressbar.OptionSetDescription("Saving avatars"),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowCount(),
		)
	}

	files := make([]string, 0, len(avatars))
	for i, avatar := range avatars {
		path := filepath.Join(dir, fmt.Sprintf("avatar_%d.png", i+1))
		if err := dimaging.Save(avatar, path); err != nil {
			return nil, fmt.Errorf("failed to save %s: %w", path, err)
		}
		files = append(files, path)
		logger.WithFields(logrus.Fields{"file": path}).Debug("saved avatar")
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	if bar != nil {
		fmt.Fprintln(os.Stderr)
	}
	return files, nil
}
