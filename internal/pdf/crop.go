package pdf

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kpauljoseph/pdfworkflow/internal/config"
	"github.com/kpauljoseph/pdfworkflow/pkg/logger"
	"github.com/kpauljoseph/pdfworkflow/pkg/models"
)

var CropDescriptor = models.Descriptor{
	ID:       "pdf_crop_margins",
	Title:    "Crop PDF Margins",
	Subtitle: "Detect and trim the blank margins of every page",
	Preview:  "pdf_crop_margins.html",
}

const pdfcropInstallHint = "install TeX Live (brew install --cask basictex) to get pdfcrop"

type Cropper struct {
	margin  string
	locator *BinaryLocator
	runner  CommandRunner
	pages   PageCounter
	logger  *logger.Logger
}

type CropperOption func(*Cropper)

func WithLocator(l *BinaryLocator) CropperOption {
	return func(c *Cropper) {
		c.locator = l
	}
}

func WithRunner(r CommandRunner) CropperOption {
	return func(c *Cropper) {
		c.runner = r
	}
}

func WithPageCounter(p PageCounter) CropperOption {
	return func(c *Cropper) {
		c.pages = p
	}
}

func NewCropper(cfg config.Crop, log *logger.Logger, options ...CropperOption) *Cropper {
	log = log.Named(CropDescriptor.ID)

	locator := NewBinaryLocator(cfg.Binary, cfg.SearchPaths)
	locator.Hint = pdfcropInstallHint

	c := &Cropper{
		margin:  cfg.Margin,
		locator: locator,
		runner:  ExecRunner{},
		logger:  log,
	}

	for _, opt := range options {
		opt(c)
	}

	if c.pages == nil {
		infoLocator := NewBinaryLocator(cfg.PageCountBinary, siblingCandidates(cfg.SearchPaths, cfg.PageCountBinary))
		c.pages = NewPdfInfoCounter(infoLocator, c.runner, log)
	}

	return c
}

func (c *Cropper) Descriptor() models.Descriptor {
	return CropDescriptor
}

func (c *Cropper) ProcessSingle(ctx context.Context, inputPath, outputDir string) models.FileResult {
	return runSingle(ctx, c.logger, inputPath, outputDir, c.crop)
}

func CroppedName(baseName string) string {
	return baseName + "_cropped.pdf"
}

func (c *Cropper) crop(ctx context.Context, j job) (models.FileResult, error) {
	outputPath := filepath.Join(j.OutputDir, CroppedName(j.BaseName))

	bin, err := c.locator.Locate()
	if err != nil {
		return models.FileResult{}, err
	}
	c.logger.Debug("Using pdfcrop: %s", bin)

	// A leftover file from an earlier run would hide a failed crop.
	if err := os.Remove(outputPath); err != nil && !os.IsNotExist(err) {
		return models.FileResult{}, models.NewError(models.KindUnexpected, j.Input, "cannot replace existing output "+outputPath, err)
	}

	cmd := Command{
		Path: bin,
		Args: []string{"--margins", c.margin, j.Input, outputPath},
		Env:  PrependPath(os.Environ(), filepath.Dir(bin)),
	}
	c.logger.Trace("Running: %s %s", cmd.Path, strings.Join(cmd.Args, " "))

	res, err := c.runner.Run(ctx, cmd)
	if err != nil {
		detail := strings.TrimSpace(res.Stderr)
		if detail == "" {
			detail = fmt.Sprintf("exit status %d", res.ExitCode)
		}
		return models.FileResult{}, models.NewError(models.KindExternalTool, j.Input, "pdfcrop failed: "+detail, err)
	}
	if out := strings.TrimSpace(res.Stdout); out != "" {
		c.logger.Debug("pdfcrop output: %s", out)
	}

	if _, err := os.Stat(outputPath); err != nil {
		return models.FileResult{}, models.NewError(models.KindExternalTool, j.Input, "cropped PDF was not created: "+outputPath, err)
	}

	pages := c.pages.CountPages(ctx, j.Input)
	c.logger.Debug("Saved: %s", outputPath)

	return models.Succeeded(j.Input, fmt.Sprintf("Cropped %d page(s)", pages), []string{outputPath}, pages), nil
}
