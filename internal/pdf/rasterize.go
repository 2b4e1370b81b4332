package pdf

import (
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"

	"github.com/gen2brain/go-fitz"

	"github.com/kpauljoseph/pdfworkflow/internal/config"
	"github.com/kpauljoseph/pdfworkflow/pkg/logger"
	"github.com/kpauljoseph/pdfworkflow/pkg/models"
)

var RasterizeDescriptor = models.Descriptor{
	ID:       "pdf_to_png",
	Title:    "Convert PDF to PNG",
	Subtitle: "Render every page of the PDF as a PNG image (300 DPI)",
	Preview:  "pdf_to_png.html",
}

type Rasterizer struct {
	dpi     int
	format  string
	quality int
	logger  *logger.Logger
}

func NewRasterizer(cfg config.Rasterize, log *logger.Logger) *Rasterizer {
	return &Rasterizer{
		dpi:     cfg.DPI,
		format:  cfg.Format,
		quality: cfg.JPEGQuality,
		logger:  log.Named(RasterizeDescriptor.ID),
	}
}

func (r *Rasterizer) Descriptor() models.Descriptor {
	return RasterizeDescriptor
}

func (r *Rasterizer) ProcessSingle(ctx context.Context, inputPath, outputDir string) models.FileResult {
	return runSingle(ctx, r.logger, inputPath, outputDir, r.rasterize)
}

// RasterImageName names the image for page (1-indexed) of a document with
// total pages. A single-page document gets no page suffix.
func RasterImageName(baseName string, page, total int, ext string) string {
	if total == 1 {
		return baseName + ext
	}
	return fmt.Sprintf("%s_page_%d%s", baseName, page, ext)
}

func (r *Rasterizer) rasterize(_ context.Context, j job) (models.FileResult, error) {
	doc, err := fitz.New(j.Input)
	if err != nil {
		return models.FileResult{}, models.NewError(models.KindUnexpected, j.Input, "failed to open PDF", err)
	}
	defer doc.Close()

	total := doc.NumPage()
	if total == 0 {
		return models.FileResult{}, models.NewError(models.KindUnexpected, j.Input, "PDF has no pages", nil)
	}

	outputs := make([]string, 0, total)

	//Page numbers are zero indexed in the fitz package.
	for pageNum := 0; pageNum < total; pageNum++ {
		img, err := doc.ImageDPI(pageNum, float64(r.dpi))
		if err != nil {
			return models.FileResult{}, models.NewError(models.KindUnexpected, j.Input, fmt.Sprintf("failed to render page %d", pageNum+1), err)
		}

		imagePath := filepath.Join(j.OutputDir, RasterImageName(j.BaseName, pageNum+1, total, r.extension()))
		if err := r.saveImage(img, imagePath); err != nil {
			return models.FileResult{}, models.NewError(models.KindUnexpected, j.Input, fmt.Sprintf("failed to save image for page %d", pageNum+1), err)
		}

		r.logger.Debug("Saved page %d/%d: %s", pageNum+1, total, imagePath)
		outputs = append(outputs, imagePath)
	}

	return models.Succeeded(j.Input, fmt.Sprintf("Converted %d page(s)", total), outputs, total), nil
}

func (r *Rasterizer) extension() string {
	switch r.format {
	case "jpeg", "jpg":
		return ".jpg"
	default:
		return ".png"
	}
}

func (r *Rasterizer) saveImage(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	switch r.format {
	case "jpeg", "jpg":
		err = jpeg.Encode(f, img, &jpeg.Options{Quality: r.quality})
	default:
		err = png.Encode(f, img)
	}
	if err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
