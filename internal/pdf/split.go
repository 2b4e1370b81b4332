package pdf

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/kpauljoseph/pdfworkflow/pkg/logger"
	"github.com/kpauljoseph/pdfworkflow/pkg/models"
	"github.com/kpauljoseph/pdfworkflow/pkg/utils"
)

var SplitDescriptor = models.Descriptor{
	ID:       "pdf_split_pages",
	Title:    "Split PDF into Pages",
	Subtitle: "Write every page of the PDF to its own single-page PDF file",
	Preview:  "pdf_split_pages.html",
}

type Splitter struct {
	conf   *model.Configuration
	logger *logger.Logger
}

func NewSplitter(log *logger.Logger) *Splitter {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	return &Splitter{
		conf:   conf,
		logger: log.Named(SplitDescriptor.ID),
	}
}

func (s *Splitter) Descriptor() models.Descriptor {
	return SplitDescriptor
}

func (s *Splitter) ProcessSingle(ctx context.Context, inputPath, outputDir string) models.FileResult {
	return runSingle(ctx, s.logger, inputPath, outputDir, s.split)
}

func PagesDirName(baseName string) string {
	return baseName + "_pages"
}

// SplitPageName zero-pads page to the width of total.
func SplitPageName(baseName string, page, total int) string {
	return fmt.Sprintf("%s_page_%s.pdf", baseName, utils.PaddedPageNumber(page, total))
}

func (s *Splitter) split(_ context.Context, j job) (models.FileResult, error) {
	total, err := api.PageCountFile(j.Input)
	if err != nil {
		return models.FileResult{}, models.NewError(models.KindUnexpected, j.Input, "failed to read PDF", err)
	}
	if total == 0 {
		return models.FileResult{}, models.NewError(models.KindUnexpected, j.Input, "PDF has no pages", nil)
	}

	pagesDir := filepath.Join(j.OutputDir, PagesDirName(j.BaseName))
	if err := os.MkdirAll(pagesDir, 0755); err != nil {
		return models.FileResult{}, models.NewError(models.KindUnexpected, j.Input, "failed to create pages directory", err)
	}

	outputs := make([]string, 0, total)
	for page := 1; page <= total; page++ {
		outPath := filepath.Join(pagesDir, SplitPageName(j.BaseName, page, total))
		if err := api.TrimFile(j.Input, outPath, []string{strconv.Itoa(page)}, s.conf); err != nil {
			return models.FileResult{}, models.NewError(models.KindUnexpected, j.Input, fmt.Sprintf("failed to extract page %d", page), err)
		}
		s.logger.Debug("Saved page %d/%d: %s", page, total, outPath)
		outputs = append(outputs, outPath)
	}

	result := models.Succeeded(j.Input, fmt.Sprintf("Split into %d single-page file(s)", total), outputs, total)
	result.OutputDir = pagesDir
	return result, nil
}
