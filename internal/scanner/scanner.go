package scanner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/kpauljoseph/pdfworkflow/pkg/logger"
	"github.com/kpauljoseph/pdfworkflow/pkg/utils"
)

type DirectoryScanner struct {
	logger *logger.Logger
}

func New(logger *logger.Logger) *DirectoryScanner {
	return &DirectoryScanner{
		logger: logger,
	}
}

// ParseFileList splits newline-delimited paths, as handed over by the
// launcher, dropping blank lines and surrounding whitespace.
func ParseFileList(text string) []string {
	var files []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		files = append(files, line)
	}
	return files
}

// FindPDFs walks dir recursively and returns the absolute paths of all PDF
// files, sorted.
func (s *DirectoryScanner) FindPDFs(ctx context.Context, dir string) ([]string, error) {
	var pdfs []string

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err != nil {
			return fmt.Errorf("error accessing path %s: %w", path, err)
		}

		if info.IsDir() {
			s.logger.Trace("Scanning directory: %s", path)
			return nil
		}

		if !utils.HasPDFExtension(path) {
			return nil
		}

		abs, err := filepath.Abs(path)
		if err != nil {
			abs = path
		}
		s.logger.Debug("Found PDF: %s", abs)
		pdfs = append(pdfs, abs)
		return nil
	})

	if err != nil {
		return nil, err
	}

	if len(pdfs) == 0 {
		return nil, fmt.Errorf("no PDF files found in %s or its subdirectories", dir)
	}

	sort.Strings(pdfs)
	return pdfs, nil
}
