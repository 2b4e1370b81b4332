package pdf

import (
	"bufio"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/kpauljoseph/pdfworkflow/pkg/logger"
)

// PageCounter reports the number of pages in a PDF, or 0 when unknown.
type PageCounter interface {
	CountPages(ctx context.Context, path string) int
}

// PdfInfoCounter asks the poppler pdfinfo tool for the page count.
type PdfInfoCounter struct {
	Locator *BinaryLocator
	Runner  CommandRunner
	logger  *logger.Logger
}

func NewPdfInfoCounter(locator *BinaryLocator, runner CommandRunner, log *logger.Logger) *PdfInfoCounter {
	return &PdfInfoCounter{
		Locator: locator,
		Runner:  runner,
		logger:  log,
	}
}

func (c *PdfInfoCounter) CountPages(ctx context.Context, path string) int {
	bin, err := c.Locator.Locate()
	if err != nil {
		c.logger.Debug("Page count unavailable: %v", err)
		return 0
	}

	res, err := c.Runner.Run(ctx, Command{
		Path: bin,
		Args: []string{path},
		Env:  PrependPath(os.Environ(), filepath.Dir(bin)),
	})
	if err != nil {
		c.logger.Debug("pdfinfo failed for %s: %v", path, err)
		return 0
	}

	pages, err := ParsePdfInfoPages(res.Stdout)
	if err != nil {
		c.logger.Debug("Could not read page count for %s: %v", path, err)
		return 0
	}
	return pages
}

// ParsePdfInfoPages extracts the "Pages:" value from pdfinfo output.
func ParsePdfInfoPages(output string) (int, error) {
	sc := bufio.NewScanner(strings.NewReader(output))
	for sc.Scan() {
		line := sc.Text()
		if !strings.HasPrefix(line, "Pages:") {
			continue
		}
		return strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, "Pages:")))
	}
	if err := sc.Err(); err != nil {
		return 0, err
	}
	return 0, errors.New("no Pages line in pdfinfo output")
}
