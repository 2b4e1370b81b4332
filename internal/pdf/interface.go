package pdf

import (
	"context"

	"github.com/kpauljoseph/pdfworkflow/pkg/models"
)

// Operation is one pluggable PDF transform. Implementations keep their
// configuration fixed from construction and hold no resources between calls.
type Operation interface {
	Descriptor() models.Descriptor
	// ProcessSingle handles exactly one file. An empty outputDir means the
	// directory of inputPath. Failures are reported in the returned result,
	// never as a panic or error.
	ProcessSingle(ctx context.Context, inputPath, outputDir string) models.FileResult
}
