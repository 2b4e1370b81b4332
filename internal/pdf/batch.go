package pdf

import (
	"context"
	"fmt"

	"github.com/kpauljoseph/pdfworkflow/pkg/models"
)

// ProcessMultiple runs op over inputs one file at a time, in order. It always
// returns exactly one result per input: a failing or panicking file is
// recorded as an error result and processing moves on to the next file.
func ProcessMultiple(ctx context.Context, op Operation, inputs []string, outputDir string) models.BatchResult {
	results := make(models.BatchResult, 0, len(inputs))
	for _, input := range inputs {
		results = append(results, processIsolated(ctx, op, input, outputDir))
	}
	return results
}

func processIsolated(ctx context.Context, op Operation, input, outputDir string) (result models.FileResult) {
	defer func() {
		if r := recover(); r != nil {
			result = models.Failed(input, models.NewError(models.KindUnexpected, input, fmt.Sprintf("%v", r), nil))
		}
	}()

	result = op.ProcessSingle(ctx, input, outputDir)
	if result.Source == "" {
		result.Source = input
	}
	return result
}
