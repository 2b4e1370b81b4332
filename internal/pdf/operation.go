package pdf

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kpauljoseph/pdfworkflow/pkg/logger"
	"github.com/kpauljoseph/pdfworkflow/pkg/models"
	"github.com/kpauljoseph/pdfworkflow/pkg/utils"
)

// job is the validated input handed to an operation's transform.
type job struct {
	Input     string
	OutputDir string
	BaseName  string
}

type transformFunc func(ctx context.Context, j job) (models.FileResult, error)

func ValidatePDF(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.NewError(models.KindValidation, path, fmt.Sprintf("PDF file does not exist: %s", path), err)
		}
		return models.NewError(models.KindValidation, path, fmt.Sprintf("cannot access PDF file: %s", path), err)
	}

	if info.IsDir() {
		return models.NewError(models.KindValidation, path, fmt.Sprintf("not a file: %s", path), nil)
	}

	if !utils.HasPDFExtension(path) {
		return models.NewError(models.KindValidation, path, fmt.Sprintf("not a PDF file: %s", path), nil)
	}

	return nil
}

// ResolveOutputDir returns outputDir, or the directory of inputPath when
// outputDir is empty, creating it if needed.
func ResolveOutputDir(inputPath, outputDir string) (string, error) {
	if outputDir == "" {
		outputDir = filepath.Dir(inputPath)
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	return outputDir, nil
}

// runSingle is the ProcessSingle skeleton shared by every operation.
func runSingle(ctx context.Context, log *logger.Logger, inputPath, outputDir string, transform transformFunc) (result models.FileResult) {
	defer func() {
		if r := recover(); r != nil {
			log.Info("Unexpected failure processing %s: %v", inputPath, r)
			result = models.Failed(inputPath, models.NewError(models.KindUnexpected, inputPath, fmt.Sprintf("panic: %v", r), nil))
		}
	}()

	if err := ValidatePDF(inputPath); err != nil {
		log.Info("Skipping %s: %v", inputPath, err)
		return models.Failed(inputPath, err)
	}

	dir, err := ResolveOutputDir(inputPath, outputDir)
	if err != nil {
		log.Info("Failed to prepare output for %s: %v", inputPath, err)
		return models.Failed(inputPath, models.NewError(models.KindUnexpected, inputPath, "cannot prepare output directory", err))
	}

	log.Info("Processing PDF: %s", inputPath)
	log.Trace("Output directory: %s", dir)

	result, err = transform(ctx, job{
		Input:     inputPath,
		OutputDir: dir,
		BaseName:  utils.BaseName(inputPath),
	})
	if err != nil {
		log.Info("Failed to process %s: %v", inputPath, err)
		return models.Failed(inputPath, err)
	}

	log.Debug("%s: %s", inputPath, result.Message)
	return result
}
