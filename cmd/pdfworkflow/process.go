package main

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kpauljoseph/pdfworkflow/internal/alfred"
	"github.com/kpauljoseph/pdfworkflow/internal/scanner"
)

// filesEnvVar carries the newline-separated selection from Alfred.
const filesEnvVar = "files"

func newProcessCmd(a *app) *cobra.Command {
	var (
		operation string
		outputDir string
		dir       string
	)

	cmd := &cobra.Command{
		Use:   "process [files...]",
		Short: "Run an operation over PDF files",
		Long: `Run the operation given by --operation over every file, one at a time.
Files are taken from the arguments, or from the newline-separated
"files" environment variable when no arguments are given. A summary is
written to stderr; failed files do not stop the batch.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if operation == "" {
				return errors.New("no operation specified")
			}

			inputs := args
			if len(inputs) == 0 {
				inputs = scanner.ParseFileList(os.Getenv(filesEnvVar))
			}

			if dir != "" {
				found, err := scanner.New(a.log).FindPDFs(cmd.Context(), dir)
				if err != nil {
					return err
				}
				inputs = append(inputs, found...)
			}

			if len(inputs) == 0 {
				return errors.New("no files specified")
			}
			a.log.Debug("Files: %s", strings.Join(inputs, ", "))

			if outputDir == "" {
				outputDir = a.cfg.OutputDir
			}

			results, err := a.registry.Dispatch(cmd.Context(), operation, *a.cfg, a.log, inputs, outputDir)
			if err != nil {
				return err
			}

			return alfred.WriteReport(cmd.ErrOrStderr(), results)
		},
	}

	cmd.Flags().StringVarP(&operation, "operation", "o", "", "operation identifier, see list")
	cmd.Flags().StringVar(&outputDir, "output-dir", "", "directory for results (default: next to each input)")
	cmd.Flags().StringVar(&dir, "dir", "", "also process every PDF under this directory")

	return cmd
}
