package main

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/kpauljoseph/pdfworkflow/internal/config"
	"github.com/kpauljoseph/pdfworkflow/internal/registry"
	"github.com/kpauljoseph/pdfworkflow/pkg/logger"
)

type app struct {
	configPath string
	verbose    bool
	debug      bool

	cfg      *config.Config
	log      *logger.Logger
	registry *registry.Registry
}

func newRootCmd() *cobra.Command {
	a := &app{registry: registry.Default()}

	cmd := &cobra.Command{
		Use:   "pdfworkflow",
		Short: "Batch PDF operations for the Alfred launcher",
		Long: `pdfworkflow lists a fixed set of PDF operations for Alfred and runs the
chosen one over the selected files: render pages to PNG, crop blank
margins with pdfcrop, or split a document into single-page PDFs.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
			return a.setup(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "path to config file (default: $XDG_CONFIG_HOME/pdfworkflow/config.yaml)")
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose logging")
	cmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug mode with trace logging")

	cmd.AddCommand(newListCmd(a))
	cmd.AddCommand(newProcessCmd(a))
	cmd.AddCommand(newVersionCmd(a))

	return cmd
}

func (a *app) setup(cmd *cobra.Command) error {
	a.log = logger.New(
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithPrefix("[pdfworkflow] "),
	)
	a.log.SetVerbose(a.verbose || a.debug)
	if a.debug {
		a.log.SetLevel(logger.LevelTrace)
	}

	if a.configPath != "" {
		cfg, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
		a.log.Debug("Loaded config: %s", a.configPath)
	} else {
		cfg, path, err := config.Discover()
		if err != nil {
			return err
		}
		a.cfg = cfg
		if path != "" {
			a.log.Debug("Loaded config: %s", path)
		}
	}

	if a.cfg.DocsDir == "" {
		a.cfg.DocsDir = defaultDocsDir()
	}

	return nil
}

// defaultDocsDir is the docs directory shipped next to the binary.
func defaultDocsDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "docs"
	}
	return filepath.Join(filepath.Dir(exe), "docs")
}
