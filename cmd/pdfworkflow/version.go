package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kpauljoseph/pdfworkflow/pkg/updater"
	"github.com/kpauljoseph/pdfworkflow/pkg/version"
)

func newVersionCmd(a *app) *cobra.Command {
	var (
		check      bool
		releaseURL string
	)

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version details and optionally check for a newer release",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprint(out, version.GetDetailedVersionInfo())

			if !check {
				return nil
			}

			info, err := updater.NewChecker(a.log, updater.WithReleaseURL(releaseURL)).CheckForUpdates(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to check for updates: %w", err)
			}

			if info.IsAvailable {
				fmt.Fprintf(out, "Update available: %s -> %s\n%s\n", info.CurrentVersion, info.LatestVersion, info.ReleaseURL)
			} else {
				fmt.Fprintf(out, "Up to date (latest release %s)\n", info.LatestVersion)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "query the latest release")
	cmd.Flags().StringVar(&releaseURL, "release-url", updater.DefaultReleaseURL, "latest release endpoint")
	_ = cmd.Flags().MarkHidden("release-url")

	return cmd
}
