package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"

	"github.com/kpauljoseph/pdfworkflow/pkg/version"
)

func main() {
	root := newRootCmd()

	if err := fang.Execute(
		context.Background(),
		root,
		fang.WithVersion(version.Version),
	); err != nil {
		os.Exit(1)
	}
}
