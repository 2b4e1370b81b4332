package alfred

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kpauljoseph/pdfworkflow/pkg/models"
)

// MaxListedOutputs is how many output paths are listed per file before the
// rest are summarised.
const MaxListedOutputs = 3

type styles struct {
	success lipgloss.Style
	failure lipgloss.Style
	muted   lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		success: r.NewStyle().Foreground(lipgloss.Color("2")),
		failure: r.NewStyle().Foreground(lipgloss.Color("1")),
		muted:   r.NewStyle().Faint(true),
	}
}

// WriteReport renders a human-readable summary of a batch.
func WriteReport(w io.Writer, results models.BatchResult) error {
	st := newStyles(w)
	var b strings.Builder

	succeeded, failed := results.Succeeded(), results.Failed()
	b.WriteString("\n")
	if failed == 0 {
		b.WriteString(st.success.Render(fmt.Sprintf("✓ Processed %d file(s)", succeeded)))
	} else {
		b.WriteString(st.failure.Render(fmt.Sprintf("⚠ %d succeeded, %d failed", succeeded, failed)))
	}
	b.WriteString("\n")

	for _, r := range results {
		if !r.OK() {
			fmt.Fprintf(&b, "  %s %s: %s\n", st.failure.Render("✗"), r.Source, r.Message)
			continue
		}

		fmt.Fprintf(&b, "  %s %s: %s\n", st.success.Render("✓"), r.Source, r.Message)
		for i, out := range r.Outputs {
			if i == MaxListedOutputs {
				fmt.Fprintf(&b, "    %s\n", st.muted.Render(fmt.Sprintf("… and %d more file(s)", len(r.Outputs)-MaxListedOutputs)))
				break
			}
			fmt.Fprintf(&b, "    → %s\n", out)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
