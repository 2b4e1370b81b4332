package alfred

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/kpauljoseph/pdfworkflow/pkg/models"
)

// Item is one row of an Alfred Script Filter result list.
type Item struct {
	Title        string `json:"title"`
	Subtitle     string `json:"subtitle"`
	Arg          string `json:"arg"`
	Valid        bool   `json:"valid"`
	QuickLookURL string `json:"quicklookurl,omitempty"`
}

type scriptFilter struct {
	Items []Item `json:"items"`
}

// Items turns operation descriptors into selectable rows. The preview page
// is resolved against docsDir and only offered when the file exists.
func Items(descriptors []models.Descriptor, docsDir string) []Item {
	items := make([]Item, 0, len(descriptors))
	for _, d := range descriptors {
		items = append(items, Item{
			Title:        d.Title,
			Subtitle:     d.Subtitle,
			Arg:          d.ID,
			Valid:        true,
			QuickLookURL: previewPath(d.Preview, docsDir),
		})
	}
	return items
}

func previewPath(preview, docsDir string) string {
	if preview == "" {
		return ""
	}

	path := preview
	if !filepath.IsAbs(path) {
		path = filepath.Join(docsDir, path)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return ""
	}

	info, err := os.Stat(abs)
	if err != nil || info.IsDir() {
		return ""
	}
	return abs
}

func WriteItems(w io.Writer, items []Item) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(scriptFilter{Items: items})
}
