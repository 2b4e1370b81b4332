package pdf

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/kpauljoseph/pdfworkflow/pkg/models"
)

// BinaryLocator finds an external executable: first on the process PATH,
// then in each of Candidates, in order.
type BinaryLocator struct {
	Name       string
	Candidates []string
	// LookPath searches PATH. A nil LookPath skips the PATH probe.
	LookPath func(file string) (string, error)
	// Hint is appended to the error when nothing is found.
	Hint string
}

func NewBinaryLocator(name string, candidates []string) *BinaryLocator {
	return &BinaryLocator{
		Name:       name,
		Candidates: candidates,
		LookPath:   exec.LookPath,
	}
}

func (l *BinaryLocator) Locate() (string, error) {
	if l.LookPath != nil {
		if path, err := l.LookPath(l.Name); err == nil && path != "" {
			if abs, err := filepath.Abs(path); err == nil {
				return abs, nil
			}
			return path, nil
		}
	}

	for _, candidate := range l.Candidates {
		if isExecutable(candidate) {
			return candidate, nil
		}
	}

	msg := fmt.Sprintf("%s not found on PATH or in %d known locations", l.Name, len(l.Candidates))
	if l.Hint != "" {
		msg += "; " + l.Hint
	}
	return "", models.NewError(models.KindMissingDependency, "", msg, nil)
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	return info.Mode().Perm()&0111 != 0
}

// siblingCandidates maps every candidate path to name in the same directory.
func siblingCandidates(candidates []string, name string) []string {
	out := make([]string, 0, len(candidates))
	seen := make(map[string]bool)
	for _, c := range candidates {
		p := filepath.Join(filepath.Dir(c), name)
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	return out
}
