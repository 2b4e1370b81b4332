package pdf

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"
)

type Command struct {
	Path string
	Args []string
	Env  []string
}

type CommandResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// CommandRunner starts an external process and waits for it to finish.
type CommandRunner interface {
	Run(ctx context.Context, cmd Command) (CommandResult, error)
}

type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, c Command) (CommandResult, error) {
	cmd := exec.CommandContext(ctx, c.Path, c.Args...)
	cmd.Env = c.Env

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	result := CommandResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: -1,
	}
	if cmd.ProcessState != nil {
		result.ExitCode = cmd.ProcessState.ExitCode()
	}
	return result, err
}

// PrependPath returns a copy of env whose PATH starts with dir.
func PrependPath(env []string, dir string) []string {
	out := make([]string, 0, len(env)+1)
	found := false
	for _, kv := range env {
		if strings.HasPrefix(kv, "PATH=") {
			found = true
			current := strings.TrimPrefix(kv, "PATH=")
			if current == "" {
				kv = "PATH=" + dir
			} else {
				kv = "PATH=" + dir + string(os.PathListSeparator) + current
			}
		}
		out = append(out, kv)
	}
	if !found {
		out = append(out, "PATH="+dir)
	}
	return out
}
