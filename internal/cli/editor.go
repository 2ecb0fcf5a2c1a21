package cli

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/dmitrijs2005/docconvert/internal/filex"
)

// ExternalEditor edits text in a temporary file with an external command,
// e.g. "vi" or "code --wait".
type ExternalEditor struct {
	command []string
	suffix  string
}

// NewExternalEditor splits command on whitespace; the temp file path is
// appended as the last argument.
func NewExternalEditor(command string) *ExternalEditor {
	return &ExternalEditor{command: strings.Fields(command), suffix: ".txt"}
}

func (e *ExternalEditor) Edit(ctx context.Context, initial string) (string, error) {
	if len(e.command) == 0 {
		return "", fmt.Errorf("no editor configured")
	}

	path, err := filex.WriteTemp(e.suffix, []byte(initial))
	if err != nil {
		return "", err
	}
	defer os.Remove(path)

	args := append(append([]string{}, e.command[1:]...), path)
	cmd := exec.CommandContext(ctx, e.command[0], args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("running editor %s: %w", e.command[0], err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading edited file: %w", err)
	}
	return string(b), nil
}
