// pkg/source/exec.go
package source

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
)

// Runner abstracts the external package tools behind the two operations
// adapters need: PATH probing and a one-shot invocation with captured
// output. Tests substitute a scripted implementation.
type Runner interface {
	// LookPath reports where tool lives in PATH, or an error if absent
	LookPath(tool string) (string, error)

	// Output runs tool with args and returns its captured stdout
	Output(ctx context.Context, tool string, args ...string) ([]byte, error)
}

// SystemRunner executes real commands through os/exec
type SystemRunner struct{}

// LookPath reports where tool lives in PATH, or an error if absent
func (SystemRunner) LookPath(tool string) (string, error) {
	return exec.LookPath(tool)
}

// Output runs the tool and captures its stdout. Package tools exit
// non-zero for "no matches", so a process that started but exited with
// an error still returns whatever stdout it produced; only failures to
// start the process are reported as errors.
func (SystemRunner) Output(ctx context.Context, tool string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, tool, args...)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return stdout.Bytes(), nil
		}
		return nil, err
	}
	return stdout.Bytes(), nil
}
