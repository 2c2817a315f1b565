// Package command runs external tools (npm, yarn, git, node) and captures
// their output. Checks depend on the Runner interface so tests can substitute
// a Fake without spawning processes.
package command

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Runner executes a named external command with arguments and returns its
// trimmed stdout. A failed command returns a *Error carrying both captured
// streams and the exit code. A context deadline or cancellation surfaces as
// the context's own error so callers can tell a timeout from a failure.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (string, error)
}

// Error describes a command that ran but exited unsuccessfully.
type Error struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

func (e *Error) Error() string {
	if e.Stderr != "" {
		return e.Stderr
	}
	if e.Stdout != "" {
		return e.Stdout
	}
	return fmt.Sprintf("command exited with code %d", e.ExitCode)
}

// Exec is the production Runner backed by os/exec.
type Exec struct{}

// Run executes the command, capturing stdout and stderr separately.
func (Exec) Run(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	out := strings.TrimSpace(stdout.String())
	if err != nil {
		// A deadline kills the process; report the deadline, not the kill.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return out, ctxErr
		}

		exitCode := -1
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else if _, pathErr := exec.LookPath(name); pathErr != nil {
			return out, fmt.Errorf("%s is not installed or not in PATH", name)
		}

		return out, &Error{
			Stdout:   out,
			Stderr:   strings.TrimSpace(stderr.String()),
			ExitCode: exitCode,
		}
	}

	return out, nil
}
