// Package shell executes commands through the platform shell.
package shell

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// Result captures one command execution.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Run executes command through the shell, wiring the caller's stdin so
// interactive prompts still work, and capturing both output streams. A
// nonzero exit status is reported in Result, not as an error; the error
// is reserved for failing to run the shell at all.
func Run(ctx context.Context, command string) (Result, error) {
	cmd := shellCommand(ctx, command)
	var stdout, stderr bytes.Buffer
	cmd.Stdin = os.Stdin
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := Result{Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			return res, nil
		}
		return res, err
	}
	return res, nil
}

// RunInteractive executes command with the terminal's own streams, for
// commands the user explicitly asked to run live. Returns the exit code.
func RunInteractive(ctx context.Context, command string) (int, error) {
	cmd := shellCommand(ctx, command)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return -1, err
	}
	return 0, nil
}

// Output runs command and returns its trimmed stdout, empty on any
// failure. Context-collector probes prefer missing facts over errors.
func Output(ctx context.Context, command string) string {
	out, err := shellCommand(ctx, command).Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}

// Stderr re-runs command and returns its trimmed stderr. Used when a
// shell hook reports a failure after the original output is gone.
func Stderr(ctx context.Context, command string) string {
	cmd := shellCommand(ctx, command)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return "Command execution failed"
		}
	}
	return strings.TrimSpace(stderr.String())
}

func shellCommand(ctx context.Context, command string) *exec.Cmd {
	if runtime.GOOS == "windows" {
		return exec.CommandContext(ctx, "cmd", "/C", command)
	}
	return exec.CommandContext(ctx, "sh", "-c", command)
}
