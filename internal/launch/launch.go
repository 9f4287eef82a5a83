// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package launch implements the drag-and-drop launcher flow: resolving an
// external converter command, running it synchronously, and the console
// gestures (press-Enter prompts and the success delay) that keep a console
// window open long enough to read the outcome.
package launch

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
)

// Result is the typed outcome of one external converter invocation.
type Result struct {
	// ExitCode is the converter's exit status. Zero means success.
	ExitCode int

	// Stdout and Stderr capture the converter's output for diagnostics.
	// The output is also streamed to the session's writers as it arrives.
	Stdout string
	Stderr string
}

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	Run(name string, args []string, stdout, stderr io.Writer) (int, error)
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// Run executes the command synchronously. A non-zero exit status is not an
// error here; it is returned as the exit code. The error return covers
// failures to start the process at all.
func (o *osExecutor) Run(name string, args []string, stdout, stderr io.Writer) (int, error) {
	cmd := exec.Command(name, args...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return 0, err
	}
	return 0, nil
}

// Launcher resolves and runs the external converter command.
type Launcher struct {
	exec executor

	// exeDir is the directory holding the sxarconv executable. The external
	// converter is looked for there before falling back to PATH.
	exeDir string
}

// NewLauncher returns a Launcher that resolves commands relative to the
// running executable.
func NewLauncher() *Launcher {
	exeDir := ""
	if exe, err := os.Executable(); err == nil {
		exeDir = filepath.Dir(exe)
	}
	return &Launcher{exec: &osExecutor{}, exeDir: exeDir}
}

// Resolve locates the external converter command: first next to the
// sxarconv executable, then on PATH.
func (l *Launcher) Resolve(name string) (string, error) {
	if name == "" {
		return "", errors.New("no converter command configured")
	}
	if l.exeDir != "" {
		candidate := filepath.Join(l.exeDir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	path, err := l.exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("converter %s not found next to the executable or on PATH: %w", name, err)
	}
	return path, nil
}

// Run invokes the converter with inputPath as its sole argument and blocks
// until it exits. There is no timeout; the converter may run indefinitely.
// Output is streamed to stdout/stderr and captured into the Result.
func (l *Launcher) Run(converter, inputPath string, stdout, stderr io.Writer) (Result, error) {
	var outBuf, errBuf bytes.Buffer
	code, err := l.exec.Run(converter, []string{inputPath},
		io.MultiWriter(stdout, &outBuf), io.MultiWriter(stderr, &errBuf))
	if err != nil {
		return Result{}, fmt.Errorf("running converter %s: %w", converter, err)
	}
	return Result{ExitCode: code, Stdout: outBuf.String(), Stderr: errBuf.String()}, nil
}
