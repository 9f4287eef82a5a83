// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package launch

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// mockExecutor records invocations and returns configured responses.
type mockExecutor struct {
	lookPaths map[string]string // name -> resolved path; missing means not found
	runFunc   func(name string, args []string, stdout, stderr io.Writer) (int, error)

	runCalls [][]string // name followed by args, one slice per Run call
}

func (m *mockExecutor) LookPath(file string) (string, error) {
	if p, ok := m.lookPaths[file]; ok {
		return p, nil
	}
	return "", errors.New("not found: " + file)
}

func (m *mockExecutor) Run(name string, args []string, stdout, stderr io.Writer) (int, error) {
	m.runCalls = append(m.runCalls, append([]string{name}, args...))
	if m.runFunc != nil {
		return m.runFunc(name, args, stdout, stderr)
	}
	return 0, nil
}

func TestResolve(t *testing.T) {
	exeDir := t.TempDir()
	local := filepath.Join(exeDir, "zip-to-sxar")
	if err := os.WriteFile(local, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatalf("writing converter stub: %v", err)
	}

	tests := []struct {
		name      string
		converter string
		exeDir    string
		lookPaths map[string]string
		want      string
		wantErr   bool
	}{
		{
			name:      "found next to the executable",
			converter: "zip-to-sxar",
			exeDir:    exeDir,
			want:      local,
		},
		{
			name:      "executable dir wins over PATH",
			converter: "zip-to-sxar",
			exeDir:    exeDir,
			lookPaths: map[string]string{"zip-to-sxar": "/usr/bin/zip-to-sxar"},
			want:      local,
		},
		{
			name:      "falls back to PATH",
			converter: "zip-to-sxar",
			exeDir:    t.TempDir(),
			lookPaths: map[string]string{"zip-to-sxar": "/usr/bin/zip-to-sxar"},
			want:      "/usr/bin/zip-to-sxar",
		},
		{
			name:      "not found anywhere",
			converter: "zip-to-sxar",
			exeDir:    t.TempDir(),
			wantErr:   true,
		},
		{
			name:      "empty converter name",
			converter: "",
			exeDir:    exeDir,
			wantErr:   true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := &Launcher{exec: &mockExecutor{lookPaths: tt.lookPaths}, exeDir: tt.exeDir}
			got, err := l.Resolve(tt.converter)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Resolve = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLauncherRun(t *testing.T) {
	tests := []struct {
		name     string
		runFunc  func(name string, args []string, stdout, stderr io.Writer) (int, error)
		wantCode int
		wantOut  string
		wantErr  bool
	}{
		{
			name: "success streams and captures stdout",
			runFunc: func(name string, args []string, stdout, stderr io.Writer) (int, error) {
				io.WriteString(stdout, "converted 3 files\n")
				return 0, nil
			},
			wantCode: 0,
			wantOut:  "converted 3 files\n",
		},
		{
			name: "non-zero exit is a result, not an error",
			runFunc: func(name string, args []string, stdout, stderr io.Writer) (int, error) {
				return 2, nil
			},
			wantCode: 2,
		},
		{
			name: "start failure is an error",
			runFunc: func(name string, args []string, stdout, stderr io.Writer) (int, error) {
				return 0, errors.New("fork/exec: permission denied")
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exec := &mockExecutor{runFunc: tt.runFunc}
			l := &Launcher{exec: exec}

			var stream strings.Builder
			res, err := l.Run("/opt/zip-to-sxar", "foo.zip", &stream, io.Discard)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.ExitCode != tt.wantCode {
				t.Errorf("exit code = %d, want %d", res.ExitCode, tt.wantCode)
			}
			if res.Stdout != tt.wantOut {
				t.Errorf("captured stdout = %q, want %q", res.Stdout, tt.wantOut)
			}
			if stream.String() != tt.wantOut {
				t.Errorf("streamed stdout = %q, want %q", stream.String(), tt.wantOut)
			}

			if len(exec.runCalls) != 1 {
				t.Fatalf("converter invoked %d times, want 1", len(exec.runCalls))
			}
			want := []string{"/opt/zip-to-sxar", "foo.zip"}
			got := exec.runCalls[0]
			if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
				t.Errorf("invocation = %v, want %v", got, want)
			}
		})
	}
}
