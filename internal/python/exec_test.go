package python

import (
	"bytes"
	"context"
	"os/exec"
	"runtime"
	"testing"
)

func TestSetEnv(t *testing.T) {
	tests := []struct {
		name     string
		env      []string
		key      string
		value    string
		expected []string
	}{
		{
			name:     "add new variable",
			env:      []string{"FOO=bar"},
			key:      "BAZ",
			value:    "qux",
			expected: []string{"FOO=bar", "BAZ=qux"},
		},
		{
			name:     "replace existing variable",
			env:      []string{"FOO=bar", "BAZ=old"},
			key:      "BAZ",
			value:    "new",
			expected: []string{"FOO=bar", "BAZ=new"},
		},
		{
			name:     "add to empty env",
			env:      nil,
			key:      "KEY",
			value:    "val",
			expected: []string{"KEY=val"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := setEnv(tt.env, tt.key, tt.value)
			if len(result) != len(tt.expected) {
				t.Fatalf("expected %d entries, got %d: %v", len(tt.expected), len(result), result)
			}
			for i, e := range tt.expected {
				if result[i] != e {
					t.Errorf("env[%d] = %q, want %q", i, result[i], e)
				}
			}
		})
	}
}

func TestRun_CapturesAndStreams(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses sh, skipping on Windows")
	}
	sh, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("sh not available, skipping")
	}

	var sink bytes.Buffer
	out, err := Run(context.Background(), sh, []string{"-c", "echo hello; echo oops >&2"}, "", nil, &sink)
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if out.ExitCode != 0 {
		t.Errorf("exit code = %d, want 0", out.ExitCode)
	}
	if out.Stdout != "hello\n" {
		t.Errorf("stdout = %q", out.Stdout)
	}
	if out.Stderr != "oops\n" {
		t.Errorf("stderr = %q", out.Stderr)
	}
	// Sink receives both streams.
	if got := sink.String(); !bytes.Contains([]byte(got), []byte("hello")) || !bytes.Contains([]byte(got), []byte("oops")) {
		t.Errorf("sink = %q, want both streams", got)
	}
}

func TestRun_NonZeroExitIsNotAnError(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses sh, skipping on Windows")
	}
	sh, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("sh not available, skipping")
	}

	out, err := Run(context.Background(), sh, []string{"-c", "exit 42"}, "", nil, nil)
	if err != nil {
		t.Fatalf("unexpected error (non-zero exit should not be an error): %v", err)
	}
	if out.ExitCode != 42 {
		t.Errorf("exit code = %d, want 42", out.ExitCode)
	}
}

func TestRun_ExtraEnv(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses sh, skipping on Windows")
	}
	sh, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("sh not available, skipping")
	}

	out, err := Run(context.Background(), sh, []string{"-c", "printf %s \"$KERNEL_EXTRA\""}, "", map[string]string{"KERNEL_EXTRA": "on"}, nil)
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if out.Stdout != "on" {
		t.Errorf("stdout = %q, want %q", out.Stdout, "on")
	}
}

func TestRun_Cancelled(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses sh, skipping on Windows")
	}
	sh, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("sh not available, skipping")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = Run(ctx, sh, []string{"-c", "sleep 10"}, "", nil, nil)
	if err != context.Canceled {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
