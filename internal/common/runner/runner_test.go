package runner

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestRunCapturesOutput(t *testing.T) {
	tests := []struct {
		name       string
		script     string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{
			name:       "success",
			script:     "echo hello",
			wantCode:   0,
			wantStdout: "hello\n",
		},
		{
			name:       "stderr kept separate",
			script:     "echo out; echo err >&2",
			wantCode:   0,
			wantStdout: "out\n",
			wantStderr: "err\n",
		},
		{
			name:       "non-zero exit is not an error",
			script:     "echo pkg.x86_64 1.0 updates; exit 100",
			wantCode:   100,
			wantStdout: "pkg.x86_64 1.0 updates\n",
		},
		{
			name:     "generic failure code",
			script:   "exit 1",
			wantCode: 1,
		},
	}

	r := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := r.Run(context.Background(), "sh", "-c", tt.script)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if result.ExitCode != tt.wantCode {
				t.Errorf("expected exit code %d, got %d", tt.wantCode, result.ExitCode)
			}
			if result.Stdout != tt.wantStdout {
				t.Errorf("expected stdout %q, got %q", tt.wantStdout, result.Stdout)
			}
			if result.Stderr != tt.wantStderr {
				t.Errorf("expected stderr %q, got %q", tt.wantStderr, result.Stderr)
			}
		})
	}
}

func TestRunCommandNotFound(t *testing.T) {
	r := New()

	t.Run("missing on PATH", func(t *testing.T) {
		result, err := r.Run(context.Background(), "definitely-not-a-real-binary-4f2a")
		if !errors.Is(err, ErrCommandNotFound) {
			t.Errorf("expected ErrCommandNotFound, got %v", err)
		}
		if result != nil {
			t.Errorf("expected nil result, got %+v", result)
		}
	})

	t.Run("missing absolute path", func(t *testing.T) {
		_, err := r.Run(context.Background(), filepath.Join(t.TempDir(), "missing"))
		if !errors.Is(err, ErrCommandNotFound) {
			t.Errorf("expected ErrCommandNotFound, got %v", err)
		}
	})

	t.Run("not executable", func(t *testing.T) {
		if os.Geteuid() == 0 {
			t.Skip("root can execute files without the exec bit")
		}
		path := filepath.Join(t.TempDir(), "script.sh")
		if err := os.WriteFile(path, []byte("#!/bin/sh\necho hi\n"), 0644); err != nil {
			t.Fatalf("failed to write script: %v", err)
		}
		_, err := r.Run(context.Background(), path)
		if !errors.Is(err, ErrCommandNotFound) {
			t.Errorf("expected ErrCommandNotFound, got %v", err)
		}
	})
}

func TestRunTimeout(t *testing.T) {
	r := New(WithTimeout(100 * time.Millisecond))
	if r.Timeout() != 100*time.Millisecond {
		t.Fatalf("expected timeout 100ms, got %v", r.Timeout())
	}

	start := time.Now()
	result, err := r.Run(context.Background(), "sh", "-c", "echo partial; exec sleep 5")
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("expected ErrTimeout, got %v", err)
	}
	if result != nil {
		t.Errorf("timeout must not return partial output, got %+v", result)
	}
	if elapsed := time.Since(start); elapsed > 4*time.Second {
		t.Errorf("timeout took too long: %v", elapsed)
	}
}

func TestRunWithoutTimeoutWaits(t *testing.T) {
	r := New()
	result, err := r.Run(context.Background(), "sh", "-c", "sleep 0.2; echo done")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.Stdout != "done\n" {
		t.Errorf("expected stdout %q, got %q", "done\n", result.Stdout)
	}
}

func TestRunCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().Run(ctx, "sh", "-c", "echo never")
	if !errors.Is(err, ErrCommandFailed) {
		t.Errorf("expected ErrCommandFailed, got %v", err)
	}
	if errors.Is(err, ErrTimeout) {
		t.Error("cancellation must not be reported as a timeout")
	}
}

func TestRunWithEnv(t *testing.T) {
	r := New(WithEnv([]string{"PATH=" + os.Getenv("PATH"), "UPDATE_STATUS_TEST=yes"}))
	result, err := r.Run(context.Background(), "sh", "-c", "echo $UPDATE_STATUS_TEST")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.Stdout != "yes\n" {
		t.Errorf("expected env to be passed, got %q", result.Stdout)
	}
}

func TestResultSuccess(t *testing.T) {
	var nilResult *Result
	if nilResult.Success() {
		t.Error("nil result must not be a success")
	}
	if !(&Result{ExitCode: 0}).Success() {
		t.Error("exit 0 should be a success")
	}
	if (&Result{ExitCode: 100}).Success() {
		t.Error("exit 100 should not be a success")
	}
}

func TestAvailable(t *testing.T) {
	if !Available("sh") {
		t.Error("expected sh to be available")
	}
	if Available("definitely-not-a-real-binary-4f2a") {
		t.Error("expected missing binary to be unavailable")
	}
}

func TestCommandLine(t *testing.T) {
	if got := CommandLine("dnf"); got != "dnf" {
		t.Errorf("expected %q, got %q", "dnf", got)
	}
	if got := CommandLine("flatpak", "remote-ls", "--updates"); got != "flatpak remote-ls --updates" {
		t.Errorf("expected %q, got %q", "flatpak remote-ls --updates", got)
	}
}
