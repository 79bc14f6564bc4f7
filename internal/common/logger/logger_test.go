package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// TestVerboseModeShowsDebugMessages tests that --verbose shows debug messages
func TestVerboseModeShowsDebugMessages(t *testing.T) {
	buf := new(bytes.Buffer)
	log := New(buf, LevelWarn)

	log.Debug("running dnf check-update")
	if strings.Contains(buf.String(), "running dnf check-update") {
		t.Error("Debug message should not appear at Warn level")
	}

	log.SetVerbose(true)

	log.Debug("running flatpak remote-ls --updates")
	if !strings.Contains(buf.String(), "running flatpak remote-ls --updates") {
		t.Error("Debug message should appear when verbose is enabled")
	}
}

// TestQuietModeSuppressesEverything tests that quiet mode silences even errors
func TestQuietModeSuppressesEverything(t *testing.T) {
	buf := new(bytes.Buffer)
	log := New(buf, LevelWarn)

	log.Error("DNF error: boom")
	if !strings.Contains(buf.String(), "DNF error: boom") {
		t.Error("Error message should appear at Warn level")
	}

	buf.Reset()
	log.SetQuiet(true)
	log.Error("Flatpak error: boom")
	if buf.Len() != 0 {
		t.Errorf("expected no output in quiet mode, got %q", buf.String())
	}
	if log.Level() != LevelQuiet {
		t.Errorf("expected quiet level, got %v", log.Level())
	}
}

// TestLogLevelHierarchy tests that log levels filter correctly
func TestLogLevelHierarchy(t *testing.T) {
	tests := []struct {
		name        string
		level       Level
		expectDebug bool
		expectInfo  bool
		expectWarn  bool
		expectError bool
	}{
		{name: "Debug level shows all", level: LevelDebug, expectDebug: true, expectInfo: true, expectWarn: true, expectError: true},
		{name: "Info level hides debug", level: LevelInfo, expectInfo: true, expectWarn: true, expectError: true},
		{name: "Warn level hides debug and info", level: LevelWarn, expectWarn: true, expectError: true},
		{name: "Error level shows only errors", level: LevelError, expectError: true},
		{name: "Quiet level shows nothing", level: LevelQuiet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := new(bytes.Buffer)
			log := New(buf, tt.level)

			log.Debug("debug")
			log.Info("info")
			log.Warn("warn")
			log.Error("error")

			output := buf.String()
			if tt.expectDebug != strings.Contains(output, "debug") {
				t.Errorf("Debug: expected %v", tt.expectDebug)
			}
			if tt.expectInfo != strings.Contains(output, "info") {
				t.Errorf("Info: expected %v", tt.expectInfo)
			}
			if tt.expectWarn != strings.Contains(output, "warn") {
				t.Errorf("Warn: expected %v", tt.expectWarn)
			}
			if tt.expectError != strings.Contains(output, "error") {
				t.Errorf("Error: expected %v", tt.expectError)
			}
		})
	}
}

func TestLevelString(t *testing.T) {
	if LevelDebug.String() != "DEBUG" || LevelError.String() != "ERROR" || LevelQuiet.String() != "QUIET" {
		t.Error("unexpected level names")
	}
}

// TestFileLoggingRecordsAllLevels tests that the log file receives messages hidden from stderr
func TestFileLoggingRecordsAllLevels(t *testing.T) {
	buf := new(bytes.Buffer)
	log := New(buf, LevelQuiet)

	path := filepath.Join(t.TempDir(), "nested", "update-status.log")
	if err := log.EnableFileLogging(path); err != nil {
		t.Fatalf("EnableFileLogging failed: %v", err)
	}
	log.Debug("dnf reported %d pending updates", 4)
	log.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "DEBUG: dnf reported 4 pending updates") {
		t.Errorf("log file missing debug line: %q", string(data))
	}
	if buf.Len() != 0 {
		t.Errorf("quiet logger wrote to output: %q", buf.String())
	}
}

func TestLogDirUsesXDGStateHome(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/tmp/state")
	dir, err := LogDir()
	if err != nil {
		t.Fatalf("LogDir failed: %v", err)
	}
	if dir != filepath.Join("/tmp/state", "update-status", "logs") {
		t.Errorf("unexpected log dir %q", dir)
	}
}

// TestPackageLevelFunctions tests the package-level convenience functions
func TestPackageLevelFunctions(t *testing.T) {
	once = sync.Once{}
	defaultLogger = nil

	buf := new(bytes.Buffer)
	once.Do(func() {
		defaultLogger = New(buf, LevelDebug)
	})

	Debug("debug test")
	Info("info test")
	Warn("warn test")
	Error("error test")

	output := buf.String()
	for _, want := range []string{"debug test", "info test", "warn test", "error test"} {
		if !strings.Contains(output, want) {
			t.Errorf("package-level output missing %q", want)
		}
	}
}

func TestSetOutputRedirects(t *testing.T) {
	first, second := new(bytes.Buffer), new(bytes.Buffer)
	log := New(first, LevelInfo)
	log.SetOutput(second)
	log.Info("redirected")
	if first.Len() != 0 || !strings.Contains(second.String(), "redirected") {
		t.Errorf("expected output in second buffer, got %q / %q", first.String(), second.String())
	}
}
