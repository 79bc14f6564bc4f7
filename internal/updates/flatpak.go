package updates

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/obentoo/updatestatus/internal/common/logger"
	"github.com/obentoo/updatestatus/internal/common/runner"
)

// Markers recognized in `flatpak update --no-deploy` output
const (
	FlatpakNothingToDo = "Nothing to do."
	FlatpakErrorMarker = "Error"
	// FlatpakListPrefix starts the numbered rows of the update transaction table.
	// It only matches the first row of each table, so the count can be off
	// on flatpak versions that print several rows or several tables.
	FlatpakListPrefix = "1."
)

// ErrFallbackFailed wraps the reason the dry-run fallback could not produce a count
var ErrFallbackFailed = errors.New("flatpak fallback check failed")

// FlatpakChecker counts pending Flatpak app and runtime updates
type FlatpakChecker struct {
	exec     runner.Executor
	binary   string
	fallback bool
}

// FlatpakOption configures a FlatpakChecker
type FlatpakOption func(*FlatpakChecker)

// WithFlatpakBinary overrides the flatpak executable name or path
func WithFlatpakBinary(binary string) FlatpakOption {
	return func(c *FlatpakChecker) {
		if binary != "" {
			c.binary = binary
		}
	}
}

// WithFallback enables the `flatpak update --no-deploy` fallback used when
// `flatpak remote-ls --updates` fails or times out
func WithFallback(enabled bool) FlatpakOption {
	return func(c *FlatpakChecker) {
		c.fallback = enabled
	}
}

// NewFlatpakChecker creates a Flatpak checker that runs commands through exec
func NewFlatpakChecker(exec runner.Executor, opts ...FlatpakOption) *FlatpakChecker {
	c := &FlatpakChecker{
		exec:   exec,
		binary: "flatpak",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name returns the source label
func (c *FlatpakChecker) Name() string {
	return "Flatpak"
}

// Check queries the remotes for updates, falling back to a dry-run update when enabled
func (c *FlatpakChecker) Check(ctx context.Context) (Count, error) {
	count, err := c.checkRemote(ctx)
	if err == nil {
		return count, nil
	}
	if !c.fallback {
		return Unknown, err
	}

	logger.Debug("flatpak remote-ls failed (%v), trying dry-run update", err)
	count, fbErr := c.checkDryRun(ctx)
	if fbErr != nil {
		return Unknown, errors.Join(err, fbErr)
	}
	return count, nil
}

func (c *FlatpakChecker) checkRemote(ctx context.Context) (Count, error) {
	args := []string{"remote-ls", "--updates"}
	logger.Debug("running %s", runner.CommandLine(c.binary, args...))

	result, err := c.exec.Run(ctx, c.binary, args...)
	if err != nil {
		return Unknown, fmt.Errorf("%s: %w", runner.CommandLine(c.binary, args...), err)
	}
	if result.ExitCode != 0 {
		return Unknown, exitError("flatpak", result)
	}

	n := CountFlatpakUpdates(result.Stdout)
	logger.Debug("flatpak reported %d pending updates", n)
	return Known(n), nil
}

func (c *FlatpakChecker) checkDryRun(ctx context.Context) (Count, error) {
	args := []string{"update", "--no-deploy"}
	logger.Debug("running %s", runner.CommandLine(c.binary, args...))

	result, err := c.exec.Run(ctx, c.binary, args...)
	if err != nil {
		return Unknown, fmt.Errorf("%w: %w", ErrFallbackFailed, err)
	}
	if result.ExitCode != 0 {
		return Unknown, fmt.Errorf("%w: %w", ErrFallbackFailed, exitError("flatpak", result))
	}

	count, err := ParseFlatpakDryRun(result.Stdout)
	if err != nil {
		return Unknown, fmt.Errorf("%w: %w", ErrFallbackFailed, err)
	}
	return count, nil
}

// CountFlatpakUpdates counts the non-blank lines of remote-ls --updates output,
// one per updatable ref. Zero is a valid result.
func CountFlatpakUpdates(stdout string) int {
	n := 0
	for _, line := range strings.Split(stdout, "\n") {
		if strings.TrimSpace(line) != "" {
			n++
		}
	}
	return n
}

// ParseFlatpakDryRun reads the output of `flatpak update --no-deploy`.
// An error marker wins over everything else; "Nothing to do." is a confirmed zero;
// otherwise numbered transaction rows are counted, and finding none is Unknown.
func ParseFlatpakDryRun(stdout string) (Count, error) {
	if strings.Contains(stdout, FlatpakErrorMarker) {
		return Unknown, fmt.Errorf("%w: output reports an error", ErrUnparseableOutput)
	}
	if strings.Contains(stdout, FlatpakNothingToDo) {
		return Known(0), nil
	}

	n := 0
	for _, line := range strings.Split(stdout, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), FlatpakListPrefix) {
			n++
		}
	}
	if n == 0 {
		return Unknown, fmt.Errorf("%w: no numbered update rows", ErrUnparseableOutput)
	}
	return Known(n), nil
}

// Ensure FlatpakChecker implements Checker interface
var _ Checker = (*FlatpakChecker)(nil)
