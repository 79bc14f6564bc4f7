package updates

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/obentoo/updatestatus/internal/common/logger"
	"github.com/obentoo/updatestatus/internal/common/runner"
)

// Error variables for update checks
var (
	// ErrUnexpectedExitCode is returned when a tool exits with a code that does not signal success
	ErrUnexpectedExitCode = errors.New("unexpected exit code")
	// ErrUnparseableOutput is returned when output cannot be read as an update listing
	ErrUnparseableOutput = errors.New("output is not a recognizable update listing")
)

// dnf check-update exit codes
const (
	DNFExitNoUpdates = 0
	DNFExitUpdates   = 100
)

// dnfBannerPrefixes are non-data lines that check-update prints around the listing
var dnfBannerPrefixes = []string{
	"Last metadata",
	"Upgrade",
}

// DNFChecker counts pending DNF package updates
type DNFChecker struct {
	exec    runner.Executor
	binary  string
	refresh bool
	quiet   bool
}

// DNFOption configures a DNFChecker
type DNFOption func(*DNFChecker)

// WithDNFBinary overrides the dnf executable name or path
func WithDNFBinary(binary string) DNFOption {
	return func(c *DNFChecker) {
		if binary != "" {
			c.binary = binary
		}
	}
}

// WithRefresh makes dnf refresh repository metadata before listing updates
func WithRefresh(refresh bool) DNFOption {
	return func(c *DNFChecker) {
		c.refresh = refresh
	}
}

// WithQuiet passes --quiet to dnf
func WithQuiet(quiet bool) DNFOption {
	return func(c *DNFChecker) {
		c.quiet = quiet
	}
}

// NewDNFChecker creates a DNF checker that runs commands through exec
func NewDNFChecker(exec runner.Executor, opts ...DNFOption) *DNFChecker {
	c := &DNFChecker{
		exec:   exec,
		binary: "dnf",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name returns the source label
func (c *DNFChecker) Name() string {
	return "DNF"
}

// Args returns the check-update arguments the checker will pass to dnf
func (c *DNFChecker) Args() []string {
	args := []string{"check-update"}
	if c.refresh {
		args = append(args, "--refresh")
	}
	if c.quiet {
		args = append(args, "--quiet")
	}
	return args
}

// Check runs dnf check-update and counts the listed packages
func (c *DNFChecker) Check(ctx context.Context) (Count, error) {
	args := c.Args()
	logger.Debug("running %s", runner.CommandLine(c.binary, args...))

	result, err := c.exec.Run(ctx, c.binary, args...)
	if err != nil {
		return Unknown, fmt.Errorf("%s: %w", runner.CommandLine(c.binary, args...), err)
	}

	return ParseDNFResult(result)
}

// ParseDNFResult turns a check-update result into a Count.
// Only exit codes 0 and 100 are trusted; any other code yields Unknown.
func ParseDNFResult(result *runner.Result) (Count, error) {
	if result == nil {
		return Unknown, ErrUnparseableOutput
	}

	switch result.ExitCode {
	case DNFExitNoUpdates, DNFExitUpdates:
	default:
		return Unknown, exitError("dnf", result)
	}

	n := CountDNFUpdates(result.Stdout)
	logger.Debug("dnf reported %d pending updates", n)
	return Known(n), nil
}

// CountDNFUpdates counts package lines in check-update output, skipping
// blank lines and metadata banners. Zero is a valid result.
func CountDNFUpdates(stdout string) int {
	n := 0
	for _, line := range strings.Split(stdout, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || isDNFBanner(line) {
			continue
		}
		n++
	}
	return n
}

// exitError describes a rejected exit code, with the tool's stderr when it printed any
func exitError(tool string, result *runner.Result) error {
	if msg := strings.TrimSpace(result.Stderr); msg != "" {
		return fmt.Errorf("%w: %s exited with %d: %s", ErrUnexpectedExitCode, tool, result.ExitCode, msg)
	}
	return fmt.Errorf("%w: %s exited with %d", ErrUnexpectedExitCode, tool, result.ExitCode)
}

func isDNFBanner(line string) bool {
	for _, prefix := range dnfBannerPrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

// Ensure DNFChecker implements Checker interface
var _ Checker = (*DNFChecker)(nil)
