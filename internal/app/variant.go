// Package app wires checkers, configuration and formatting into the two
// status commands.
package app

import (
	"time"

	"github.com/obentoo/updatestatus/internal/status"
	"github.com/obentoo/updatestatus/internal/updates"
)

// Variant describes one status binary: which commands it runs and how it renders the result
type Variant struct {
	// Name is the binary name, used in usage text and version output
	Name  string
	Short string
	Long  string

	// DNFQuiet passes --quiet to dnf check-update
	DNFQuiet bool
	// DNFRefresh passes --refresh to dnf check-update
	DNFRefresh bool
	// FlatpakFallback enables the dry-run fallback when remote-ls fails
	FlatpakFallback bool
	// Timeout bounds each command; zero waits indefinitely
	Timeout time.Duration

	// ReportErrors prints "<Source> error: ..." to stderr for every failed check
	ReportErrors bool
	// Colorize applies terminal colors when stdout is a TTY
	Colorize bool

	Format func(dnf, flatpak updates.Count) string
}

// Labels is the multi-line tooltip variant
var Labels = Variant{
	Name:  "dnf-update-status",
	Short: "Show pending DNF and Flatpak updates as labeled lines",
	Long: `Check DNF and Flatpak for pending updates and print one "Label: count" line
per source with updates, "Up to Date" when there are none, or a hint to verify
that both tools are installed when neither could be checked.`,
	DNFQuiet:     true,
	ReportErrors: true,
	Colorize:     true,
	Format:       status.FormatLabels,
}

// Compact is the single-line status bar variant
var Compact = Variant{
	Name:  "fedora-flatpak-status",
	Short: "Show pending DNF and Flatpak updates as a single status bar line",
	Long: `Check DNF (refreshing metadata) and Flatpak for pending updates and print a
single line with a Fedora icon and a package icon. A check mark means up to date,
"?" means the source could not be checked.`,
	DNFRefresh:      true,
	FlatpakFallback: true,
	Timeout:         10 * time.Second,
	Format:          status.FormatCompact,
}
