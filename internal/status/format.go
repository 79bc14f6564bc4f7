// Package status renders update counts as strings for desktop status widgets.
//
// Two independent forms exist: FormatLabels produces a multi-line tooltip
// ("DNF: 3"), FormatCompact a single status bar segment with icons. They
// follow different rules on purpose and must not be merged.
package status

import (
	"fmt"
	"strings"

	"github.com/obentoo/updatestatus/internal/updates"
)

// Fixed messages of the label form
const (
	UpToDate     = "Up to Date"
	CheckFailed  = "Could not check for updates. Please verify DNF and Flatpak are installed."
	DNFLabel     = "DNF"
	FlatpakLabel = "Flatpak"
)

// Glyphs of the compact form. Consumers match on these exact characters.
const (
	FedoraIcon    = "\uf30a" // Nerd Font Fedora logo
	PackageIcon   = "📦"
	UpToDateGlyph = "✅"
	UnknownGlyph  = "?"
	Separator     = " | "
)

// FormatLabels renders the multi-line form. Unknown counts are treated as zero
// unless both are unknown, in which case the installation hint is returned.
func FormatLabels(dnf, flatpak updates.Count) string {
	if !dnf.IsKnown() && !flatpak.IsKnown() {
		return CheckFailed
	}

	d, f := dnf.OrZero(), flatpak.OrZero()
	if d == 0 && f == 0 {
		return UpToDate
	}

	var lines []string
	if d > 0 {
		lines = append(lines, fmt.Sprintf("%s: %d", DNFLabel, d))
	}
	if f > 0 {
		lines = append(lines, fmt.Sprintf("%s: %d", FlatpakLabel, f))
	}
	return strings.Join(lines, "\n")
}

// FormatCompact renders the single-line form, always showing both sources
func FormatCompact(dnf, flatpak updates.Count) string {
	return fmt.Sprintf("%s : %s%s%s: %s", FedoraIcon, CompactValue(dnf), Separator, PackageIcon, CompactValue(flatpak))
}

// CompactValue renders one count: the number, a check mark for zero, or "?" when unknown
func CompactValue(c updates.Count) string {
	n, ok := c.Value()
	switch {
	case !ok:
		return UnknownGlyph
	case n == 0:
		return UpToDateGlyph
	default:
		return c.String()
	}
}
