package app

import (
	"context"
	"time"

	"github.com/obentoo/updatestatus/internal/common/config"
	"github.com/obentoo/updatestatus/internal/common/logger"
	"github.com/obentoo/updatestatus/internal/common/runner"
	"github.com/obentoo/updatestatus/internal/updates"
)

// Settings are the effective settings of one run, after merging
// variant defaults, the config file and command-line flags
type Settings struct {
	DNFBinary       string
	DNFQuiet        bool
	DNFRefresh      bool
	FlatpakBinary   string
	FlatpakFallback bool
	Timeout         time.Duration
	Parallel        bool
}

// Resolve merges a Variant's defaults with the user configuration
func Resolve(v Variant, cfg *config.Config) Settings {
	if cfg == nil {
		cfg = &config.Config{}
	}
	return Settings{
		DNFBinary:       cfg.DNF.Binary,
		DNFQuiet:        v.DNFQuiet,
		DNFRefresh:      cfg.DNFRefresh(v.DNFRefresh),
		FlatpakBinary:   cfg.Flatpak.Binary,
		FlatpakFallback: cfg.FlatpakFallback(v.FlatpakFallback),
		Timeout:         cfg.TimeoutOr(v.Timeout),
		Parallel:        cfg.Parallel,
	}
}

// Checkers builds the DNF and Flatpak checkers for the settings
func (s Settings) Checkers(exec runner.Executor) (dnf, flatpak updates.Checker) {
	dnf = updates.NewDNFChecker(exec,
		updates.WithDNFBinary(s.DNFBinary),
		updates.WithQuiet(s.DNFQuiet),
		updates.WithRefresh(s.DNFRefresh),
	)
	flatpak = updates.NewFlatpakChecker(exec,
		updates.WithFlatpakBinary(s.FlatpakBinary),
		updates.WithFallback(s.FlatpakFallback),
	)
	return dnf, flatpak
}

// Check runs both checks and returns the status message for the variant.
// Failures never abort the run; they only turn a count into Unknown.
func Check(ctx context.Context, v Variant, s Settings, exec runner.Executor) string {
	dnf, flatpak := s.Checkers(exec)
	reports := updates.CheckAll(ctx, s.Parallel, dnf, flatpak)

	for _, r := range reports {
		if r.Err == nil {
			continue
		}
		if v.ReportErrors {
			logger.Error("%s error: %v", r.Source, r.Err)
		} else {
			logger.Debug("%s error: %v", r.Source, r.Err)
		}
	}

	return v.Format(reports[0].Count, reports[1].Count)
}
