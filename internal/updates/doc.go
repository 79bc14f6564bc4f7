// Package updates counts pending updates reported by external package tools.
//
// The package implements:
//   - Count, a non-negative update count that can also be Unknown
//   - DNF extraction from `dnf check-update` output and exit codes
//   - Flatpak extraction from `flatpak remote-ls --updates`, with an optional
//     fallback to the output of `flatpak update --no-deploy`
//   - CheckAll, which runs independent checkers sequentially or in parallel
//
// A count of zero means the source is confirmed up to date. Unknown means the
// command could not be run, timed out, or produced output that could not be
// read as an update listing; the two are never conflated.
//
// Usage:
//
//	exec := runner.New(runner.WithTimeout(10 * time.Second))
//	reports := updates.CheckAll(ctx, false,
//	    updates.NewDNFChecker(exec, updates.WithRefresh(true)),
//	    updates.NewFlatpakChecker(exec, updates.WithFallback(true)),
//	)
package updates
