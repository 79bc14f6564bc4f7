package updates

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Checker checks a single update source
type Checker interface {
	// Name returns the source label, e.g. "DNF"
	Name() string
	// Check returns the pending update count. When the count is Unknown the
	// error explains why; a known count is always returned with a nil error.
	Check(ctx context.Context) (Count, error)
}

// Report is the outcome of running one Checker
type Report struct {
	// Source is the checker name
	Source string
	// Count is the update count, possibly Unknown
	Count Count
	// Err is the reason Count is Unknown, if any
	Err error
}

// CheckAll runs every checker and returns one Report per checker, in input order.
// Checkers never affect each other: a failure only makes that checker's count Unknown.
// With parallel set, checkers run concurrently; the reports are the same either way.
func CheckAll(ctx context.Context, parallel bool, checkers ...Checker) []Report {
	reports := make([]Report, len(checkers))

	if !parallel {
		for i, c := range checkers {
			reports[i] = runCheck(ctx, c)
		}
		return reports
	}

	var g errgroup.Group
	for i, c := range checkers {
		i, c := i, c
		g.Go(func() error {
			reports[i] = runCheck(ctx, c)
			return nil
		})
	}
	_ = g.Wait()

	return reports
}

func runCheck(ctx context.Context, c Checker) Report {
	count, err := c.Check(ctx)
	if err != nil {
		count = Unknown
	}
	return Report{Source: c.Name(), Count: count, Err: err}
}
