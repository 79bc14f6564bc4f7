package runner

import "context"

// Executor runs external commands and reports their captured output.
// This interface allows for mocking command execution in tests.
type Executor interface {
	// Run executes name with args. A non-zero exit status is not an error:
	// it is reported through Result.ExitCode.
	Run(ctx context.Context, name string, args ...string) (*Result, error)
}

// Result holds the output of a single command invocation.
type Result struct {
	// ExitCode is the process exit code. -1 indicates death by signal.
	ExitCode int
	// Stdout contains the standard output of the command.
	Stdout string
	// Stderr contains the standard error output of the command.
	Stderr string
}

// Success reports whether the command exited with status 0.
func (r *Result) Success() bool {
	return r != nil && r.ExitCode == 0
}
