package runner

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os/exec"
	"strings"
	"time"
)

var (
	ErrCommandNotFound = errors.New("command not found or not executable")
	ErrTimeout         = errors.New("command timed out")
	ErrCommandFailed   = errors.New("command could not be run")
)

// waitDelay bounds how long Run waits for output pipes after the process is killed.
const waitDelay = 2 * time.Second

// Runner executes commands as subprocesses with an optional timeout
type Runner struct {
	timeout time.Duration
	env     []string
}

// Option configures a Runner
type Option func(*Runner)

// WithTimeout bounds every command run by the Runner. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(r *Runner) {
		r.timeout = d
	}
}

// WithEnv sets the environment of spawned commands. Nil inherits the current process environment.
func WithEnv(env []string) Option {
	return func(r *Runner) {
		r.env = env
	}
}

// New creates a Runner
func New(opts ...Option) *Runner {
	r := &Runner{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Timeout returns the per-command timeout of the Runner
func (r *Runner) Timeout() time.Duration {
	return r.timeout
}

// Run executes name with args and captures stdout and stderr.
// Non-zero exits are returned as a Result with a nil error; only failures to
// run the command at all, or a timeout, produce an error and a nil Result.
func (r *Runner) Run(ctx context.Context, name string, args ...string) (*Result, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.WaitDelay = waitDelay
	if r.env != nil {
		cmd.Env = r.env
	}

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	err := cmd.Run()

	// A killed process also surfaces as an ExitError, so the deadline is checked first.
	if ctxErr := ctx.Err(); ctxErr != nil {
		if errors.Is(ctxErr, context.DeadlineExceeded) {
			return nil, ErrTimeout
		}
		return nil, errors.Join(ErrCommandFailed, ctxErr)
	}

	if err != nil {
		var exitErr *exec.ExitError
		switch {
		case errors.As(err, &exitErr):
			return &Result{
				ExitCode: exitErr.ExitCode(),
				Stdout:   stdoutBuf.String(),
				Stderr:   stderrBuf.String(),
			}, nil
		case errors.Is(err, exec.ErrNotFound), errors.Is(err, fs.ErrNotExist), errors.Is(err, fs.ErrPermission):
			return nil, errors.Join(ErrCommandNotFound, err)
		default:
			return nil, errors.Join(ErrCommandFailed, err)
		}
	}

	return &Result{
		ExitCode: 0,
		Stdout:   stdoutBuf.String(),
		Stderr:   stderrBuf.String(),
	}, nil
}

// Available reports whether name resolves to an executable on PATH
func Available(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// CommandLine renders name and args as a single space-separated string
func CommandLine(name string, args ...string) string {
	if len(args) == 0 {
		return name
	}
	return name + " " + strings.Join(args, " ")
}

// Ensure Runner implements Executor interface
var _ Executor = (*Runner)(nil)
