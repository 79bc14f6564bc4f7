package runner

import (
	"context"
	"fmt"
	"sync"
)

// MockRunner implements Executor for testing.
// RunFunc controls behavior; every call is recorded in Calls.
type MockRunner struct {
	RunFunc func(ctx context.Context, name string, args ...string) (*Result, error)

	mu    sync.Mutex
	calls []string
}

// NewMockRunner creates a new MockRunner
func NewMockRunner() *MockRunner {
	return &MockRunner{}
}

// Run records the command line and delegates to RunFunc
func (m *MockRunner) Run(ctx context.Context, name string, args ...string) (*Result, error) {
	m.mu.Lock()
	m.calls = append(m.calls, CommandLine(name, args...))
	m.mu.Unlock()

	if m.RunFunc != nil {
		return m.RunFunc(ctx, name, args...)
	}
	return &Result{}, nil
}

// Calls returns the command lines run so far, in order
func (m *MockRunner) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.calls))
	copy(out, m.calls)
	return out
}

// Response is a canned outcome for a ScriptedRunner command line
type Response struct {
	Result *Result
	Err    error
}

// ScriptedRunner answers each command line with a canned Response.
// Unscripted command lines fail with ErrCommandNotFound.
type ScriptedRunner struct {
	*MockRunner
	responses map[string]Response
}

// NewScriptedRunner creates a ScriptedRunner with no scripted commands
func NewScriptedRunner() *ScriptedRunner {
	s := &ScriptedRunner{
		MockRunner: NewMockRunner(),
		responses:  make(map[string]Response),
	}
	s.RunFunc = func(_ context.Context, name string, args ...string) (*Result, error) {
		line := CommandLine(name, args...)
		resp, ok := s.responses[line]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrCommandNotFound, line)
		}
		return resp.Result, resp.Err
	}
	return s
}

// On scripts the result for a command line such as "dnf check-update --quiet"
func (s *ScriptedRunner) On(line string, exitCode int, stdout string) *ScriptedRunner {
	s.responses[line] = Response{Result: &Result{ExitCode: exitCode, Stdout: stdout}}
	return s
}

// OnError scripts a runner failure for a command line
func (s *ScriptedRunner) OnError(line string, err error) *ScriptedRunner {
	s.responses[line] = Response{Err: err}
	return s
}

var (
	_ Executor = (*MockRunner)(nil)
	_ Executor = (*ScriptedRunner)(nil)
)
