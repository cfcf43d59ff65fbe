package exec

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// MockCommander is a test double that records command calls and returns preset responses.
type MockCommander struct {
	// Responses maps command keys ("command arg1 arg2 ...") to their preset responses.
	Responses map[string]CommandResponse

	// Calls records all commands that were executed, in order.
	Calls []CommandCall
}

// CommandCall records details of a single command execution.
type CommandCall struct {
	Dir     string
	Command string
	Args    []string

	// Streamed is true when the call went through Stream rather than Run.
	Streamed bool
}

// Key returns the "command arg1 arg2 ..." form of the call.
func (c CommandCall) Key() string {
	return buildCommandKey(c.Command, c.Args)
}

// CommandResponse defines the response for a specific command.
type CommandResponse struct {
	// Output is returned by Run, or written to stdout by Stream.
	Output []byte

	// Stderr is written to stderr by Stream.
	Stderr []byte

	Err error
}

// NewMockCommander creates a new MockCommander with empty responses and calls.
func NewMockCommander() *MockCommander {
	return &MockCommander{
		Responses: make(map[string]CommandResponse),
		Calls:     make([]CommandCall, 0),
	}
}

// Run records the command call and returns the preset response if one exists.
// If no response is found for the key, it returns nil, nil.
func (m *MockCommander) Run(ctx context.Context, dir string, command string, args ...string) ([]byte, error) {
	m.Calls = append(m.Calls, CommandCall{Dir: dir, Command: command, Args: args})

	if resp, ok := m.Responses[buildCommandKey(command, args)]; ok {
		return resp.Output, resp.Err
	}
	return nil, nil
}

// Stream records the command call and writes the preset output to the writers.
func (m *MockCommander) Stream(ctx context.Context, dir string, stdout, stderr io.Writer, command string, args ...string) error {
	m.Calls = append(m.Calls, CommandCall{Dir: dir, Command: command, Args: args, Streamed: true})

	resp, ok := m.Responses[buildCommandKey(command, args)]
	if !ok {
		return nil
	}
	if stdout != nil && len(resp.Output) > 0 {
		_, _ = stdout.Write(resp.Output)
	}
	if stderr != nil && len(resp.Stderr) > 0 {
		_, _ = stderr.Write(resp.Stderr)
	}
	return resp.Err
}

// SetResponse configures a preset response for a specific command.
func (m *MockCommander) SetResponse(command string, args []string, output []byte, err error) {
	m.Responses[buildCommandKey(command, args)] = CommandResponse{
		Output: output,
		Err:    err,
	}
}

// SetStreamResponse configures a preset response including stderr text.
func (m *MockCommander) SetStreamResponse(command string, args []string, stdout, stderr []byte, err error) {
	m.Responses[buildCommandKey(command, args)] = CommandResponse{
		Output: stdout,
		Stderr: stderr,
		Err:    err,
	}
}

// GetCall returns the nth command call (0-indexed), or nil if out of range.
func (m *MockCommander) GetCall(n int) *CommandCall {
	if n < 0 || n >= len(m.Calls) {
		return nil
	}
	return &m.Calls[n]
}

// LastCall returns the most recent command call, or nil.
func (m *MockCommander) LastCall() *CommandCall {
	if len(m.Calls) == 0 {
		return nil
	}
	return &m.Calls[len(m.Calls)-1]
}

// CallCount returns the number of commands that have been executed.
func (m *MockCommander) CallCount() int {
	return len(m.Calls)
}

// WasCalled checks if a command with the given arguments was ever executed.
func (m *MockCommander) WasCalled(command string, args ...string) bool {
	return m.indexOf(buildCommandKey(command, args)) >= 0
}

// CallIndex returns the position of the first matching call, or -1.
func (m *MockCommander) CallIndex(command string, args ...string) int {
	return m.indexOf(buildCommandKey(command, args))
}

// Keys returns the keys of all recorded calls in order.
func (m *MockCommander) Keys() []string {
	keys := make([]string, len(m.Calls))
	for i, call := range m.Calls {
		keys[i] = call.Key()
	}
	return keys
}

// Reset clears all recorded calls and responses.
func (m *MockCommander) Reset() {
	m.Calls = make([]CommandCall, 0)
	m.Responses = make(map[string]CommandResponse)
}

func (m *MockCommander) indexOf(key string) int {
	for i, call := range m.Calls {
		if call.Key() == key {
			return i
		}
	}
	return -1
}

// buildCommandKey constructs a command key from command and args.
func buildCommandKey(command string, args []string) string {
	if len(args) == 0 {
		return command
	}
	return fmt.Sprintf("%s %s", command, strings.Join(args, " "))
}
