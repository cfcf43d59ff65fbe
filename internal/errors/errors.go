// Package errors defines the sentinel errors shared by workhere's packages.
// Callers wrap them with fmt.Errorf("...: %w", ...) and test with errors.Is.
package errors

import "errors"

// Precondition failures.
var (
	ErrNotGitRepository  = errors.New("current directory is not a git repository")
	ErrNotRepositoryRoot = errors.New("workhere must be run from the repository root")
)

// Lookup and state failures.
var (
	ErrWorktreeNotFound = errors.New("worktree not found")
	ErrWorktreeExists   = errors.New("worktree already exists")
)

// Subprocess failures during mutating operations.
var (
	ErrGitOperationFailed = errors.New("git operation failed")
	ErrScriptFailed       = errors.New("script failed")
)

var ErrConfigInvalid = errors.New("invalid configuration")

// ExitCode maps an error returned from a command to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}
