// Package apperr defines the typed error taxonomy shared by dah, stale, and
// whose. Each type wraps an underlying cause where one exists, so callers
// can use errors.As/errors.Is the same way the rest of the module chains
// fmt.Errorf("...: %w", err).
package apperr

import "fmt"

// RepositoryNotFoundError means no git repository was discoverable from the
// working directory.
type RepositoryNotFoundError struct {
	Path string
	Err  error
}

func (e *RepositoryNotFoundError) Error() string {
	return fmt.Sprintf("no git repository found at or above %q: %v", e.Path, e.Err)
}

func (e *RepositoryNotFoundError) Unwrap() error { return e.Err }

// PathOutsideRepositoryError means a pathspec resolved outside the worktree.
type PathOutsideRepositoryError struct {
	Pathspec string
	Root     string
}

func (e *PathOutsideRepositoryError) Error() string {
	return fmt.Sprintf("pathspec %q escapes repository root %q", e.Pathspec, e.Root)
}

// InvalidPeriodError means a relative-date string failed the period grammar.
type InvalidPeriodError struct {
	Input string
	Err   error
}

func (e *InvalidPeriodError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid period %q: %v", e.Input, e.Err)
	}
	return fmt.Sprintf("invalid period %q", e.Input)
}

func (e *InvalidPeriodError) Unwrap() error { return e.Err }

// InvalidProtectedPatternError means a glob in dah.protectedBranch could not
// be evaluated.
type InvalidProtectedPatternError struct {
	Pattern string
	Err     error
}

func (e *InvalidProtectedPatternError) Error() string {
	return fmt.Sprintf("invalid dah.protectedBranch pattern %q: %v", e.Pattern, e.Err)
}

func (e *InvalidProtectedPatternError) Unwrap() error { return e.Err }

// GitOperationFailedError means a query or mutation delegated to the git
// engine failed.
type GitOperationFailedError struct {
	Op     string
	Detail string
	Err    error
}

func (e *GitOperationFailedError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("git %s failed: %s", e.Op, e.Detail)
	}
	return fmt.Sprintf("git %s failed: %v", e.Op, e.Err)
}

func (e *GitOperationFailedError) Unwrap() error { return e.Err }

// ConflictedError means dah observed a conflicted working tree. It is a
// terminal-but-successful outcome, not a failure of the tool itself.
type ConflictedError struct{}

func (e *ConflictedError) Error() string {
	return "working tree has unresolved conflicts; resolve them before continuing"
}

// IOError wraps a filesystem or stdout I/O failure.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("i/o error during %s: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// BatchError aggregates independent per-item failures from a batch
// operation (stale's deletion pass) that must not abort on the first
// error. Its presence signals a non-zero exit status even though most
// items may have succeeded.
type BatchError struct {
	Failures []error
}

func (e *BatchError) Error() string {
	if len(e.Failures) == 1 {
		return e.Failures[0].Error()
	}
	return fmt.Sprintf("%d of the batch operations failed (first: %v)", len(e.Failures), e.Failures[0])
}

// Add appends a failure. A BatchError with zero failures is not an error;
// callers should check Empty before returning it.
func (e *BatchError) Add(err error) {
	if err != nil {
		e.Failures = append(e.Failures, err)
	}
}

// Empty reports whether no failures were recorded.
func (e *BatchError) Empty() bool {
	return len(e.Failures) == 0
}

// OrNil returns e as an error, or nil if it recorded no failures. Use this
// as the final return value of a batch operation.
func (e *BatchError) OrNil() error {
	if e.Empty() {
		return nil
	}
	return e
}
