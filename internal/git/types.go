// Package git provides the git abstraction layer shared by dah, stale, and
// whose. Reads (HEAD, branches, status, config, reflog, index) go through
// go-git; every state-changing operation shells out to the git binary, per
// spec.md's explicit non-goal against reimplementing git's network and
// mutation semantics.
package git

import "time"

// HeadState describes the current HEAD: either a checked-out branch or a
// detached commit.
type HeadState struct {
	Detached bool
	// Commit is always populated.
	Commit string
	// Branch fields are only meaningful when Detached is false.
	BranchFullName  string // e.g. "refs/heads/feature/x"
	BranchShortName string // e.g. "feature/x"
}

// WorkingTreeStatus is the multi-valued flag from spec.md §3: clean, dirty,
// staged, dirty+staged, or conflicted.
type WorkingTreeStatus struct {
	Dirty      bool // tracked files modified but unstaged
	Staged     bool // index differs from HEAD
	Conflicted bool // any unmerged index entry
}

// Clean reports whether neither the worktree nor the index has pending
// changes and nothing is conflicted.
func (s WorkingTreeStatus) Clean() bool {
	return !s.Dirty && !s.Staged && !s.Conflicted
}

// BranchRecord is a read-only snapshot of a local branch, per spec.md §3.
type BranchRecord struct {
	FullName    string
	ShortName   string
	TipTime     time.Time
	TipSha      string
	Upstream    string // full ref name, empty if untracked
	Ahead       int
	Behind      int
	HasUpstream bool
}

// ReflogEntry is one line of a ref's reflog, oldest-to-newest order within
// the slice returned by readReflog.
type ReflogEntry struct {
	OldSha  string
	NewSha  string
	When    time.Time
	Message string
}

// UpstreamTarget names the remote and branch a push should target.
type UpstreamTarget struct {
	Remote string
	Branch string
}
