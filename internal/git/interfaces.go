package git

// Reader is the read-only capability set: everything dah, stale, and whose
// need to observe repository state. All of it is served by go-git, except
// the reflog scan, which reads the .git/logs files directly.
type Reader interface {
	// Path returns the path to the .git directory.
	Path() string

	// WorkingDirectory returns the worktree root, or "" for a bare repo.
	WorkingDirectory() string

	// IsBare reports whether the repository has no worktree.
	IsBare() bool

	// Head returns the current HEAD state.
	Head() (HeadState, error)

	// HeadCommitMessage returns the first line of HEAD's commit message.
	HeadCommitMessage() (string, error)

	// Status reports the working tree's multi-valued status.
	Status() (WorkingTreeStatus, error)

	// Branches lists every local branch with computed ahead/behind counts
	// against its upstream, if any.
	Branches() ([]BranchRecord, error)

	// UpstreamRef returns the full ref name of the given branch's
	// configured upstream, and whether one is configured.
	UpstreamRef(branchShortName string) (string, bool, error)

	// AheadBehind returns commit counts by which fromSha is ahead of and
	// behind toSha, via their merge base.
	AheadBehind(fromSha, toSha string) (ahead, behind int, err error)

	// ReflogContains reports whether sha appears as either the old or new
	// object id in the last limit entries of ref's reflog.
	ReflogContains(ref string, sha string, limit int) (bool, error)

	// ConfigString reads a single-valued git config key
	// ("section.key" or "section.subsection.key"). ok is false when unset.
	ConfigString(key string) (value string, ok bool, err error)

	// ReadIndexBlob reads a blob's content from the index by its
	// repo-root-relative path. ok is false when the path is not indexed.
	ReadIndexBlob(path string) (content []byte, ok bool, err error)

	// IndexPathsUnder lists every blob path in the index at or beneath
	// prefix, in lexicographic order. An empty prefix lists everything.
	// If prefix names a blob directly, that single path is returned.
	IndexPathsUnder(prefix string) ([]string, error)

	// RemoteNames lists configured remotes.
	RemoteNames() ([]string, error)

	// ResolveRef resolves any ref name to its commit sha.
	ResolveRef(ref string) (sha string, ok bool, err error)

	// RemoteHeadBranch resolves refs/remotes/<remote>/HEAD, the branch a
	// fetch marks as the remote's default. ok is false if never recorded.
	RemoteHeadBranch(remote string) (branch string, ok bool, err error)

	// IsAncestor walks descendant's history looking for ancestorSha,
	// stopping after limit commits. It returns an error naming the limit
	// if the walk exhausts it without either finding ancestorSha or
	// running out of history, so a pathologically long history can't make
	// a caller hang silently.
	IsAncestor(ancestorSha, descendantSha string, limit int) (bool, error)
}

// Mutator is the state-changing capability set. Every method shells out to
// the git binary so its observable behavior matches plain command-line use.
type Mutator interface {
	// FetchBestEffort runs "git fetch" and returns any error for the caller
	// to log; dah keeps going even when the network is unavailable.
	FetchBestEffort() error

	// StageTracked runs the equivalent of "git add -u".
	StageTracked() error

	// Commit runs a plain "git commit" of staged changes with no message
	// flag, so git's own message policy applies (normally an editor opens).
	Commit() error

	// RenameCurrentBranchAndSwitch renames HEAD's branch to newName and
	// leaves HEAD checked out on it ("git branch -m newName").
	RenameCurrentBranchAndSwitch(newName string) error

	// CreateBranchAndSwitch creates newName at HEAD and switches to it
	// ("git switch -c newName").
	CreateBranchAndSwitch(newName string) error

	// RebaseOntoUpstream runs "git pull --rebase remote branch".
	RebaseOntoUpstream(remote, branch string) error

	// Push pushes headBranch to upstream (or "origin/headBranch" when
	// upstream is nil), setting upstream tracking. When cooperative is
	// false, force-with-lease/force-if-includes semantics are used.
	Push(headBranch string, upstream *UpstreamTarget, cooperative bool) error

	// DeleteLocalBranch runs "git branch -d name" (safe delete).
	DeleteLocalBranch(name string) error

	// DeleteRemoteBranches deletes multiple branches from one remote in a
	// single push invocation (":branch" refspecs).
	DeleteRemoteBranches(remote string, branches []string) error
}

// Repository is the full capability set a production run needs.
type Repository interface {
	Reader
	Mutator
}
