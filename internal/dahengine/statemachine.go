// Package dahengine implements dah's step decision: a pure priority ladder
// over observed repository state, and the dispatcher that carries out
// whichever single action the ladder picks.
package dahengine

import "strings"

func headShortName(ref string) string {
	return strings.TrimPrefix(ref, "refs/heads/")
}

// Action names one step dah can take. Each run of the ladder picks exactly
// one, or None when there is nothing left to do.
type Action int

const (
	ActionNone Action = iota
	ActionResolveConflict
	ActionCreateBranch
	ActionRenameBranch
	ActionStageChanges
	ActionCommit
	ActionRebase
	ActionPush
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionResolveConflict:
		return "resolve-conflict"
	case ActionCreateBranch:
		return "create-branch"
	case ActionRenameBranch:
		return "rename-branch"
	case ActionStageChanges:
		return "stage-changes"
	case ActionCommit:
		return "commit"
	case ActionRebase:
		return "rebase"
	case ActionPush:
		return "push"
	default:
		return "unknown"
	}
}

// Decision is the outcome of one ladder evaluation: the action to take,
// plus whatever context that action needs to execute.
type Decision struct {
	Action      Action
	HeadBranch  string // full ref name; populated for Rebase and Push
	UpstreamRef string // full ref name; populated for Rebase and Push-with-upstream
}

// Status is the subset of working tree status the ladder needs. It mirrors
// git.WorkingTreeStatus so the ladder doesn't import the git package
// directly, keeping it a pure function of its inputs.
type Status struct {
	Dirty      bool
	Staged     bool
	Conflicted bool
}

// Collector gathers the repository facts the priority ladder decides over.
// Implementations may compute these however they like (go-git, cached
// state, or, in tests, canned values).
type Collector interface {
	Status() (Status, error)

	// HeadRef reports the current branch's full ref name, or ok=false when
	// HEAD is detached.
	HeadRef() (headRef string, ok bool, err error)

	// DefaultBranch reports the repository's configured default branch
	// short name, if known.
	DefaultBranch() (branch string, ok bool, err error)

	// IsRemoteHead reports whether HEAD's branch is the remote's default
	// branch (refs/remotes/<remote>/HEAD), independent of local config.
	IsRemoteHead() (bool, error)

	// IsHeadProtected reports whether HEAD's branch matches a configured
	// protected-branch pattern.
	IsHeadProtected() (bool, error)

	// UpstreamRef reports HEAD's configured upstream full ref name.
	UpstreamRef() (ref string, ok bool, err error)

	// IsSynchronized reports whether HEAD and its upstream point at the
	// same commit. Always false when there is no upstream.
	IsSynchronized() (bool, error)

	// IsBasedOnRemote reports whether HEAD's commits already sit on top of
	// upstream (no rebase needed before pushing). Always false when there
	// is no upstream.
	IsBasedOnRemote() (bool, error)
}

// Decide runs the priority ladder once. Highest priority first: an
// unresolved conflict always wins, then uncommitted changes get staged and
// committed before anything touches branches or the network, and only a
// fully clean, committed tree is eligible to rename, rebase, or push.
func Decide(c Collector) (Decision, error) {
	status, err := c.Status()
	if err != nil {
		return Decision{}, err
	}

	if status.Conflicted {
		return Decision{Action: ActionResolveConflict}, nil
	}
	if status.Dirty {
		return Decision{Action: ActionStageChanges}, nil
	}
	if status.Staged {
		return Decision{Action: ActionCommit}, nil
	}

	headRef, onBranch, err := c.HeadRef()
	if err != nil {
		return Decision{}, err
	}
	if !onBranch {
		return Decision{Action: ActionCreateBranch}, nil
	}

	synced, err := c.IsSynchronized()
	if err != nil {
		return Decision{}, err
	}
	if synced {
		return Decision{Action: ActionNone}, nil
	}

	if defaultBranch, hasDefault, err := c.DefaultBranch(); err != nil {
		return Decision{}, err
	} else if hasDefault && headShortName(headRef) == defaultBranch {
		return Decision{Action: ActionRenameBranch}, nil
	}

	if remoteHead, err := c.IsRemoteHead(); err != nil {
		return Decision{}, err
	} else if remoteHead {
		return Decision{Action: ActionRenameBranch}, nil
	}

	if protected, err := c.IsHeadProtected(); err != nil {
		return Decision{}, err
	} else if protected {
		return Decision{Action: ActionRenameBranch}, nil
	}

	upstream, hasUpstream, err := c.UpstreamRef()
	if err != nil {
		return Decision{}, err
	}
	if !hasUpstream {
		return Decision{Action: ActionPush, HeadBranch: headRef}, nil
	}

	basedOnRemote, err := c.IsBasedOnRemote()
	if err != nil {
		return Decision{}, err
	}
	if basedOnRemote {
		return Decision{Action: ActionPush, HeadBranch: headRef, UpstreamRef: upstream}, nil
	}
	return Decision{Action: ActionRebase, HeadBranch: headRef, UpstreamRef: upstream}, nil
}
