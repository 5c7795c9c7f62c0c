package dahengine

import "github.com/oakcask/git-toolbox/internal/git"

// RepoCollector adapts a git.Reader plus dah's own configuration into a
// Collector for the priority ladder.
type RepoCollector struct {
	Reader       git.Reader
	Protected    ProtectedBranches
	Cooperative  bool
	HistoryLimit int
}

func (c *RepoCollector) Status() (Status, error) {
	s, err := c.Reader.Status()
	if err != nil {
		return Status{}, err
	}
	return Status{Dirty: s.Dirty, Staged: s.Staged, Conflicted: s.Conflicted}, nil
}

func (c *RepoCollector) HeadRef() (string, bool, error) {
	head, err := c.Reader.Head()
	if err != nil {
		return "", false, err
	}
	if head.Detached {
		return "", false, nil
	}
	return head.BranchFullName, true, nil
}

func (c *RepoCollector) headShortName() (string, error) {
	head, err := c.Reader.Head()
	if err != nil {
		return "", err
	}
	return head.BranchShortName, nil
}

// DefaultBranch reads init.defaultbranch, falling back to "master" when
// unset: every repository has a default branch to protect even if it was
// never explicitly configured.
func (c *RepoCollector) DefaultBranch() (string, bool, error) {
	branch, ok, err := c.Reader.ConfigString("init.defaultbranch")
	if err != nil {
		return "", false, err
	}
	if !ok {
		return "master", true, nil
	}
	return branch, true, nil
}

// IsRemoteHead reports whether HEAD's branch is the default branch of any
// configured remote. Checked across every remote, not just "origin",
// mirroring how the branch this was ported from walks all of
// repo.remotes() rather than assuming a name.
func (c *RepoCollector) IsRemoteHead() (bool, error) {
	short, err := c.headShortName()
	if err != nil {
		return false, err
	}

	remotes, err := c.Reader.RemoteNames()
	if err != nil {
		return false, err
	}
	for _, remote := range remotes {
		remoteDefault, ok, err := c.Reader.RemoteHeadBranch(remote)
		if err != nil {
			return false, err
		}
		if ok && remoteDefault == short {
			return true, nil
		}
	}
	return false, nil
}

// IsHeadProtected reports whether HEAD's branch is protected: the union of
// the configured default branch and the dah.protectedBranch glob list.
func (c *RepoCollector) IsHeadProtected() (bool, error) {
	short, err := c.headShortName()
	if err != nil {
		return false, err
	}
	if defaultBranch, ok, err := c.DefaultBranch(); err != nil {
		return false, err
	} else if ok && short == defaultBranch {
		return true, nil
	}
	return c.Protected.Matches(short), nil
}

func (c *RepoCollector) UpstreamRef() (string, bool, error) {
	short, err := c.headShortName()
	if err != nil {
		return "", false, err
	}
	return c.Reader.UpstreamRef(short)
}

func (c *RepoCollector) IsSynchronized() (bool, error) {
	head, err := c.Reader.Head()
	if err != nil {
		return false, err
	}
	upstream, ok, err := c.UpstreamRef()
	if err != nil || !ok {
		return false, err
	}
	upstreamSha, ok, err := c.Reader.ResolveRef(upstream)
	if err != nil || !ok {
		return false, err
	}
	return head.Commit == upstreamSha, nil
}

// IsBasedOnRemote reports whether HEAD already sits on top of its upstream.
// In non-cooperative (force-push-allowed) mode, a cheap reflog scan usually
// answers this without walking history at all: if the upstream sha ever
// passed through HEAD's own reflog, a prior rebase already landed it there.
// Otherwise it falls back to an ancestry check: a walk of HEAD's history,
// bounded by HistoryLimit, looking for the upstream sha.
func (c *RepoCollector) IsBasedOnRemote() (bool, error) {
	head, err := c.Reader.Head()
	if err != nil {
		return false, err
	}
	upstream, ok, err := c.UpstreamRef()
	if err != nil || !ok {
		return false, err
	}
	upstreamSha, ok, err := c.Reader.ResolveRef(upstream)
	if err != nil || !ok {
		return false, err
	}

	if !c.Cooperative {
		short, err := c.headShortName()
		if err != nil {
			return false, err
		}
		if found, err := c.Reader.ReflogContains(short, upstreamSha, c.HistoryLimit); err == nil && found {
			return true, nil
		}
	}

	return c.Reader.IsAncestor(upstreamSha, head.Commit, c.HistoryLimit)
}
