package dahengine_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oakcask/git-toolbox/internal/dahengine"
)

// fakeCollector reports canned facts for one ladder evaluation, mirroring
// the state machine's own test fixture.
type fakeCollector struct {
	status          dahengine.Status
	headRef         string
	detached        bool
	defaultBranch   string
	hasDefault      bool
	protectedBranch string
	isRemoteHead    bool
	upstreamRef     string
	hasUpstream     bool
	isSynchronized  bool
	isBasedOnRemote bool
}

func (f fakeCollector) Status() (dahengine.Status, error) { return f.status, nil }

func (f fakeCollector) HeadRef() (string, bool, error) {
	if f.detached {
		return "", false, nil
	}
	return f.headRef, true, nil
}

func (f fakeCollector) DefaultBranch() (string, bool, error) {
	return f.defaultBranch, f.hasDefault, nil
}

func (f fakeCollector) IsRemoteHead() (bool, error) { return f.isRemoteHead, nil }

func (f fakeCollector) IsHeadProtected() (bool, error) {
	return f.protectedBranch != "" && f.headRef == "refs/heads/"+f.protectedBranch, nil
}

func (f fakeCollector) UpstreamRef() (string, bool, error) {
	return f.upstreamRef, f.hasUpstream, nil
}

func (f fakeCollector) IsSynchronized() (bool, error) { return f.isSynchronized, nil }

func (f fakeCollector) IsBasedOnRemote() (bool, error) { return f.isBasedOnRemote, nil }

func TestDecide_PriorityLadder(t *testing.T) {
	cases := []struct {
		name string
		c    fakeCollector
		want dahengine.Decision
	}{
		{
			name: "conflicted wins over everything",
			c: fakeCollector{
				status: dahengine.Status{Conflicted: true},
			},
			want: dahengine.Decision{Action: dahengine.ActionResolveConflict},
		},
		{
			name: "default branch synchronized is a no-op",
			c: fakeCollector{
				headRef: "refs/heads/main", defaultBranch: "main", hasDefault: true,
				upstreamRef: "refs/remotes/origin/main", hasUpstream: true, isSynchronized: true,
			},
			want: dahengine.Decision{Action: dahengine.ActionNone},
		},
		{
			name: "default branch with local commits renames",
			c: fakeCollector{
				headRef: "refs/heads/main", defaultBranch: "main", hasDefault: true,
				upstreamRef: "refs/remotes/origin/main", hasUpstream: true, isSynchronized: false, isBasedOnRemote: true,
			},
			want: dahengine.Decision{Action: dahengine.ActionRenameBranch},
		},
		{
			name: "protected branch synchronized is a no-op",
			c: fakeCollector{
				headRef: "refs/heads/develop", defaultBranch: "main", hasDefault: true, protectedBranch: "develop",
				upstreamRef: "refs/remotes/origin/develop", hasUpstream: true, isSynchronized: true,
			},
			want: dahengine.Decision{Action: dahengine.ActionNone},
		},
		{
			name: "remote head branch with local commits renames",
			c: fakeCollector{
				headRef: "refs/heads/develop", defaultBranch: "main", hasDefault: true, isRemoteHead: true,
				upstreamRef: "refs/remotes/origin/develop", hasUpstream: true, isSynchronized: false, isBasedOnRemote: true,
			},
			want: dahengine.Decision{Action: dahengine.ActionRenameBranch},
		},
		{
			name: "protected branch with local commits renames",
			c: fakeCollector{
				headRef: "refs/heads/develop", defaultBranch: "main", hasDefault: true, protectedBranch: "develop",
				upstreamRef: "refs/remotes/origin/develop", hasUpstream: true, isSynchronized: false, isBasedOnRemote: true,
			},
			want: dahengine.Decision{Action: dahengine.ActionRenameBranch},
		},
		{
			name: "detached head creates a branch",
			c: fakeCollector{
				defaultBranch: "main", hasDefault: true, detached: true,
			},
			want: dahengine.Decision{Action: dahengine.ActionCreateBranch},
		},
		{
			name: "topic branch with no upstream pushes",
			c: fakeCollector{
				headRef: "refs/heads/foo", defaultBranch: "main", hasDefault: true,
			},
			want: dahengine.Decision{Action: dahengine.ActionPush, HeadBranch: "refs/heads/foo"},
		},
		{
			name: "topic branch including remote commits pushes",
			c: fakeCollector{
				headRef: "refs/heads/foo", defaultBranch: "main", hasDefault: true,
				upstreamRef: "refs/remotes/origin/foo", hasUpstream: true, isSynchronized: false, isBasedOnRemote: true,
			},
			want: dahengine.Decision{Action: dahengine.ActionPush, HeadBranch: "refs/heads/foo", UpstreamRef: "refs/remotes/origin/foo"},
		},
		{
			name: "topic branch not based on remote rebases",
			c: fakeCollector{
				headRef: "refs/heads/foo", defaultBranch: "main", hasDefault: true,
				upstreamRef: "refs/remotes/origin/foo", hasUpstream: true, isSynchronized: false, isBasedOnRemote: false,
			},
			want: dahengine.Decision{Action: dahengine.ActionRebase, HeadBranch: "refs/heads/foo", UpstreamRef: "refs/remotes/origin/foo"},
		},
		{
			name: "dirty worktree stages",
			c: fakeCollector{
				status:  dahengine.Status{Dirty: true},
				headRef: "refs/heads/foo",
			},
			want: dahengine.Decision{Action: dahengine.ActionStageChanges},
		},
		{
			name: "staged changes commit",
			c: fakeCollector{
				status:  dahengine.Status{Staged: true},
				headRef: "refs/heads/foo",
			},
			want: dahengine.Decision{Action: dahengine.ActionCommit},
		},
		{
			name: "topic branch synchronized is a no-op",
			c: fakeCollector{
				headRef: "refs/heads/foo", defaultBranch: "main", hasDefault: true,
				upstreamRef: "refs/remotes/origin/foo", hasUpstream: true, isSynchronized: true, isBasedOnRemote: true,
			},
			want: dahengine.Decision{Action: dahengine.ActionNone},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := dahengine.Decide(tc.c)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}
