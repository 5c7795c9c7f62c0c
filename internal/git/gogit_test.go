package git_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	internalgit "github.com/oakcask/git-toolbox/internal/git"
	"github.com/oakcask/git-toolbox/internal/testutil"
)

func TestOpen_DiscoversWorktreeRoot(t *testing.T) {
	tr := testutil.NewTestRepo(t)
	tr.AddCommit("a.txt", "a", "initial")

	repo, err := internalgit.Open(tr.Path())
	require.NoError(t, err)
	require.Equal(t, tr.Path(), repo.WorkingDirectory())
	require.False(t, repo.IsBare())
}

func TestHead_ReportsCurrentBranch(t *testing.T) {
	tr := testutil.NewTestRepo(t)
	sha := tr.AddCommit("a.txt", "a", "initial")

	repo, err := internalgit.Open(tr.Path())
	require.NoError(t, err)

	head, err := repo.Head()
	require.NoError(t, err)
	require.False(t, head.Detached)
	require.Equal(t, sha, head.Commit)
	require.Equal(t, "master", head.BranchShortName)
}

func TestHead_ReportsDetached(t *testing.T) {
	tr := testutil.NewTestRepo(t)
	first := tr.AddCommit("a.txt", "a", "initial")
	tr.AddCommit("b.txt", "b", "second")
	tr.DetachHeadAt(first)

	repo, err := internalgit.Open(tr.Path())
	require.NoError(t, err)

	head, err := repo.Head()
	require.NoError(t, err)
	require.True(t, head.Detached)
	require.Equal(t, first, head.Commit)
}

func TestStatus_CleanRepo(t *testing.T) {
	tr := testutil.NewTestRepo(t)
	tr.AddCommit("a.txt", "a", "initial")

	repo, err := internalgit.Open(tr.Path())
	require.NoError(t, err)

	status, err := repo.Status()
	require.NoError(t, err)
	require.True(t, status.Clean())
}

func TestStatus_DirtyAndStaged(t *testing.T) {
	tr := testutil.NewTestRepo(t)
	tr.AddCommit("a.txt", "a", "initial")
	tr.WriteFile("a.txt", "changed")
	tr.StageFile("b.txt", "b")

	repo, err := internalgit.Open(tr.Path())
	require.NoError(t, err)

	status, err := repo.Status()
	require.NoError(t, err)
	require.True(t, status.Dirty)
	require.True(t, status.Staged)
	require.False(t, status.Clean())
}

func TestBranches_ComputesAheadBehind(t *testing.T) {
	tr := testutil.NewTestRepo(t)
	base := tr.AddCommit("a.txt", "a", "initial")
	tr.CreateBranch("feature", base)
	tr.SetUpstream("feature", "origin", "feature")
	tr.SetRemoteTrackingBranch("origin", "feature", base)

	tr.Checkout("feature")
	tr.AddCommit("b.txt", "b", "local change")

	repo, err := internalgit.Open(tr.Path())
	require.NoError(t, err)

	branches, err := repo.Branches()
	require.NoError(t, err)

	var feature *internalgit.BranchRecord
	for i := range branches {
		if branches[i].ShortName == "feature" {
			feature = &branches[i]
		}
	}
	require.NotNil(t, feature)
	require.True(t, feature.HasUpstream)
	require.Equal(t, 1, feature.Ahead)
	require.Equal(t, 0, feature.Behind)
}

func TestConfigString_ReadsAndReportsUnset(t *testing.T) {
	tr := testutil.NewTestRepo(t)
	tr.AddCommit("a.txt", "a", "initial")
	tr.SetConfig("dah", "protectedbranch", "main,release/*")

	repo, err := internalgit.Open(tr.Path())
	require.NoError(t, err)

	value, ok, err := repo.ConfigString("dah.protectedbranch")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "main,release/*", value)

	_, ok, err = repo.ConfigString("dah.unset")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestIndexPathsAndBlob(t *testing.T) {
	tr := testutil.NewTestRepo(t)
	tr.AddCommit("CODEOWNERS", "* @org/team\n", "add codeowners")
	tr.StageFile("nested/file.go", "package nested\n")

	repo, err := internalgit.Open(tr.Path())
	require.NoError(t, err)

	content, ok, err := repo.ReadIndexBlob("CODEOWNERS")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "* @org/team\n", string(content))

	paths, err := repo.IndexPathsUnder("nested")
	require.NoError(t, err)
	require.Equal(t, []string{"nested/file.go"}, paths)

	_, ok, err = repo.ReadIndexBlob("missing")
	require.NoError(t, err)
	require.False(t, ok)
}
