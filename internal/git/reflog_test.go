package git_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	internalgit "github.com/oakcask/git-toolbox/internal/git"
	"github.com/oakcask/git-toolbox/internal/testutil"
)

func TestReflogContains(t *testing.T) {
	tr := testutil.NewTestRepo(t)
	sha1 := tr.AddCommit("a.txt", "a", "initial")
	sha2 := tr.AddCommit("a.txt", "aa", "second")

	tr.AppendReflog("main", "0000000000000000000000000000000000000000", sha1, "commit (initial): initial", time.Unix(1000, 0))
	tr.AppendReflog("main", sha1, sha2, "commit: second", time.Unix(1100, 0))

	repo, err := internalgit.Open(tr.Path())
	require.NoError(t, err)

	found, err := repo.ReflogContains("main", sha1, 0)
	require.NoError(t, err)
	require.True(t, found)

	found, err = repo.ReflogContains("main", "deadbeefdeadbeefdeadbeefdeadbeefdeadbeef", 0)
	require.NoError(t, err)
	require.False(t, found)
}

func TestReflogContains_HonorsLimit(t *testing.T) {
	tr := testutil.NewTestRepo(t)
	sha1 := tr.AddCommit("a.txt", "a", "initial")
	sha2 := tr.AddCommit("a.txt", "aa", "second")

	tr.AppendReflog("main", "0000000000000000000000000000000000000000", sha1, "commit (initial): initial", time.Unix(1000, 0))
	tr.AppendReflog("main", sha1, sha2, "commit: second", time.Unix(1100, 0))

	repo, err := internalgit.Open(tr.Path())
	require.NoError(t, err)

	// With a limit of 1, only the newest entry (sha1 -> sha2) is visible;
	// sha1 still counts as having appeared, since it is the old object id
	// of that entry.
	found, err := repo.ReflogContains("main", sha1, 1)
	require.NoError(t, err)
	require.True(t, found)
}

func TestReflogContains_MissingFileIsNotAnError(t *testing.T) {
	tr := testutil.NewTestRepo(t)
	tr.AddCommit("a.txt", "a", "initial")

	repo, err := internalgit.Open(tr.Path())
	require.NoError(t, err)

	found, err := repo.ReflogContains("never-existed", "deadbeefdeadbeefdeadbeefdeadbeefdeadbeef", 0)
	require.NoError(t, err)
	require.False(t, found)
}
