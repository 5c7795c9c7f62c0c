package pathspec_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oakcask/git-toolbox/internal/apperr"
	"github.com/oakcask/git-toolbox/internal/pathspec"
)

func TestNormalize_RelativeUnderRoot(t *testing.T) {
	got, err := pathspec.Normalize("sub/file.go", "/repo/sub", "/repo")
	require.NoError(t, err)
	require.Equal(t, "sub/sub/file.go", got)
}

func TestNormalize_DotDotStaysInside(t *testing.T) {
	got, err := pathspec.Normalize("../other/file.go", "/repo/sub", "/repo")
	require.NoError(t, err)
	require.Equal(t, "other/file.go", got)
}

func TestNormalize_RepoRootItself(t *testing.T) {
	got, err := pathspec.Normalize(".", "/repo", "/repo")
	require.NoError(t, err)
	require.Equal(t, "", got)
}

func TestNormalize_EscapingRootIsAnError(t *testing.T) {
	_, err := pathspec.Normalize("../../etc/passwd", "/repo/sub", "/repo")
	require.Error(t, err)
	var target *apperr.PathOutsideRepositoryError
	require.ErrorAs(t, err, &target)
}

func TestNormalize_BareRepoPassesThrough(t *testing.T) {
	got, err := pathspec.Normalize("a/./b/../c", "", "")
	require.NoError(t, err)
	require.Equal(t, "a/c", got)
}
