package codeowners

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustCompile(t *testing.T, src string) *regexp.Regexp {
	t.Helper()
	re, err := regexp.Compile(src)
	require.NoError(t, err)
	return re
}

const sample = `# top-level default
*       @org/default

/docs/  @org/docs-team @alice

# build artifacts have no owner
/build/
`

func TestParse_LastRuleWins(t *testing.T) {
	rs, err := Parse(sample)
	require.NoError(t, err)

	owners, ok := rs.Owners("README.md")
	require.True(t, ok)
	require.Equal(t, []string{"@org/default"}, owners)

	owners, ok = rs.Owners("docs/guide.md")
	require.True(t, ok)
	require.Equal(t, []string{"@org/docs-team", "@alice"}, owners)

	owners, ok = rs.Owners("build/output.bin")
	require.True(t, ok)
	require.Empty(t, owners)
}

func TestParse_UnmatchedPathHasNoOwner(t *testing.T) {
	rs, err := Parse(`/docs/ @org/docs-team`)
	require.NoError(t, err)

	_, ok := rs.Owners("src/main.go")
	require.False(t, ok)
}

func TestMatchingRules_ExplainsEveryMatch(t *testing.T) {
	rs, err := Parse(sample)
	require.NoError(t, err)

	rules := rs.MatchingRules("docs/guide.md")
	require.Len(t, rules, 2)
	require.Equal(t, "*", rules[0].Pattern)
	require.Equal(t, "/docs/", rules[1].Pattern)
}
