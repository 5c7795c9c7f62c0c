package dahengine

import (
	"path"
	"strings"

	"github.com/oakcask/git-toolbox/internal/apperr"
)

// ProtectedBranches is a parsed dah.protectedBranch value: a colon
// separated list of fnmatch-style globs (a bare "*" never crosses "/",
// matching git's own refname globbing) against branch short names.
type ProtectedBranches struct {
	patterns []string
}

// ParseProtectedBranches parses a colon-separated glob list. Empty entries
// (from leading/trailing/doubled colons) are ignored.
func ParseProtectedBranches(spec string) (ProtectedBranches, error) {
	var patterns []string
	for _, p := range strings.Split(spec, ":") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if _, err := path.Match(p, ""); err != nil {
			return ProtectedBranches{}, &apperr.InvalidProtectedPatternError{Pattern: p, Err: err}
		}
		patterns = append(patterns, p)
	}
	return ProtectedBranches{patterns: patterns}, nil
}

// Matches reports whether branch (a short name, e.g. "release/1.2") matches
// any configured pattern.
func (pb ProtectedBranches) Matches(branch string) bool {
	for _, p := range pb.patterns {
		if ok, _ := path.Match(p, branch); ok {
			return true
		}
	}
	return false
}
