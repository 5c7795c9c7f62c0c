// Package pathspec resolves user-supplied path arguments (CLI pathspecs,
// relative to the current working directory) into repository-root-relative,
// slash-separated paths suitable for index lookups.
package pathspec

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/oakcask/git-toolbox/internal/apperr"
)

// Normalize resolves pathspec against cwd, then against the repository
// worktree root, returning a slash-separated path relative to root. It
// mirrors path.Clean's lexical "."/".."/"//" resolution without touching
// symlinks, since the goal is a stable index key, not a filesystem probe.
//
// A bare repository has no worktree to resolve against, so root == "" is
// treated as "pass the pathspec through, lexically cleaned, verbatim".
func Normalize(pathspec, cwd, root string) (string, error) {
	if root == "" {
		return path.Clean(filepath.ToSlash(pathspec)), nil
	}

	abs := pathspec
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(cwd, pathspec)
	}
	abs = filepath.Clean(abs)
	rootAbs := filepath.Clean(root)

	rel, err := filepath.Rel(rootAbs, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", &apperr.PathOutsideRepositoryError{Pathspec: pathspec, Root: root}
	}

	rel = filepath.ToSlash(rel)
	if rel == "." {
		return "", nil
	}
	return rel, nil
}
