// Package whose glues pathspec normalization, index traversal, and
// CODEOWNERS evaluation together: given a set of user-supplied paths,
// enumerate every tracked or staged path beneath them and report the
// owners assigned by the nearest matching CODEOWNERS rule.
package whose

import (
	"sort"

	"github.com/oakcask/git-toolbox/internal/codeowners"
	"github.com/oakcask/git-toolbox/internal/git"
	"github.com/oakcask/git-toolbox/internal/pathspec"
)

// codeownersPath is fixed by GitHub convention; git-toolbox never looks
// for CODEOWNERS anywhere else.
const codeownersPath = ".github/CODEOWNERS"

// Entry pairs a resolved path with the owners assigned to it.
type Entry struct {
	Path   string
	Owners []string
}

// Explanation is one path's full CODEOWNERS evaluation trace: every rule
// that matched, in file order, plus which one actually won.
type Explanation struct {
	Path   string
	Rules  []codeowners.Rule
	Winner int // index into Rules, or -1 if none matched
}

// LoadRuleset reads and parses CODEOWNERS from the index. An absent file is
// not an error: every path simply resolves to no owner.
func LoadRuleset(reader git.Reader) (*codeowners.Ruleset, error) {
	content, ok, err := reader.ReadIndexBlob(codeownersPath)
	if err != nil {
		return nil, err
	}
	if !ok {
		return codeowners.Parse("")
	}
	return codeowners.Parse(string(content))
}

// Resolve normalizes each pathspec, walks the index beneath it, and looks
// up owners for every resulting path. cwd is the caller's working
// directory; it is ignored for bare repositories.
func Resolve(reader git.Reader, rs *codeowners.Ruleset, cwd string, pathspecs []string) ([]Entry, error) {
	root := reader.WorkingDirectory()

	var entries []Entry
	seen := map[string]bool{}
	for _, spec := range pathspecs {
		normalized, err := pathspec.Normalize(spec, cwd, root)
		if err != nil {
			return nil, err
		}

		paths, err := reader.IndexPathsUnder(normalized)
		if err != nil {
			return nil, err
		}

		for _, p := range paths {
			if seen[p] {
				continue
			}
			seen[p] = true
			owners, _ := rs.Owners(p)
			entries = append(entries, Entry{Path: p, Owners: owners})
		}
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })
	return entries, nil
}

// Explain is Resolve's --explain counterpart: instead of just the winning
// owners, it reports every rule that matched each path and which one was
// effective.
func Explain(reader git.Reader, rs *codeowners.Ruleset, cwd string, pathspecs []string) ([]Explanation, error) {
	root := reader.WorkingDirectory()

	var out []Explanation
	seen := map[string]bool{}
	for _, spec := range pathspecs {
		normalized, err := pathspec.Normalize(spec, cwd, root)
		if err != nil {
			return nil, err
		}

		paths, err := reader.IndexPathsUnder(normalized)
		if err != nil {
			return nil, err
		}

		for _, p := range paths {
			if seen[p] {
				continue
			}
			seen[p] = true

			rules := rs.MatchingRules(p)
			winner := -1
			if len(rules) > 0 {
				winner = len(rules) - 1
			}
			out = append(out, Explanation{Path: p, Rules: rules, Winner: winner})
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out, nil
}
