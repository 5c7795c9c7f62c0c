package codeowners

import (
	"fmt"
	"regexp"
	"strings"
)

// Rule is one parsed CODEOWNERS line.
type Rule struct {
	Pattern string
	Owners  []string
	re      *regexp.Regexp
}

// Match reports whether path falls under this rule's pattern.
func (r Rule) Match(path string) bool {
	return r.re.MatchString(path)
}

// Ruleset is a parsed CODEOWNERS file, in file order.
type Ruleset struct {
	rules []Rule
}

// Parse parses CODEOWNERS content: one rule per non-blank line whose first
// non-whitespace character isn't "#". Unlike the mid-line "#" comments some
// CODEOWNERS parsers accept, a "#" anywhere past the start of the line is
// literal content of the pattern or an owner token, matching what GitHub
// itself accepts.
func Parse(content string) (*Ruleset, error) {
	var rules []Rule

	for i, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(strings.TrimLeft(line, " \t"), "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		pattern := fields[0]
		src, err := compilePattern(pattern)
		if err != nil {
			return nil, fmt.Errorf("CODEOWNERS line %d: %w", i+1, err)
		}
		re, err := regexp.Compile(src)
		if err != nil {
			return nil, fmt.Errorf("CODEOWNERS line %d: compiling pattern %q: %w", i+1, pattern, err)
		}

		rules = append(rules, Rule{Pattern: pattern, Owners: fields[1:], re: re})
	}

	return &Ruleset{rules: rules}, nil
}

// Owners returns the owners of the last rule matching path, and whether any
// rule matched. A matched rule with zero owners means the path is
// explicitly unowned, which is distinct from no rule matching at all.
func (rs *Ruleset) Owners(path string) ([]string, bool) {
	for i := len(rs.rules) - 1; i >= 0; i-- {
		if rs.rules[i].Match(path) {
			return rs.rules[i].Owners, true
		}
	}
	return nil, false
}

// MatchingRules returns every rule that matches path, in file order. whose
// --explain uses this to show why a path resolved (or didn't) the way it
// did, since only the last entry actually wins.
func (rs *Ruleset) MatchingRules(path string) []Rule {
	var out []Rule
	for _, r := range rs.rules {
		if r.Match(path) {
			out = append(out, r)
		}
	}
	return out
}

// Rules exposes the parsed rules in file order.
func (rs *Ruleset) Rules() []Rule {
	return rs.rules
}
