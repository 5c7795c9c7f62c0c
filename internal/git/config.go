package git

import (
	"strings"

	"github.com/oakcask/git-toolbox/internal/apperr"
)

// splitConfigKey splits a dotted config key into section, optional
// subsection, and option name. Only the two- and three-part forms are
// meaningful for git config; anything else is treated as a bare section
// with an empty option, which will simply never be found.
func splitConfigKey(key string) (section, subsection, option string) {
	parts := strings.Split(key, ".")
	switch len(parts) {
	case 2:
		return parts[0], "", parts[1]
	case 3:
		return parts[0], parts[1], parts[2]
	default:
		return key, "", ""
	}
}

// ConfigString reads a single-valued git config key, e.g.
// "init.defaultBranch" or "dah.protectedBranch".
func (r *GoGitRepository) ConfigString(key string) (string, bool, error) {
	cfg, err := r.repo.Config()
	if err != nil {
		return "", false, &apperr.GitOperationFailedError{Op: "read config", Err: err}
	}

	section, subsection, option := splitConfigKey(key)
	sec := cfg.Raw.Section(section)

	var value string
	if subsection != "" {
		value = sec.Subsection(subsection).Option(option)
	} else {
		value = sec.Option(option)
	}

	return value, value != "", nil
}
