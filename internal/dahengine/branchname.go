package dahengine

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode"

	"github.com/oklog/ulid/v2"
)

const slugMaxRunes = 40

// SlugifyCommitMessage derives a branch-name-safe slug from a commit
// message's subject line: letters and digits lowercased, any run of
// anything else collapsed to a single hyphen, truncated to 40 codepoints,
// and falling back to "work" when nothing usable survives (an
// emoji-only or entirely punctuation subject line, for instance).
func SlugifyCommitMessage(subject string) string {
	var b strings.Builder
	atBoundary := true
	runes := 0

	for _, r := range subject {
		if runes >= slugMaxRunes {
			break
		}
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(unicode.ToLower(r))
			atBoundary = false
			runes++
		case !atBoundary:
			b.WriteByte('-')
			atBoundary = true
			runes++
		}
	}

	slug := strings.TrimRight(b.String(), "-")
	if slug == "" {
		return "work"
	}
	return slug
}

const maxNameCollisionRetries = 8

// BranchNamer synthesizes branch names for dah's create-branch and
// rename-branch actions: "{prefix}{slug}-dah{ulid}", prefix prepended
// verbatim (it may be empty, or may itself contain "/"). The ULID suffix
// is regenerated on a name collision rather than erroring immediately,
// since two ULIDs colliding within the same millisecond is the only
// realistic cause and a retry resolves it.
type BranchNamer struct {
	Prefix string
	// Exists reports whether name is already taken. nil skips the check.
	Exists func(name string) (bool, error)
	// Entropy overrides the ULID entropy source; tests set this for
	// deterministic output. Production leaves it nil.
	Entropy io.Reader
}

// Generate returns a new branch name derived from subject.
func (n BranchNamer) Generate(subject string) (string, error) {
	slug := SlugifyCommitMessage(subject)

	for attempt := 0; attempt < maxNameCollisionRetries; attempt++ {
		suffix := n.newULID()
		name := fmt.Sprintf("%s%s-dah%s", n.Prefix, slug, suffix)
		if n.Exists == nil {
			return name, nil
		}
		exists, err := n.Exists(name)
		if err != nil {
			return "", err
		}
		if !exists {
			return name, nil
		}
	}
	return "", fmt.Errorf("could not generate a unique branch name after %d attempts", maxNameCollisionRetries)
}

func (n BranchNamer) newULID() string {
	entropy := n.Entropy
	if entropy == nil {
		entropy = ulid.Monotonic(rand.Reader, 0)
	}
	id := ulid.MustNew(ulid.Timestamp(time.Now()), entropy)
	return strings.ToLower(id.String())
}
