package git

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/oakcask/git-toolbox/internal/apperr"
)

// readReflog parses .git/logs/<ref> directly rather than through a go-git
// reflog API, whose shape is not stable enough to depend on. The on-disk
// format is one line per entry:
//
//	<old-sha> <new-sha> <name> <email> <epoch> <tz>\t<message>
func (r *GoGitRepository) readReflog(ref string) ([]ReflogEntry, error) {
	full := ref
	if ref != "HEAD" && !strings.HasPrefix(ref, "refs/") {
		full = "refs/heads/" + ref
	}

	path := filepath.Join(r.path, "logs", filepath.FromSlash(full))
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, &apperr.IOError{Op: "read reflog", Err: err}
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	entries := make([]ReflogEntry, 0, len(lines))
	for _, line := range lines {
		if line == "" {
			continue
		}
		if e, ok := parseReflogLine(line); ok {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

func parseReflogLine(line string) (ReflogEntry, bool) {
	header, message, _ := strings.Cut(line, "\t")

	fields := strings.Fields(header)
	if len(fields) < 2 {
		return ReflogEntry{}, false
	}
	entry := ReflogEntry{OldSha: fields[0], NewSha: fields[1], Message: message}

	// The committer identity is "Name <email>", so the timestamp and
	// timezone are whatever follows the last '>'.
	if idx := strings.LastIndexByte(header, '>'); idx >= 0 && idx+1 < len(header) {
		rest := strings.Fields(header[idx+1:])
		if len(rest) >= 1 {
			if sec, perr := strconv.ParseInt(rest[0], 10, 64); perr == nil {
				when := time.Unix(sec, 0).UTC()
				if len(rest) >= 2 {
					if loc, ok := parseGitTZ(rest[1]); ok {
						when = when.In(loc)
					}
				}
				entry.When = when
			}
		}
	}
	return entry, true
}

// parseGitTZ parses a git-style "+0900"/"-0500" offset into a fixed zone.
func parseGitTZ(tz string) (*time.Location, bool) {
	if len(tz) != 5 || (tz[0] != '+' && tz[0] != '-') {
		return nil, false
	}
	hours, err := strconv.Atoi(tz[1:3])
	if err != nil {
		return nil, false
	}
	minutes, err := strconv.Atoi(tz[3:5])
	if err != nil {
		return nil, false
	}
	offset := hours*3600 + minutes*60
	if tz[0] == '-' {
		offset = -offset
	}
	return time.FixedZone(tz, offset), true
}

func (r *GoGitRepository) ReflogContains(ref string, sha string, limit int) (bool, error) {
	entries, err := r.readReflog(ref)
	if err != nil {
		return false, err
	}
	if limit > 0 && limit < len(entries) {
		entries = entries[len(entries)-limit:]
	}
	for _, e := range entries {
		if e.OldSha == sha || e.NewSha == sha {
			return true, nil
		}
	}
	return false, nil
}
