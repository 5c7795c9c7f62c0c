package git

import (
	"io"
	"sort"
	"strings"

	idxfmt "github.com/go-git/go-git/v5/plumbing/format/index"

	"github.com/oakcask/git-toolbox/internal/apperr"
)

// readIndex reads the staging area, not the worktree, per spec.md's
// requirement that CODEOWNERS and whose's path enumeration reflect what
// would actually be committed.
func (r *GoGitRepository) readIndex() (*idxfmt.Index, error) {
	idx, err := r.repo.Storer.Index()
	if err != nil {
		return nil, &apperr.GitOperationFailedError{Op: "read index", Err: err}
	}
	return idx, nil
}

func (r *GoGitRepository) ReadIndexBlob(path string) ([]byte, bool, error) {
	idx, err := r.readIndex()
	if err != nil {
		return nil, false, err
	}

	for _, e := range idx.Entries {
		if e.Name != path {
			continue
		}
		blob, berr := r.repo.BlobObject(e.Hash)
		if berr != nil {
			return nil, false, &apperr.GitOperationFailedError{Op: "read blob", Err: berr}
		}
		reader, berr := blob.Reader()
		if berr != nil {
			return nil, false, &apperr.GitOperationFailedError{Op: "read blob", Err: berr}
		}
		defer reader.Close()
		data, ierr := io.ReadAll(reader)
		if ierr != nil {
			return nil, false, &apperr.IOError{Op: "read blob", Err: ierr}
		}
		return data, true, nil
	}
	return nil, false, nil
}

func (r *GoGitRepository) IndexPathsUnder(prefix string) ([]string, error) {
	idx, err := r.readIndex()
	if err != nil {
		return nil, err
	}

	if prefix == "" {
		out := make([]string, 0, len(idx.Entries))
		for _, e := range idx.Entries {
			out = append(out, e.Name)
		}
		sort.Strings(out)
		return out, nil
	}

	for _, e := range idx.Entries {
		if e.Name == prefix {
			return []string{prefix}, nil
		}
	}

	dirPrefix := prefix + "/"
	var out []string
	for _, e := range idx.Entries {
		if strings.HasPrefix(e.Name, dirPrefix) {
			out = append(out, e.Name)
		}
	}
	sort.Strings(out)
	return out, nil
}
