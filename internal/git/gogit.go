package git

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"

	"github.com/oakcask/git-toolbox/internal/apperr"
)

// Compile-time check that GoGitRepository implements Repository.
var _ Repository = (*GoGitRepository)(nil)

// GoGitRepository is the go-git-backed Reader, paired with exec.go's
// git-binary-backed Mutator, behind the Repository interface.
type GoGitRepository struct {
	repo    *gogit.Repository
	path    string // .git directory (or the bare repo directory itself)
	workDir string // worktree root, "" for a bare repository
}

// Open discovers a repository starting from path, walking upward through
// parent directories the way "git" itself does.
func Open(path string) (*GoGitRepository, error) {
	repo, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, &apperr.RepositoryNotFoundError{Path: path, Err: err}
	}

	wt, err := repo.Worktree()
	if err == nil {
		root := wt.Filesystem.Root()
		return &GoGitRepository{repo: repo, path: filepath.Join(root, ".git"), workDir: root}, nil
	}
	if errors.Is(err, gogit.ErrIsBareRepository) {
		abs, aerr := filepath.Abs(path)
		if aerr != nil {
			abs = path
		}
		return &GoGitRepository{repo: repo, path: abs, workDir: ""}, nil
	}
	return nil, &apperr.RepositoryNotFoundError{Path: path, Err: err}
}

func (r *GoGitRepository) Path() string             { return r.path }
func (r *GoGitRepository) WorkingDirectory() string { return r.workDir }
func (r *GoGitRepository) IsBare() bool             { return r.workDir == "" }

func (r *GoGitRepository) Head() (HeadState, error) {
	ref, err := r.repo.Head()
	if err != nil {
		return HeadState{}, &apperr.GitOperationFailedError{Op: "resolve HEAD", Err: err}
	}
	if !ref.Name().IsBranch() {
		return HeadState{Detached: true, Commit: ref.Hash().String()}, nil
	}
	return HeadState{
		Commit:          ref.Hash().String(),
		BranchFullName:  string(ref.Name()),
		BranchShortName: ref.Name().Short(),
	}, nil
}

func (r *GoGitRepository) HeadCommitMessage() (string, error) {
	ref, err := r.repo.Head()
	if err != nil {
		return "", &apperr.GitOperationFailedError{Op: "resolve HEAD", Err: err}
	}
	commit, err := r.repo.CommitObject(ref.Hash())
	if err != nil {
		return "", &apperr.GitOperationFailedError{Op: "read HEAD commit", Err: err}
	}
	subject, _, _ := strings.Cut(commit.Message, "\n")
	return subject, nil
}

func (r *GoGitRepository) Status() (WorkingTreeStatus, error) {
	if r.IsBare() {
		return WorkingTreeStatus{}, nil
	}

	wt, err := r.repo.Worktree()
	if err != nil {
		return WorkingTreeStatus{}, &apperr.GitOperationFailedError{Op: "open worktree", Err: err}
	}
	status, err := wt.Status()
	if err != nil {
		return WorkingTreeStatus{}, &apperr.GitOperationFailedError{Op: "status", Err: err}
	}

	var out WorkingTreeStatus
	for _, s := range status {
		if s.Staging == gogit.UpdatedButUnmerged || s.Worktree == gogit.UpdatedButUnmerged {
			out.Conflicted = true
		}
		if s.Worktree != gogit.Unmodified && s.Worktree != gogit.Untracked {
			out.Dirty = true
		}
		if s.Staging != gogit.Unmodified && s.Staging != gogit.Untracked {
			out.Staged = true
		}
	}
	return out, nil
}

func (r *GoGitRepository) UpstreamRef(branchShortName string) (string, bool, error) {
	branchCfg, err := r.repo.Branch(branchShortName)
	if err != nil {
		if errors.Is(err, gogit.ErrBranchNotFound) {
			return "", false, nil
		}
		return "", false, &apperr.GitOperationFailedError{Op: "read branch config", Err: err}
	}
	if branchCfg.Remote == "" || branchCfg.Merge == "" {
		return "", false, nil
	}
	full := "refs/remotes/" + branchCfg.Remote + "/" + branchCfg.Merge.Short()
	return full, true, nil
}

func (r *GoGitRepository) Branches() ([]BranchRecord, error) {
	iter, err := r.repo.Branches()
	if err != nil {
		return nil, &apperr.GitOperationFailedError{Op: "list branches", Err: err}
	}

	var out []BranchRecord
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		commit, cerr := r.repo.CommitObject(ref.Hash())
		if cerr != nil {
			// A branch pointing at an unresolvable object shouldn't abort
			// the whole listing; skip it.
			return nil
		}
		rec := BranchRecord{
			FullName:  string(ref.Name()),
			ShortName: ref.Name().Short(),
			TipTime:   commit.Committer.When,
			TipSha:    ref.Hash().String(),
		}

		if upstream, ok, uerr := r.UpstreamRef(rec.ShortName); uerr == nil && ok {
			rec.Upstream = upstream
			rec.HasUpstream = true
			if upstreamRef, rerr := r.repo.Reference(plumbing.ReferenceName(upstream), true); rerr == nil {
				if ahead, behind, aerr := r.AheadBehind(rec.TipSha, upstreamRef.Hash().String()); aerr == nil {
					rec.Ahead, rec.Behind = ahead, behind
				}
			}
		}

		out = append(out, rec)
		return nil
	})
	if err != nil {
		return nil, &apperr.GitOperationFailedError{Op: "list branches", Err: err}
	}
	return out, nil
}

func (r *GoGitRepository) AheadBehind(fromSha, toSha string) (int, int, error) {
	if fromSha == toSha {
		return 0, 0, nil
	}

	fromCommit, err := r.repo.CommitObject(plumbing.NewHash(fromSha))
	if err != nil {
		return 0, 0, &apperr.GitOperationFailedError{Op: "resolve commit", Err: err}
	}
	toCommit, err := r.repo.CommitObject(plumbing.NewHash(toSha))
	if err != nil {
		return 0, 0, &apperr.GitOperationFailedError{Op: "resolve commit", Err: err}
	}

	bases, err := fromCommit.MergeBase(toCommit)
	if err != nil {
		return 0, 0, &apperr.GitOperationFailedError{Op: "compute merge base", Err: err}
	}
	if len(bases) == 0 {
		// Unrelated histories: report full reachable counts as a best effort
		// rather than failing outright.
		ahead, aerr := r.commitsBetween("", fromSha)
		if aerr != nil {
			return 0, 0, aerr
		}
		behind, berr := r.commitsBetween("", toSha)
		if berr != nil {
			return 0, 0, berr
		}
		return len(ahead), len(behind), nil
	}

	base := bases[0].Hash.String()
	ahead, err := r.commitsBetween(base, fromSha)
	if err != nil {
		return 0, 0, err
	}
	behind, err := r.commitsBetween(base, toSha)
	if err != nil {
		return 0, 0, err
	}
	return len(ahead), len(behind), nil
}

// commitsBetween walks history reachable from toSha, stopping (exclusive) at
// fromSha, and returns the shas encountered.
func (r *GoGitRepository) commitsBetween(fromSha, toSha string) ([]string, error) {
	iter, err := r.repo.Log(&gogit.LogOptions{From: plumbing.NewHash(toSha)})
	if err != nil {
		return nil, &apperr.GitOperationFailedError{Op: "walk history", Err: err}
	}

	stop := plumbing.ZeroHash
	if fromSha != "" {
		stop = plumbing.NewHash(fromSha)
	}

	var shas []string
	err = iter.ForEach(func(c *object.Commit) error {
		if c.Hash == stop {
			return storer.ErrStop
		}
		shas = append(shas, c.Hash.String())
		return nil
	})
	if err != nil {
		return nil, &apperr.GitOperationFailedError{Op: "walk history", Err: err}
	}
	return shas, nil
}

// ResolveRef resolves any ref name (branch, remote-tracking branch, or tag)
// to its commit sha. ok is false if the ref doesn't exist.
func (r *GoGitRepository) ResolveRef(ref string) (string, bool, error) {
	resolved, err := r.repo.Reference(plumbing.ReferenceName(ref), true)
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return "", false, nil
		}
		return "", false, &apperr.GitOperationFailedError{Op: "resolve ref", Err: err}
	}
	return resolved.Hash().String(), true, nil
}

// RemoteHeadBranch resolves refs/remotes/<remote>/HEAD, the symbolic
// pointer a fetch updates to track the remote's default branch. ok is
// false if the symbolic ref was never written (a shallow or partial
// clone, or a remote never fetched).
func (r *GoGitRepository) RemoteHeadBranch(remote string) (string, bool, error) {
	name := plumbing.ReferenceName("refs/remotes/" + remote + "/HEAD")
	ref, err := r.repo.Reference(name, false)
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return "", false, nil
		}
		return "", false, &apperr.GitOperationFailedError{Op: "resolve remote HEAD", Err: err}
	}
	if ref.Type() != plumbing.SymbolicReference {
		return "", false, nil
	}
	return strings.TrimPrefix(string(ref.Target()), "refs/remotes/"+remote+"/"), true, nil
}

// IsAncestor reports whether ancestorSha is reachable from descendantSha,
// walking at most limit commits. A limit of zero or less is treated as
// unbounded, mirroring ReflogContains' convention for its own limit
// parameter.
func (r *GoGitRepository) IsAncestor(ancestorSha, descendantSha string, limit int) (bool, error) {
	if ancestorSha == descendantSha {
		return true, nil
	}

	iter, err := r.repo.Log(&gogit.LogOptions{From: plumbing.NewHash(descendantSha)})
	if err != nil {
		return false, &apperr.GitOperationFailedError{Op: "walk history", Err: err}
	}

	target := plumbing.NewHash(ancestorSha)
	found := false
	exhausted := false
	walked := 0
	err = iter.ForEach(func(c *object.Commit) error {
		if limit > 0 && walked >= limit {
			exhausted = true
			return storer.ErrStop
		}
		walked++
		if c.Hash == target {
			found = true
			return storer.ErrStop
		}
		return nil
	})
	if err != nil {
		return false, &apperr.GitOperationFailedError{Op: "walk history", Err: err}
	}
	if found {
		return true, nil
	}
	if exhausted {
		return false, &apperr.GitOperationFailedError{
			Op:     "walk history",
			Detail: fmt.Sprintf("exceeded limit of %d commits without resolving ancestry", limit),
		}
	}
	return false, nil
}

func (r *GoGitRepository) RemoteNames() ([]string, error) {
	remotes, err := r.repo.Remotes()
	if err != nil {
		return nil, &apperr.GitOperationFailedError{Op: "list remotes", Err: err}
	}
	names := make([]string, 0, len(remotes))
	for _, rm := range remotes {
		names = append(names, rm.Config().Name)
	}
	sort.Strings(names)
	return names, nil
}
