// Package testutil provides helpers for building temporary git repositories
// with controlled history, branches, and remotes for testing dah, stale,
// and whose against real git plumbing rather than hand-rolled fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	gogitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// TestRepo is a builder for creating temporary git repositories.
type TestRepo struct {
	t    testing.TB
	path string
	repo *gogit.Repository
	time time.Time
}

// NewTestRepo creates and initializes a new git repository in a temporary
// directory.
func NewTestRepo(t testing.TB) *TestRepo {
	t.Helper()
	dir := t.TempDir()

	repo, err := gogit.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("failed to init repo: %v", err)
	}

	return &TestRepo{
		t:    t,
		path: dir,
		repo: repo,
		time: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

// Path returns the repository root directory.
func (r *TestRepo) Path() string { return r.path }

// GitDir returns the .git directory, for reflog fixture writes.
func (r *TestRepo) GitDir() string { return filepath.Join(r.path, ".git") }

// WriteFile writes content to a worktree-relative path without staging it.
func (r *TestRepo) WriteFile(relPath, content string) {
	r.t.Helper()
	full := filepath.Join(r.path, relPath)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		r.t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
		r.t.Fatalf("writing %s: %v", relPath, err)
	}
}

// StageFile writes and stages a worktree-relative path, without committing.
func (r *TestRepo) StageFile(relPath, content string) {
	r.t.Helper()
	r.WriteFile(relPath, content)
	wt, err := r.repo.Worktree()
	if err != nil {
		r.t.Fatalf("getting worktree: %v", err)
	}
	if _, err := wt.Add(relPath); err != nil {
		r.t.Fatalf("staging %s: %v", relPath, err)
	}
}

// AddCommit writes relPath with the given content, stages it, and commits.
// Returns the commit SHA.
func (r *TestRepo) AddCommit(relPath, content, message string) string {
	r.t.Helper()
	r.time = r.time.Add(time.Minute)

	r.StageFile(relPath, content)

	wt, err := r.repo.Worktree()
	if err != nil {
		r.t.Fatalf("getting worktree: %v", err)
	}
	hash, err := wt.Commit(message, &gogit.CommitOptions{
		Author: &object.Signature{Name: "Test", Email: "test@example.com", When: r.time},
	})
	if err != nil {
		r.t.Fatalf("committing: %v", err)
	}
	return hash.String()
}

// EmptyCommit commits whatever is currently staged (or nothing) with an
// allow-empty commit, mirroring dah's own "git commit" of staged-only
// changes.
func (r *TestRepo) EmptyCommit(message string) string {
	r.t.Helper()
	r.time = r.time.Add(time.Minute)

	wt, err := r.repo.Worktree()
	if err != nil {
		r.t.Fatalf("getting worktree: %v", err)
	}
	hash, err := wt.Commit(message, &gogit.CommitOptions{
		Author:            &object.Signature{Name: "Test", Email: "test@example.com", When: r.time},
		AllowEmptyCommits: true,
	})
	if err != nil {
		r.t.Fatalf("committing: %v", err)
	}
	return hash.String()
}

// CreateBranch creates a branch pointing at sha without switching to it.
func (r *TestRepo) CreateBranch(name, sha string) {
	r.t.Helper()
	ref := plumbing.NewReferenceFromStrings("refs/heads/"+name, sha)
	if err := r.repo.Storer.SetReference(ref); err != nil {
		r.t.Fatalf("creating branch %s: %v", name, err)
	}
}

// Checkout switches HEAD to the given branch.
func (r *TestRepo) Checkout(branch string) {
	r.t.Helper()
	wt, err := r.repo.Worktree()
	if err != nil {
		r.t.Fatalf("getting worktree: %v", err)
	}
	if err := wt.Checkout(&gogit.CheckoutOptions{Branch: plumbing.NewBranchReferenceName(branch)}); err != nil {
		r.t.Fatalf("checking out %s: %v", branch, err)
	}
}

// DetachHeadAt checks out sha directly, leaving HEAD detached.
func (r *TestRepo) DetachHeadAt(sha string) {
	r.t.Helper()
	wt, err := r.repo.Worktree()
	if err != nil {
		r.t.Fatalf("getting worktree: %v", err)
	}
	if err := wt.Checkout(&gogit.CheckoutOptions{Hash: plumbing.NewHash(sha)}); err != nil {
		r.t.Fatalf("detaching HEAD at %s: %v", sha, err)
	}
}

// SetUpstream records branch-level upstream tracking config, as
// "git push -u" or "git branch --set-upstream-to" would.
func (r *TestRepo) SetUpstream(branch, remote, remoteBranch string) {
	r.t.Helper()
	cfg, err := r.repo.Config()
	if err != nil {
		r.t.Fatalf("reading config: %v", err)
	}
	cfg.Branches[branch] = &gogitconfig.Branch{
		Name:   branch,
		Remote: remote,
		Merge:  plumbing.ReferenceName("refs/heads/" + remoteBranch),
	}
	if err := r.repo.SetConfig(cfg); err != nil {
		r.t.Fatalf("saving config: %v", err)
	}
}

// SetRemoteTrackingBranch fabricates a refs/remotes/<remote>/<branch> ref at
// sha, simulating the result of a fetch without a real network remote.
func (r *TestRepo) SetRemoteTrackingBranch(remote, branch, sha string) {
	r.t.Helper()
	name := fmt.Sprintf("refs/remotes/%s/%s", remote, branch)
	ref := plumbing.NewReferenceFromStrings(name, sha)
	if err := r.repo.Storer.SetReference(ref); err != nil {
		r.t.Fatalf("creating remote-tracking ref %s: %v", name, err)
	}
}

// AddRemote registers a remote by name and URL, without contacting it.
func (r *TestRepo) AddRemote(name, url string) {
	r.t.Helper()
	_, err := r.repo.CreateRemote(&gogitconfig.RemoteConfig{Name: name, URLs: []string{url}})
	if err != nil {
		r.t.Fatalf("creating remote %s: %v", name, err)
	}
}

// SetConfig sets a single-valued config key, e.g. "dah.protectedBranch".
func (r *TestRepo) SetConfig(section, key, value string) {
	r.t.Helper()
	cfg, err := r.repo.Config()
	if err != nil {
		r.t.Fatalf("reading config: %v", err)
	}
	cfg.Raw.Section(section).SetOption(key, value)
	if err := r.repo.SetConfig(cfg); err != nil {
		r.t.Fatalf("saving config: %v", err)
	}
}

// AppendReflog appends one raw reflog line to .git/logs/<ref>, in the exact
// on-disk format git itself writes.
func (r *TestRepo) AppendReflog(ref, oldSha, newSha, message string, when time.Time) {
	r.t.Helper()
	full := ref
	if ref != "HEAD" {
		full = "refs/heads/" + ref
	}
	path := filepath.Join(r.GitDir(), "logs", filepath.FromSlash(full))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		r.t.Fatalf("mkdir reflog dir: %v", err)
	}
	line := fmt.Sprintf("%s %s Test <test@example.com> %d +0000\t%s\n", oldSha, newSha, when.Unix(), message)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		r.t.Fatalf("open reflog: %v", err)
	}
	defer f.Close()
	if _, err := f.WriteString(line); err != nil {
		r.t.Fatalf("append reflog: %v", err)
	}
}

// HeadSha returns the current HEAD commit SHA.
func (r *TestRepo) HeadSha() string {
	r.t.Helper()
	head, err := r.repo.Head()
	if err != nil {
		r.t.Fatalf("getting HEAD: %v", err)
	}
	return head.Hash().String()
}
