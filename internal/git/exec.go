package git

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/oakcask/git-toolbox/internal/apperr"
)

// execDir is the directory git commands run in: the worktree root, or the
// bare repository's own directory when there is no worktree.
func (r *GoGitRepository) execDir() string {
	if r.workDir != "" {
		return r.workDir
	}
	return r.path
}

// runGit shells out to the git binary, inheriting the process's stdio so
// that prompts (credential helpers, pagers, editors) behave exactly as they
// would from a plain command-line invocation. This is the whole reason
// mutations don't go through go-git: git's own network and merge-conflict
// machinery is not something this module tries to reimplement.
func (r *GoGitRepository) runGit(op string, args ...string) error {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.execDir()
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return &apperr.GitOperationFailedError{
			Op:     op,
			Detail: fmt.Sprintf("git %s", strings.Join(args, " ")),
			Err:    err,
		}
	}
	return nil
}

func (r *GoGitRepository) FetchBestEffort() error {
	return r.runGit("fetch", "fetch")
}

func (r *GoGitRepository) StageTracked() error {
	return r.runGit("add", "add", "-u")
}

func (r *GoGitRepository) Commit() error {
	return r.runGit("commit", "commit")
}

func (r *GoGitRepository) RenameCurrentBranchAndSwitch(newName string) error {
	return r.runGit("branch -m", "branch", "-m", newName)
}

func (r *GoGitRepository) CreateBranchAndSwitch(newName string) error {
	return r.runGit("switch -c", "switch", "-c", newName)
}

func (r *GoGitRepository) RebaseOntoUpstream(remote, branch string) error {
	return r.runGit("pull --rebase", "pull", "--rebase", remote, branch)
}

func (r *GoGitRepository) Push(headBranch string, upstream *UpstreamTarget, cooperative bool) error {
	args := []string{"push"}
	if !cooperative {
		args = append(args, "--force-with-lease", "--force-if-includes")
	}
	args = append(args, "-u")
	if upstream != nil {
		args = append(args, upstream.Remote, headBranch+":"+upstream.Branch)
	} else {
		args = append(args, "origin", headBranch)
	}
	return r.runGit("push", args...)
}

func (r *GoGitRepository) DeleteLocalBranch(name string) error {
	return r.runGit("branch -d", "branch", "-d", name)
}

func (r *GoGitRepository) DeleteRemoteBranches(remote string, branches []string) error {
	if len(branches) == 0 {
		return nil
	}
	args := append([]string{"push", remote}, refspecsForDeletion(branches)...)
	return r.runGit("push", args...)
}

func refspecsForDeletion(branches []string) []string {
	refspecs := make([]string, len(branches))
	for i, b := range branches {
		refspecs[i] = ":" + b
	}
	return refspecs
}
