// Package stale implements branch selection and batched deletion for the
// stale command: filter local branches by prefix and tip-commit age, then
// either list them or delete them locally/remotely.
package stale

import (
	"sort"
	"strings"
	"time"

	"github.com/oakcask/git-toolbox/internal/apperr"
	"github.com/oakcask/git-toolbox/internal/git"
	"github.com/oakcask/git-toolbox/internal/reltime"
)

// Options controls one stale invocation.
type Options struct {
	Prefixes []string
	Since    *reltime.Period
	Delete   bool
	Push     bool
	Now      time.Time // zero means time.Now()
}

// Select returns every local branch matching prefixes and the age cutoff,
// excluding HEAD's own branch (dah/stale never touch the branch you're on),
// sorted lexicographically by short name.
func Select(reader git.Reader, opts Options) ([]git.BranchRecord, error) {
	branches, err := reader.Branches()
	if err != nil {
		return nil, err
	}

	head, err := reader.Head()
	if err != nil {
		return nil, err
	}

	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	var cutoff time.Time
	hasCutoff := opts.Since != nil
	if hasCutoff {
		cutoff = reltime.Before(now, *opts.Since)
	}

	var out []git.BranchRecord
	for _, b := range branches {
		if !head.Detached && b.FullName == head.BranchFullName {
			continue
		}
		if !matchesPrefix(b.ShortName, opts.Prefixes) {
			continue
		}
		if hasCutoff && !b.TipTime.Before(cutoff) {
			continue
		}
		out = append(out, b)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ShortName < out[j].ShortName })
	return out, nil
}

func matchesPrefix(name string, prefixes []string) bool {
	if len(prefixes) == 0 {
		return true
	}
	for _, p := range prefixes {
		if strings.HasPrefix(name, p) {
			return true
		}
	}
	return false
}

// DeleteLocal deletes every candidate's local branch, collecting per-branch
// failures instead of aborting the batch.
func DeleteLocal(mutator git.Mutator, candidates []git.BranchRecord) error {
	var batch apperr.BatchError
	for _, b := range candidates {
		if err := mutator.DeleteLocalBranch(b.ShortName); err != nil {
			batch.Add(err)
		}
	}
	return batch.OrNil()
}

// DeleteRemote deletes each candidate's upstream branch, grouped by remote
// to amortize connection setup: one push per remote, lexicographic order
// within it. Candidates with no upstream are silently skipped. Failures on
// one remote don't prevent the others from being attempted.
func DeleteRemote(mutator git.Mutator, candidates []git.BranchRecord) error {
	byRemote := map[string][]string{}
	for _, b := range candidates {
		if !b.HasUpstream {
			continue
		}
		remote, branch := splitUpstream(b.Upstream)
		if remote == "" || branch == "" {
			continue
		}
		byRemote[remote] = append(byRemote[remote], branch)
	}

	remotes := make([]string, 0, len(byRemote))
	for r := range byRemote {
		remotes = append(remotes, r)
	}
	sort.Strings(remotes)

	var batch apperr.BatchError
	for _, remote := range remotes {
		branches := byRemote[remote]
		sort.Strings(branches)
		if err := mutator.DeleteRemoteBranches(remote, branches); err != nil {
			batch.Add(err)
		}
	}
	return batch.OrNil()
}

// splitUpstream splits "refs/remotes/origin/feature/x" into ("origin",
// "feature/x").
func splitUpstream(ref string) (remote, branch string) {
	trimmed := strings.TrimPrefix(ref, "refs/remotes/")
	remote, branch, _ = strings.Cut(trimmed, "/")
	return remote, branch
}
