package dahengine

import (
	"fmt"
	"strings"

	"github.com/oakcask/git-toolbox/internal/apperr"
	"github.com/oakcask/git-toolbox/internal/git"
)

// RunOptions controls one dah invocation.
type RunOptions struct {
	// Step, if true, executes exactly one decision and returns instead of
	// looping to quiescence.
	Step bool
	// Limit bounds how many decisions Run executes before giving up. Zero
	// means the default of 50. This is a step-loop safety cap, distinct
	// from Collector's history-scan limit (dah's --limit flag).
	Limit int
	// Cooperative disables force-pushing; see git.Mutator.Push.
	Cooperative bool
	// BranchPrefix names new branches dah creates or renames onto.
	BranchPrefix string
	// OnStep is called after every decision is made, before it executes,
	// primarily so a caller can log it.
	OnStep func(Decision)
}

const defaultStepLimit = 50

// Run drives the priority ladder until it stops: at Action == None, on a
// conflict, right after a Push, or after one step when opts.Step is set.
// It executes each decision through mutator and re-observes state through collector
// and reader after every step: one action can change what the next
// decision should be (staging changes uncovers whether anything is left to
// commit, a rename changes what HEAD's branch even is).
func Run(reader git.Reader, collector Collector, mutator git.Mutator, opts RunOptions) error {
	limit := opts.Limit
	if limit <= 0 {
		limit = defaultStepLimit
	}

	namer := BranchNamer{
		Prefix: opts.BranchPrefix,
		Exists: func(name string) (bool, error) {
			branches, err := reader.Branches()
			if err != nil {
				return false, err
			}
			for _, b := range branches {
				if b.ShortName == name {
					return true, nil
				}
			}
			return false, nil
		},
	}

	for i := 0; i < limit; i++ {
		decision, err := Decide(collector)
		if err != nil {
			return err
		}
		if opts.OnStep != nil {
			opts.OnStep(decision)
		}

		switch decision.Action {
		case ActionNone:
			return nil
		case ActionResolveConflict:
			return &apperr.ConflictedError{}
		}

		if err := execute(reader, mutator, namer, decision, opts.Cooperative); err != nil {
			return err
		}

		if decision.Action == ActionPush || opts.Step {
			return nil
		}
	}
	return fmt.Errorf("dah: exceeded step limit (%d) without reaching a stable state", limit)
}

func execute(reader git.Reader, mutator git.Mutator, namer BranchNamer, decision Decision, cooperative bool) error {
	switch decision.Action {
	case ActionCreateBranch, ActionRenameBranch:
		subject, err := reader.HeadCommitMessage()
		if err != nil {
			return err
		}
		name, err := namer.Generate(subject)
		if err != nil {
			return err
		}
		if decision.Action == ActionCreateBranch {
			return mutator.CreateBranchAndSwitch(name)
		}
		return mutator.RenameCurrentBranchAndSwitch(name)

	case ActionStageChanges:
		return mutator.StageTracked()

	case ActionCommit:
		return mutator.Commit()

	case ActionRebase:
		remote, branch := splitRemoteRef(decision.UpstreamRef)
		return mutator.RebaseOntoUpstream(remote, branch)

	case ActionPush:
		var upstream *git.UpstreamTarget
		if decision.UpstreamRef != "" {
			remote, branch := splitRemoteRef(decision.UpstreamRef)
			upstream = &git.UpstreamTarget{Remote: remote, Branch: branch}
		}
		return mutator.Push(headShortName(decision.HeadBranch), upstream, cooperative)
	}
	return nil
}

// splitRemoteRef splits "refs/remotes/origin/feature/x" into ("origin",
// "feature/x").
func splitRemoteRef(ref string) (remote, branch string) {
	trimmed := strings.TrimPrefix(ref, "refs/remotes/")
	remote, branch, _ = strings.Cut(trimmed, "/")
	return remote, branch
}
