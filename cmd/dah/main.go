// Command dah repeatedly inspects a git working copy and applies the
// single next operation — stage, commit, rename/switch, create branch,
// rebase, or push — until the repository reaches a terminal state.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oakcask/git-toolbox/internal/dahengine"
	"github.com/oakcask/git-toolbox/internal/git"
	"github.com/oakcask/git-toolbox/internal/logging"
)

var (
	flagStep        bool
	flagLimit       int
	flagCooperative bool
	flagPath        string
)

var rootCmd = &cobra.Command{
	Use:   "dah",
	Short: "Push local changes anyway -- I know what you mean",
	RunE:  runE,
}

func init() {
	rootCmd.Flags().BoolVarP(&flagStep, "step", "1", false, "execute exactly one step and stop")
	rootCmd.Flags().IntVar(&flagLimit, "limit", 0, "commits to scan during history-bound checks (default 100)")
	rootCmd.Flags().BoolVar(&flagCooperative, "cooperative", false, "never force-push; rebase-then-push only")
	rootCmd.Flags().StringVarP(&flagPath, "path", "p", ".", "path to the git repository")
}

func runE(cmd *cobra.Command, _ []string) error {
	logger := logging.NewFactory().For("dah")

	repo, err := git.Open(flagPath)
	if err != nil {
		return fmt.Errorf("opening repository: %w", err)
	}

	if err := repo.FetchBestEffort(); err != nil {
		logger.Warnw("fetch before stepping failed; continuing with local state", "error", err)
	}

	branchPrefix, _, err := repo.ConfigString("dah.branchprefix")
	if err != nil {
		return fmt.Errorf("reading dah.branchPrefix: %w", err)
	}

	protectedSpec, _, err := repo.ConfigString("dah.protectedbranch")
	if err != nil {
		return fmt.Errorf("reading dah.protectedBranch: %w", err)
	}
	protected, err := dahengine.ParseProtectedBranches(protectedSpec)
	if err != nil {
		return err
	}

	limit := flagLimit
	if limit <= 0 {
		limit = 100
	}

	collector := &dahengine.RepoCollector{
		Reader:       repo,
		Protected:    protected,
		Cooperative:  flagCooperative,
		HistoryLimit: limit,
	}

	opts := dahengine.RunOptions{
		Step:         flagStep,
		Cooperative:  flagCooperative,
		BranchPrefix: branchPrefix,
		OnStep: func(d dahengine.Decision) {
			logger.Infow("step", "action", d.Action.String())
		},
	}

	return dahengine.Run(repo, collector, repo, opts)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
