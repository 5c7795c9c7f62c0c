// Command stale lists or deletes local branches by prefix and by the age
// of their tip commit.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/oakcask/git-toolbox/internal/apperr"
	"github.com/oakcask/git-toolbox/internal/git"
	"github.com/oakcask/git-toolbox/internal/logging"
	"github.com/oakcask/git-toolbox/internal/reltime"
	"github.com/oakcask/git-toolbox/internal/stale"
)

var (
	flagDelete bool
	flagPush   bool
	flagSince  string
	flagPath   string
)

var rootCmd = &cobra.Command{
	Use:   "stale [branches...]",
	Short: "List or delete stale branches",
	RunE:  runE,
}

func init() {
	rootCmd.Flags().BoolVarP(&flagDelete, "delete", "d", false, "delete selected branches")
	rootCmd.Flags().BoolVar(&flagPush, "push", false, "combined with --delete, delete on the matching remote instead of locally")
	rootCmd.Flags().StringVar(&flagSince, "since", "", "select branches with a tip commit older than this relative time (e.g. 90d, 2mo)")
	rootCmd.Flags().StringVarP(&flagPath, "path", "p", ".", "path to the git repository")
}

func runE(cmd *cobra.Command, args []string) error {
	logger := logging.NewFactory().For("stale")

	repo, err := git.Open(flagPath)
	if err != nil {
		return fmt.Errorf("opening repository: %w", err)
	}

	opts := stale.Options{Prefixes: args, Delete: flagDelete, Push: flagPush}
	if flagSince != "" {
		period, err := reltime.Parse(flagSince)
		if err != nil {
			return err
		}
		opts.Since = &period
	}

	candidates, err := stale.Select(repo, opts)
	if err != nil {
		return err
	}

	if !flagDelete {
		for _, b := range candidates {
			fmt.Fprintln(cmd.OutOrStdout(), b.ShortName)
		}
		return nil
	}

	if flagPush {
		if err := stale.DeleteRemote(repo, candidates); err != nil {
			logRemainingBatchFailures(logger, err)
			return err
		}
		return nil
	}

	if err := stale.DeleteLocal(repo, candidates); err != nil {
		logRemainingBatchFailures(logger, err)
		return err
	}
	return nil
}

func logRemainingBatchFailures(logger *zap.SugaredLogger, err error) {
	batch, ok := err.(*apperr.BatchError)
	if !ok {
		return
	}
	for _, f := range batch.Failures {
		logger.Warnw("branch deletion failed", "error", f)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
