// Command whose resolves CODEOWNERS ownership for a set of paths.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oakcask/git-toolbox/internal/git"
	"github.com/oakcask/git-toolbox/internal/whose"
)

var (
	flagExplain bool
	flagPath    string
)

var rootCmd = &cobra.Command{
	Use:   "whose [pathspecs...]",
	Short: "Find GitHub CODEOWNERS for path(s)",
	RunE:  runE,
}

func init() {
	rootCmd.Flags().BoolVar(&flagExplain, "explain", false, "show every matching rule per path, not just the winner")
	rootCmd.Flags().StringVarP(&flagPath, "path", "p", ".", "path to the git repository")
}

func runE(cmd *cobra.Command, args []string) error {
	repo, err := git.Open(flagPath)
	if err != nil {
		return fmt.Errorf("opening repository: %w", err)
	}

	rs, err := whose.LoadRuleset(repo)
	if err != nil {
		return err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	if len(args) == 0 {
		args = []string{"."}
	}

	if flagExplain {
		explanations, err := whose.Explain(repo, rs, cwd, args)
		if err != nil {
			return err
		}
		printExplanations(cmd, explanations)
		return nil
	}

	entries, err := whose.Resolve(repo, rs, cwd, args)
	if err != nil {
		return err
	}
	for _, e := range entries {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", e.Path, strings.Join(e.Owners, " "))
	}
	return nil
}

func printExplanations(cmd *cobra.Command, explanations []whose.Explanation) {
	out := cmd.OutOrStdout()
	for _, e := range explanations {
		fmt.Fprintf(out, "[[%s]]\n", e.Path)
		for i, rule := range e.Rules {
			fmt.Fprintf(out, "rule = %q\n", rule.Pattern)
			fmt.Fprintf(out, "owners = %q\n", rule.Owners)
			fmt.Fprintf(out, "effective = %v\n", i == e.Winner)
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
