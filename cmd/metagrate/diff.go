// Diff command: compare curator tags between two metadata exports.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/xchem/metagrate/internal/migrate"
	"github.com/xchem/metagrate/internal/tabular"
)

var (
	flagDiffPose     bool
	flagDiffLongcode bool
)

var diffCmd = &cobra.Command{
	Use:   "diff <a> <b>",
	Short: "Compare curator tags for observations present in both exports",
	Long: `Diff matches the rows of b against a and prints, per shared
observation, the curator tags set on exactly one side, plus identity
columns side by side where they disagree.`,
	Args: cobra.ExactArgs(2),
	RunE: runDiff,
}

func init() {
	diffCmd.Flags().BoolVar(&flagDiffPose, "pose", false, "also compare the Pose column")
	diffCmd.Flags().BoolVar(&flagDiffLongcode, "longcode", true, "include the Long code column")
}

func runDiff(cmd *cobra.Command, args []string) error {
	pathA, err := filepath.Abs(args[0])
	if err != nil {
		return err
	}
	pathB, err := filepath.Abs(args[1])
	if err != nil {
		return err
	}

	log.Info().Str("a", pathA).Str("b", pathB).Msg("comparing curator tags")

	a, err := tabular.Load(pathA, log)
	if err != nil {
		return fmt.Errorf("load a: %w", err)
	}
	b, err := tabular.Load(pathB, log)
	if err != nil {
		return fmt.Errorf("load b: %w", err)
	}

	opts := migrate.DiffOptions{
		Pose:     flagDiffPose,
		Longcode: flagDiffLongcode,
	}
	report, err := migrate.Diff(a, b, opts, log)
	if err != nil {
		return err
	}

	return migrate.RenderDiff(os.Stdout, report)
}
