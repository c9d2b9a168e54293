// Migrate command: transfer curator annotations onto a template export.
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
	flagOutput           string
	flagTransferSiteTags bool
	flagSmilesPolicy     string
)

var migrateCmd = &cobra.Command{
	Use:   "migrate <source> <template>",
	Short: "Migrate curator tags from a source export onto a template export",
	Long: `Migrate clones the template table, transfers the source's curator tag
columns onto it, reconciles site aliases across the two exports, and
rewrites curator site renames into the output. The output file is only
written when the whole migration succeeds.`,
	Args: cobra.ExactArgs(2),
	RunE: runMigrate,
}

func init() {
	migrateCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "output path (default: metadata_migrated.csv)")
	migrateCmd.Flags().BoolVar(&flagTransferSiteTags, "transfer-site-tags", true, "reconcile and rename site aliases")
	migrateCmd.Flags().StringVar(&flagSmilesPolicy, "smiles-policy", "", "SMILES mismatch handling: warn or fatal (default: warn)")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	sourcePath, err := filepath.Abs(args[0])
	if err != nil {
		return err
	}
	templatePath, err := filepath.Abs(args[1])
	if err != nil {
		return err
	}

	output := flagOutput
	if output == "" {
		output = cfg.GetString(cfgKeyOutput)
	}
	outputPath, err := filepath.Abs(output)
	if err != nil {
		return err
	}

	opts := migrate.DefaultOptions()
	opts.TransferSiteTags = flagTransferSiteTags
	if !cmd.Flags().Changed("transfer-site-tags") {
		opts.TransferSiteTags = cfg.GetBool(cfgKeyTransferSiteTags)
	}

	policy := flagSmilesPolicy
	if policy == "" {
		policy = cfg.GetString(cfgKeySmilesPolicy)
	}
	opts.SmilesPolicy, err = migrate.ParseSmilesPolicy(policy)
	if err != nil {
		return err
	}

	log.Info().
		Str("source", sourcePath).
		Str("template", templatePath).
		Str("output", outputPath).
		Msg("migrating curator annotations")

	source, err := tabular.Load(sourcePath, log)
	if err != nil {
		return fmt.Errorf("load source: %w", err)
	}
	template, err := tabular.Load(templatePath, log)
	if err != nil {
		return fmt.Errorf("load template: %w", err)
	}

	out, summaries, err := migrate.NewMigrator(opts, log).Migrate(source, template)
	if err != nil {
		return err
	}

	if err := migrate.RenderSummary(os.Stdout, summaries); err != nil {
		return err
	}

	log.Info().Str("path", outputPath).Msg("writing output")
	if err := tabular.Write(out, outputPath); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
