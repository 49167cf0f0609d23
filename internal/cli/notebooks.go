package cli

import (
	"fmt"

	"github.com/kernelctl-labs/kernelctl/internal/config"
	"github.com/kernelctl-labs/kernelctl/internal/notebook"
	"github.com/spf13/cobra"
)

var notebooksDryRun bool

func init() {
	notebooksSyncCmd.Flags().BoolVar(&notebooksDryRun, "dry-run", false, "Report prospective changes without writing")
	notebooksCmd.AddCommand(notebooksSyncCmd)
	rootCmd.AddCommand(notebooksCmd)
}

var notebooksCmd = &cobra.Command{
	Use:   "notebooks",
	Short: "Manage notebook kernelspec references",
}

var notebooksSyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Point project notebooks at their configured kernels",
	Long: `Walk the project tree for notebook files, pick a kernel for each from its
path, and rewrite the embedded kernelspec reference to the registered spec
name. Notebooks already pointing at the right kernel are left untouched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		projectDir, err := resolveProject()
		if err != nil {
			return err
		}
		cfg, _, err := loadKernels(projectDir)
		if err != nil {
			return err
		}

		prefix := config.Get(config.KeySpecPrefix)
		summary, err := notebook.UpdateAll(cmd.Context(), projectDir, cfg, prefix, notebooksDryRun, cmd.OutOrStdout())
		if err != nil {
			return err
		}

		verb := "updated"
		if notebooksDryRun {
			verb = "would update"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %d notebook(s), %d skipped, %d error(s)\n",
			verb, summary.Updated, summary.Skipped, summary.Errors)

		if summary.Errors > 0 {
			return fmt.Errorf("%d notebook(s) could not be updated", summary.Errors)
		}
		return nil
	},
}
