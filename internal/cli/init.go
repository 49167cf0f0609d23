package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kernelctl-labs/kernelctl/internal/kernels"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Scaffold a kernels config in the project",
	Long: `Create a starter kernels config and an empty dependency specifier in the
project directory. Fails when the kernels config already exists.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		projectDir, err := resolveProject()
		if err != nil {
			return err
		}

		path := kernelsPath(projectDir)
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("project already initialized: %s exists", path)
		}

		if err := os.MkdirAll(projectDir, 0755); err != nil {
			return fmt.Errorf("creating project directory: %w", err)
		}
		if err := os.WriteFile(path, []byte(starterConfig), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}

		// Seed the default specifier only when the project has none yet.
		reqPath := filepath.Join(projectDir, kernels.DefaultSpecifier)
		if _, err := os.Stat(reqPath); os.IsNotExist(err) {
			if err := os.WriteFile(reqPath, []byte(starterRequirements), 0644); err != nil {
				return fmt.Errorf("writing %s: %w", reqPath, err)
			}
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✓ created %s\n", path)
		fmt.Fprintf(cmd.OutOrStdout(), "Edit it to declare your kernels, then run 'kernelctl setup --all'.\n")
		return nil
	},
}

const starterConfig = `{
  "kernels": {
    "common": {
      "displayName": "Python (common)",
      "description": "Shared default environment",
      "dependencySpecifier": "requirements.txt"
    }
  }
}
`

const starterRequirements = `ipykernel
`
