package cli

import (
	"fmt"

	"github.com/kernelctl-labs/kernelctl/internal/config"
	"github.com/kernelctl-labs/kernelctl/internal/kernels"
	"github.com/spf13/cobra"
)

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configValidateCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage user settings",
	Long:  `Read and write Kernelctl configuration stored at ~/.kernelctl/config.yaml.`,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), config.FilePath())
		return nil
	},
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the project's kernels config against its schema",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		projectDir, err := resolveProject()
		if err != nil {
			return err
		}
		path := kernelsPath(projectDir)

		result, err := kernels.ValidateFile(path)
		if err != nil {
			return err
		}
		if result.Valid {
			fmt.Fprintf(cmd.OutOrStdout(), "✓ %s is valid\n", path)
			return nil
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✗ %d validation issue(s) in %s:\n", len(result.Issues), path)
		for _, issue := range result.Issues {
			if issue.Path != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "  - %s: %s\n", issue.Path, issue.Message)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "  - %s\n", issue.Message)
			}
		}
		return fmt.Errorf("kernels config %s has %d validation issue(s)", path, len(result.Issues))
	},
}
