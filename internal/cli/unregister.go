package cli

import (
	"github.com/spf13/cobra"
)

var unregisterVariant string

func init() {
	unregisterCmd.Flags().StringVar(&unregisterVariant, "variant", "", "Unregister a named variant of the kernel")
	rootCmd.AddCommand(unregisterCmd)
}

var unregisterCmd = &cobra.Command{
	Use:   "unregister <kernel>",
	Short: "Remove a kernel's Jupyter registration",
	Long: `Delete the kernelspec directory for a kernel from the shared Jupyter data
directory. The environment itself is left in place.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		projectDir, err := resolveProject()
		if err != nil {
			return err
		}
		mgr, err := newRegistryManager(projectDir, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		return mgr.Unregister(args[0], unregisterVariant)
	},
}
