package cli

import (
	"fmt"

	"github.com/kernelctl-labs/kernelctl/internal/pyenv"
	"github.com/spf13/cobra"
)

var (
	setupAll     bool
	setupForce   bool
	setupVariant string
)

func init() {
	setupCmd.Flags().BoolVar(&setupAll, "all", false, "Provision every configured kernel")
	setupCmd.Flags().BoolVar(&setupForce, "force", false, "Recreate the environment even when up to date")
	setupCmd.Flags().StringVar(&setupVariant, "variant", "", "Provision a named variant of the kernel")
	rootCmd.AddCommand(setupCmd)
}

var setupCmd = &cobra.Command{
	Use:   "setup [kernel]",
	Short: "Provision kernel environments",
	Long: `Create or update the Python environment for a kernel. Environments are
idempotent: a kernel whose dependency specifier is unchanged since the last
successful install is left alone unless --force is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSetup,
}

func runSetup(cmd *cobra.Command, args []string) error {
	if setupAll == (len(args) == 1) {
		return fmt.Errorf("specify a kernel name or --all")
	}
	if setupAll && setupVariant != "" {
		return fmt.Errorf("--variant requires a single kernel name")
	}

	projectDir, err := resolveProject()
	if err != nil {
		return err
	}
	cfg, _, err := loadKernels(projectDir)
	if err != nil {
		return err
	}

	prov, err := newProvisioner(projectDir, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	var results []*pyenv.SetupResult
	if setupAll {
		results = prov.SetupAll(cmd.Context(), cfg, setupForce)
	} else {
		name := args[0]
		def, ok := cfg.Kernels[name]
		if !ok {
			return fmt.Errorf("kernel %q is not in the kernels config", name)
		}
		results = append(results, prov.SetupKernel(cmd.Context(), name, &def, setupForce, setupVariant))
	}

	failed := 0
	for _, r := range results {
		label := pyenv.EnvName(r.Kernel, r.Variant)
		switch r.Status {
		case pyenv.SetupFailed:
			failed++
			fmt.Fprintf(cmd.OutOrStdout(), "✗ %s: %v\n", label, r.Err)
		case pyenv.SetupCancelled:
			fmt.Fprintf(cmd.OutOrStdout(), "⚠ %s: cancelled\n", label)
			return r.Err
		default:
			fmt.Fprintf(cmd.OutOrStdout(), "✓ %s: %s\n", label, r.Status)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d kernel(s) failed to provision", failed, len(results))
	}
	return nil
}
