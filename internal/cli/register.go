package cli

import (
	"fmt"

	"github.com/kernelctl-labs/kernelctl/internal/registry"
	"github.com/spf13/cobra"
)

var (
	registerAll     bool
	registerVariant string
)

func init() {
	registerCmd.Flags().BoolVar(&registerAll, "all", false, "Register every configured kernel")
	registerCmd.Flags().StringVar(&registerVariant, "variant", "", "Register a named variant of the kernel")
	rootCmd.AddCommand(registerCmd)
}

var registerCmd = &cobra.Command{
	Use:   "register [kernel]",
	Short: "Register kernels with Jupyter",
	Long: `Write a kernelspec for a provisioned kernel into the shared Jupyter data
directory so notebook frontends can launch it. The environment must already
exist; run setup first.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRegister,
}

func runRegister(cmd *cobra.Command, args []string) error {
	if registerAll == (len(args) == 1) {
		return fmt.Errorf("specify a kernel name or --all")
	}
	if registerAll && registerVariant != "" {
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

	mgr, err := newRegistryManager(projectDir, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	if !registerAll {
		name := args[0]
		def, ok := cfg.Kernels[name]
		if !ok {
			return fmt.Errorf("kernel %q is not in the kernels config", name)
		}
		return mgr.Register(cmd.Context(), name, &def, registerVariant)
	}

	failed := 0
	for _, r := range mgr.RegisterAll(cmd.Context(), cfg) {
		switch r.Status {
		case registry.ResultFailed:
			failed++
			fmt.Fprintf(cmd.OutOrStdout(), "✗ %s: %v\n", r.Kernel, r.Err)
		case registry.ResultCancelled:
			fmt.Fprintln(cmd.OutOrStdout(), "⚠ registration cancelled")
			return r.Err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d kernel(s) failed to register", failed)
	}
	return nil
}
