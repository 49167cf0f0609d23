package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/kernelctl-labs/kernelctl/internal/config"
	"github.com/kernelctl-labs/kernelctl/internal/kernels"
	"github.com/kernelctl-labs/kernelctl/internal/python"
	"github.com/kernelctl-labs/kernelctl/internal/userdata"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for the kernel environment setup",
	Long:  `Run diagnostic checks: system interpreter, kernels config, and the Jupyter kernelspec directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		failures := 0

		// System interpreter.
		interpreter, err := python.Find(config.Get(config.KeyPythonPath))
		if err != nil {
			failures++
			fmt.Fprintf(out, "  [MISS] python: %v\n", err)
		} else {
			version, err := python.Version(cmd.Context(), interpreter)
			if err != nil {
				failures++
				fmt.Fprintf(out, "  [FAIL] python at %s: %v\n", interpreter, err)
			} else {
				fmt.Fprintf(out, "  [ OK ] python %s at %s\n", version, interpreter)
			}
		}

		// User settings file (optional; defaults apply when absent).
		if _, err := os.Stat(config.FilePath()); err == nil {
			fmt.Fprintf(out, "  [ OK ] settings file %s\n", config.FilePath())
		} else {
			fmt.Fprintf(out, "  [INFO] no settings file at %s (defaults in effect)\n", config.FilePath())
		}

		// Kernels config.
		projectDir, err := resolveProject()
		if err != nil {
			return err
		}
		failures += checkKernelsConfig(out, projectDir)

		// Kernelspec root.
		root, err := userdata.GetKernelspecRoot()
		if err != nil {
			failures++
			fmt.Fprintf(out, "  [FAIL] kernelspec root: %v\n", err)
		} else if err := userdata.EnsureWritable(root); err != nil {
			failures++
			fmt.Fprintf(out, "  [FAIL] kernelspec root %s is not writable: %v\n", root, err)
		} else {
			fmt.Fprintf(out, "  [ OK ] kernelspec root %s is writable\n", root)
		}

		if failures > 0 {
			return fmt.Errorf("%d check(s) failed", failures)
		}
		return nil
	},
}

func checkKernelsConfig(out io.Writer, projectDir string) int {
	path := kernelsPath(projectDir)
	if _, err := os.Stat(path); err != nil {
		fmt.Fprintf(out, "  [MISS] no kernels config at %s (run 'kernelctl init')\n", path)
		return 1
	}

	cfg, err := kernels.Load(path)
	if err != nil {
		fmt.Fprintf(out, "  [FAIL] kernels config %s: %v\n", path, err)
		return 1
	}
	fmt.Fprintf(out, "  [ OK ] kernels config %s (%d kernel(s))\n", path, len(cfg.Kernels))
	return 0
}
