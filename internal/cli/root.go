package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/kernelctl-labs/kernelctl/internal/branding"
	"github.com/kernelctl-labs/kernelctl/internal/config"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	projectFlag string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` provisions Python environments for the kernels declared in a
project's kernels config, registers them with Jupyter, and keeps notebook
kernelspec references in sync.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&projectFlag, "project", ".", "Project directory holding the kernels config")
}

// Execute runs the root command with build info injected via ldflags.
// Interrupt and termination signals cancel the command context so
// long-running provisioning stops between stages.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}
