package cli

import (
	"fmt"

	"github.com/kernelctl-labs/kernelctl/internal/config"
	"github.com/kernelctl-labs/kernelctl/internal/mirror"
	"github.com/spf13/cobra"
)

func init() {
	mirrorCmd.AddCommand(mirrorShowCmd)
	rootCmd.AddCommand(mirrorCmd)
}

var mirrorCmd = &cobra.Command{
	Use:   "mirror",
	Short: "Package index selection",
}

var mirrorShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the package index that pip will use",
	Long: `Resolve the preferred package index for this machine. An explicit
mirror.index-url setting wins; the "auto" default picks a regional mirror
from a geolocation lookup, falling back to the default index when the
lookup fails or no rule matches.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sel := mirror.New(config.Get(config.KeyMirrorIndexURL))
		info := sel.Preferred(cmd.Context())
		if info == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "default index (https://pypi.org/simple)")
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", info.URL, info.Label)
		return nil
	},
}
