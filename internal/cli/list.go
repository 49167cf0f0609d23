package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/kernelctl-labs/kernelctl/internal/pyenv"
	"github.com/spf13/cobra"
)

var listJSON bool

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured kernels and their status",
	Long:  `List every kernel in the project's kernels config with its derived environment status and registration state.`,
	RunE:  runList,
}

// listEntry represents one kernel for display.
type listEntry struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Status      string `json:"status"`
	Registered  bool   `json:"registered"`
	EnvPath     string `json:"envPath,omitempty"`
}

func runList(cmd *cobra.Command, args []string) error {
	projectDir, err := resolveProject()
	if err != nil {
		return err
	}
	cfg, path, err := loadKernels(projectDir)
	if err != nil {
		return err
	}

	mgr, err := newRegistryManager(projectDir, nil)
	if err != nil {
		return err
	}

	resolver := &pyenv.Resolver{ProjectDir: projectDir}
	infos := resolver.List(cmd.Context(), cfg, func(name string) bool {
		return mgr.IsRegistered(name, "")
	})

	if len(infos) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No kernels configured in %s\n", path)
		return nil
	}

	entries := make([]listEntry, 0, len(infos))
	for _, info := range infos {
		entries = append(entries, listEntry{
			Name:        info.Name,
			DisplayName: info.Definition.DisplayName,
			Status:      string(info.Status),
			Registered:  info.Registered,
			EnvPath:     info.EnvPath,
		})
	}

	if listJSON {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NAME\tSTATUS\tREGISTERED\tDISPLAY NAME")
	for _, e := range entries {
		registered := "no"
		if e.Registered {
			registered = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Name, e.Status, registered, e.DisplayName)
	}
	return w.Flush()
}
