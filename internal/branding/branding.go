// Package branding provides compile-time identity values for the CLI.
//
// Forkers edit branding.yaml in this package, then rebuild. Go's //go:embed
// bakes the values into the binary.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	GoModule    string `yaml:"go_module"`
	SpecPrefix  string `yaml:"spec_prefix"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:     "kernelctl",
			DisplayName: "Kernelctl",
			Description: "Declarative Jupyter kernel environment manager",
			HomeDir:     ".kernelctl",
			EnvPrefix:   "KERNELCTL",
			GoModule:    "github.com/kernelctl-labs/kernelctl",
			SpecPrefix:  "kernelctl",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "kernelctl").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "Kernelctl").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".kernelctl").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "KERNELCTL").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path. Used by release scripts — not
// consumed at runtime.
func GoModule() string { load(); return defaults.GoModule }

// SpecPrefix returns the default prefix for registered kernelspec names
// (e.g., "kernelctl" in "kernelctl-pytorch-gpu").
func SpecPrefix() string { load(); return defaults.SpecPrefix }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("PYTHON") → "KERNELCTL_PYTHON".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
