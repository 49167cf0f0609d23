package pyenv

import (
	"context"
	"os"
	"sort"

	"github.com/kernelctl-labs/kernelctl/internal/kernels"
	"github.com/kernelctl-labs/kernelctl/internal/python"
)

// Status is a kernel's derived lifecycle state.
type Status string

const (
	StatusNotProvisioned Status = "not-provisioned"
	StatusReady          Status = "ready"
	StatusNeedsUpdate    Status = "needs-update"
	StatusBroken         Status = "broken"
)

// Info is the ephemeral per-kernel snapshot: recomputed from the filesystem
// on every call, never persisted.
type Info struct {
	Name       string
	Definition kernels.Definition
	Status     Status
	Registered bool
	EnvPath    string // empty when no environment directory exists
}

// Resolver derives kernel status snapshots for one project directory.
type Resolver struct {
	ProjectDir string
}

// ValidEnv reports whether envDir holds a working interpreter: the file
// exists and responds to --version.
func ValidEnv(ctx context.Context, envDir string) bool {
	interp := Interpreter(envDir)
	if _, err := os.Stat(interp); err != nil {
		return false
	}
	out, err := python.Run(ctx, interp, []string{"--version"}, "", nil, nil)
	return err == nil && out.ExitCode == 0
}

// Check derives the status of a single kernel (base environment, no variant).
func (r *Resolver) Check(ctx context.Context, name string, def *kernels.Definition) (Status, string) {
	envDir := EnvDir(r.ProjectDir, name, "")

	if _, err := os.Stat(envDir); os.IsNotExist(err) {
		return StatusNotProvisioned, ""
	}

	if !ValidEnv(ctx, envDir) {
		// Directory present but interpreter missing or non-functional.
		return StatusBroken, envDir
	}

	upToDate, _, err := Freshness(envDir, SpecifierPath(r.ProjectDir, def, ""))
	if err != nil || !upToDate {
		return StatusNeedsUpdate, envDir
	}
	return StatusReady, envDir
}

// List computes the status snapshot for every kernel in the config, in
// sorted name order. isRegistered probes the registration resource and may
// be nil.
func (r *Resolver) List(ctx context.Context, cfg *kernels.Config, isRegistered func(name string) bool) []Info {
	infos := make([]Info, 0, len(cfg.Kernels))
	for _, name := range cfg.Names() {
		def := cfg.Kernels[name]
		status, envPath := r.Check(ctx, name, &def)
		info := Info{
			Name:       name,
			Definition: def,
			Status:     status,
			EnvPath:    envPath,
		}
		if isRegistered != nil {
			info.Registered = isRegistered(name)
		}
		infos = append(infos, info)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos
}
