package pyenv

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/kernelctl-labs/kernelctl/internal/kernels"
	"github.com/kernelctl-labs/kernelctl/internal/mirror"
	"github.com/kernelctl-labs/kernelctl/internal/python"
)

// SetupStatus summarizes the outcome of one provisioning attempt.
type SetupStatus string

const (
	SetupCreated   SetupStatus = "created"
	SetupUpdated   SetupStatus = "updated"
	SetupUpToDate  SetupStatus = "up to date"
	SetupFailed    SetupStatus = "failed"
	SetupCancelled SetupStatus = "cancelled"
)

// SetupResult is the per-kernel outcome of SetupKernel/SetupAll.
type SetupResult struct {
	Kernel  string
	Variant string
	Status  SetupStatus
	Err     error
}

// Provisioner creates and updates kernel environments.
type Provisioner struct {
	ProjectDir string
	Python     string           // system interpreter used for venv creation
	Mirrors    *mirror.Selector // package index selection; may be nil
	Out        io.Writer        // log sink shared with nested process output; may be nil
}

func (p *Provisioner) logf(format string, args ...interface{}) {
	if p.Out != nil {
		fmt.Fprintf(p.Out, format, args...)
	}
}

// SetupKernel idempotently provisions one kernel environment: creates the
// venv when missing or forced, installs the dependency specifier, and
// records the specifier's content hash on success. When the environment is
// already valid and up to date (and force is unset) it returns without
// touching the filesystem.
//
// Cancellation is checked between stages; a cancelled setup leaves completed
// stages in place and performs no rollback.
func (p *Provisioner) SetupKernel(ctx context.Context, name string, def *kernels.Definition, force bool, variant string) *SetupResult {
	result := &SetupResult{Kernel: name, Variant: variant}

	fail := func(err error) *SetupResult {
		result.Status = SetupFailed
		result.Err = err
		return result
	}
	cancelled := func() *SetupResult {
		result.Status = SetupCancelled
		result.Err = ctx.Err()
		return result
	}

	// Stage 1: resolve paths. The project directory must exist.
	if _, err := os.Stat(p.ProjectDir); err != nil {
		return fail(&NotFoundError{Path: p.ProjectDir})
	}
	envDir := EnvDir(p.ProjectDir, name, variant)
	specPath := SpecifierPath(p.ProjectDir, def, variant)

	if ctx.Err() != nil {
		return cancelled()
	}

	// Stage 2: short-circuit when nothing to do.
	valid := ValidEnv(ctx, envDir)
	if !force && valid {
		upToDate, _, err := Freshness(envDir, specPath)
		if err == nil && upToDate {
			p.logf("%s: already up to date\n", EnvName(name, variant))
			result.Status = SetupUpToDate
			return result
		}
	}

	if ctx.Err() != nil {
		return cancelled()
	}

	// Stage 3: recreate the environment when missing, invalid, or forced.
	recreate := force || !valid
	if recreate {
		if err := p.createEnv(ctx, name, def, envDir); err != nil {
			if ctx.Err() != nil {
				return cancelled()
			}
			return fail(err)
		}
	}

	if ctx.Err() != nil {
		return cancelled()
	}

	// Stage 4: snapshot the specifier hash before installing, so an edit
	// mid-install is not recorded as installed.
	digest, err := FileDigest(specPath)
	if err != nil {
		return fail(err)
	}

	// Stage 5: install dependencies.
	if err := p.install(ctx, name, variant, envDir, specPath); err != nil {
		if ctx.Err() != nil {
			return cancelled()
		}
		return fail(err)
	}

	// Stage 6: persist the pre-install snapshot as the new marker.
	if err := WriteMarker(envDir, digest); err != nil {
		return fail(err)
	}

	if recreate {
		result.Status = SetupCreated
	} else {
		result.Status = SetupUpdated
	}
	return result
}

// createEnv removes any existing environment tree and creates a fresh venv
// with the configured system interpreter.
func (p *Provisioner) createEnv(ctx context.Context, name string, def *kernels.Definition, envDir string) error {
	if def.MinPythonVersion != "" {
		version, err := python.Version(ctx, p.Python)
		if err != nil {
			return &EnvironmentError{Op: "probing system interpreter", Err: err}
		}
		ok, err := python.MeetsMin(version, def.MinPythonVersion)
		if err != nil {
			return &EnvironmentError{Op: "checking minimum python version", Err: err}
		}
		if !ok {
			return &EnvironmentError{
				Op:  "checking minimum python version",
				Err: fmt.Errorf("kernel %s requires python >= %s, found %s", name, def.MinPythonVersion, version),
			}
		}
	}

	// Best-effort removal; a missing tree is fine.
	_ = os.RemoveAll(envDir)
	_ = os.Remove(MarkerPath(envDir))

	if err := os.MkdirAll(filepath.Dir(envDir), 0755); err != nil {
		return &EnvironmentError{Op: "creating environments directory", Err: err}
	}

	p.logf("creating environment %s\n", envDir)
	out, err := python.Run(ctx, p.Python, []string{"-m", "venv", envDir}, p.ProjectDir, nil, p.Out)
	if err != nil {
		return &EnvironmentError{Op: "creating environment", Err: err}
	}
	if out.ExitCode != 0 {
		return &EnvironmentError{Op: "creating environment", Err: fmt.Errorf("venv exited with code %d", out.ExitCode)}
	}
	return nil
}

// install upgrades pip (best-effort) and installs the specifier file into the
// environment. A missing specifier file means nothing to install.
func (p *Provisioner) install(ctx context.Context, name, variant, envDir, specPath string) error {
	envPython := Interpreter(envDir)

	var indexArgs []string
	if p.Mirrors != nil {
		indexArgs = p.Mirrors.IndexArgs(ctx)
		if m := p.Mirrors.Preferred(ctx); m != nil {
			p.logf("using package index: %s (%s)\n", m.URL, m.Label)
		}
	}

	// Pip self-upgrade failures are logged, not fatal.
	upgradeArgs := append([]string{"-m", "pip", "install", "--upgrade", "pip"}, indexArgs...)
	if out, err := python.Run(ctx, envPython, upgradeArgs, p.ProjectDir, nil, p.Out); err != nil {
		if ctx.Err() != nil {
			return err
		}
		p.logf("⚠ pip self-upgrade failed: %v\n", err)
	} else if out.ExitCode != 0 {
		p.logf("⚠ pip self-upgrade exited with code %d\n", out.ExitCode)
	}

	if ctx.Err() != nil {
		return ctx.Err()
	}

	if _, err := os.Stat(specPath); os.IsNotExist(err) {
		p.logf("%s: no dependency specifier at %s, nothing to install\n", EnvName(name, variant), specPath)
		return nil
	}

	p.logf("installing dependencies from %s\n", specPath)
	installArgs := append([]string{"-m", "pip", "install", "-r", specPath}, indexArgs...)
	out, err := python.Run(ctx, envPython, installArgs, p.ProjectDir, nil, p.Out)
	if err != nil {
		return &EnvironmentError{Op: "installing dependencies", Err: err}
	}
	if out.ExitCode != 0 {
		return &EnvironmentError{Op: "installing dependencies", Err: fmt.Errorf("pip exited with code %d", out.ExitCode)}
	}
	return nil
}

// SetupAll provisions every kernel in the config sequentially, in sorted
// name order. Individual failures do not stop the batch; cancellation
// between items does. One result is returned per attempted kernel.
func (p *Provisioner) SetupAll(ctx context.Context, cfg *kernels.Config, force bool) []*SetupResult {
	var results []*SetupResult
	for _, name := range cfg.Names() {
		if ctx.Err() != nil {
			break
		}
		def := cfg.Kernels[name]
		results = append(results, p.SetupKernel(ctx, name, &def, force, ""))
	}
	return results
}
