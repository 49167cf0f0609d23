package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/kernelctl-labs/kernelctl/internal/kernels"
	"github.com/kernelctl-labs/kernelctl/internal/platform"
	"github.com/kernelctl-labs/kernelctl/internal/pyenv"
	"github.com/kernelctl-labs/kernelctl/internal/userdata"
)

// Result statuses for RegisterAll.
const (
	ResultRegistered = "registered"
	ResultFailed     = "failed"
	ResultCancelled  = "cancelled"
)

// Result is the per-kernel outcome of a bulk registration. A cancelled batch
// ends with a single cancelled result covering the remainder.
type Result struct {
	Kernel string
	Status string
	Err    error
}

// Manager publishes and retracts kernelspec registrations.
type Manager struct {
	Root       string // shared kernelspec root (<jupyter-data>/kernels)
	Prefix     string // spec name prefix
	ProjectDir string
	Out        io.Writer // may be nil
}

func (m *Manager) logf(format string, args ...interface{}) {
	if m.Out != nil {
		fmt.Fprintf(m.Out, format, args...)
	}
}

// Register publishes one kernel (optionally a variant) as a kernelspec.
// The environment must already be provisioned and valid; otherwise a
// NotFoundError is returned and nothing is written.
func (m *Manager) Register(ctx context.Context, name string, def *kernels.Definition, variant string) error {
	envDir := pyenv.EnvDir(m.ProjectDir, name, variant)
	if !pyenv.ValidEnv(ctx, envDir) {
		return fmt.Errorf("kernel %s has no provisioned environment, run setup first: %w",
			pyenv.EnvName(name, variant), &pyenv.NotFoundError{Path: envDir})
	}

	interpreter := pyenv.Interpreter(envDir)
	spec := BuildSpec(interpreter, def.Display(variant), def.ExtraEnv)

	payload, err := json.MarshalIndent(spec, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling kernelspec: %w", err)
	}
	payload = append(payload, '\n')

	specName := SpecName(m.Prefix, name, variant)
	specDir := filepath.Join(m.Root, specName)
	if err := os.MkdirAll(specDir, 0755); err != nil {
		return fmt.Errorf("creating kernelspec directory %s: %w", specDir, err)
	}

	specPath := filepath.Join(specDir, SpecFileName)
	if err := os.WriteFile(specPath, payload, 0644); err != nil {
		return fmt.Errorf("writing kernelspec %s: %w", specPath, err)
	}
	platform.Chmod(specPath, userdata.FilePermNormal)

	// Post-write hook for the Store Python sandboxing quirk: mirror the
	// spec into the project so the notebook tool can read it locally.
	if platform.NeedsLocalSpecMirror() {
		localRoot := userdata.GetLocalSpecRoot(m.ProjectDir)
		if err := platform.MirrorSpec(localRoot, specName, payload, interpreter); err != nil {
			return fmt.Errorf("mirroring kernelspec locally: %w", err)
		}
	}

	m.logf("✓ registered %s (%s)\n", specName, spec.DisplayName)
	return nil
}

// Unregister deletes the shared kernelspec directory. A missing registration
// is a NotFoundError; the project-local mirror copy is removed best-effort.
func (m *Manager) Unregister(name, variant string) error {
	specName := SpecName(m.Prefix, name, variant)
	specDir := filepath.Join(m.Root, specName)

	if _, err := os.Stat(specDir); os.IsNotExist(err) {
		return fmt.Errorf("kernel %s is not registered: %w", specName, &pyenv.NotFoundError{Path: specDir})
	}
	if err := os.RemoveAll(specDir); err != nil {
		return fmt.Errorf("removing kernelspec %s: %w", specDir, err)
	}

	_ = platform.RemoveSpecMirror(userdata.GetLocalSpecRoot(m.ProjectDir), specName)

	m.logf("✓ unregistered %s\n", specName)
	return nil
}

// IsRegistered is a pure existence probe against the shared root.
func (m *Manager) IsRegistered(name, variant string) bool {
	specPath := filepath.Join(m.Root, SpecName(m.Prefix, name, variant), SpecFileName)
	_, err := os.Stat(specPath)
	return err == nil
}

// RegisterAll registers every kernel in the config sequentially, in sorted
// name order. Individual failures do not stop the batch. On cancellation a
// single cancelled result is emitted for the remainder and the batch stops.
func (m *Manager) RegisterAll(ctx context.Context, cfg *kernels.Config) []Result {
	var results []Result
	for _, name := range cfg.Names() {
		if ctx.Err() != nil {
			results = append(results, Result{Status: ResultCancelled, Err: ctx.Err()})
			return results
		}
		def := cfg.Kernels[name]
		if err := m.Register(ctx, name, &def, ""); err != nil {
			results = append(results, Result{Kernel: name, Status: ResultFailed, Err: err})
			continue
		}
		results = append(results, Result{Kernel: name, Status: ResultRegistered})
	}
	return results
}
