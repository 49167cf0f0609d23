package cli

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/kernelctl-labs/kernelctl/internal/config"
	"github.com/kernelctl-labs/kernelctl/internal/kernels"
	"github.com/kernelctl-labs/kernelctl/internal/mirror"
	"github.com/kernelctl-labs/kernelctl/internal/pyenv"
	"github.com/kernelctl-labs/kernelctl/internal/python"
	"github.com/kernelctl-labs/kernelctl/internal/registry"
	"github.com/kernelctl-labs/kernelctl/internal/userdata"
)

// resolveProject returns the absolute project directory from the --project flag.
func resolveProject() (string, error) {
	dir, err := filepath.Abs(projectFlag)
	if err != nil {
		return "", fmt.Errorf("resolving project directory %q: %w", projectFlag, err)
	}
	return dir, nil
}

// kernelsPath returns the kernels config file path for a project. A relative
// configured name is resolved against the project directory.
func kernelsPath(projectDir string) string {
	name := config.Get(config.KeyKernelsFile)
	if name == "" {
		name = config.DefaultKernelsFile
	}
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(projectDir, name)
}

// loadKernels loads and validates the project's kernels config.
func loadKernels(projectDir string) (*kernels.Config, string, error) {
	path := kernelsPath(projectDir)
	cfg, err := kernels.Load(path)
	if err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

// newProvisioner builds the environment provisioner from user settings.
func newProvisioner(projectDir string, out io.Writer) (*pyenv.Provisioner, error) {
	interpreter, err := python.Find(config.Get(config.KeyPythonPath))
	if err != nil {
		return nil, err
	}
	return &pyenv.Provisioner{
		ProjectDir: projectDir,
		Python:     interpreter,
		Mirrors:    mirror.New(config.Get(config.KeyMirrorIndexURL)),
		Out:        out,
	}, nil
}

// newRegistryManager builds the kernelspec registration manager.
func newRegistryManager(projectDir string, out io.Writer) (*registry.Manager, error) {
	root, err := userdata.GetKernelspecRoot()
	if err != nil {
		return nil, fmt.Errorf("resolving kernelspec root: %w", err)
	}
	return &registry.Manager{
		Root:       root,
		Prefix:     config.Get(config.KeySpecPrefix),
		ProjectDir: projectDir,
		Out:        out,
	}, nil
}
