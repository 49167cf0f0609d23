package userdata

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/kernelctl-labs/kernelctl/internal/branding"
)

// Directory name constants for the Jupyter data convention.
const (
	KernelspecsDir = "kernels"
	LocalJupyter   = ".jupyter"
)

// Permission constants.
const (
	DirPermNormal  os.FileMode = 0755
	FilePermNormal os.FileMode = 0644
)

// GetJupyterDataRoot returns the Jupyter shared data directory. It checks
// the KERNELCTL_JUPYTER_DATA environment variable first, then the standard
// JUPYTER_DATA_DIR, then falls back to the platform default.
func GetJupyterDataRoot() (string, error) {
	if v := os.Getenv(branding.EnvVar("JUPYTER_DATA")); v != "" {
		return v, nil
	}
	if v := os.Getenv("JUPYTER_DATA_DIR"); v != "" {
		return v, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Jupyter"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "jupyter"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "jupyter"), nil
	default:
		if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
			return filepath.Join(xdg, "jupyter"), nil
		}
		return filepath.Join(home, ".local", "share", "jupyter"), nil
	}
}

// GetKernelspecRoot returns the shared kernelspec registry directory
// (<jupyter-data>/kernels/), where each registered kernel owns one
// subdirectory holding a kernel.json.
func GetKernelspecRoot() (string, error) {
	root, err := GetJupyterDataRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, KernelspecsDir), nil
}

// GetLocalSpecRoot returns the project-local kernelspec mirror directory
// (<project>/.jupyter/kernels/), used on platforms where the shared location
// is not reliably readable by the notebook tool.
func GetLocalSpecRoot(projectDir string) string {
	return filepath.Join(projectDir, LocalJupyter, KernelspecsDir)
}

// EnsureWritable creates the directory if needed and verifies it accepts
// writes by creating and removing a probe file.
func EnsureWritable(dir string) error {
	if err := os.MkdirAll(dir, DirPermNormal); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	probe := filepath.Join(dir, ".write-probe")
	if err := os.WriteFile(probe, nil, FilePermNormal); err != nil {
		return fmt.Errorf("writing to %s: %w", dir, err)
	}
	os.Remove(probe)
	return nil
}
