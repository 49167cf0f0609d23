package pyenv

import (
	"path/filepath"
	"runtime"

	"github.com/kernelctl-labs/kernelctl/internal/kernels"
)

// EnvsDir is the directory under the project root holding all provisioned
// environments and their hash markers.
const EnvsDir = ".venvs"

// EnvName returns the environment directory name for a kernel, with the
// variant suffixed when present ("pytorch_study" / "pytorch_study-gpu").
func EnvName(kernel, variant string) string {
	if variant == "" {
		return kernel
	}
	return kernel + "-" + variant
}

// EnvDir returns the absolute environment directory for a kernel.
func EnvDir(projectDir, kernel, variant string) string {
	return filepath.Join(projectDir, EnvsDir, EnvName(kernel, variant))
}

// Interpreter returns the path of the environment's interpreter
// (bin/python on Unix, Scripts\python.exe on Windows).
func Interpreter(envDir string) string {
	if runtime.GOOS == "windows" {
		return filepath.Join(envDir, "Scripts", "python.exe")
	}
	return filepath.Join(envDir, "bin", "python")
}

// MarkerPath returns the hash marker file stored beside the environment root.
func MarkerPath(envDir string) string {
	return envDir + ".sha256"
}

// SpecifierPath resolves the dependency specifier file for a kernel and
// variant relative to the project root. An unrecognized variant falls back
// to the base specifier.
func SpecifierPath(projectDir string, def *kernels.Definition, variant string) string {
	return filepath.Join(projectDir, def.Specifier(variant))
}
