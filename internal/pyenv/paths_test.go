package pyenv

import (
	"path/filepath"
	"testing"

	"github.com/kernelctl-labs/kernelctl/internal/kernels"
)

func TestEnvName(t *testing.T) {
	if got := EnvName("analysis", ""); got != "analysis" {
		t.Errorf("EnvName = %q", got)
	}
	if got := EnvName("pytorch_study", "gpu"); got != "pytorch_study-gpu" {
		t.Errorf("EnvName = %q", got)
	}
}

func TestEnvDir(t *testing.T) {
	got := EnvDir("/proj", "analysis", "")
	want := filepath.Join("/proj", EnvsDir, "analysis")
	if got != want {
		t.Errorf("EnvDir = %q, want %q", got, want)
	}
}

func TestMarkerPath_BesideEnvRoot(t *testing.T) {
	envDir := filepath.Join("/proj", EnvsDir, "analysis")
	if got := MarkerPath(envDir); got != envDir+".sha256" {
		t.Errorf("MarkerPath = %q", got)
	}
}

func TestSpecifierPath(t *testing.T) {
	def := &kernels.Definition{
		DisplayName:         "PyTorch Study",
		DependencySpecifier: "requirements-base.txt",
		Variants: map[string]kernels.Variant{
			"gpu": {DependencySpecifier: "requirements-gpu.txt"},
		},
	}

	if got := SpecifierPath("/proj", def, ""); got != filepath.Join("/proj", "requirements-base.txt") {
		t.Errorf("base = %q", got)
	}
	if got := SpecifierPath("/proj", def, "gpu"); got != filepath.Join("/proj", "requirements-gpu.txt") {
		t.Errorf("gpu = %q", got)
	}
	// Unknown variant silently falls back to the base specifier.
	if got := SpecifierPath("/proj", def, "tpu"); got != filepath.Join("/proj", "requirements-base.txt") {
		t.Errorf("unknown variant = %q", got)
	}
}
