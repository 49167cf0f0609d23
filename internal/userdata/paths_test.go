package userdata

import (
	"path/filepath"
	"testing"
)

func TestGetJupyterDataRoot_EnvOverride(t *testing.T) {
	t.Setenv("KERNELCTL_JUPYTER_DATA", "/custom/jupyter")
	root, err := GetJupyterDataRoot()
	if err != nil {
		t.Fatalf("GetJupyterDataRoot error: %v", err)
	}
	if root != "/custom/jupyter" {
		t.Errorf("root = %q, want /custom/jupyter", root)
	}
}

func TestGetJupyterDataRoot_JupyterEnvFallback(t *testing.T) {
	t.Setenv("KERNELCTL_JUPYTER_DATA", "")
	t.Setenv("JUPYTER_DATA_DIR", "/from/jupyter")
	root, err := GetJupyterDataRoot()
	if err != nil {
		t.Fatalf("GetJupyterDataRoot error: %v", err)
	}
	if root != "/from/jupyter" {
		t.Errorf("root = %q, want /from/jupyter", root)
	}
}

func TestGetKernelspecRoot(t *testing.T) {
	t.Setenv("KERNELCTL_JUPYTER_DATA", "/data/jupyter")
	root, err := GetKernelspecRoot()
	if err != nil {
		t.Fatalf("GetKernelspecRoot error: %v", err)
	}
	if root != filepath.Join("/data/jupyter", "kernels") {
		t.Errorf("root = %q", root)
	}
}

func TestGetLocalSpecRoot(t *testing.T) {
	got := GetLocalSpecRoot("/proj")
	want := filepath.Join("/proj", ".jupyter", "kernels")
	if got != want {
		t.Errorf("GetLocalSpecRoot = %q, want %q", got, want)
	}
}

func TestEnsureWritable(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "kernels")
	if err := EnsureWritable(dir); err != nil {
		t.Fatalf("EnsureWritable error: %v", err)
	}
}
