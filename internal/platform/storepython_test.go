package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestIsStorePython(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{`C:\Program Files\WindowsApps\PythonSoftwareFoundation.Python.3.11_qbz5n2kfra8p0\python.exe`, true},
		{`C:\Users\dev\AppData\Local\Microsoft\WindowsApps\python.exe`, true},
		{`C:/Users/dev/AppData/Local/Microsoft/WindowsApps/python.exe`, true},
		{`C:\Python311\python.exe`, false},
		{"/usr/bin/python3", false},
		{"/home/dev/project/.venvs/analysis/bin/python", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := IsStorePython(tt.path); got != tt.want {
				t.Errorf("IsStorePython(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestNeedsLocalSpecMirror(t *testing.T) {
	want := runtime.GOOS == "windows"
	if got := NeedsLocalSpecMirror(); got != want {
		t.Errorf("NeedsLocalSpecMirror() = %v on %s, want %v", got, runtime.GOOS, want)
	}
}

func TestMirrorSpec_DirectWrite(t *testing.T) {
	localRoot := t.TempDir()
	payload := []byte(`{"argv": ["python"]}`)

	if err := MirrorSpec(localRoot, "kernelctl-analysis", payload, "/usr/bin/python3"); err != nil {
		t.Fatalf("MirrorSpec error: %v", err)
	}

	written, err := os.ReadFile(filepath.Join(localRoot, "kernelctl-analysis", "kernel.json"))
	if err != nil {
		t.Fatalf("reading mirrored spec: %v", err)
	}
	if string(written) != string(payload) {
		t.Errorf("payload mismatch: %s", written)
	}
}

func TestRemoveSpecMirror(t *testing.T) {
	localRoot := t.TempDir()
	if err := MirrorSpec(localRoot, "kernelctl-analysis", []byte("{}"), "/usr/bin/python3"); err != nil {
		t.Fatal(err)
	}

	if err := RemoveSpecMirror(localRoot, "kernelctl-analysis"); err != nil {
		t.Fatalf("RemoveSpecMirror error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(localRoot, "kernelctl-analysis")); !os.IsNotExist(err) {
		t.Error("mirror directory still present")
	}

	// Removing an absent mirror is fine.
	if err := RemoveSpecMirror(localRoot, "kernelctl-analysis"); err != nil {
		t.Errorf("second remove should be a no-op, got %v", err)
	}
}
