//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	ProjectDir  string // project root holding the kernels config and notebooks
	JupyterData string // KERNELCTL_JUPYTER_DATA — sandboxed shared data root
	Python      string // fake interpreter path
}

// fakePythonScript behaves like a python interpreter for the subset of
// invocations the engine makes: --version, -m venv, -m pip install.
const fakePythonScript = `#!/bin/sh
case "$1" in
  --version)
    echo "Python 3.11.4"
    exit 0
    ;;
  -m)
    case "$2" in
      venv)
        mkdir -p "$3/bin"
        cp "$0" "$3/bin/python"
        chmod +x "$3/bin/python"
        exit 0
        ;;
      pip)
        exit 0
        ;;
    esac
    ;;
esac
exit 0
`

// setupTestEnv creates isolated temp directories, a fake interpreter, and
// environment variables so every operation is sandboxed.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake interpreter is a shell script, skipping on Windows")
	}

	env := &testEnv{
		ProjectDir:  t.TempDir(),
		JupyterData: t.TempDir(),
	}

	binDir := t.TempDir()
	env.Python = filepath.Join(binDir, "python")
	if err := os.WriteFile(env.Python, []byte(fakePythonScript), 0755); err != nil {
		t.Fatalf("writing fake python: %v", err)
	}

	t.Setenv("KERNELCTL_JUPYTER_DATA", env.JupyterData)
	t.Setenv("KERNELCTL_PYTHON", env.Python)

	return env
}

// writeFile creates a file at the given path, creating parent directories.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}
