package pyenv

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// fakePythonScript behaves like a python interpreter for the subset of
// invocations the provisioner makes: --version, -m venv, -m pip install.
// Invocations are appended to $FAKE_PYTHON_LOG. A requirements file whose
// content contains FAKEFAIL makes the install step exit non-zero.
const fakePythonScript = `#!/bin/sh
if [ -n "$FAKE_PYTHON_LOG" ]; then
  echo "$*" >> "$FAKE_PYTHON_LOG"
fi
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
        if [ "$3" = "install" ] && [ "$4" = "-r" ] && grep -q FAKEFAIL "$5" 2>/dev/null; then
          echo "install failed" >&2
          exit 1
        fi
        exit 0
        ;;
    esac
    ;;
esac
exit 0
`

// writeFakePython installs the fake interpreter into a temp dir and points
// FAKE_PYTHON_LOG at a fresh log file. Returns the interpreter and log paths.
func writeFakePython(t *testing.T) (bin string, logPath string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake interpreter is a shell script, skipping on Windows")
	}

	dir := t.TempDir()
	bin = filepath.Join(dir, "python")
	if err := os.WriteFile(bin, []byte(fakePythonScript), 0755); err != nil {
		t.Fatal(err)
	}

	logPath = filepath.Join(dir, "invocations.log")
	t.Setenv("FAKE_PYTHON_LOG", logPath)
	return bin, logPath
}

// countInvocations returns how many logged invocations contain all the given
// substrings.
func countInvocations(t *testing.T, logPath string, substrings ...string) int {
	t.Helper()
	data, err := os.ReadFile(logPath)
	if os.IsNotExist(err) {
		return 0
	}
	if err != nil {
		t.Fatal(err)
	}

	count := 0
lines:
	for _, line := range strings.Split(string(data), "\n") {
		for _, sub := range substrings {
			if !strings.Contains(line, sub) {
				continue lines
			}
		}
		count++
	}
	return count
}
