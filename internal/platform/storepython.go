package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// NeedsLocalSpecMirror reports whether kernelspec registrations should also
// be mirrored into the project-local location. Only Windows has the Store
// Python sandboxing quirk.
func NeedsLocalSpecMirror() bool {
	return runtime.GOOS == "windows"
}

// IsStorePython reports whether the interpreter path lies inside the
// Microsoft Store app sandbox (the WindowsApps tree). Files under that tree
// are access-restricted for other processes. Backslashes are normalized
// explicitly so Windows-style paths are recognized on any host.
func IsStorePython(path string) bool {
	normalized := strings.ToLower(strings.ReplaceAll(path, `\`, "/"))
	return strings.Contains(normalized, "/windowsapps/")
}

// MirrorSpec writes a kernelspec payload into the project-local mirror at
// localRoot/<specName>/kernel.json. When the environment interpreter is a
// Store Python install the direct write can fail against the sandboxed
// filesystem view, so an elevated copy is used instead.
func MirrorSpec(localRoot, specName string, payload []byte, interpreter string) error {
	dir := filepath.Join(localRoot, specName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating local spec directory %s: %w", dir, err)
	}

	dst := filepath.Join(dir, "kernel.json")
	if IsStorePython(interpreter) {
		return elevatedWrite(dst, payload)
	}

	if err := os.WriteFile(dst, payload, 0644); err != nil {
		return fmt.Errorf("writing local spec %s: %w", dst, err)
	}
	return nil
}

// RemoveSpecMirror removes the project-local mirror copy. Absence is not an
// error.
func RemoveSpecMirror(localRoot, specName string) error {
	dir := filepath.Join(localRoot, specName)
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("removing local spec %s: %w", dir, err)
	}
	return nil
}

// elevatedWrite stages the payload in a temp file and copies it into place
// through an elevated shell. Only meaningful on Windows; elsewhere it
// degrades to a direct write.
func elevatedWrite(dst string, payload []byte) error {
	if runtime.GOOS != "windows" {
		if err := os.WriteFile(dst, payload, 0644); err != nil {
			return fmt.Errorf("writing local spec %s: %w", dst, err)
		}
		return nil
	}

	tmp, err := os.CreateTemp("", "kernelspec-*.json")
	if err != nil {
		return fmt.Errorf("staging spec payload: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		return fmt.Errorf("staging spec payload: %w", err)
	}
	tmp.Close()

	copyCmd := fmt.Sprintf("Copy-Item -Path '%s' -Destination '%s' -Force", tmpPath, dst)
	cmd := exec.Command("powershell", "-NoProfile", "-Command",
		fmt.Sprintf("Start-Process powershell -Verb RunAs -Wait -WindowStyle Hidden -ArgumentList '-NoProfile','-Command',\"%s\"", copyCmd))
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("elevated copy to %s: %w (%s)", dst, err, strings.TrimSpace(string(out)))
	}
	return nil
}
