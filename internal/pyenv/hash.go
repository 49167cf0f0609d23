package pyenv

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"strings"
)

// FileDigest returns the lowercase hex SHA-256 digest of the file's contents.
// A missing file yields an empty digest and no error.
func FileDigest(path string) (string, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// ReadMarker returns the stored hash marker for an environment and whether
// one exists.
func ReadMarker(envDir string) (string, bool) {
	data, err := os.ReadFile(MarkerPath(envDir))
	if err != nil {
		return "", false
	}
	return strings.TrimSpace(string(data)), true
}

// WriteMarker persists the digest as the environment's hash marker.
func WriteMarker(envDir, digest string) error {
	path := MarkerPath(envDir)
	if err := os.WriteFile(path, []byte(digest+"\n"), 0644); err != nil {
		return fmt.Errorf("writing hash marker %s: %w", path, err)
	}
	return nil
}

// Freshness reports whether the environment's installed dependencies are up
// to date against the specifier file, plus the specifier's current digest.
// A missing specifier means there is nothing to install: up to date, empty
// digest.
func Freshness(envDir, specifierPath string) (upToDate bool, digest string, err error) {
	digest, err = FileDigest(specifierPath)
	if err != nil {
		return false, "", err
	}
	if digest == "" {
		return true, "", nil
	}
	marker, ok := ReadMarker(envDir)
	return ok && marker == digest, digest, nil
}
