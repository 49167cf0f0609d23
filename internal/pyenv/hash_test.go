package pyenv

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFileDigest_Deterministic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "requirements.txt")
	if err := os.WriteFile(path, []byte("numpy==1.26.0\npandas\n"), 0644); err != nil {
		t.Fatal(err)
	}

	first, err := FileDigest(path)
	if err != nil {
		t.Fatalf("FileDigest error: %v", err)
	}
	second, err := FileDigest(path)
	if err != nil {
		t.Fatalf("FileDigest error: %v", err)
	}

	if first != second {
		t.Errorf("digest not deterministic: %s vs %s", first, second)
	}
	if len(first) != 64 || first != strings.ToLower(first) {
		t.Errorf("digest is not lowercase hex sha256: %q", first)
	}
}

func TestFileDigest_SensitiveToByteChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "requirements.txt")

	if err := os.WriteFile(path, []byte("numpy==1.26.0\n"), 0644); err != nil {
		t.Fatal(err)
	}
	before, _ := FileDigest(path)

	if err := os.WriteFile(path, []byte("numpy==1.26.1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	after, _ := FileDigest(path)

	if before == after {
		t.Error("one changed byte produced an identical digest")
	}
}

func TestFileDigest_MissingFile(t *testing.T) {
	digest, err := FileDigest(filepath.Join(t.TempDir(), "nope.txt"))
	if err != nil {
		t.Fatalf("missing file should not be an error: %v", err)
	}
	if digest != "" {
		t.Errorf("digest = %q, want empty", digest)
	}
}

func TestMarkerRoundTrip(t *testing.T) {
	envDir := filepath.Join(t.TempDir(), "analysis")

	if _, ok := ReadMarker(envDir); ok {
		t.Fatal("marker should not exist yet")
	}

	if err := WriteMarker(envDir, "abc123"); err != nil {
		t.Fatalf("WriteMarker error: %v", err)
	}

	got, ok := ReadMarker(envDir)
	if !ok {
		t.Fatal("marker not found after write")
	}
	if got != "abc123" {
		t.Errorf("marker = %q, want abc123", got)
	}

	// The marker lives beside the environment root, not inside it.
	if _, err := os.Stat(envDir + ".sha256"); err != nil {
		t.Errorf("marker file not at expected sibling path: %v", err)
	}
}

func TestFreshness(t *testing.T) {
	dir := t.TempDir()
	envDir := filepath.Join(dir, EnvsDir, "analysis")
	if err := os.MkdirAll(filepath.Dir(envDir), 0755); err != nil {
		t.Fatal(err)
	}
	spec := filepath.Join(dir, "requirements.txt")
	if err := os.WriteFile(spec, []byte("requests\n"), 0644); err != nil {
		t.Fatal(err)
	}

	// No marker yet: stale.
	upToDate, digest, err := Freshness(envDir, spec)
	if err != nil {
		t.Fatalf("Freshness error: %v", err)
	}
	if upToDate {
		t.Error("expected stale without a marker")
	}
	if digest == "" {
		t.Error("expected a digest for an existing specifier")
	}

	// Marker equal to the digest: up to date.
	if err := WriteMarker(envDir, digest); err != nil {
		t.Fatal(err)
	}
	upToDate, _, err = Freshness(envDir, spec)
	if err != nil {
		t.Fatalf("Freshness error: %v", err)
	}
	if !upToDate {
		t.Error("expected up to date when marker matches")
	}

	// Specifier edited: stale again.
	if err := os.WriteFile(spec, []byte("requests\nflask\n"), 0644); err != nil {
		t.Fatal(err)
	}
	upToDate, _, _ = Freshness(envDir, spec)
	if upToDate {
		t.Error("expected stale after specifier change")
	}

	// Missing specifier: nothing to install, up to date with empty digest.
	upToDate, digest, err = Freshness(envDir, filepath.Join(dir, "absent.txt"))
	if err != nil {
		t.Fatalf("Freshness error: %v", err)
	}
	if !upToDate || digest != "" {
		t.Errorf("missing specifier: upToDate=%v digest=%q, want true and empty", upToDate, digest)
	}
}
