package notebook

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/kernelctl-labs/kernelctl/internal/kernels"
	"github.com/kernelctl-labs/kernelctl/internal/registry"
)

// skipDirs are directory names excluded from the notebook walk: environment
// trees, caches, and tool metadata.
var skipDirs = map[string]bool{
	".venvs":             true,
	".git":               true,
	".jupyter":           true,
	".ipynb_checkpoints": true,
	"__pycache__":        true,
	"node_modules":       true,
}

// UpdateResult records the outcome for one notebook file.
type UpdateResult struct {
	Path    string
	Kernel  string
	Updated bool
	Err     error
}

// Summary aggregates a bulk notebook sync.
type Summary struct {
	Updated int
	Skipped int
	Errors  int
	Results []UpdateResult
}

// UpdateNotebook rewrites a notebook's kernelspec reference to the target
// spec name. Missing metadata/kernelspec substructures are created. When the
// current name already equals the target the file is left byte-for-byte
// unchanged and false is returned. In dry-run mode the prospective change is
// reported without writing.
func UpdateNotebook(path, specName, displayName string, dryRun bool) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("reading notebook %s: %w", path, err)
	}

	var doc map[string]interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return false, fmt.Errorf("parsing notebook %s: %w", path, err)
	}

	meta, ok := doc["metadata"].(map[string]interface{})
	if !ok {
		meta = map[string]interface{}{}
		doc["metadata"] = meta
	}
	kernelspec, ok := meta["kernelspec"].(map[string]interface{})
	if !ok {
		kernelspec = map[string]interface{}{}
		meta["kernelspec"] = kernelspec
	}

	if current, _ := kernelspec["name"].(string); current == specName {
		return false, nil
	}

	kernelspec["name"] = specName
	kernelspec["display_name"] = displayName
	kernelspec["language"] = registry.LanguagePython

	if dryRun {
		return true, nil
	}

	// nbformat-style single-space indent, trailing newline.
	out, err := json.MarshalIndent(doc, "", " ")
	if err != nil {
		return false, fmt.Errorf("encoding notebook %s: %w", path, err)
	}
	out = append(out, '\n')

	if err := os.WriteFile(path, out, 0644); err != nil {
		return false, fmt.Errorf("writing notebook %s: %w", path, err)
	}
	return true, nil
}

// UpdateAll walks the project tree for notebook documents, assigns each a
// kernel via the path heuristic, and rewrites its kernelspec reference.
// Files are processed sequentially; cancellation between files stops the
// walk and is reported as the returned error alongside the partial summary.
func UpdateAll(ctx context.Context, projectDir string, cfg *kernels.Config, prefix string, dryRun bool, out io.Writer) (*Summary, error) {
	candidates := cfg.Names()
	summary := &Summary{}

	logf := func(format string, args ...interface{}) {
		if out != nil {
			fmt.Fprintf(out, format, args...)
		}
	}

	err := filepath.WalkDir(projectDir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return nil // unreadable subtree, keep walking
		}
		if d.IsDir() {
			if skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(strings.ToLower(d.Name()), ".ipynb") {
			return nil
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		rel, err := filepath.Rel(projectDir, path)
		if err != nil {
			rel = path
		}

		kernel, ok := ResolveKernel(rel, candidates)
		if !ok {
			summary.Skipped++
			return nil
		}
		def := cfg.Kernels[kernel]

		specName := registry.SpecName(prefix, kernel, "")
		updated, err := UpdateNotebook(path, specName, def.DisplayName, dryRun)
		result := UpdateResult{Path: rel, Kernel: kernel, Updated: updated, Err: err}
		summary.Results = append(summary.Results, result)

		switch {
		case err != nil:
			summary.Errors++
			logf("✗ %s: %v\n", rel, err)
		case updated:
			summary.Updated++
			logf("✓ %s → %s\n", rel, specName)
		default:
			summary.Skipped++
		}
		return nil
	})

	if err != nil {
		return summary, err
	}
	return summary, nil
}
