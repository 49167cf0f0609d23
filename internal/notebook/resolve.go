package notebook

import (
	"path/filepath"
	"sort"
	"strings"
)

// fallbackNames are tried in order when no candidate matches the path.
var fallbackNames = []string{"common", "default"}

// ResolveKernel picks the kernel for a notebook path. Path separators and
// case are normalized, then candidates are checked in descending length
// order so a longer, more specific name beats a shorter one that also
// happens to appear in the path. Candidates of equal length are checked
// last-in-input-order first. When nothing matches, the fallbacks are a
// candidate named "common", then "default", then the first candidate; an
// empty candidate list resolves to nothing.
func ResolveKernel(relPath string, candidates []string) (string, bool) {
	if len(candidates) == 0 {
		return "", false
	}

	path := strings.ToLower(filepath.ToSlash(relPath))

	// Reverse before the stable sort so equal-length candidates end up in
	// reverse input order.
	ordered := make([]string, len(candidates))
	for i, c := range candidates {
		ordered[len(candidates)-1-i] = c
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return len(ordered[i]) > len(ordered[j])
	})

	for _, candidate := range ordered {
		if strings.Contains(path, strings.ToLower(candidate)) {
			return candidate, true
		}
	}

	for _, fb := range fallbackNames {
		for _, candidate := range candidates {
			if candidate == fb {
				return candidate, true
			}
		}
	}

	return candidates[0], true
}
