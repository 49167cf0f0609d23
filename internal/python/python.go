package python

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/kernelctl-labs/kernelctl/internal/branding"
)

// lookupNames are the interpreter names probed on PATH, in order.
var lookupNames = []string{"python3", "python"}

// Find resolves the system interpreter used to create environments.
// A configured path (from settings or the KERNELCTL_PYTHON env var) wins;
// otherwise python3 and python are probed on PATH in order.
func Find(configured string) (string, error) {
	if configured == "" {
		configured = os.Getenv(branding.EnvVar("PYTHON"))
	}
	if configured != "" {
		if filepath.IsAbs(configured) {
			if _, err := os.Stat(configured); err != nil {
				return "", fmt.Errorf("configured python %s: %w", configured, err)
			}
			return configured, nil
		}
		bin, err := exec.LookPath(configured)
		if err != nil {
			return "", fmt.Errorf("configured python %q not found on PATH: %w", configured, err)
		}
		return bin, nil
	}

	for _, name := range lookupNames {
		if bin, err := exec.LookPath(name); err == nil {
			return bin, nil
		}
	}
	return "", fmt.Errorf("no python interpreter found on PATH (set %s or %s)",
		"python.path", branding.EnvVar("PYTHON"))
}

// Version runs `bin --version` and parses the reported version.
func Version(ctx context.Context, bin string) (*semver.Version, error) {
	out, err := Run(ctx, bin, []string{"--version"}, "", nil, nil)
	if err != nil {
		return nil, fmt.Errorf("probing %s: %w", bin, err)
	}
	if out.ExitCode != 0 {
		return nil, fmt.Errorf("probing %s: exit code %d", bin, out.ExitCode)
	}

	// Older interpreters print the version banner on stderr.
	banner := strings.TrimSpace(out.Stdout)
	if banner == "" {
		banner = strings.TrimSpace(out.Stderr)
	}
	return ParseVersion(banner)
}

// ParseVersion extracts a semantic version from a `python --version` banner
// such as "Python 3.11.4".
func ParseVersion(banner string) (*semver.Version, error) {
	fields := strings.Fields(banner)
	if len(fields) < 2 || fields[0] != "Python" {
		return nil, fmt.Errorf("unrecognized version banner %q", banner)
	}
	v, err := semver.NewVersion(fields[1])
	if err != nil {
		return nil, fmt.Errorf("parsing version %q: %w", fields[1], err)
	}
	return v, nil
}

// MeetsMin reports whether version satisfies the minimum version string from
// a kernel definition. Partial versions like "3.10" are accepted.
func MeetsMin(version *semver.Version, min string) (bool, error) {
	if min == "" {
		return true, nil
	}
	constraint, err := semver.NewConstraint(">= " + min)
	if err != nil {
		return false, fmt.Errorf("parsing minimum version %q: %w", min, err)
	}
	return constraint.Check(version), nil
}
