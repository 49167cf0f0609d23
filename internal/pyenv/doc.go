// Package pyenv provisions per-kernel Python virtual environments under the
// project's .venvs/ tree and derives each kernel's lifecycle status from
// filesystem probes plus a content-hash freshness check. Provisioning is
// idempotent: an environment whose dependency specifier hash matches the
// stored marker is left untouched.
package pyenv
