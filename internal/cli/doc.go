// Package cli defines the kernelctl command tree. Each command file wires
// its flags in init() and registers itself on the root command; the engine
// packages (kernels, pyenv, registry, notebook, mirror) do the actual work.
package cli
