// Package userdata resolves the filesystem locations shared with the Jupyter
// notebook tooling: the platform's Jupyter data directory, the kernelspec
// registry underneath it, and the project-local kernelspec mirror. Environment
// variable overrides take precedence over platform defaults so tests and CI
// can sandbox everything.
package userdata
