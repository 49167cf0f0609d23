// Package kernels handles parsing and validation of the project-level kernels
// config file (kernels.json or kernels.yaml). Load performs ordered structural
// validation with deterministic first-error reporting; Validate checks the raw
// file against the embedded JSON schema for richer diagnostics.
package kernels
