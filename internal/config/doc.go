// Package config manages the tool-level settings file at ~/.kernelctl/config.yaml
// via Viper, with KERNELCTL_* environment variable overrides. Project-level
// kernel definitions live in the kernels config file and are handled by the
// kernels package, not here.
package config
