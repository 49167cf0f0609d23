package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kernelctl-labs/kernelctl/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Well-known configuration keys.
const (
	KeyPythonPath     = "python.path"      // system interpreter used to create environments
	KeyMirrorIndexURL = "mirror.index-url" // package index override; "auto" enables geolocation
	KeyKernelsFile    = "kernels.file"     // kernels config file name inside the project
	KeySpecPrefix     = "registry.prefix"  // prefix for registered kernelspec names
)

// MirrorAuto is the sentinel value for KeyMirrorIndexURL that enables
// geolocation-based mirror selection.
const MirrorAuto = "auto"

// DefaultKernelsFile is the kernels config file name used when
// KeyKernelsFile is unset.
const DefaultKernelsFile = "kernels.json"

// Dir returns the path to the Kernelctl config directory (~/.kernelctl/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.kernelctl/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyMirrorIndexURL, MirrorAuto)
	viper.SetDefault(KeyKernelsFile, DefaultKernelsFile)
	viper.SetDefault(KeySpecPrefix, branding.SpecPrefix())

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
