package kernels

import "sort"

// DefaultSpecifier is the dependency specifier file used when a kernel
// definition does not name one.
const DefaultSpecifier = "requirements.txt"

// Definition describes one named kernel: the dependency set to install into
// its environment and the metadata used to present it in notebook frontends.
type Definition struct {
	DisplayName         string             `json:"displayName" yaml:"displayName"`
	Description         string             `json:"description,omitempty" yaml:"description,omitempty"`
	DependencySpecifier string             `json:"dependencySpecifier,omitempty" yaml:"dependencySpecifier,omitempty"`
	MinPythonVersion    string             `json:"minPythonVersion,omitempty" yaml:"minPythonVersion,omitempty"`
	ExtraEnv            map[string]string  `json:"extraEnv,omitempty" yaml:"extraEnv,omitempty"`
	Variants            map[string]Variant `json:"variants,omitempty" yaml:"variants,omitempty"`
}

// Variant is a named alternate dependency set nested under one kernel
// definition (e.g., cpu vs gpu).
type Variant struct {
	DisplayName         string `json:"displayName,omitempty" yaml:"displayName,omitempty"`
	DependencySpecifier string `json:"dependencySpecifier" yaml:"dependencySpecifier"`
}

// Config is the full declarative kernel list, keyed by kernel name.
type Config struct {
	Kernels map[string]Definition `json:"kernels" yaml:"kernels"`
}

// Names returns the kernel names in sorted order. Map iteration order is not
// deterministic, so every sequential operation over a Config goes through this.
func (c *Config) Names() []string {
	names := make([]string, 0, len(c.Kernels))
	for name := range c.Kernels {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Specifier returns the dependency specifier for the given variant of a
// definition. A variant name that does not exist on the definition silently
// falls back to the base specifier.
func (d *Definition) Specifier(variant string) string {
	if variant != "" {
		if v, ok := d.Variants[variant]; ok {
			return v.DependencySpecifier
		}
	}
	if d.DependencySpecifier != "" {
		return d.DependencySpecifier
	}
	return DefaultSpecifier
}

// Display returns the display name for the given variant of a definition,
// falling back to the base display name when the variant defines none.
func (d *Definition) Display(variant string) string {
	if variant != "" {
		if v, ok := d.Variants[variant]; ok && v.DisplayName != "" {
			return v.DisplayName
		}
	}
	return d.DisplayName
}
