package kernels

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.yaml.in/yaml/v3"
)

// ParseError indicates the config source could not be read or is not
// syntactically valid JSON/YAML.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing kernels config %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// SchemaError names the first structurally invalid field found during
// validation. Field is a dotted path such as "kernels.pytorch.displayName".
type SchemaError struct {
	Field   string
	Message string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("invalid kernels config: %s: %s", e.Field, e.Message)
}

// Load reads the kernels config file, parses it (JSON by default, YAML when
// the extension is .yaml/.yml), and validates its structure. Validation is
// deterministic: kernels are checked in sorted name order and the first
// violation wins. Definitions are reconstructed from the source on every call;
// nothing is cached across loads.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	var raw interface{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &raw)
	default:
		err = json.Unmarshal(data, &raw)
	}
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	return build(raw)
}

// build walks the decoded document, validating structure and assembling the
// typed Config. Check order per kernel: displayName, then optional string
// fields, then extraEnv, then variants.
func build(raw interface{}) (*Config, error) {
	top, ok := raw.(map[string]interface{})
	if !ok {
		return nil, &SchemaError{Field: "(root)", Message: "must be an object"}
	}

	kernelsRaw, ok := top["kernels"]
	if !ok {
		return nil, &SchemaError{Field: "kernels", Message: "required object is missing"}
	}
	kernelsMap, ok := kernelsRaw.(map[string]interface{})
	if !ok {
		return nil, &SchemaError{Field: "kernels", Message: "must be an object"}
	}

	names := make([]string, 0, len(kernelsMap))
	for name := range kernelsMap {
		names = append(names, name)
	}
	sort.Strings(names)

	cfg := &Config{Kernels: make(map[string]Definition, len(names))}
	for _, name := range names {
		def, err := buildDefinition("kernels."+name, kernelsMap[name])
		if err != nil {
			return nil, err
		}
		cfg.Kernels[name] = *def
	}
	return cfg, nil
}

func buildDefinition(field string, raw interface{}) (*Definition, error) {
	entry, ok := raw.(map[string]interface{})
	if !ok {
		return nil, &SchemaError{Field: field, Message: "must be an object"}
	}

	def := &Definition{}

	displayName, ok := entry["displayName"].(string)
	if !ok || displayName == "" {
		return nil, &SchemaError{Field: field + ".displayName", Message: "must be a non-empty string"}
	}
	def.DisplayName = displayName

	for _, opt := range []struct {
		key string
		dst *string
	}{
		{"description", &def.Description},
		{"dependencySpecifier", &def.DependencySpecifier},
		{"minPythonVersion", &def.MinPythonVersion},
	} {
		val, present := entry[opt.key]
		if !present {
			continue
		}
		s, ok := val.(string)
		if !ok {
			return nil, &SchemaError{Field: field + "." + opt.key, Message: "must be a string"}
		}
		*opt.dst = s
	}

	if raw, present := entry["extraEnv"]; present {
		envMap, ok := raw.(map[string]interface{})
		if !ok {
			return nil, &SchemaError{Field: field + ".extraEnv", Message: "must be an object"}
		}
		def.ExtraEnv = make(map[string]string, len(envMap))
		for _, key := range sortedKeys(envMap) {
			s, ok := envMap[key].(string)
			if !ok {
				return nil, &SchemaError{Field: field + ".extraEnv." + key, Message: "must be a string"}
			}
			def.ExtraEnv[key] = s
		}
	}

	if raw, present := entry["variants"]; present {
		variantsMap, ok := raw.(map[string]interface{})
		if !ok {
			return nil, &SchemaError{Field: field + ".variants", Message: "must be an object"}
		}
		def.Variants = make(map[string]Variant, len(variantsMap))
		for _, vname := range sortedKeys(variantsMap) {
			variant, err := buildVariant(field+".variants."+vname, variantsMap[vname])
			if err != nil {
				return nil, err
			}
			def.Variants[vname] = *variant
		}
	}

	return def, nil
}

func buildVariant(field string, raw interface{}) (*Variant, error) {
	entry, ok := raw.(map[string]interface{})
	if !ok {
		return nil, &SchemaError{Field: field, Message: "must be an object"}
	}

	v := &Variant{}

	spec, ok := entry["dependencySpecifier"].(string)
	if !ok || spec == "" {
		return nil, &SchemaError{Field: field + ".dependencySpecifier", Message: "must be a non-empty string"}
	}
	v.DependencySpecifier = spec

	if raw, present := entry["displayName"]; present {
		s, ok := raw.(string)
		if !ok {
			return nil, &SchemaError{Field: field + ".displayName", Message: "must be a string"}
		}
		v.DisplayName = s
	}

	return v, nil
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
