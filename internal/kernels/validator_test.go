package kernels

import (
	"testing"
)

func TestValidateFile_ValidConfigs(t *testing.T) {
	validFiles := []string{
		"valid-basic.json",
		"valid-variants.json",
		"valid-kernels.yaml",
	}

	for _, file := range validFiles {
		t.Run(file, func(t *testing.T) {
			result, err := ValidateFile(testPath(file))
			if err != nil {
				t.Fatalf("ValidateFile(%s) error: %v", file, err)
			}
			if !result.Valid {
				t.Errorf("expected valid, got invalid with %d issues:", len(result.Issues))
				for _, issue := range result.Issues {
					t.Errorf("  path=%s keyword=%s message=%s", issue.Path, issue.Keyword, issue.Message)
				}
			}
		})
	}
}

func TestValidateFile_InvalidConfigs(t *testing.T) {
	invalidFiles := []struct {
		file string
		desc string
	}{
		{"invalid-missing-kernels.json", "missing required kernels object"},
		{"invalid-displayname-empty.json", "empty displayName"},
		{"invalid-extraenv-type.json", "extraEnv is an array"},
		{"invalid-variant-missing-spec.json", "variant missing dependencySpecifier"},
	}

	for _, tt := range invalidFiles {
		t.Run(tt.file, func(t *testing.T) {
			result, err := ValidateFile(testPath(tt.file))
			if err != nil {
				t.Fatalf("ValidateFile(%s) unexpected error: %v", tt.file, err)
			}
			if result.Valid {
				t.Errorf("expected invalid for %s (%s), but got valid", tt.file, tt.desc)
			}
			if len(result.Issues) == 0 {
				t.Errorf("expected at least one issue for %s (%s)", tt.file, tt.desc)
			}
		})
	}
}

func TestValidateFile_MalformedJSON(t *testing.T) {
	_, err := ValidateFile(testPath("invalid-not-json.json"))
	if err == nil {
		t.Fatal("expected error for malformed JSON, got nil")
	}
}

func TestValidate_SchemaCompiles(t *testing.T) {
	schema, err := getSchema()
	if err != nil {
		t.Fatalf("getSchema() error: %v", err)
	}
	if schema == nil {
		t.Fatal("getSchema() returned nil schema")
	}
}
