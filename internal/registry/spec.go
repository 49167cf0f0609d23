package registry

// SpecFileName is the file Jupyter reads inside each kernelspec directory.
const SpecFileName = "kernel.json"

// LanguagePython is the language tag stamped into every spec.
const LanguagePython = "python"

// launcherArgs are the fixed launcher arguments following the environment
// interpreter in the spec argv. Jupyter substitutes {connection_file} at
// launch time.
var launcherArgs = []string{"-m", "ipykernel_launcher", "-f", "{connection_file}"}

// Spec is the kernel.json document.
type Spec struct {
	Argv        []string          `json:"argv"`
	DisplayName string            `json:"display_name"`
	Language    string            `json:"language"`
	Metadata    *Metadata         `json:"metadata,omitempty"`
	Env         map[string]string `json:"env,omitempty"`
}

// Metadata carries optional frontend hints.
type Metadata struct {
	Debugger bool `json:"debugger"`
}

// SpecName derives the kernelspec directory name:
// {prefix}-{kernel} or {prefix}-{kernel}-{variant}.
func SpecName(prefix, kernel, variant string) string {
	name := prefix + "-" + kernel
	if variant != "" {
		name += "-" + variant
	}
	return name
}

// BuildSpec assembles the spec for an environment interpreter. extraEnv is
// omitted from the JSON entirely when empty.
func BuildSpec(interpreter, displayName string, extraEnv map[string]string) *Spec {
	spec := &Spec{
		Argv:        append([]string{interpreter}, launcherArgs...),
		DisplayName: displayName,
		Language:    LanguagePython,
		Metadata:    &Metadata{Debugger: true},
	}
	if len(extraEnv) > 0 {
		spec.Env = extraEnv
	}
	return spec
}
