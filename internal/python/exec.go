package python

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"sort"
	"strings"
)

// Output captures the result of an interpreter invocation.
type Output struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Run invokes bin with args, streaming stdout/stderr to sink (when non-nil)
// while also capturing both for the returned Output. A non-zero exit is not
// an error: the exit code is reported in Output. Cancelling ctx kills the
// process and surfaces ctx's error.
func Run(ctx context.Context, bin string, args []string, dir string, extraEnv map[string]string, sink io.Writer) (*Output, error) {
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = dir
	cmd.Env = buildEnv(extraEnv)

	var stdoutBuf, stderrBuf bytes.Buffer
	if sink != nil {
		cmd.Stdout = io.MultiWriter(sink, &stdoutBuf)
		cmd.Stderr = io.MultiWriter(sink, &stderrBuf)
	} else {
		cmd.Stdout = &stdoutBuf
		cmd.Stderr = &stderrBuf
	}

	err := cmd.Run()

	output := &Output{
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return output, ctxErr
	}

	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			output.ExitCode = exitErr.ExitCode()
			return output, nil
		}
		return output, err
	}

	output.ExitCode = 0
	return output, nil
}

// buildEnv inherits the current process environment and overlays extraEnv in
// sorted key order.
func buildEnv(extraEnv map[string]string) []string {
	env := os.Environ()
	keys := make([]string, 0, len(extraEnv))
	for k := range extraEnv {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		env = setEnv(env, k, extraEnv[k])
	}
	return env
}

// setEnv sets or replaces an environment variable in the env slice.
func setEnv(env []string, key, value string) []string {
	prefix := key + "="
	for i, e := range env {
		if strings.HasPrefix(e, prefix) {
			env[i] = prefix + value
			return env
		}
	}
	return append(env, prefix+value)
}
