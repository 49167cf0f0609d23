// Package python locates and invokes Python interpreters. It resolves the
// system interpreter used for environment creation, probes interpreter
// versions against minimum version constraints, and runs interpreter commands
// with streamed-and-captured output.
package python
