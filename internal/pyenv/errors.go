package pyenv

import "fmt"

// NotFoundError indicates a required directory or environment is absent.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("not found: %s", e.Path)
}

// EnvironmentError indicates environment creation or dependency installation
// failed (interpreter missing, non-zero installer exit, etc.).
type EnvironmentError struct {
	Op  string
	Err error
}

func (e *EnvironmentError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *EnvironmentError) Unwrap() error { return e.Err }
