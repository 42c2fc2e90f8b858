package main

import "fmt"

// Exit codes
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError = 2 // Invalid configuration
	ExitDataError   = 3 // Payload failed validation
	ExitStoreError  = 4 // Storage unreachable or rejected the operation
)

// exitError ends the process with code. A nil err means the command already
// reported the problem on stdout.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}
