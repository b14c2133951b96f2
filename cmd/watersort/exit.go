package main

import (
	"errors"
	"fmt"
	"io"
)

// Process exit codes.
const (
	exitOK      = 0
	exitError   = 1
	exitTimeout = 2
)

// exitErr carries a process exit code through cobra's error return.
// A nil err means the message was already printed.
type exitErr struct {
	code int
	err  error
}

func (e *exitErr) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit %d", e.code)
	}

	return e.err.Error()
}

func (e *exitErr) Unwrap() error { return e.err }

func fail(code int, format string, args ...any) error {
	return &exitErr{code: code, err: fmt.Errorf(format, args...)}
}

// silentExit ends the command with code after output has been written.
func silentExit(code int) error {
	return &exitErr{code: code}
}

// exitCode prints err (if any) and maps it to a process exit code.
func exitCode(err error, stderr io.Writer) int {
	if err == nil {
		return exitOK
	}
	var ee *exitErr
	if errors.As(err, &ee) {
		if ee.err != nil {
			fmt.Fprintf(stderr, "error: %v\n", ee.err)
		}
		return ee.code
	}
	fmt.Fprintf(stderr, "error: %v\n", err)

	return exitError
}
