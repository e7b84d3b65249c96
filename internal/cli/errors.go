// SPDX-FileCopyrightText: 2026 Nova Contributors
//
// SPDX-License-Identifier: MIT

package cli

import "fmt"

// UsageError is malformed CLI input: an unknown command, a bad program
// option, or an invalid output format. It is recovered at the top level by
// printing usage and exiting 0.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string { return e.Message }

// ConstructionError reports a command unit that could not be built from its
// options. It carries the command's usage so the reporter can show the
// command-specific help rather than the program-level one.
type ConstructionError struct {
	Command string
	Usage   string
	Err     error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("%s: %v", e.Command, e.Err)
}

func (e *ConstructionError) Unwrap() error { return e.Err }

// ExecutionError reports a command unit that was built but failed while
// running. Like ConstructionError it carries the command's usage so the
// reporter shows the command-specific help.
type ExecutionError struct {
	Command string
	Usage   string
	Err     error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("%s: %v", e.Command, e.Err)
}

func (e *ExecutionError) Unwrap() error { return e.Err }
