// SPDX-FileCopyrightText: 2026 Nova Contributors
//
// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"github.com/torarvid/nova/internal/command"
)

// dispatch parses the command's options, constructs the unit, and runs it.
//
// A help flag short-circuits to the command usage without constructing
// anything. Construction failures and execution failures come back through
// the same error channel; the reporter tells them apart by type.
func dispatch(ctx context.Context, desc Descriptor, args []string, cmdCtx *command.Context, stderr io.Writer) error {
	flags := desc.Flags()
	flags.SetOutput(io.Discard)
	help := flags.BoolP("help", "h", false, "Show command usage")

	if err := flags.Parse(args); err != nil {
		return &ConstructionError{Command: desc.Name, Usage: commandUsage(desc, flags), Err: err}
	}

	if *help {
		fmt.Fprint(stderr, commandUsage(desc, flags))
		return nil
	}

	unit, err := desc.New(flags, cmdCtx)
	if err != nil {
		return &ConstructionError{Command: desc.Name, Usage: commandUsage(desc, flags), Err: err}
	}

	if err := execute(ctx, unit); err != nil {
		return &ExecutionError{Command: desc.Name, Usage: commandUsage(desc, flags), Err: err}
	}
	return nil
}

// execute runs the unit, converting panics into errors so a misbehaving
// command cannot crash the reporter. A panic value that is not an error is
// reported as an unexpected error object rather than rethrown.
func execute(ctx context.Context, unit command.Unit) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if perr, ok := r.(error); ok {
				err = fmt.Errorf("unexpected panic: %w", perr)
				return
			}
			err = fmt.Errorf("unexpected error object: %v", r)
		}
	}()
	return unit.Execute(ctx)
}

func commandUsage(desc Descriptor, flags *pflag.FlagSet) string {
	return fmt.Sprintf("Usage: nova [program options] %s [options]\n\n%s\n\nOptions:\n%s",
		desc.Name, desc.Summary, flags.FlagUsages())
}
