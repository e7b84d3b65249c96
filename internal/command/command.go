// SPDX-FileCopyrightText: 2026 Nova Contributors
//
// SPDX-License-Identifier: MIT

// Package command implements the nova command units.
//
// A unit is constructed fresh per invocation from its parsed options and the
// bootstrap results (merged parameters plus credential context), runs once
// through Execute, and is discarded. Units never reach for ambient process
// state: everything they need arrives through the Context value.
package command

import (
	"context"
	"io"

	"github.com/torarvid/nova/internal/awsauth"
)

// Unit is the capability every command implements.
type Unit interface {
	Execute(ctx context.Context) error
}

// Context carries the bootstrap results into a command unit. It is built
// once per invocation after the parameter load and credential acquisition
// both succeed, and is read-only from then on.
type Context struct {
	// Params is the merged configuration tree from all parameter sources.
	Params map[string]any
	// Creds is the resolved AWS credential context.
	Creds *awsauth.Context
	// Output is the program-level output format, "text" or "json".
	Output string
	// Stdout is where command output goes. Log output goes through slog.
	Stdout io.Writer
}

// JSON reports whether machine-readable output was requested.
func (c *Context) JSON() bool { return c.Output == "json" }
