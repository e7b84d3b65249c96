// SPDX-FileCopyrightText: 2026 Nova Contributors
//
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Render prints the merged configuration tree. Useful to see exactly what a
// deploy would publish after all sources have been folded together.
type Render struct {
	flat   bool
	cmdCtx *Context
}

// RenderFlags returns the render command's option spec.
func RenderFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("render", pflag.ContinueOnError)
	flags.Bool("flat", false, "Print flattened parameter paths instead of a tree")
	return flags
}

// NewRender constructs the render unit.
func NewRender(flags *pflag.FlagSet, cmdCtx *Context) (Unit, error) {
	flat, _ := flags.GetBool("flat")
	return &Render{flat: flat, cmdCtx: cmdCtx}, nil
}

func (r *Render) Execute(ctx context.Context) error {
	if r.flat {
		for _, leaf := range publishableLeaves(r.cmdCtx.Params) {
			fmt.Fprintf(r.cmdCtx.Stdout, "%s=%s\n", leaf.Path, leaf.Value)
		}
		return nil
	}

	if r.cmdCtx.JSON() {
		data, err := json.MarshalIndent(r.cmdCtx.Params, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to render configuration as JSON: %w", err)
		}
		fmt.Fprintln(r.cmdCtx.Stdout, string(data))
		return nil
	}

	data, err := yaml.Marshal(r.cmdCtx.Params)
	if err != nil {
		return fmt.Errorf("failed to render configuration as YAML: %w", err)
	}
	fmt.Fprint(r.cmdCtx.Stdout, string(data))
	return nil
}
