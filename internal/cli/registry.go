// SPDX-FileCopyrightText: 2026 Nova Contributors
//
// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/torarvid/nova/internal/command"
)

// Descriptor is one entry in the static command registry.
type Descriptor struct {
	// Name resolves the command from argv.
	Name string
	// Summary is the one-line description shown in program usage.
	Summary string
	// Flags builds the command's option spec. A fresh FlagSet per
	// invocation keeps descriptors free of parse state.
	Flags func() *pflag.FlagSet
	// New constructs the command unit from its parsed options and the
	// bootstrap context.
	New func(flags *pflag.FlagSet, cmdCtx *command.Context) (command.Unit, error)
}

// Registry maps command names to descriptors. It is populated once at
// startup and read-only afterwards.
type Registry struct {
	order  []string
	byName map[string]Descriptor
}

// NewRegistry builds a registry, rejecting duplicate command names.
func NewRegistry(descriptors ...Descriptor) (*Registry, error) {
	reg := &Registry{byName: make(map[string]Descriptor, len(descriptors))}
	for _, desc := range descriptors {
		if desc.Name == "" {
			return nil, fmt.Errorf("command descriptor without a name")
		}
		if _, dup := reg.byName[desc.Name]; dup {
			return nil, fmt.Errorf("duplicate command name %q", desc.Name)
		}
		reg.byName[desc.Name] = desc
		reg.order = append(reg.order, desc.Name)
	}
	return reg, nil
}

// Lookup resolves a command name.
func (r *Registry) Lookup(name string) (Descriptor, bool) {
	desc, ok := r.byName[name]
	return desc, ok
}

// Names returns the known command names in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

// NameSet returns the known command names as a membership set for Segment.
func (r *Registry) NameSet() map[string]bool {
	set := make(map[string]bool, len(r.byName))
	for name := range r.byName {
		set[name] = true
	}
	return set
}

// defaultRegistry wires up the built-in commands. The descriptor list is
// static configuration; a name collision here is a programming error and
// surfaces at startup.
func defaultRegistry() *Registry {
	reg, err := NewRegistry(
		Descriptor{
			Name:    "deploy",
			Summary: "Publish the merged configuration to SSM Parameter Store",
			Flags:   command.DeployFlags,
			New:     command.NewDeploy,
		},
		Descriptor{
			Name:    "destroy",
			Summary: "Delete the published parameters for this configuration",
			Flags:   command.DestroyFlags,
			New:     command.NewDestroy,
		},
		Descriptor{
			Name:    "render",
			Summary: "Print the merged configuration tree",
			Flags:   command.RenderFlags,
			New:     command.NewRender,
		},
		Descriptor{
			Name:    "whoami",
			Summary: "Show the resolved AWS caller identity",
			Flags:   command.WhoamiFlags,
			New:     command.NewWhoami,
		},
	)
	if err != nil {
		panic(err)
	}
	return reg
}
