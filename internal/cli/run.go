// SPDX-FileCopyrightText: 2026 Nova Contributors
//
// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/torarvid/nova/internal/awsauth"
	"github.com/torarvid/nova/internal/command"
	"github.com/torarvid/nova/internal/logger"
	"github.com/torarvid/nova/internal/validation"
)

// Build information, set via ldflags during build
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// programOptions are the options accepted before the command name.
type programOptions struct {
	Profile string
	Sources []string
	Role    string
	Verbose bool
	Debug   bool
	Output  string
	Version bool
	Help    bool
}

func programFlags(opts *programOptions) *pflag.FlagSet {
	flags := pflag.NewFlagSet("nova", pflag.ContinueOnError)
	flags.SetOutput(io.Discard)
	// Parsing must stop at the first positional token so an unrecognized
	// command name surfaces through Args() instead of failing on whatever
	// flags follow it.
	flags.SetInterspersed(false)
	flags.StringVar(&opts.Profile, "profile", "", "AWS shared-config profile to use")
	flags.StringArrayVarP(&opts.Sources, "params", "p", nil, "Parameter file (repeatable, merged in order)")
	flags.StringVar(&opts.Role, "role", "", "AWS role ARN to assume")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "Verbose logging")
	flags.BoolVar(&opts.Debug, "debug", false, "Debug logging and full diagnostics (implies verbose)")
	flags.StringVarP(&opts.Output, "output", "o", "text", "Output format (text or json)")
	flags.BoolVar(&opts.Version, "version", false, "Show version information")
	flags.BoolVarP(&opts.Help, "help", "h", false, "Show this help message")
	return flags
}

// Execute runs nova with the process argv and returns the exit code for
// main to pass to os.Exit.
func Execute() int {
	return Run(os.Args[1:], os.Stdout, os.Stderr)
}

// Run is the top-level control flow: segment argv, parse program options,
// run the bootstrap pipeline, dispatch the command, and report any failure.
//
// Exit codes: help, version, and usage errors (including unknown commands
// and bad output formats) exit 0, matching the tool's long-standing CLI
// contract. Pipeline and command failures exit 1.
func Run(argv []string, stdout, stderr io.Writer) int {
	registry := defaultRegistry()
	seg := Segment(argv, registry.NameSet())

	var opts programOptions
	flags := programFlags(&opts)
	if err := flags.Parse(seg.PreArgs); err != nil {
		return usageExit(&UsageError{Message: err.Error()}, registry, flags, stderr)
	}

	logger.InitLogger(opts.Verbose, opts.Debug)

	if opts.Version {
		fmt.Fprintf(stdout, "nova version %s (commit %s, built on %s)\n", version, commit, date)
		return 0
	}
	if opts.Help {
		printUsage(registry, flags, stderr)
		return 0
	}
	if opts.Output != "text" && opts.Output != "json" {
		return usageExit(&UsageError{
			Message: fmt.Sprintf("invalid output format %q (must be 'text' or 'json')", opts.Output),
		}, registry, flags, stderr)
	}
	if err := validation.ValidateRoleARN(opts.Role); err != nil {
		return usageExit(&UsageError{Message: err.Error()}, registry, flags, stderr)
	}

	if !seg.Found {
		if leftover := flags.Args(); len(leftover) > 0 {
			return usageExit(&UsageError{
				Message: fmt.Sprintf("unknown command %q", leftover[0]),
			}, registry, flags, stderr)
		}
		printUsage(registry, flags, stderr)
		return 0
	}
	desc, _ := registry.Lookup(seg.Command)

	reporter := &Reporter{Debug: opts.Debug, JSON: opts.Output == "json", Stderr: stderr}

	ctx := context.Background()
	result, err := bootstrap(ctx, opts.Sources, awsauth.Options{
		Profile: opts.Profile,
		Role:    opts.Role,
	})
	if err != nil {
		reporter.Report(err)
		return 1
	}

	cmdCtx := &command.Context{
		Params: result.Params,
		Creds:  result.Creds,
		Output: opts.Output,
		Stdout: stdout,
	}
	if err := dispatch(ctx, desc, seg.PostArgs, cmdCtx, stderr); err != nil {
		reporter.Report(err)
		return 1
	}
	return 0
}

func usageExit(err *UsageError, registry *Registry, flags *pflag.FlagSet, stderr io.Writer) int {
	fmt.Fprintf(stderr, "Error: %s\n\n", err.Message)
	printUsage(registry, flags, stderr)
	// Usage problems have always exited 0; scripts depend on it. Worth
	// revisiting together with a dedicated failure code.
	return 0
}

func printUsage(registry *Registry, flags *pflag.FlagSet, w io.Writer) {
	var commands strings.Builder
	for _, name := range registry.Names() {
		desc, _ := registry.Lookup(name)
		fmt.Fprintf(&commands, "  %-10s %s\n", name, desc.Summary)
	}

	fmt.Fprintf(w, `Usage: nova [program options] <command> [command options]

Merge parameter files and run deployment commands against AWS.

Program options:
%s
Commands:
%s
Run 'nova <command> --help' for command options.
`, flags.FlagUsages(), commands.String())
}
