// SPDX-FileCopyrightText: 2026 Nova Contributors
//
// SPDX-License-Identifier: MIT

// Package cli implements the nova command-line front end: argv
// segmentation, the command registry, the bootstrap pipeline that loads
// parameters and credentials concurrently, and command dispatch.
package cli

// Segments is the result of splitting raw argv around the command name.
type Segments struct {
	// PreArgs are the tokens before the command name: program options.
	PreArgs []string
	// Command is the matched command name; empty when Found is false.
	Command string
	// Found reports whether any token matched a known command.
	Found bool
	// PostArgs are the tokens after the command name: command options.
	PostArgs []string
}

// Segment scans argv left to right and splits it at the first token that
// exactly matches a known command name. Position in argv decides ties, not
// position in the registry. When nothing matches, every token is a pre-arg
// and later stages treat leftover non-flag tokens as a usage error.
func Segment(argv []string, known map[string]bool) Segments {
	for i, token := range argv {
		if known[token] {
			return Segments{
				PreArgs:  argv[:i],
				Command:  token,
				Found:    true,
				PostArgs: argv[i+1:],
			}
		}
	}
	return Segments{PreArgs: argv}
}
