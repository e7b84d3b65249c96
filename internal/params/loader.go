// SPDX-FileCopyrightText: 2026 Nova Contributors
//
// SPDX-License-Identifier: MIT

package params

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// SourceError reports a parameter source that could not be read or parsed.
// A bad source fails the whole load; no partial configuration is returned.
type SourceError struct {
	Path string
	Err  error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("parameter source %s: %v", sanitizeForLog(e.Path), e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }

// Load reads every parameter source concurrently, parses each into a
// configuration tree, and folds them through Merge in the order given,
// regardless of which read finishes first. An empty source list resolves
// immediately to an empty mapping without touching the filesystem.
//
// Merge conflicts between sources are not fatal: they are logged through
// slog and the later source's value wins. A source that cannot be read or
// parsed is fatal and aborts the load.
func Load(ctx context.Context, paths []string) (map[string]any, error) {
	if len(paths) == 0 {
		return map[string]any{}, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	trees := make([]any, len(paths))
	errs := make([]error, len(paths))

	var wg sync.WaitGroup
	for i, path := range paths {
		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			trees[i], errs[i] = parseSource(path)
		}(i, path)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, &SourceError{Path: paths[i], Err: err}
		}
	}

	// Fold in command-line order. The accumulator starts as an empty
	// mapping, so scalars and mappings from later sources win at
	// conflicting paths while sequences accumulate across all sources.
	var merged any = map[string]any{}
	for i, tree := range trees {
		merged = MergeAt(merged, tree, logConflict, "<merged>", paths[i])
	}

	out, ok := merged.(map[string]any)
	if !ok {
		// A non-mapping top level in the final source replaced the
		// accumulator wholesale (see MergeAt). Surface that as a bad
		// source rather than handing commands a scalar configuration.
		return nil, &SourceError{
			Path: paths[len(paths)-1],
			Err:  fmt.Errorf("top-level value is not a mapping"),
		}
	}
	return out, nil
}

// logConflict is the Load resolver: warn and keep the default policy.
func logConflict(c Conflict) (any, bool) {
	slog.Warn("parameter sources disagree, keeping the later value",
		"left", c.PathLeft, "right", c.PathRight)
	return nil, false
}

// parseSource reads and decodes one source file. The format is chosen by
// file extension: .json and .jsonc are parsed as JSON with comments, and
// everything else as YAML.
func parseSource(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var tree any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		if err := json.Unmarshal(jsonc.ToJSON(data), &tree); err != nil {
			return nil, fmt.Errorf("invalid JSON: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &tree); err != nil {
			return nil, fmt.Errorf("invalid YAML: %w", err)
		}
	}
	return tree, nil
}

// sanitizeForLog removes control characters that could be used for log
// injection (CWE-117 mitigation).
func sanitizeForLog(s string) string {
	s = strings.ReplaceAll(s, "\n", "")
	s = strings.ReplaceAll(s, "\r", "")
	s = strings.ReplaceAll(s, "\t", "")
	return strings.ReplaceAll(s, "\x1b", "")
}
