// SPDX-FileCopyrightText: 2026 Nova Contributors
//
// SPDX-License-Identifier: MIT

// Package params implements loading and merging of deployment parameter
// sources.
//
// A parameter source is a structured-data file (YAML or JSON with comments)
// whose top level is expected to be a mapping. Multiple sources are folded
// left to right into a single configuration tree: mappings merge key by key,
// sequences concatenate, and anything else is a conflict where the later
// source wins unless a resolver overrides the policy.
//
// Trees are plain decoded values: map[string]any for mappings, []any for
// sequences, and Go scalars for everything else. Merge never mutates its
// inputs; it always builds a fresh tree.
package params

// RootPath is the path label used when a conflict is reported for the top
// of a tree rather than a nested key.
const RootPath = "<root>"

// Conflict describes a point where two merged trees disagree in shape or
// value. PathLeft and PathRight are dotted paths from each tree's root
// label down to the disagreeing node.
type Conflict struct {
	PathLeft  string
	PathRight string
	Left      any
	Right     any
}

// Resolver is consulted at every conflicting node during a merge. Returning
// ok=true replaces the default merge policy with the returned value for that
// node; returning ok=false keeps the default (concatenate sequences, later
// value wins otherwise). A resolver must not mutate the values it is given.
type Resolver func(c Conflict) (value any, ok bool)

// Merge combines two configuration trees per the default source-folding
// policy, reporting conflicts at paths rooted at RootPath.
func Merge(left, right any, resolve Resolver) any {
	return MergeAt(left, right, resolve, RootPath, RootPath)
}

// MergeAt is Merge with caller-supplied root labels, so conflict reports can
// name the sources the two trees came from (e.g. file paths).
//
// When either side is not a mapping at the top there is nothing to recurse
// into: the resolver is notified once, for side effect only, and the right
// tree replaces the left wholesale.
func MergeAt(left, right any, resolve Resolver, pathLeft, pathRight string) any {
	lm, lok := left.(map[string]any)
	rm, rok := right.(map[string]any)
	if !lok || !rok {
		if resolve != nil {
			resolve(Conflict{PathLeft: pathLeft, PathRight: pathRight})
		}
		return right
	}
	return mergeMappings(lm, rm, resolve, pathLeft, pathRight)
}

func mergeMappings(left, right map[string]any, resolve Resolver, pathLeft, pathRight string) map[string]any {
	out := make(map[string]any, len(left)+len(right))
	for key, value := range left {
		out[key] = value
	}
	for key, rightValue := range right {
		leftValue, shared := left[key]
		if !shared {
			out[key] = rightValue
			continue
		}
		out[key] = mergeNode(leftValue, rightValue, resolve,
			pathLeft+"."+key, pathRight+"."+key)
	}
	return out
}

// mergeNode merges the values under one shared key. Mapping pairs recurse,
// sequence pairs concatenate left-then-right, and every other pairing is a
// conflict resolved in favor of the right value.
func mergeNode(left, right any, resolve Resolver, pathLeft, pathRight string) any {
	if lm, ok := left.(map[string]any); ok {
		if rm, ok := right.(map[string]any); ok {
			return mergeMappings(lm, rm, resolve, pathLeft, pathRight)
		}
	}
	if ls, ok := left.([]any); ok {
		if rs, ok := right.([]any); ok {
			if value, ok := resolveConflict(left, right, resolve, pathLeft, pathRight); ok {
				return value
			}
			joined := make([]any, 0, len(ls)+len(rs))
			joined = append(joined, ls...)
			return append(joined, rs...)
		}
	}
	if value, ok := resolveConflict(left, right, resolve, pathLeft, pathRight); ok {
		return value
	}
	return right
}

func resolveConflict(left, right any, resolve Resolver, pathLeft, pathRight string) (any, bool) {
	if resolve == nil {
		return nil, false
	}
	return resolve(Conflict{
		PathLeft:  pathLeft,
		PathRight: pathRight,
		Left:      left,
		Right:     right,
	})
}
