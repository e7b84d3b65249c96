// SPDX-FileCopyrightText: 2026 Nova Contributors
//
// SPDX-License-Identifier: MIT

package params

import (
	"fmt"
	"sort"
	"strconv"
)

// Leaf is one scalar value in a configuration tree, addressed by the
// slash-joined path of keys (and sequence indices) leading to it.
type Leaf struct {
	Path  string
	Value string
}

// Flatten walks a configuration tree and returns every scalar as a Leaf.
// Mapping keys are visited in sorted order and sequence elements by index,
// so the result is deterministic for a given tree. Paths are relative, with
// no leading slash.
func Flatten(tree map[string]any) []Leaf {
	var leaves []Leaf
	flattenNode(tree, "", &leaves)
	return leaves
}

func flattenNode(node any, path string, leaves *[]Leaf) {
	switch v := node.(type) {
	case map[string]any:
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			flattenNode(v[key], join(path, key), leaves)
		}
	case []any:
		for i, elem := range v {
			flattenNode(elem, join(path, strconv.Itoa(i)), leaves)
		}
	default:
		*leaves = append(*leaves, Leaf{Path: path, Value: formatScalar(v)})
	}
}

func join(path, key string) string {
	if path == "" {
		return key
	}
	return path + "/" + key
}

func formatScalar(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprint(s)
	}
}
