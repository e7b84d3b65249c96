// SPDX-FileCopyrightText: 2026 Nova Contributors
//
// SPDX-License-Identifier: MIT

package params

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlattenOrdersKeysAndIndexesSequences(t *testing.T) {
	tree := map[string]any{
		"db": map[string]any{
			"port": 5432,
			"host": "db.internal",
		},
		"subnets": []any{"sn-1", "sn-2"},
		"debug":   true,
		"comment": nil,
	}

	got := Flatten(tree)

	assert.Equal(t, []Leaf{
		{Path: "comment", Value: ""},
		{Path: "db/host", Value: "db.internal"},
		{Path: "db/port", Value: "5432"},
		{Path: "debug", Value: "true"},
		{Path: "subnets/0", Value: "sn-1"},
		{Path: "subnets/1", Value: "sn-2"},
	}, got)
}

func TestFlattenEmptyTree(t *testing.T) {
	assert.Empty(t, Flatten(map[string]any{}))
}
