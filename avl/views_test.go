// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/orderedmap/avl"
	"github.com/bitmark-inc/orderedmap/fault"
)

func TestKeyView(t *testing.T) {
	tree := avl.New[int, string]()
	keys := tree.KeyView()

	assert.True(t, keys.IsEmpty(), "new view not empty")
	assert.Equal(t, 0, keys.Count(), "new view count")
	assert.Empty(t, keys.ToSlice(), "new view items")

	for _, k := range []int{5, 3, 8, 1} {
		tree.Insert(k, "v")
	}

	// the view follows the tree
	assert.False(t, keys.IsEmpty(), "view empty after insert")
	assert.Equal(t, 4, keys.Count(), "count")
	assert.True(t, keys.Contains(8), "contains 8")
	assert.False(t, keys.Contains(7), "contains 7")
	assert.Equal(t, []int{1, 3, 5, 8}, keys.ToSlice(), "ascending keys")

	it := keys.Iterator()
	got := []int{}
	for it.HasNext() {
		k, err := it.Next()
		require.NoError(t, err)
		got = append(got, k)
	}
	assert.Equal(t, []int{1, 3, 5, 8}, got, "iterator order")
	_, err := it.Next()
	assert.Equal(t, fault.ErrNoSuchElement, err, "exhausted key iterator")

	assert.Equal(t, 4, avl.CountSeq(keys.All()), "sequence count")

	tree.Delete(3)
	assert.Equal(t, []int{1, 5, 8}, keys.ToSlice(), "view after delete")
}

func TestKeyViewIsReadOnly(t *testing.T) {
	tree := avl.New[int, string]()
	tree.Insert(1, "one")
	keys := tree.KeyView()

	for name, err := range map[string]error{
		"add":    keys.Add(2),
		"remove": keys.Remove(1),
		"clear":  keys.Clear(),
	} {
		assert.Equal(t, fault.ErrReadOnlyView, err, "%s through key view", name)
		assert.True(t, fault.IsErrUnsupported(err), "%s error class", name)
	}
	assert.Equal(t, 1, tree.Count(), "view mutated the tree")
	assert.True(t, tree.ContainsKey(1), "view removed a key")
}

func TestValueView(t *testing.T) {
	tree := avl.New[string, []int]()
	tree.Insert("b", []int{2})
	tree.Insert("a", []int{1})
	tree.Insert("c", []int{3, 3})
	values := tree.ValueView()

	assert.Equal(t, 3, values.Count(), "count")
	assert.False(t, values.IsEmpty(), "empty")
	assert.Equal(t, [][]int{{1}, {2}, {3, 3}}, values.ToSlice(), "values in key order")
	assert.True(t, values.Contains([]int{3, 3}), "deep equal contains")
	assert.False(t, values.Contains([]int{4}), "absent value")

	it := values.Iterator()
	n := 0
	for it.HasNext() {
		_, err := it.Next()
		require.NoError(t, err)
		n += 1
	}
	assert.Equal(t, 3, n, "iterator count")
	_, err := it.Next()
	assert.Equal(t, fault.ErrNoSuchElement, err, "exhausted value iterator")

	assert.Equal(t, fault.ErrReadOnlyView, values.Add([]int{9}), "add through value view")
	assert.Equal(t, fault.ErrReadOnlyView, values.Remove([]int{1}), "remove through value view")
	assert.Equal(t, fault.ErrReadOnlyView, values.Clear(), "clear through value view")
	assert.Equal(t, 3, tree.Count(), "value view mutated the tree")

	tree.Clear()
	assert.True(t, values.IsEmpty(), "view after clear")
	assert.Equal(t, 0, avl.CountSeq(values.All()), "sequence after clear")
}

func TestValueViewFunc(t *testing.T) {
	tree := avl.New[int, string]()
	tree.Insert(1, "Alpha")
	tree.Insert(2, "beta")

	_, err := tree.ValueViewFunc(nil)
	assert.Equal(t, fault.ErrNilComparator, err, "nil equality")

	values, err := tree.ValueViewFunc(func(a, b string) bool {
		return len(a) == len(b)
	})
	require.NoError(t, err)
	assert.True(t, values.Contains("gamma"), "custom equality")
	assert.False(t, values.Contains("pi"), "custom equality mismatch")
}
