// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// check that nodes keep constant address when tree is re-balanced
func TestNodeStability(t *testing.T) {
	tree := New[string, string]()
	for i := 1; i <= 10; i += 1 {
		key := fmt.Sprintf("%02d", i)
		tree.Insert(key, "data:"+key)
	}

	node1 := tree.search("05")
	require.NotNil(t, node1, "key 05 missing")

	// 04 has two children so its successor is moved into its place
	ok, err := tree.Delete("04")
	require.NoError(t, err)
	require.True(t, ok, "delete 04")

	node2 := tree.search("05")
	assert.Same(t, node1, node2, "node moved")
	assert.Equal(t, "data:05", node2.value, "node data changed")

	for _, key := range []string{"06", "02", "08", "01"} {
		tree.Delete(key)
		assert.Same(t, node1, tree.search("05"), "node moved after deleting: %s", key)
	}
	require.NoError(t, tree.Check())
}

func TestFreeList(t *testing.T) {
	tree := New[int, string]()
	for i := 0; i < 2*freeListSize; i += 1 {
		tree.Insert(i, "v")
	}
	for i := 0; i < 2*freeListSize; i += 1 {
		tree.Delete(i)
	}
	assert.Equal(t, freeListSize, len(tree.free.nodes), "free list not bounded")
	for _, p := range tree.free.nodes {
		assert.Nil(t, p.up, "reclaimed node keeps parent")
		assert.Nil(t, p.left, "reclaimed node keeps left")
		assert.Nil(t, p.right, "reclaimed node keeps right")
		assert.Equal(t, "", p.value, "reclaimed node keeps value")
	}

	reused := tree.free.nodes[len(tree.free.nodes)-1]
	tree.Insert(99, "new")
	assert.Same(t, reused, tree.search(99), "node not reused")
	assert.Equal(t, freeListSize-1, len(tree.free.nodes), "free list not popped")
	assert.Equal(t, 0, reused.balance, "reused node balance")
}

func TestPathGrowth(t *testing.T) {
	var h path[int, int]
	assert.Equal(t, 0, cap(h.steps), "initial capacity")

	h.push(nil, false)
	assert.Equal(t, initialPathSize, cap(h.steps), "first allocation")

	for i := 1; i < initialPathSize; i += 1 {
		h.push(nil, 1 == i%2)
	}
	assert.Equal(t, initialPathSize, cap(h.steps), "grew before full")

	h.push(nil, true)
	assert.Equal(t, initialPathSize+initialPathSize/2, cap(h.steps), "growth factor")
	assert.Equal(t, initialPathSize+1, len(h.steps), "length after growth")
	assert.True(t, h.steps[initialPathSize].right, "last step lost")
	assert.True(t, h.steps[1].right, "copied step lost")

	h.reset()
	assert.Equal(t, 0, len(h.steps), "length after reset")
	assert.Equal(t, initialPathSize+initialPathSize/2, cap(h.steps), "capacity after reset")
}

// deep trees make long delete paths
func TestDeletePathReleased(t *testing.T) {
	tree := New[int, int]()
	for i := 0; i < 5000; i += 1 {
		tree.Insert(i, i)
	}
	for i := 0; i < 5000; i += 7 {
		tree.Delete(i)
	}
	assert.Equal(t, 0, len(tree.path.steps), "path not reset")
	for _, s := range tree.path.steps[:cap(tree.path.steps)] {
		assert.Nil(t, s.p, "path retains a node")
	}
	require.NoError(t, tree.Check())
}

func TestPostOrder(t *testing.T) {
	tree := New[int, int]()
	for _, k := range []int{4, 2, 6, 1, 3, 5, 7} {
		tree.Insert(k, k)
	}
	order := []int{}
	for p := tree.root.deepest(); nil != p; p = p.nextPostOrder() {
		order = append(order, p.key)
	}
	assert.Equal(t, []int{1, 3, 2, 5, 7, 6, 4}, order, "post-order walk")
	assert.Equal(t, 3, tree.Height(), "height")
}

// corrupt a tree and confirm the checker notices
func TestCheckDetectsDamage(t *testing.T) {
	tree := New[int, int]()
	for k := 1; k <= 7; k += 1 {
		tree.Insert(k, k)
	}
	require.NoError(t, tree.Check())

	tree.root.balance = 1
	assert.Error(t, tree.Check(), "balance damage not found")
	tree.root.balance = 0

	tree.count += 1
	assert.Error(t, tree.Check(), "count damage not found")
	tree.count -= 1

	tree.root.left.key, tree.root.right.key = tree.root.right.key, tree.root.left.key
	assert.Error(t, tree.Check(), "order damage not found")
	tree.root.left.key, tree.root.right.key = tree.root.right.key, tree.root.left.key

	saved := tree.root.left.left.up
	tree.root.left.left.up = tree.root
	assert.Error(t, tree.Check(), "parent damage not found")
	tree.root.left.left.up = saved

	require.NoError(t, tree.Check())
}
