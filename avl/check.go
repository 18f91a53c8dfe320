// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/orderedmap/fault"
)

// Check - verify the up pointers, key order, balance factors and node
// count of the whole tree
func (tree *Tree[K, V]) Check() error {
	if nil != tree.root && nil != tree.root.up {
		return fault.ErrParentLink
	}

	n := 0
	var previous *node[K, V]
	for p := tree.root.first(); nil != p; p = p.next() {
		if nil != p.left && p.left.up != p {
			return fault.ErrParentLink
		}
		if nil != p.right && p.right.up != p {
			return fault.ErrParentLink
		}
		if nil != p.up && p != p.up.left && p != p.up.right {
			return fault.ErrParentLink
		}
		if nil != previous && tree.compare(previous.key, p.key) >= 0 {
			return fault.ErrOrderViolation
		}
		previous = p
		n += 1
	}
	if n != tree.count {
		return fault.ErrCountMismatch
	}

	heights := tree.heights()
	for p, h := range heights {
		balance := heights[p.right] - heights[p.left]
		if balance != p.balance || balance < -1 || balance > 1 {
			return fault.ErrBalanceViolation
		}
		if h != 1+max(heights[p.left], heights[p.right]) {
			return fault.ErrInvariantBroken
		}
	}
	return nil
}

// Height - number of levels in the tree, zero if empty
func (tree *Tree[K, V]) Height() int {
	if nil == tree.root {
		return 0
	}
	return tree.heights()[tree.root]
}

// internal: height of every node, computed by a post-order walk so
// that both sub-trees are done before their parent
func (tree *Tree[K, V]) heights() map[*node[K, V]]int {
	heights := make(map[*node[K, V]]int, tree.count)
	if nil == tree.root {
		return heights
	}
	for p := tree.root.deepest(); nil != p; p = p.nextPostOrder() {
		heights[p] = 1 + max(heights[p.left], heights[p.right])
	}
	return heights
}
