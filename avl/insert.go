// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/orderedmap/fault"
)

// Insert - insert a new node into the tree
//
// returns false and leaves the tree unchanged if the key is already
// present
func (tree *Tree[K, V]) Insert(key K, value V) (bool, error) {
	if tree.isNil(key) {
		return false, fault.ErrNilKey
	}

	var up *node[K, V]
	p := tree.root
	c := 0
	for nil != p {
		c = tree.compare(key, p.key)
		switch {
		case c < 0: // key < p.key
			up = p
			p = p.left
		case c > 0: // key > p.key
			up = p
			p = p.right
		default:
			return false, nil
		}
	}

	p = tree.free.newNode(key, value, up)
	tree.count += 1

	switch {
	case nil == up:
		tree.root = p
		return true, nil
	case c < 0:
		up.left = p
	default:
		up.right = p
	}

	tree.insertRetrace(p)
	return true, nil
}

// internal: walk upwards from a new leaf adjusting balance factors,
// at most one rotation is needed
func (tree *Tree[K, V]) insertRetrace(p *node[K, V]) {
	for up := p.up; nil != up; p, up = up, up.up {
		if p == up.left {
			up.balance -= 1 // left branch has grown
		} else {
			up.balance += 1 // right branch has grown
		}

		switch up.balance {
		case 0:
			return // height unchanged
		case -1, +1:
			continue // height grew by one
		default:
			tree.rebalance(up)
			return
		}
	}
}
