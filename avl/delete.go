// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/orderedmap/fault"
)

// Delete - removes a specific item from the tree
//
// returns false and leaves the tree unchanged if the key is not present
func (tree *Tree[K, V]) Delete(key K) (bool, error) {
	if tree.isNil(key) {
		return false, fault.ErrNilKey
	}

	h := &tree.path
	defer h.reset()

	q := tree.root
search:
	for nil != q {
		c := tree.compare(key, q.key)
		switch {
		case c < 0: // key < q.key
			h.push(q, false)
			q = q.left
		case c > 0: // key > q.key
			h.push(q, true)
			q = q.right
		default:
			break search
		}
	}
	if nil == q { // key not in tree
		return false, nil
	}

	switch r := q.right; {
	case nil == r:
		// left child (if any) takes the place of q
		tree.relink(q, q.left)

	case nil == r.left:
		// right child takes the place and balance of q, its right
		// branch is now one shorter
		r.left = q.left
		if nil != r.left {
			r.left.up = r
		}
		r.balance = q.balance
		tree.relink(q, r)
		h.push(r, true)

	default:
		// lowest node of the right sub-tree replaces q
		index := h.push(q, true)
		s := r
		for nil != s.left {
			h.push(s, false)
			s = s.left
		}

		su := s.up
		su.left = s.right
		if nil != s.right {
			s.right.up = su
		}

		s.left = q.left
		s.left.up = s
		s.right = q.right
		s.right.up = s
		s.balance = q.balance
		tree.relink(q, s)
		h.steps[index].p = s
	}

	tree.count -= 1
	tree.free.freeNode(q)

	tree.deleteRetrace(h)
	return true, nil
}

// internal: walk the recorded path upwards, each step's branch has
// become one shorter
func (tree *Tree[K, V]) deleteRetrace(h *path[K, V]) {
	for i := len(h.steps) - 1; i >= 0; i -= 1 {
		p := h.steps[i].p
		if h.steps[i].right {
			p.balance -= 1 // right branch has shrunk
		} else {
			p.balance += 1 // left branch has shrunk
		}

		switch p.balance {
		case -1, +1:
			return // height unchanged
		case 0:
			continue // height shrank by one
		default:
			if _, unchanged := tree.rebalance(p); unchanged {
				return
			}
		}
	}
}
