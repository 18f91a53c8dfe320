// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// internal: put replacement (possibly nil) into the parent slot
// occupied by p
func (tree *Tree[K, V]) relink(p *node[K, V], replacement *node[K, V]) {
	up := p.up
	if nil != replacement {
		replacement.up = up
	}
	switch {
	case nil == up:
		tree.root = replacement
	case p == up.left:
		up.left = replacement
	default:
		up.right = replacement
	}
}

// single RR rotation: p.right becomes the sub-tree root
func (tree *Tree[K, V]) rotateLeft(p *node[K, V]) *node[K, V] {
	p1 := p.right
	p.right = p1.left
	if nil != p.right {
		p.right.up = p
	}
	tree.relink(p, p1)
	p1.left = p
	p.up = p1
	return p1
}

// single LL rotation: p.left becomes the sub-tree root
func (tree *Tree[K, V]) rotateRight(p *node[K, V]) *node[K, V] {
	p1 := p.left
	p.left = p1.right
	if nil != p.left {
		p.left.up = p
	}
	tree.relink(p, p1)
	p1.right = p
	p.up = p1
	return p1
}

// rebalance a node whose balance has reached ±2
//
// returns the new root of the sub-tree and true if the height of the
// sub-tree is the same as before the node became unbalanced; only a
// deletion can produce that case
func (tree *Tree[K, V]) rebalance(p *node[K, V]) (*node[K, V], bool) {
	if p.balance > 0 {
		p1 := p.right
		if p1.balance >= 0 {
			// single RR rotation
			tree.rotateLeft(p)
			if 0 == p1.balance {
				p.balance = 1
				p1.balance = -1
				return p1, true
			}
			p.balance = 0
			p1.balance = 0
			return p1, false
		}

		// double RL rotation
		p2 := p1.left
		tree.rotateRight(p1)
		tree.rotateLeft(p)
		if +1 == p2.balance {
			p.balance = -1
		} else {
			p.balance = 0
		}
		if -1 == p2.balance {
			p1.balance = 1
		} else {
			p1.balance = 0
		}
		p2.balance = 0
		return p2, false
	}

	p1 := p.left
	if p1.balance <= 0 {
		// single LL rotation
		tree.rotateRight(p)
		if 0 == p1.balance {
			p.balance = -1
			p1.balance = 1
			return p1, true
		}
		p.balance = 0
		p1.balance = 0
		return p1, false
	}

	// double LR rotation
	p2 := p1.right
	tree.rotateLeft(p1)
	tree.rotateRight(p)
	if -1 == p2.balance {
		p.balance = 1
	} else {
		p.balance = 0
	}
	if +1 == p2.balance {
		p1.balance = -1
	} else {
		p1.balance = 0
	}
	p2.balance = 0
	return p2, false
}
