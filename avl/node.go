// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// a node in the tree
type node[K, V any] struct {
	left    *node[K, V] // left sub-tree
	right   *node[K, V] // right sub-tree
	up      *node[K, V] // points to parent node
	key     K           // key part for ordering
	value   V           // value part for data storage
	balance int         // -1, 0, +1  (±2 only during rebalance)
}

// maximum number of reclaimed nodes kept by a tree
const freeListSize = 32

// reclaimed nodes of one tree
type freeList[K, V any] struct {
	nodes []*node[K, V]
}

// allocate a new node, reuses reclaimed nodes if any are available
func (f *freeList[K, V]) newNode(key K, value V, up *node[K, V]) *node[K, V] {
	index := len(f.nodes) - 1
	if index < 0 {
		return &node[K, V]{
			up:      up,
			key:     key,
			value:   value,
			balance: 0,
		}
	}
	p := f.nodes[index]
	f.nodes[index] = nil
	f.nodes = f.nodes[:index]

	p.up = up
	p.key = key
	p.value = value
	return p
}

// reclaim a node, the pool is bounded so excess nodes are left to
// the garbage collector
func (f *freeList[K, V]) freeNode(p *node[K, V]) {
	var zeroK K
	var zeroV V

	p.left = nil
	p.right = nil
	p.up = nil
	p.key = zeroK
	p.value = zeroV
	p.balance = 0

	if nil == f.nodes {
		f.nodes = make([]*node[K, V], 0, freeListSize)
	}
	if len(f.nodes) < cap(f.nodes) {
		f.nodes = append(f.nodes, p)
	}
}

// internal: lowest node in a sub-tree
func (p *node[K, V]) first() *node[K, V] {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}

// internal: in-order successor or nil if p is the highest node
func (p *node[K, V]) next() *node[K, V] {
	if nil != p.right {
		return p.right.first()
	}
	up := p.up
	for nil != up && p == up.right {
		p = up
		up = up.up
	}
	return up
}

// internal: first node of a post-order walk of a sub-tree
func (p *node[K, V]) deepest() *node[K, V] {
	for {
		if nil != p.left {
			p = p.left
		} else if nil != p.right {
			p = p.right
		} else {
			return p
		}
	}
}

// internal: post-order successor, the parent is visited after both
// of its sub-trees
func (p *node[K, V]) nextPostOrder() *node[K, V] {
	up := p.up
	if nil != up && p == up.left && nil != up.right {
		return up.right.deepest()
	}
	return up
}
