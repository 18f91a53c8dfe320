// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"iter"

	"github.com/bitmark-inc/orderedmap/fault"
)

// Iterator - ascending cursor over the nodes of a tree
//
// The cursor follows parent pointers so it needs no stack.  It is not
// a snapshot: the tree must not be modified while iterating, except
// that the pair most recently returned by Next may be deleted.
type Iterator[K, V any] struct {
	next *node[K, V]
}

// Iterator - return a cursor positioned at the lowest key
func (tree *Tree[K, V]) Iterator() *Iterator[K, V] {
	return &Iterator[K, V]{
		next: tree.root.first(),
	}
}

// HasNext - true if Next will return a pair
func (it *Iterator[K, V]) HasNext() bool {
	return nil != it.next
}

// Next - return the current pair and advance
func (it *Iterator[K, V]) Next() (K, V, error) {
	p := it.next
	if nil == p {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, fault.ErrNoSuchElement
	}
	it.next = p.next()
	return p.key, p.value, nil
}

// All - ascending sequence of key/value pairs
func (tree *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for p := tree.root.first(); nil != p; {
			n := p.next()
			if !yield(p.key, p.value) {
				return
			}
			p = n
		}
	}
}

// Keys - ascending sequence of keys
func (tree *Tree[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for key := range tree.All() {
			if !yield(key) {
				return
			}
		}
	}
}

// Values - sequence of values in ascending key order
func (tree *Tree[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, value := range tree.All() {
			if !yield(value) {
				return
			}
		}
	}
}

// CountSeq - number of items produced by a sequence
func CountSeq[T any](seq iter.Seq[T]) int {
	n := 0
	for range seq {
		n += 1
	}
	return n
}
