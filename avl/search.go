// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/orderedmap/fault"
)

// internal: find the node holding key or nil
func (tree *Tree[K, V]) search(key K) *node[K, V] {
	if tree.isNil(key) {
		return nil
	}
	p := tree.root
	for nil != p {
		c := tree.compare(key, p.key)
		switch {
		case c < 0: // key < p.key
			p = p.left
		case c > 0: // key > p.key
			p = p.right
		default:
			return p
		}
	}
	return nil
}

// Get - fetch the value stored for key
func (tree *Tree[K, V]) Get(key K) (V, error) {
	if tree.isNil(key) {
		var zero V
		return zero, fault.ErrNilKey
	}
	p := tree.search(key)
	if nil == p {
		var zero V
		return zero, fault.ErrKeyNotFound
	}
	return p.value, nil
}

// TryGet - fetch the value stored for key, false if absent
func (tree *Tree[K, V]) TryGet(key K) (V, bool) {
	p := tree.search(key)
	if nil == p {
		var zero V
		return zero, false
	}
	return p.value, true
}

// ContainsKey - true if key is present
func (tree *Tree[K, V]) ContainsKey(key K) bool {
	return nil != tree.search(key)
}

// Replace - overwrite the value of an existing key, false if absent
func (tree *Tree[K, V]) Replace(key K, value V) (bool, error) {
	if tree.isNil(key) {
		return false, fault.ErrNilKey
	}
	p := tree.search(key)
	if nil == p {
		return false, nil
	}
	p.value = value
	return true, nil
}
