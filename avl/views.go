// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"iter"
	"reflect"

	"github.com/bitmark-inc/orderedmap/fault"
)

// KeyView - read only view of the keys of a tree
//
// A view holds no data of its own, it always reflects the current
// contents of the tree.  All mutating methods fail.
type KeyView[K, V any] struct {
	tree *Tree[K, V]
}

// KeyView - return a read only view of the keys
func (tree *Tree[K, V]) KeyView() *KeyView[K, V] {
	return &KeyView[K, V]{
		tree: tree,
	}
}

// Contains - true if key is present
func (v *KeyView[K, V]) Contains(key K) bool {
	return v.tree.ContainsKey(key)
}

// IsEmpty - true if the tree has no keys
func (v *KeyView[K, V]) IsEmpty() bool {
	return v.tree.IsEmpty()
}

// Count - number of keys
func (v *KeyView[K, V]) Count() int {
	return v.tree.Count()
}

// All - keys in ascending order
func (v *KeyView[K, V]) All() iter.Seq[K] {
	return v.tree.Keys()
}

// Iterator - cursor over the keys in ascending order
func (v *KeyView[K, V]) Iterator() *KeyIterator[K, V] {
	return &KeyIterator[K, V]{
		it: v.tree.Iterator(),
	}
}

// ToSlice - copy of the keys in ascending order
func (v *KeyView[K, V]) ToSlice() []K {
	keys := make([]K, 0, v.tree.Count())
	for key := range v.tree.Keys() {
		keys = append(keys, key)
	}
	return keys
}

// Add - not supported by a view
func (v *KeyView[K, V]) Add(K) error {
	return fault.ErrReadOnlyView
}

// Remove - not supported by a view
func (v *KeyView[K, V]) Remove(K) error {
	return fault.ErrReadOnlyView
}

// Clear - not supported by a view
func (v *KeyView[K, V]) Clear() error {
	return fault.ErrReadOnlyView
}

// KeyIterator - ascending cursor over keys
type KeyIterator[K, V any] struct {
	it *Iterator[K, V]
}

// HasNext - true if Next will return a key
func (ki *KeyIterator[K, V]) HasNext() bool {
	return ki.it.HasNext()
}

// Next - return the current key and advance
func (ki *KeyIterator[K, V]) Next() (K, error) {
	key, _, err := ki.it.Next()
	return key, err
}

// ValueView - read only view of the values of a tree, in ascending
// key order
type ValueView[K, V any] struct {
	tree  *Tree[K, V]
	equal func(a, b V) bool
}

// ValueView - return a read only view of the values, Contains uses
// reflect.DeepEqual
func (tree *Tree[K, V]) ValueView() *ValueView[K, V] {
	return &ValueView[K, V]{
		tree: tree,
		equal: func(a, b V) bool {
			return reflect.DeepEqual(a, b)
		},
	}
}

// ValueViewFunc - return a read only view of the values, Contains
// uses equal
func (tree *Tree[K, V]) ValueViewFunc(equal func(a, b V) bool) (*ValueView[K, V], error) {
	if nil == equal {
		return nil, fault.ErrNilComparator
	}
	return &ValueView[K, V]{
		tree:  tree,
		equal: equal,
	}, nil
}

// Contains - true if any key maps to value, scans the whole tree
func (v *ValueView[K, V]) Contains(value V) bool {
	for item := range v.tree.Values() {
		if v.equal(item, value) {
			return true
		}
	}
	return false
}

// IsEmpty - true if the tree has no values
func (v *ValueView[K, V]) IsEmpty() bool {
	return v.tree.IsEmpty()
}

// Count - number of values
func (v *ValueView[K, V]) Count() int {
	return v.tree.Count()
}

// All - values in ascending key order
func (v *ValueView[K, V]) All() iter.Seq[V] {
	return v.tree.Values()
}

// Iterator - cursor over the values in ascending key order
func (v *ValueView[K, V]) Iterator() *ValueIterator[K, V] {
	return &ValueIterator[K, V]{
		it: v.tree.Iterator(),
	}
}

// ToSlice - copy of the values in ascending key order
func (v *ValueView[K, V]) ToSlice() []V {
	values := make([]V, 0, v.tree.Count())
	for value := range v.tree.Values() {
		values = append(values, value)
	}
	return values
}

// Add - not supported by a view
func (v *ValueView[K, V]) Add(V) error {
	return fault.ErrReadOnlyView
}

// Remove - not supported by a view
func (v *ValueView[K, V]) Remove(V) error {
	return fault.ErrReadOnlyView
}

// Clear - not supported by a view
func (v *ValueView[K, V]) Clear() error {
	return fault.ErrReadOnlyView
}

// ValueIterator - cursor over values in ascending key order
type ValueIterator[K, V any] struct {
	it *Iterator[K, V]
}

// HasNext - true if Next will return a value
func (vi *ValueIterator[K, V]) HasNext() bool {
	return vi.it.HasNext()
}

// Next - return the current value and advance
func (vi *ValueIterator[K, V]) Next() (V, error) {
	_, value, err := vi.it.Next()
	return value, err
}
