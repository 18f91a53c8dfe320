// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
	"reflect"

	"github.com/bitmark-inc/orderedmap/fault"
)

// Tree - type to hold the root node of a tree
type Tree[K, V any] struct {
	root     *node[K, V]
	count    int
	compare  func(a, b K) int
	nilCheck bool // keys may be nil
	free     freeList[K, V]
	path     path[K, V]
}

// New - create an initially empty tree ordered by the natural order
// of the key type
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return &Tree[K, V]{
		root:     nil,
		count:    0,
		compare:  cmp.Compare[K],
		nilCheck: false,
	}
}

// NewFunc - create an initially empty tree ordered by compare which
// must return a negative value, zero or a positive value when a is
// less than, equal to or greater than b
func NewFunc[K, V any](compare func(a, b K) int) (*Tree[K, V], error) {
	if nil == compare {
		return nil, fault.ErrNilComparator
	}
	return &Tree[K, V]{
		root:     nil,
		count:    0,
		compare:  compare,
		nilCheck: nilable[K](),
	}, nil
}

// NewFrom - create a tree holding a copy of every pair of source
func NewFrom[K cmp.Ordered, V any](source map[K]V) (*Tree[K, V], error) {
	if nil == source {
		return nil, fault.ErrNilSource
	}
	tree := New[K, V]()
	for key, value := range source {
		if _, err := tree.Insert(key, value); nil != err {
			return nil, err
		}
	}
	return tree, nil
}

// NewFromFunc - create a tree ordered by compare holding a copy of
// every pair of source; fails if any source key is nil
func NewFromFunc[K comparable, V any](compare func(a, b K) int, source map[K]V) (*Tree[K, V], error) {
	if nil == source {
		return nil, fault.ErrNilSource
	}
	tree, err := NewFunc[K, V](compare)
	if nil != err {
		return nil, err
	}
	for key := range source {
		if tree.isNil(key) {
			return nil, fault.ErrNilKey
		}
	}
	for key, value := range source {
		if _, err := tree.Insert(key, value); nil != err {
			return nil, err
		}
	}
	return tree, nil
}

// NewFromPairs - create a tree from parallel key and value slices,
// the first of any duplicated keys is kept
func NewFromPairs[K cmp.Ordered, V any](keys []K, values []V) (*Tree[K, V], error) {
	if len(keys) != len(values) {
		return nil, fault.ErrSizeMismatch
	}
	tree := New[K, V]()
	for i, key := range keys {
		if _, err := tree.Insert(key, values[i]); nil != err {
			return nil, err
		}
	}
	return tree, nil
}

// IsEmpty - true if tree contains no data
func (tree *Tree[K, V]) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[K, V]) Count() int {
	return tree.count
}

// Clear - remove all nodes, the old nodes are left to the garbage
// collector
func (tree *Tree[K, V]) Clear() {
	tree.root = nil
	tree.count = 0
}

// CheckKey - fail if key cannot be stored in the tree
func (tree *Tree[K, V]) CheckKey(key K) error {
	if tree.isNil(key) {
		return fault.ErrNilKey
	}
	return nil
}

// internal: true if key is a nil interface, pointer, map, slice,
// channel or function
func (tree *Tree[K, V]) isNil(key K) bool {
	if !tree.nilCheck {
		return false
	}
	v := any(key)
	if nil == v {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// internal: true if values of type K can be nil
func nilable[K any]() bool {
	t := reflect.TypeOf((*K)(nil)).Elem()
	switch t.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return true
	}
	return false
}
