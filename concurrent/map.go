// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package concurrent

import (
	"cmp"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/orderedmap/avl"
	"github.com/bitmark-inc/orderedmap/fault"
	"github.com/bitmark-inc/orderedmap/reentrant"
)

// Map - AVL tree guarded by one reentrant lock
//
// each exported method takes a fresh owner; the unexported forms take
// the owner of the caller so they may be nested under a held lock
type Map[K, V any] struct {
	lock reentrant.Mutex
	tree *avl.Tree[K, V]
	log  *logger.L
}

// New - create an empty map ordered by the natural order of the key
func New[K cmp.Ordered, V any]() *Map[K, V] {
	return &Map[K, V]{
		tree: avl.New[K, V](),
	}
}

// NewFunc - create an empty map ordered by compare
func NewFunc[K, V any](compare func(a, b K) int) (*Map[K, V], error) {
	tree, err := avl.NewFunc[K, V](compare)
	if nil != err {
		return nil, err
	}
	return &Map[K, V]{
		tree: tree,
	}, nil
}

// NewFrom - create a map holding a copy of every pair of source
func NewFrom[K cmp.Ordered, V any](source map[K]V) (*Map[K, V], error) {
	tree, err := avl.NewFrom(source)
	if nil != err {
		return nil, err
	}
	return &Map[K, V]{
		tree: tree,
	}, nil
}

// SetLog - attach a logger channel, batch operations are logged at
// debug level
func (m *Map[K, V]) SetLog(log *logger.L) error {
	if nil == log {
		return fault.ErrInvalidLoggerChannel
	}
	owner := m.acquire(reentrant.NewOwner())
	defer m.release(owner)

	m.log = log
	return nil
}

// take one level of the lock for owner
func (m *Map[K, V]) acquire(owner reentrant.Owner) reentrant.Owner {
	m.lock.Lock(owner)
	return owner
}

// release one level of the lock, a failure here means the lock
// bookkeeping of this package is wrong
func (m *Map[K, V]) release(owner reentrant.Owner) {
	fault.PanicIfError("concurrent map unlock", m.lock.Unlock(owner))
}

// Add - insert a pair, false if the key is already present
func (m *Map[K, V]) Add(key K, value V) (bool, error) {
	return m.add(reentrant.NewOwner(), key, value)
}

func (m *Map[K, V]) add(owner reentrant.Owner, key K, value V) (bool, error) {
	defer m.release(m.acquire(owner))
	return m.tree.Insert(key, value)
}

// Remove - delete a key, false if it was not present
func (m *Map[K, V]) Remove(key K) (bool, error) {
	return m.remove(reentrant.NewOwner(), key)
}

func (m *Map[K, V]) remove(owner reentrant.Owner, key K) (bool, error) {
	defer m.release(m.acquire(owner))
	return m.tree.Delete(key)
}

// Get - fetch the value of a key, fault.ErrKeyNotFound if absent
func (m *Map[K, V]) Get(key K) (V, error) {
	return m.get(reentrant.NewOwner(), key)
}

func (m *Map[K, V]) get(owner reentrant.Owner, key K) (V, error) {
	defer m.release(m.acquire(owner))
	return m.tree.Get(key)
}

// TryGet - fetch the value of a key, false if absent
func (m *Map[K, V]) TryGet(key K) (V, bool) {
	return m.tryGet(reentrant.NewOwner(), key)
}

func (m *Map[K, V]) tryGet(owner reentrant.Owner, key K) (V, bool) {
	defer m.release(m.acquire(owner))
	return m.tree.TryGet(key)
}

// ContainsKey - true if the key is present
func (m *Map[K, V]) ContainsKey(key K) bool {
	return m.containsKey(reentrant.NewOwner(), key)
}

func (m *Map[K, V]) containsKey(owner reentrant.Owner, key K) bool {
	defer m.release(m.acquire(owner))
	return m.tree.ContainsKey(key)
}

// Replace - overwrite the value of an existing key, false if absent
func (m *Map[K, V]) Replace(key K, value V) (bool, error) {
	return m.replace(reentrant.NewOwner(), key, value)
}

func (m *Map[K, V]) replace(owner reentrant.Owner, key K, value V) (bool, error) {
	defer m.release(m.acquire(owner))
	return m.tree.Replace(key, value)
}

// Count - number of pairs
func (m *Map[K, V]) Count() int {
	return m.count(reentrant.NewOwner())
}

func (m *Map[K, V]) count(owner reentrant.Owner) int {
	defer m.release(m.acquire(owner))
	return m.tree.Count()
}

// IsEmpty - true if there are no pairs
func (m *Map[K, V]) IsEmpty() bool {
	return 0 == m.count(reentrant.NewOwner())
}

// Clear - remove all pairs
func (m *Map[K, V]) Clear() {
	m.clear(reentrant.NewOwner())
}

func (m *Map[K, V]) clear(owner reentrant.Owner) {
	defer m.release(m.acquire(owner))
	m.tree.Clear()
}

// Check - verify the tree invariants
func (m *Map[K, V]) Check() error {
	return m.check(reentrant.NewOwner())
}

func (m *Map[K, V]) check(owner reentrant.Owner) error {
	defer m.release(m.acquire(owner))
	return m.tree.Check()
}

// Keys - copy of the keys in ascending order
func (m *Map[K, V]) Keys() []K {
	return m.keys(reentrant.NewOwner())
}

func (m *Map[K, V]) keys(owner reentrant.Owner) []K {
	defer m.release(m.acquire(owner))
	return m.tree.KeyView().ToSlice()
}

// Values - copy of the values in ascending key order
func (m *Map[K, V]) Values() []V {
	return m.values(reentrant.NewOwner())
}

func (m *Map[K, V]) values(owner reentrant.Owner) []V {
	defer m.release(m.acquire(owner))
	return m.tree.ValueView().ToSlice()
}

// Items - copies of the keys and their values taken under one lock
func (m *Map[K, V]) Items() ([]K, []V) {
	defer m.release(m.acquire(reentrant.NewOwner()))

	keys := make([]K, 0, m.tree.Count())
	values := make([]V, 0, m.tree.Count())
	for key, value := range m.tree.All() {
		keys = append(keys, key)
		values = append(values, value)
	}
	return keys, values
}
