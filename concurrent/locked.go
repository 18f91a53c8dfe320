// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package concurrent

import (
	"github.com/bitmark-inc/orderedmap/avl"
	"github.com/bitmark-inc/orderedmap/reentrant"
)

// Locked - access to a Map from inside WithLock
//
// the methods reenter the lock already held by the callback, so any
// number of them can be combined into one atomic step
type Locked[K, V any] struct {
	m     *Map[K, V]
	owner reentrant.Owner
}

// WithLock - run f with the lock held
//
// f must use l for all access to m; calling the methods of m itself
// from f blocks forever.  Neither l, the tree nor its iterators may be
// kept after f returns.
func (m *Map[K, V]) WithLock(f func(l *Locked[K, V])) {
	owner := m.acquire(reentrant.NewOwner())
	defer m.release(owner)

	f(&Locked[K, V]{
		m:     m,
		owner: owner,
	})
}

// Tree - the underlying tree, nil once WithLock has returned
func (l *Locked[K, V]) Tree() *avl.Tree[K, V] {
	if !l.m.lock.Held(l.owner) {
		return nil
	}
	return l.m.tree
}

// Add - as Map.Add
func (l *Locked[K, V]) Add(key K, value V) (bool, error) {
	return l.m.add(l.owner, key, value)
}

// Remove - as Map.Remove
func (l *Locked[K, V]) Remove(key K) (bool, error) {
	return l.m.remove(l.owner, key)
}

// Get - as Map.Get
func (l *Locked[K, V]) Get(key K) (V, error) {
	return l.m.get(l.owner, key)
}

// TryGet - as Map.TryGet
func (l *Locked[K, V]) TryGet(key K) (V, bool) {
	return l.m.tryGet(l.owner, key)
}

// ContainsKey - as Map.ContainsKey
func (l *Locked[K, V]) ContainsKey(key K) bool {
	return l.m.containsKey(l.owner, key)
}

// Replace - as Map.Replace
func (l *Locked[K, V]) Replace(key K, value V) (bool, error) {
	return l.m.replace(l.owner, key, value)
}

// Count - as Map.Count
func (l *Locked[K, V]) Count() int {
	return l.m.count(l.owner)
}

// IsEmpty - as Map.IsEmpty
func (l *Locked[K, V]) IsEmpty() bool {
	return 0 == l.m.count(l.owner)
}

// Clear - as Map.Clear
func (l *Locked[K, V]) Clear() {
	l.m.clear(l.owner)
}

// Check - as Map.Check
func (l *Locked[K, V]) Check() error {
	return l.m.check(l.owner)
}

// Keys - as Map.Keys
func (l *Locked[K, V]) Keys() []K {
	return l.m.keys(l.owner)
}

// Values - as Map.Values
func (l *Locked[K, V]) Values() []V {
	return l.m.values(l.owner)
}

// AddRange - as Map.AddRange
func (l *Locked[K, V]) AddRange(keys []K, values []V) ([]bool, error) {
	if err := l.m.checkBatch(keys, values); nil != err {
		return nil, err
	}
	return l.m.addRange(l.owner, keys, values)
}

// RemoveRange - as Map.RemoveRange
func (l *Locked[K, V]) RemoveRange(keys []K) ([]bool, error) {
	if err := l.m.checkKeys(keys); nil != err {
		return nil, err
	}
	return l.m.removeRange(l.owner, keys)
}

// ReplaceAll - as Map.ReplaceAll
func (l *Locked[K, V]) ReplaceAll(keys []K, values []V) ([]bool, error) {
	if err := l.m.checkBatch(keys, values); nil != err {
		return nil, err
	}
	return l.m.replaceAll(l.owner, keys, values)
}
