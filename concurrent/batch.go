// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package concurrent

import (
	"github.com/bitmark-inc/orderedmap/fault"
	"github.com/bitmark-inc/orderedmap/reentrant"
)

// validate the keys of a batch before any lock is taken
func (m *Map[K, V]) checkKeys(keys []K) error {
	for _, key := range keys {
		if err := m.tree.CheckKey(key); nil != err {
			return err
		}
	}
	return nil
}

func (m *Map[K, V]) checkBatch(keys []K, values []V) error {
	if len(keys) != len(values) {
		return fault.ErrSizeMismatch
	}
	return m.checkKeys(keys)
}

// AddRange - insert keys[i] → values[i] for every i under one lock
// acquisition; result[i] is false where keys[i] was already present
func (m *Map[K, V]) AddRange(keys []K, values []V) ([]bool, error) {
	if err := m.checkBatch(keys, values); nil != err {
		return nil, err
	}
	return m.addRange(reentrant.NewOwner(), keys, values)
}

func (m *Map[K, V]) addRange(owner reentrant.Owner, keys []K, values []V) ([]bool, error) {
	defer m.release(m.acquire(owner))

	added := make([]bool, len(keys))
	n := 0
	for i, key := range keys {
		ok, err := m.add(owner, key, values[i])
		if nil != err {
			return added, err
		}
		added[i] = ok
		if ok {
			n += 1
		}
	}
	if nil != m.log {
		m.log.Debugf("add range: %d of %d added  count: %d", n, len(keys), m.tree.Count())
	}
	return added, nil
}

// RemoveRange - delete every key under one lock acquisition; result[i]
// is false where keys[i] was not present
func (m *Map[K, V]) RemoveRange(keys []K) ([]bool, error) {
	if err := m.checkKeys(keys); nil != err {
		return nil, err
	}
	return m.removeRange(reentrant.NewOwner(), keys)
}

func (m *Map[K, V]) removeRange(owner reentrant.Owner, keys []K) ([]bool, error) {
	defer m.release(m.acquire(owner))

	removed := make([]bool, len(keys))
	n := 0
	for i, key := range keys {
		ok, err := m.remove(owner, key)
		if nil != err {
			return removed, err
		}
		removed[i] = ok
		if ok {
			n += 1
		}
	}
	if nil != m.log {
		m.log.Debugf("remove range: %d of %d removed  count: %d", n, len(keys), m.tree.Count())
	}
	return removed, nil
}

// ReplaceAll - discard the current contents and insert the new pairs,
// all under one lock acquisition
func (m *Map[K, V]) ReplaceAll(keys []K, values []V) ([]bool, error) {
	if err := m.checkBatch(keys, values); nil != err {
		return nil, err
	}
	return m.replaceAll(reentrant.NewOwner(), keys, values)
}

func (m *Map[K, V]) replaceAll(owner reentrant.Owner, keys []K, values []V) ([]bool, error) {
	defer m.release(m.acquire(owner))

	if nil != m.log {
		m.log.Debugf("replace all: discard: %d  new: %d", m.tree.Count(), len(keys))
	}
	m.clear(owner)
	return m.addRange(owner, keys, values)
}
