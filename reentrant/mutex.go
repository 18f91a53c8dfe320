// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reentrant

import (
	"sync"

	"github.com/bitmark-inc/orderedmap/counter"
	"github.com/bitmark-inc/orderedmap/fault"
)

// Owner - identifies the holder of a Mutex
type Owner uint64

// source of owner tokens, zero is never issued
var owners counter.Counter

// NewOwner - return an owner token distinct from all others
func NewOwner() Owner {
	return Owner(owners.Increment())
}

// Mutex - exclusive lock with per-owner nesting
// the zero value is an unlocked mutex
type Mutex struct {
	m     sync.Mutex
	free  *sync.Cond
	owner Owner
	depth int
}

// must hold mu.m
func (mu *Mutex) cond() *sync.Cond {
	if nil == mu.free {
		mu.free = sync.NewCond(&mu.m)
	}
	return mu.free
}

// Lock - acquire for owner, waiting while a different owner holds it
func (mu *Mutex) Lock(owner Owner) {
	mu.m.Lock()
	c := mu.cond()
	for mu.depth > 0 && mu.owner != owner {
		c.Wait()
	}
	mu.owner = owner
	mu.depth += 1
	mu.m.Unlock()
}

// Unlock - release one level of nesting
// fails without changing the lock if owner is not the holder
func (mu *Mutex) Unlock(owner Owner) error {
	mu.m.Lock()
	defer mu.m.Unlock()

	if 0 == mu.depth || mu.owner != owner {
		return fault.ErrLockNotHeld
	}
	mu.depth -= 1
	if 0 == mu.depth {
		mu.owner = 0
		mu.cond().Signal()
	}
	return nil
}

// Held - true if owner currently holds the lock
func (mu *Mutex) Held(owner Owner) bool {
	mu.m.Lock()
	defer mu.m.Unlock()
	return mu.depth > 0 && mu.owner == owner
}
