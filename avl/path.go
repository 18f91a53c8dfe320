// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// initial number of steps held by a path
const initialPathSize = 10

// one step of a descent: the node visited and which branch was
// taken from it
type step[K, V any] struct {
	p     *node[K, V]
	right bool
}

// descent recorded by delete, grows by half its size when full
type path[K, V any] struct {
	steps []step[K, V]
}

func (h *path[K, V]) push(p *node[K, V], right bool) int {
	n := len(h.steps)
	if n == cap(h.steps) {
		size := n + n/2
		if size < initialPathSize {
			size = initialPathSize
		}
		steps := make([]step[K, V], n, size)
		copy(steps, h.steps)
		h.steps = steps
	}
	h.steps = append(h.steps, step[K, V]{p: p, right: right})
	return n
}

// drop all steps, keeping the storage
func (h *path[K, V]) reset() {
	clear(h.steps)
	h.steps = h.steps[:0]
}
