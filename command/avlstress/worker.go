// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"math"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/orderedmap/fault"
)

type worker struct {
	d       *driver
	log     *logger.L
	id      int
	low     int // first key owned
	high    int // one past the last key owned
	limiter *rate.Limiter
}

func (d *driver) newWorker(id int) *worker {
	n := d.options.KeysPerWorker

	var limiter *rate.Limiter
	if d.options.RateLimit > 0 {
		burst := int(math.Ceil(d.options.RateLimit))
		limiter = rate.NewLimiter(rate.Limit(d.options.RateLimit), burst)
	}

	return &worker{
		d:       d,
		log:     logger.New(fmt.Sprintf("%s-%d", workerLoggerPrefix, id)),
		id:      id,
		low:     id * n,
		high:    (id + 1) * n,
		limiter: limiter,
	}
}

// block until the rate limit allows another operation then count it
func (wk *worker) wait(ctx context.Context) error {
	wk.d.operations.Increment()
	if nil == wk.limiter {
		return ctx.Err()
	}
	return wk.limiter.Wait(ctx)
}

func (wk *worker) run(ctx context.Context, round int, last bool) error {
	wk.log.Debugf("round: %d  keys: [%d, %d)", round, wk.low, wk.high)

	steps := []func(context.Context, int) error{
		wk.addAll,
		wk.addDuplicates,
		wk.getAll,
		wk.replaceOdd,
		wk.removeEven,
	}
	if last {
		steps = append(steps, wk.removeRemaining)
	}
	for _, step := range steps {
		if err := step(ctx, round); nil != err {
			return fmt.Errorf("worker: %d  round: %d  %w", wk.id, round, err)
		}
	}
	return nil
}

func value(round int, key int) string {
	return fmt.Sprintf("%d:%d", round, key)
}

func replacement(round int, key int) string {
	return fmt.Sprintf("%d:%d'", round, key)
}

// the owned keys split into slices of the configured batch size
func (wk *worker) batches() [][]int {
	size := wk.d.options.BatchSize
	batches := make([][]int, 0, (wk.high-wk.low+size-1)/size)
	for start := wk.low; start < wk.high; start += size {
		end := min(start+size, wk.high)
		keys := make([]int, 0, end-start)
		for k := start; k < end; k += 1 {
			keys = append(keys, k)
		}
		batches = append(batches, keys)
	}
	return batches
}

func (wk *worker) addAll(ctx context.Context, round int) error {
	for _, keys := range wk.batches() {
		if err := wk.wait(ctx); nil != err {
			return err
		}
		values := make([]string, len(keys))
		for i, k := range keys {
			values[i] = value(round, k)
		}
		added, err := wk.d.m.AddRange(keys, values)
		if nil != err {
			return err
		}
		n := 0
		for _, ok := range added {
			if ok {
				n += 1
			}
		}
		wk.d.adds.Add(uint64(n))
		wk.d.metrics.record(opAdd, true, n)
		wk.d.metrics.record(opAdd, false, len(keys)-n)
	}
	return nil
}

// every key is present so a second add of the first batch must fail
func (wk *worker) addDuplicates(ctx context.Context, round int) error {
	if err := wk.wait(ctx); nil != err {
		return err
	}
	keys := wk.batches()[0]
	values := make([]string, len(keys))
	for i, k := range keys {
		values[i] = value(round, k)
	}
	added, err := wk.d.m.AddRange(keys, values)
	if nil != err {
		return err
	}
	for i, ok := range added {
		if ok {
			wk.d.adds.Increment()
			wk.d.metrics.record(opAdd, true, 1)
			return fmt.Errorf("%w: duplicate key: %d accepted", fault.ErrInvariantBroken, keys[i])
		}
	}
	wk.d.metrics.record(opAdd, false, len(keys))
	return nil
}

func (wk *worker) getAll(ctx context.Context, round int) error {
	for k := wk.low; k < wk.high; k += 1 {
		if err := wk.wait(ctx); nil != err {
			return err
		}
		if _, err := wk.d.m.Get(k); nil != err {
			wk.d.metrics.record(opGet, false, 1)
			return fmt.Errorf("get key: %d  %w", k, err)
		}
		wk.d.metrics.record(opGet, true, 1)
	}
	return nil
}

func (wk *worker) replaceOdd(ctx context.Context, round int) error {
	for k := wk.low | 1; k < wk.high; k += 2 {
		if err := wk.wait(ctx); nil != err {
			return err
		}
		ok, err := wk.d.m.Replace(k, replacement(round, k))
		if nil != err {
			return err
		}
		wk.d.metrics.record(opReplace, ok, 1)
		if !ok {
			return fmt.Errorf("replace key: %d  %w", k, fault.ErrKeyNotFound)
		}
	}
	return nil
}

func (wk *worker) removeEven(ctx context.Context, round int) error {
	for k := (wk.low + 1) &^ 1; k < wk.high; k += 2 {
		if err := wk.wait(ctx); nil != err {
			return err
		}
		ok, err := wk.d.m.Remove(k)
		if nil != err {
			return err
		}
		wk.d.metrics.record(opRemove, ok, 1)
		if !ok {
			return fmt.Errorf("remove key: %d  %w", k, fault.ErrKeyNotFound)
		}
		wk.d.removes.Increment()
	}
	return nil
}

// batch removal of the odd keys left by earlier steps
func (wk *worker) removeRemaining(ctx context.Context, round int) error {
	for _, keys := range wk.batches() {
		if err := wk.wait(ctx); nil != err {
			return err
		}
		removed, err := wk.d.m.RemoveRange(keys)
		if nil != err {
			return err
		}
		n := 0
		for _, ok := range removed {
			if ok {
				n += 1
			}
		}
		wk.d.removes.Add(uint64(n))
		wk.d.metrics.record(opRemove, true, n)
		wk.d.metrics.record(opRemove, false, len(keys)-n)
	}
	return nil
}
