// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/orderedmap/concurrent"
	"github.com/bitmark-inc/orderedmap/counter"
)

// background process that periodically logs the size of the map and
// checks its structure
type reporter struct {
	log        *logger.L
	m          *concurrent.Map[int, string]
	metrics    *metrics
	interval   time.Duration
	operations *counter.Counter // zeroed at each report
	active     *counter.Counter // running workers
	reports    counter.Counter
	failures   counter.Counter
}

func (r *reporter) Run(args interface{}, shutdown <-chan struct{}) {
	r.log.Info("starting…")

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-ticker.C:
			r.report()
		}
	}

	// final state
	r.report()
	r.log.Infof("reports: %d  failed checks: %d", r.reports.Uint64(), r.failures.Uint64())
	r.log.Info("shutting down…")
	r.log.Flush()
}

func (r *reporter) report() {
	r.reports.Increment()

	n := r.m.Count()
	r.metrics.size.Set(float64(n))
	operations := r.operations.Reset()
	active := r.active.Uint64()

	if err := r.m.Check(); nil != err {
		r.failures.Increment()
		r.metrics.checks.WithLabelValues(resultFailure).Inc()
		r.log.Criticalf("count: %d  workers: %d  operations: %d  check failed: %s", n, active, operations, err)
		return
	}
	r.metrics.checks.WithLabelValues(resultSuccess).Inc()
	r.log.Debugf("count: %d  workers: %d  operations: %d", n, active, operations)
}
