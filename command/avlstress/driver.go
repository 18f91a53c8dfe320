// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/bitmark-inc/logger"
	"golang.org/x/sync/errgroup"

	"github.com/bitmark-inc/orderedmap/background"
	"github.com/bitmark-inc/orderedmap/concurrent"
	"github.com/bitmark-inc/orderedmap/configuration"
	"github.com/bitmark-inc/orderedmap/counter"
	"github.com/bitmark-inc/orderedmap/fault"
)

const (
	mapLoggerPrefix      = "map"
	reporterLoggerPrefix = "reporter"
	workerLoggerPrefix   = "worker"
)

type driver struct {
	log     *logger.L
	options *configuration.Configuration
	m       *concurrent.Map[int, string]
	metrics *metrics

	// successful operations over all rounds
	adds    counter.Counter
	removes counter.Counter

	operations counter.Counter // calls since the last report
	active     counter.Counter // workers currently running
}

func newDriver(options *configuration.Configuration, log *logger.L) (*driver, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}

	m := concurrent.New[int, string]()
	if err := m.SetLog(logger.New(mapLoggerPrefix)); nil != err {
		return nil, err
	}

	metrics, err := newMetrics()
	if nil != err {
		return nil, err
	}

	d := &driver{
		log:     log,
		options: options,
		m:       m,
		metrics: metrics,
	}
	return d, nil
}

// run all rounds with the reporter in the background
func (d *driver) run(ctx context.Context) error {
	r := &reporter{
		log:        logger.New(reporterLoggerPrefix),
		m:          d.m,
		metrics:    d.metrics,
		interval:   time.Duration(d.options.ReportInterval) * time.Millisecond,
		operations: &d.operations,
		active:     &d.active,
	}
	processes := background.Processes{
		r,
	}
	p := background.Start(processes, nil)
	defer p.Stop()

	for round := 0; round < d.options.Rounds; round += 1 {
		start := time.Now()
		last := round == d.options.Rounds-1

		if err := d.round(ctx, round, last); nil != err {
			return err
		}
		if err := d.verify(); nil != err {
			return fmt.Errorf("round: %d  %w", round, err)
		}

		d.log.Infof("round: %d  count: %d  adds: %d  removes: %d  elapsed: %s",
			round, d.m.Count(), d.adds.Uint64(), d.removes.Uint64(), time.Since(start))
	}
	return nil
}

// fan out one worker per key range and wait for all of them
func (d *driver) round(ctx context.Context, round int, last bool) error {
	g, ctx := errgroup.WithContext(ctx)

	for w := 0; w < d.options.Workers; w += 1 {
		wk := d.newWorker(w)
		g.Go(func() error {
			d.active.Increment()
			defer d.active.Decrement()
			return wk.run(ctx, round, last)
		})
	}
	return g.Wait()
}

// size must match the net successful operations and the structure
// must still be a valid AVL tree
func (d *driver) verify() error {
	expected := d.adds.Uint64() - d.removes.Uint64()
	actual := d.m.Count()
	if uint64(actual) != expected {
		return fmt.Errorf("%w: expected: %d  actual: %d", fault.ErrCountMismatch, expected, actual)
	}
	return d.m.Check()
}
