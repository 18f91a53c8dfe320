// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/orderedmap/background"
	"github.com/bitmark-inc/orderedmap/configuration"
	"github.com/bitmark-inc/orderedmap/fault"
)

const logCategory = "avlstress-test"

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", logCategory)
	if nil != err {
		fmt.Printf("temporary directory error: %s\n", err)
		os.Exit(1)
	}

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", logCategory),
		Size:      1048576,
		Count:     10,
		Levels: map[string]string{
			logger.DefaultTag: "info",
		},
	}
	if err := logger.Initialise(logging); nil != err {
		fmt.Printf("logger setup error: %s\n", err)
		os.Exit(1)
	}

	rc := m.Run()

	logger.Finalise()
	_ = os.RemoveAll(dir)
	os.Exit(rc)
}

func testOptions() *configuration.Configuration {
	return &configuration.Configuration{
		Workers:        4,
		KeysPerWorker:  100,
		Rounds:         3,
		BatchSize:      7,
		RateLimit:      0,
		ReportInterval: 5,
	}
}

func setupDriver(t *testing.T, options *configuration.Configuration) *driver {
	d, err := newDriver(options, logger.New(logCategory))
	require.NoError(t, err)
	return d
}

// value of a single counter or gauge sample, zero if never touched
func metricValue(t *testing.T, d *driver, name string, labels map[string]string) float64 {
	families, err := d.metrics.registry.Gather()
	require.NoError(t, err)

	for _, family := range families {
		if family.GetName() != name {
			continue
		}
	samples:
		for _, metric := range family.GetMetric() {
			for _, pair := range metric.GetLabel() {
				if labels[pair.GetName()] != pair.GetValue() {
					continue samples
				}
			}
			return sampleValue(family.GetType(), metric)
		}
	}
	return 0
}

func TestRun(t *testing.T) {
	d := setupDriver(t, testOptions())

	require.NoError(t, d.run(context.Background()))

	assert.Equal(t, 0, d.m.Count(), "map not empty after the last round")
	require.NoError(t, d.m.Check())

	// round 0 adds every key; later rounds only re-add the even keys
	assert.Equal(t, uint64(800), d.adds.Uint64(), "adds")
	assert.Equal(t, uint64(800), d.removes.Uint64(), "removes")
	assert.True(t, d.active.IsZero(), "workers still counted as active: %d", d.active.Uint64())

	ops := "avlstress_operations_total"
	assert.Equal(t, 800.0, metricValue(t, d, ops, map[string]string{"operation": opAdd, "result": resultSuccess}), "successful adds")
	assert.Equal(t, 484.0, metricValue(t, d, ops, map[string]string{"operation": opAdd, "result": resultFailure}), "refused adds")
	assert.Equal(t, 1200.0, metricValue(t, d, ops, map[string]string{"operation": opGet, "result": resultSuccess}), "gets")
	assert.Equal(t, 600.0, metricValue(t, d, ops, map[string]string{"operation": opReplace, "result": resultSuccess}), "replaces")
	assert.Equal(t, 800.0, metricValue(t, d, ops, map[string]string{"operation": opRemove, "result": resultSuccess}), "removes")
	assert.Equal(t, 0.0, metricValue(t, d, ops, map[string]string{"operation": opGet, "result": resultFailure}), "failed gets")

	assert.Equal(t, 0.0, metricValue(t, d, "avlstress_checks_total", map[string]string{"result": resultFailure}), "failed checks")
	assert.Equal(t, 0.0, metricValue(t, d, "avlstress_map_size", nil), "final size")
}

func TestRunSingleRound(t *testing.T) {
	options := testOptions()
	options.Rounds = 1
	options.KeysPerWorker = 33
	options.BatchSize = 64
	d := setupDriver(t, options)

	require.NoError(t, d.run(context.Background()))
	assert.Equal(t, 0, d.m.Count(), "map not empty")
	assert.Equal(t, uint64(4*33), d.adds.Uint64(), "adds")
}

func TestRunRateLimited(t *testing.T) {
	options := testOptions()
	options.Rounds = 2
	options.KeysPerWorker = 20
	options.RateLimit = 100000
	d := setupDriver(t, options)

	require.NoError(t, d.run(context.Background()))
	assert.Equal(t, 0, d.m.Count(), "map not empty")
}

func TestRunCancelled(t *testing.T) {
	d := setupDriver(t, testOptions())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := d.run(ctx)
	assert.True(t, errors.Is(err, context.Canceled), "actual: %v", err)
}

func TestVerify(t *testing.T) {
	d := setupDriver(t, testOptions())

	_, err := d.m.Add(1, "one")
	require.NoError(t, err)
	assert.True(t, errors.Is(d.verify(), fault.ErrCountMismatch), "add not counted")

	d.adds.Increment()
	assert.NoError(t, d.verify(), "counted add")
}

func TestNewDriverWithoutLog(t *testing.T) {
	d, err := newDriver(testOptions(), nil)
	assert.Nil(t, d, "driver")
	assert.Equal(t, fault.ErrInvalidLoggerChannel, err, "nil logger")
}

func TestBatches(t *testing.T) {
	options := testOptions()
	options.KeysPerWorker = 20
	options.BatchSize = 8
	d := setupDriver(t, options)

	wk := d.newWorker(2)
	assert.Equal(t, 40, wk.low, "low")
	assert.Equal(t, 60, wk.high, "high")
	assert.Nil(t, wk.limiter, "limiter without rate")

	batches := wk.batches()
	require.Equal(t, 3, len(batches), "batch count")
	assert.Equal(t, []int{40, 41, 42, 43, 44, 45, 46, 47}, batches[0], "first batch")
	assert.Equal(t, []int{56, 57, 58, 59}, batches[2], "last batch")
}

func TestMetricsReport(t *testing.T) {
	m, err := newMetrics()
	require.NoError(t, err)

	m.record(opAdd, true, 3)
	m.record(opAdd, false, 1)
	m.size.Set(7)

	lines, err := m.report()
	require.NoError(t, err)
	assert.Contains(t, lines, `avlstress_operations_total{operation="add",result="success"} 3`, "add success")
	assert.Contains(t, lines, `avlstress_operations_total{operation="add",result="failure"} 1`, "add failure")
	assert.Contains(t, lines, `avlstress_map_size{} 7`, "size")
}

func TestReporter(t *testing.T) {
	d := setupDriver(t, testOptions())
	_, err := d.m.AddRange([]int{3, 1, 2}, []string{"c", "a", "b"})
	require.NoError(t, err)

	d.operations.Add(5)
	d.active.Increment()

	r := &reporter{
		log:        logger.New(logCategory),
		m:          d.m,
		metrics:    d.metrics,
		interval:   time.Millisecond,
		operations: &d.operations,
		active:     &d.active,
	}
	p := background.Start(background.Processes{r}, nil)
	time.Sleep(20 * time.Millisecond)
	p.Stop()

	assert.True(t, r.reports.Uint64() > 1, "too few reports: %d", r.reports.Uint64())
	assert.True(t, r.failures.IsZero(), "failed checks: %d", r.failures.Uint64())
	assert.True(t, d.operations.IsZero(), "operations not reset by report: %d", d.operations.Uint64())
	assert.Equal(t, uint64(1), d.active.Uint64(), "active workers changed by report")
	assert.Equal(t, 3.0, metricValue(t, d, "avlstress_map_size", nil), "reported size")

	lines, err := d.metrics.report()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(lines[0], "avlstress_checks_total"), "first line: %s", lines[0])
}
