// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

const metricsNamespace = "avlstress"

// operation labels
const (
	opAdd     = "add"
	opGet     = "get"
	opReplace = "replace"
	opRemove  = "remove"
)

// result labels
const (
	resultSuccess = "success"
	resultFailure = "failure"
)

type metrics struct {
	registry   *prometheus.Registry
	operations *prometheus.CounterVec
	size       prometheus.Gauge
	checks     *prometheus.CounterVec
}

func newMetrics() (*metrics, error) {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "operations_total",
			Help:      "map operations by kind and result",
		}, []string{"operation", "result"}),
		size: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "map_size",
			Help:      "number of entries at the last report",
		}),
		checks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "checks_total",
			Help:      "structure checks by result",
		}, []string{"result"}),
	}

	for _, c := range []prometheus.Collector{m.operations, m.size, m.checks} {
		if err := m.registry.Register(c); nil != err {
			return nil, err
		}
	}
	return m, nil
}

// record n operations of one kind
func (m *metrics) record(operation string, ok bool, n int) {
	result := resultFailure
	if ok {
		result = resultSuccess
	}
	m.operations.WithLabelValues(operation, result).Add(float64(n))
}

// one line per gathered sample in a stable order
func (m *metrics) report() ([]string, error) {
	families, err := m.registry.Gather()
	if nil != err {
		return nil, err
	}

	lines := make([]string, 0, 16)
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			labels := make([]string, 0, len(metric.GetLabel()))
			for _, pair := range metric.GetLabel() {
				labels = append(labels, fmt.Sprintf("%s=%q", pair.GetName(), pair.GetValue()))
			}
			lines = append(lines, fmt.Sprintf("%s{%s} %g", family.GetName(), strings.Join(labels, ","), sampleValue(family.GetType(), metric)))
		}
	}
	sort.Strings(lines)
	return lines, nil
}

func sampleValue(t dto.MetricType, metric *dto.Metric) float64 {
	switch t {
	case dto.MetricType_COUNTER:
		return metric.GetCounter().GetValue()
	case dto.MetricType_GAUGE:
		return metric.GetGauge().GetValue()
	default:
		return 0
	}
}
