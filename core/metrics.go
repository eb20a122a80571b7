// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package core

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/bitmark-inc/registryd/fault"
)

var (
	registerOnce sync.Once

	operations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "registryd",
			Subsystem: "core",
			Name:      "operations_total",
			Help:      "Operations executed, by result class.",
		},
		[]string{"operation", "result"},
	)
	operationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "registryd",
			Subsystem: "core",
			Name:      "operation_duration_seconds",
			Help:      "Time spent inside the operation lock.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
	eventsStored = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "registryd",
			Subsystem: "core",
			Name:      "events_total",
			Help:      "Events committed to the log.",
		},
	)
)

// RegisterMetrics - add the core collectors to the default registry
func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(operations, operationDuration, eventsStored)
	})
}

func recordOperation(name string, err error, duration time.Duration) {
	operations.WithLabelValues(name, resultClass(err)).Inc()
	operationDuration.WithLabelValues(name).Observe(duration.Seconds())
}

func resultClass(err error) string {
	switch {
	case nil == err:
		return "ok"
	case fault.IsErrAuthorization(err):
		return "authorization"
	case fault.IsErrState(err):
		return "state"
	case fault.IsErrQuantity(err):
		return "quantity"
	case fault.IsErrArgument(err):
		return "argument"
	default:
		return "internal"
	}
}
