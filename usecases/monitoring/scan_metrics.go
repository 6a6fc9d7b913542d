//                           _       _
// __      _____  __ ___   ___  __ _| |_ ___
// \ \ /\ / / _ \/ _` \ \ / / |/ _` | __/ _ \
//  \ V  V /  __/ (_| |\ V /| | (_| | ||  __/
//   \_/\_/ \___|\__,_| \_/ |_|\__,_|\__\___|
//
//  Copyright © 2016 - 2024 Weaviate B.V. All rights reserved.
//
//  CONTACT: hello@weaviate.io
//

// Package monitoring exposes the store's prometheus metrics.
package monitoring

import "github.com/prometheus/client_golang/prometheus"

// ScanMetrics counts push-down filter activity per range scan executor. Keys
// rejected by the filter never materialize values, the gap between the two
// counters is the work the push-down saved.
type ScanMetrics struct {
	KeysScanned  prometheus.Counter
	KeysAccepted prometheus.Counter
}

// NewScanMetrics registers the scan counters. A nil registerer disables
// monitoring, the counters stay usable.
func NewScanMetrics(reg prometheus.Registerer) *ScanMetrics {
	if reg == nil {
		reg = noop
	}

	m := &ScanMetrics{
		KeysScanned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "gaffer",
			Name:      "scan_keys_scanned_total",
			Help:      "Raw keys evaluated by the push-down range filter",
		}),
		KeysAccepted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "gaffer",
			Name:      "scan_keys_accepted_total",
			Help:      "Keys accepted by the push-down range filter",
		}),
	}

	reg.MustRegister(m.KeysScanned, m.KeysAccepted)
	return m
}
