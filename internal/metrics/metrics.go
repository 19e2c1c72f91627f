/*
 * Metrics - OpenMetrics implementation.
 *
 * Copyright 2026 Marco Confalonieri.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// metrics instance
var (
	metrics *OpenMetrics
	mu      sync.Mutex
)

type OpenMetrics struct {
	registry *prometheus.Registry

	decodedRecordsTotal *prometheus.CounterVec
	decodeFailuresTotal *prometheus.CounterVec

	decodeDelayHist *prometheus.HistogramVec
}

// GetOpenMetricsInstance returns the current OpenMetrics instance or creates a
// new one if required.
func GetOpenMetricsInstance() *OpenMetrics {
	mu.Lock()
	defer mu.Unlock()
	if metrics == nil {
		reg := prometheus.NewRegistry()
		metrics = &OpenMetrics{
			registry: reg,
			decodedRecordsTotal: prometheus.NewCounterVec(
				prometheus.CounterOpts{
					Name: "decoded_records_total",
					Help: "The number of BackupRadar records decoded successfully",
				},
				[]string{"record"},
			),
			decodeFailuresTotal: prometheus.NewCounterVec(
				prometheus.CounterOpts{
					Name: "decode_failures_total",
					Help: "The number of field failures found while decoding BackupRadar records",
				},
				[]string{"record", "reason"},
			),
			decodeDelayHist: prometheus.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "decode_delay_microseconds",
					Help:    "Histogram of the time in microseconds spent decoding a BackupRadar record",
					Buckets: []float64{10, 50, 100, 500, 1000, 5000, 10000},
				},
				[]string{"record"},
			),
		}
		reg.MustRegister(metrics.decodedRecordsTotal)
		reg.MustRegister(metrics.decodeFailuresTotal)
		reg.MustRegister(metrics.decodeDelayHist)
	}
	return metrics
}

// getLabels builds the label map.
func getLabels(record string) prometheus.Labels {
	return prometheus.Labels{"record": record}
}

func (m OpenMetrics) GetRegistry() *prometheus.Registry {
	return m.registry
}

// IncDecodedRecordsTotal increments the decoded_records_total counter.
func (m *OpenMetrics) IncDecodedRecordsTotal(record string) {
	m.decodedRecordsTotal.With(getLabels(record)).Inc()
}

// IncDecodeFailuresTotal increments the decode_failures_total counter.
func (m *OpenMetrics) IncDecodeFailuresTotal(record, reason string) {
	labels := getLabels(record)
	labels["reason"] = reason
	m.decodeFailuresTotal.With(labels).Inc()
}

// AddDecodeDelayHist adds an observation to the decode_delay_microseconds
// histogram.
func (m *OpenMetrics) AddDecodeDelayHist(record string, delay int64) {
	m.decodeDelayHist.With(getLabels(record)).Observe(float64(delay))
}
