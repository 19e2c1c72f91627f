/*
 * Metrics - Unit tests.
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
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

const (
	testRecord = "test_record"
	testReason = "missing"
)

func Test_GetOpenMetricsInstance(t *testing.T) {
	type testCase struct {
		name    string
		metrics *OpenMetrics
	}

	run := func(t *testing.T, tc testCase) {
		metrics = tc.metrics
		actual := GetOpenMetricsInstance()
		if tc.metrics != nil {
			assert.Same(t, tc.metrics, actual)
		} else {
			assert.NotNil(t, actual)
			assert.NotNil(t, actual.GetRegistry())
		}
	}

	testCases := []testCase{
		{
			name:    "new instance required",
			metrics: nil,
		},
		{
			name:    "existing instance",
			metrics: &OpenMetrics{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			run(t, tc)
		})
	}
	metrics = nil
}

func Test_OpenMetrics_IncDecodedRecordsTotal(t *testing.T) {
	metrics = nil
	expected := float64(1)

	GetOpenMetricsInstance().IncDecodedRecordsTotal(testRecord)
	actual := testutil.ToFloat64(metrics.decodedRecordsTotal)

	assert.Equal(t, expected, actual)
}

func Test_OpenMetrics_IncDecodeFailuresTotal(t *testing.T) {
	metrics = nil
	expected := float64(2)

	m := GetOpenMetricsInstance()
	m.IncDecodeFailuresTotal(testRecord, testReason)
	m.IncDecodeFailuresTotal(testRecord, testReason)
	actual := testutil.ToFloat64(metrics.decodeFailuresTotal.WithLabelValues(testRecord, testReason))

	assert.Equal(t, expected, actual)
}

func Test_OpenMetrics_AddDecodeDelayHist(t *testing.T) {
	metrics = nil

	GetOpenMetricsInstance().AddDecodeDelayHist(testRecord, 42)
	actual := testutil.CollectAndCount(metrics.decodeDelayHist)

	assert.Equal(t, 1, actual)
}
