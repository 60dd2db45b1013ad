// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package scrapers

import (
	"testing"

	"go.opentelemetry.io/collector/pdata/pmetric"
	"go.opentelemetry.io/collector/receiver/receivertest"

	"github.com/spathlavath/opentelemetry-collector-contrib/receiver/oraclelogminerreceiver/internal/metadata"
)

func newTestBuilder(t *testing.T, cfg metadata.MetricsBuilderConfig) *metadata.MetricsBuilder {
	t.Helper()
	return metadata.NewMetricsBuilder(cfg, receivertest.NewNopSettings(metadata.Type))
}

// gaugePoints indexes the emitted gauge data points by metric name.
func gaugePoints(mb *metadata.MetricsBuilder) map[string][]pmetric.NumberDataPoint {
	out := make(map[string][]pmetric.NumberDataPoint)
	metrics := mb.Emit()
	for i := 0; i < metrics.ResourceMetrics().Len(); i++ {
		sms := metrics.ResourceMetrics().At(i).ScopeMetrics()
		for j := 0; j < sms.Len(); j++ {
			ms := sms.At(j).Metrics()
			for k := 0; k < ms.Len(); k++ {
				m := ms.At(k)
				dps := m.Gauge().DataPoints()
				for p := 0; p < dps.Len(); p++ {
					out[m.Name()] = append(out[m.Name()], dps.At(p))
				}
			}
		}
	}
	return out
}

func strAttr(dp pmetric.NumberDataPoint, key string) string {
	v, ok := dp.Attributes().Get(key)
	if !ok {
		return ""
	}
	return v.Str()
}
