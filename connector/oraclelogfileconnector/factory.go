// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package oraclelogfileconnector // import "github.com/spathlavath/opentelemetry-collector-contrib/connector/oraclelogfileconnector"

import (
	"context"

	"go.opentelemetry.io/collector/component"
	"go.opentelemetry.io/collector/connector"
	"go.opentelemetry.io/collector/consumer"

	"github.com/spathlavath/opentelemetry-collector-contrib/connector/oraclelogfileconnector/internal/metadata"
)

// NewFactory returns a ConnectorFactory.
func NewFactory() connector.Factory {
	return connector.NewFactory(
		metadata.Type,
		createDefaultConfig,
		connector.WithMetricsToLogs(createMetricsToLogs, metadata.MetricsToLogsStability),
	)
}

func createDefaultConfig() component.Config {
	return &Config{
		MetricName:        defaultMetricName,
		FileNameAttribute: defaultFileNameAttribute,
		TTL:               defaultTTL,
	}
}

func createMetricsToLogs(
	_ context.Context,
	set connector.Settings,
	cfg component.Config,
	nextConsumer consumer.Logs,
) (connector.Metrics, error) {
	return newLogFileConnector(cfg.(*Config), set.Logger, nextConsumer), nil
}
