// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package oraclelogminerreceiver // import "github.com/spathlavath/opentelemetry-collector-contrib/receiver/oraclelogminerreceiver"

import (
	"context"
	"time"

	"go.opentelemetry.io/collector/component"
	"go.opentelemetry.io/collector/consumer"
	"go.opentelemetry.io/collector/receiver"
	"go.opentelemetry.io/collector/scraper/scraperhelper"

	"github.com/spathlavath/opentelemetry-collector-contrib/receiver/oraclelogminerreceiver/client"
	"github.com/spathlavath/opentelemetry-collector-contrib/receiver/oraclelogminerreceiver/internal/metadata"
	"github.com/spathlavath/opentelemetry-collector-contrib/receiver/oraclelogminerreceiver/logrange"
)

// NewFactory creates a new receiver factory for Oracle LogMiner log ranges
func NewFactory() receiver.Factory {
	return receiver.NewFactory(
		metadata.Type,
		createDefaultConfig,
		receiver.WithMetrics(createMetricsReceiver, metadata.MetricsStability),
	)
}

func createDefaultConfig() component.Config {
	cfg := scraperhelper.NewDefaultControllerConfig()
	cfg.CollectionInterval = time.Minute
	cfg.InitialDelay = time.Second

	defaults := logrange.DefaultConfig()
	return &Config{
		ControllerConfig:          cfg,
		MetricsBuilderConfig:      metadata.DefaultMetricsBuilderConfig(),
		LogFileQueryMaxRetries:    defaults.MaxRetries,
		LogFileQueryBackoff:       defaults.InitialBackoff,
		LogFileQueryMaxBackoff:    defaults.MaxBackoff,
		SupplementalLoggingTables: []string{},
	}
}

func createMetricsReceiver(
	_ context.Context,
	params receiver.Settings,
	rConf component.Config,
	consumer consumer.Metrics,
) (receiver.Metrics, error) {
	cfg := rConf.(*Config)

	s, err := newLogMinerScraper(params, cfg, newDBProvider(cfg), client.NewSQLClient)
	if err != nil {
		return nil, err
	}

	return scraperhelper.NewMetricsController(
		&cfg.ControllerConfig,
		params,
		consumer,
		scraperhelper.AddScraper(metadata.Type, s),
	)
}
