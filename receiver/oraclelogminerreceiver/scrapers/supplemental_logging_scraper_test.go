// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package scrapers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spathlavath/opentelemetry-collector-contrib/receiver/oraclelogminerreceiver/client"
	"github.com/spathlavath/opentelemetry-collector-contrib/receiver/oraclelogminerreceiver/internal/metadata"
	"github.com/spathlavath/opentelemetry-collector-contrib/receiver/oraclelogminerreceiver/models"
)

func TestSupplementalLoggingScraper(t *testing.T) {
	mockClient := client.NewMockClient()
	mockClient.SupplementalLogging[models.SupplementalLogLevelMin] = models.SupplementalLogStatus{
		Level: models.SupplementalLogLevelMin, RawValue: "YES", Enabled: true,
	}
	mockClient.TableLogGroups[`inventory."Orders"`] = []models.TableLogGroup{
		{Owner: "INVENTORY", Table: "Orders", LogGroupType: models.AllColumnLogGroupType},
	}
	mockClient.TableLogGroups["inventory.customers"] = []models.TableLogGroup{
		{Owner: "INVENTORY", Table: "CUSTOMERS", LogGroupType: "PRIMARY KEY LOGGING"},
	}

	cfg := metadata.DefaultMetricsBuilderConfig()
	mb := newTestBuilder(t, cfg)
	tables := []TableRef{
		{Owner: "inventory", Table: `"Orders"`},
		{Owner: "inventory", Table: "customers"},
	}
	s := NewSupplementalLoggingScraper(mockClient, mb, zap.NewNop(), "ORCLCDB", cfg, tables)

	errs := s.ScrapeSupplementalLogging(context.Background())
	require.Empty(t, errs)

	points := gaugePoints(mb)

	levels := map[string]int64{}
	for _, dp := range points["oracle.logminer.supplemental_logging.enabled"] {
		levels[strAttr(dp, "level")] = dp.IntValue()
	}
	assert.Equal(t, map[string]int64{"min": 1, "all": 0}, levels)

	tablesEnabled := map[string]int64{}
	for _, dp := range points["oracle.logminer.table.supplemental_logging.enabled"] {
		tablesEnabled[strAttr(dp, "owner")+"."+strAttr(dp, "table")] = dp.IntValue()
	}
	assert.Equal(t, map[string]int64{"INVENTORY.Orders": 1, "INVENTORY.CUSTOMERS": 0}, tablesEnabled)
}

func TestSupplementalLoggingScraper_MetricsDisabled(t *testing.T) {
	mockClient := client.NewMockClient()
	mockClient.QueryErr = errors.New("should not be called")

	cfg := metadata.DefaultMetricsBuilderConfig()
	cfg.Metrics.OracleLogminerSupplementalLoggingEnabled.Enabled = false
	cfg.Metrics.OracleLogminerTableSupplementalLoggingEnabled.Enabled = false
	mb := newTestBuilder(t, cfg)

	s := NewSupplementalLoggingScraper(mockClient, mb, zap.NewNop(), "ORCLCDB", cfg, []TableRef{{Owner: "A", Table: "B"}})
	assert.Empty(t, s.ScrapeSupplementalLogging(context.Background()))
}

func TestSupplementalLoggingScraper_Errors(t *testing.T) {
	mockClient := client.NewMockClient()
	mockClient.QueryErr = errors.New("ORA-01031: insufficient privileges")

	cfg := metadata.DefaultMetricsBuilderConfig()
	mb := newTestBuilder(t, cfg)
	s := NewSupplementalLoggingScraper(mockClient, mb, zap.NewNop(), "ORCLCDB", cfg, []TableRef{{Owner: "A", Table: "B"}})

	errs := s.ScrapeSupplementalLogging(context.Background())
	assert.Len(t, errs, 3)
	assert.Contains(t, errs[0].Error(), "permanent=true")
}
