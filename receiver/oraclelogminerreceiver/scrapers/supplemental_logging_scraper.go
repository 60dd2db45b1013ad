// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package scrapers

import (
	"context"
	"time"

	"go.opentelemetry.io/collector/pdata/pcommon"
	"go.uber.org/zap"

	"github.com/spathlavath/opentelemetry-collector-contrib/receiver/oraclelogminerreceiver/client"
	"github.com/spathlavath/opentelemetry-collector-contrib/receiver/oraclelogminerreceiver/commonutils"
	qerrors "github.com/spathlavath/opentelemetry-collector-contrib/receiver/oraclelogminerreceiver/internal/errors"
	"github.com/spathlavath/opentelemetry-collector-contrib/receiver/oraclelogminerreceiver/internal/metadata"
	"github.com/spathlavath/opentelemetry-collector-contrib/receiver/oraclelogminerreceiver/models"
)

// TableRef is a table whose supplemental logging is checked.
type TableRef struct {
	Owner string
	Table string
}

// SupplementalLoggingScraper checks the supplemental logging LogMiner needs to
// reconstruct row changes.
type SupplementalLoggingScraper struct {
	client       client.LogMinerClient
	mb           *metadata.MetricsBuilder
	logger       *zap.Logger
	instanceName string
	config       metadata.MetricsBuilderConfig
	tables       []TableRef
}

func NewSupplementalLoggingScraper(c client.LogMinerClient, mb *metadata.MetricsBuilder, logger *zap.Logger, instanceName string, config metadata.MetricsBuilderConfig, tables []TableRef) *SupplementalLoggingScraper {
	return &SupplementalLoggingScraper{
		client:       c,
		mb:           mb,
		logger:       logger,
		instanceName: instanceName,
		config:       config,
		tables:       tables,
	}
}

func (s *SupplementalLoggingScraper) ScrapeSupplementalLogging(ctx context.Context) []error {
	var errs []error
	now := pcommon.NewTimestampFromTime(time.Now())

	if s.config.Metrics.OracleLogminerSupplementalLoggingEnabled.Enabled {
		levels := []struct {
			level models.SupplementalLogLevel
			attr  metadata.AttributeSupplementalLogLevel
			query string
		}{
			{models.SupplementalLogLevelMin, metadata.AttributeSupplementalLogLevelMin, "DatabaseSupplementalLoggingMinCheckSQL"},
			{models.SupplementalLogLevelAll, metadata.AttributeSupplementalLogLevelAll, "DatabaseSupplementalLoggingAllCheckSQL"},
		}
		for _, l := range levels {
			status, err := s.client.QueryDatabaseSupplementalLogging(ctx, l.level)
			if err != nil {
				errs = append(errs, qerrors.NewQueryError("supplemental_logging_query", l.query, err,
					map[string]any{
						"instance":  s.instanceName,
						"retryable": qerrors.IsRetryableError(err),
						"permanent": qerrors.IsPermanentError(err),
					}))
				continue
			}
			s.mb.RecordOracleLogminerSupplementalLoggingEnabledDataPoint(now, boolToInt64(status.Enabled), l.attr)

			if l.level == models.SupplementalLogLevelMin && !status.Enabled {
				s.logger.Warn("Minimal supplemental logging is not enabled; LogMiner cannot capture changes",
					zap.String("value", status.RawValue),
					zap.String("instance", s.instanceName))
			}
		}
	}

	if !s.config.Metrics.OracleLogminerTableSupplementalLoggingEnabled.Enabled {
		return errs
	}

	for _, t := range s.tables {
		groups, err := s.client.QueryTableSupplementalLogging(ctx, t.Owner, t.Table)
		if err != nil {
			errs = append(errs, qerrors.NewQueryError("table_supplemental_logging_query", "TableSupplementalLoggingCheckSQL", err,
				map[string]any{"owner": t.Owner, "table": t.Table}))
			continue
		}

		enabled := hasAllColumnLogging(groups)
		s.mb.RecordOracleLogminerTableSupplementalLoggingEnabledDataPoint(now, boolToInt64(enabled),
			commonutils.BindableObjectName(t.Owner), commonutils.BindableObjectName(t.Table))

		s.logger.Debug("Checked table supplemental logging",
			zap.String("owner", t.Owner),
			zap.String("table", t.Table),
			zap.Int("log_groups", len(groups)),
			zap.Bool("all_columns", enabled))
	}

	return errs
}

func hasAllColumnLogging(groups []models.TableLogGroup) bool {
	for _, g := range groups {
		if g.LogGroupType == models.AllColumnLogGroupType {
			return true
		}
	}
	return false
}

func boolToInt64(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
