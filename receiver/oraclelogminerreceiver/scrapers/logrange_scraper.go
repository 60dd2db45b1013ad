// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package scrapers // import "github.com/spathlavath/opentelemetry-collector-contrib/receiver/oraclelogminerreceiver/scrapers"

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.opentelemetry.io/collector/pdata/pcommon"
	"go.uber.org/zap"

	"github.com/spathlavath/opentelemetry-collector-contrib/receiver/oraclelogminerreceiver/client"
	qerrors "github.com/spathlavath/opentelemetry-collector-contrib/receiver/oraclelogminerreceiver/internal/errors"
	"github.com/spathlavath/opentelemetry-collector-contrib/receiver/oraclelogminerreceiver/internal/metadata"
	"github.com/spathlavath/opentelemetry-collector-contrib/receiver/oraclelogminerreceiver/logrange"
	"github.com/spathlavath/opentelemetry-collector-contrib/receiver/oraclelogminerreceiver/models"
	"github.com/spathlavath/opentelemetry-collector-contrib/receiver/oraclelogminerreceiver/scn"
)

// OffsetSource yields the position the log range is resolved from.
type OffsetSource func(ctx context.Context) (scn.Scn, error)

// FixedOffset always resolves from position.
func FixedOffset(position scn.Scn) OffsetSource {
	return func(context.Context) (scn.Scn, error) {
		return position, nil
	}
}

// LookbackOffset resolves from the SCN that was current lookback ago.
func LookbackOffset(resolver *logrange.Resolver, lookback time.Duration) OffsetSource {
	return func(ctx context.Context) (scn.Scn, error) {
		return resolver.StartingScn(ctx, lookback)
	}
}

// LogRangeScraper reports which logs a LogMiner session would need and whether
// the offset is still minable.
type LogRangeScraper struct {
	client       client.LogMinerClient
	resolver     *logrange.Resolver
	offset       OffsetSource
	mb           *metadata.MetricsBuilder
	logger       *zap.Logger
	instanceName string
	config       metadata.MetricsBuilderConfig

	mu          sync.RWMutex
	lastRange   *logrange.Range
	incarnation *models.Incarnation
}

func NewLogRangeScraper(
	c client.LogMinerClient,
	resolver *logrange.Resolver,
	offset OffsetSource,
	mb *metadata.MetricsBuilder,
	logger *zap.Logger,
	instanceName string,
	config metadata.MetricsBuilderConfig,
) *LogRangeScraper {
	return &LogRangeScraper{
		client:       c,
		resolver:     resolver,
		offset:       offset,
		mb:           mb,
		logger:       logger,
		instanceName: instanceName,
		config:       config,
	}
}

// LastRange returns a copy of the most recently resolved range, or nil.
func (s *LogRangeScraper) LastRange() *logrange.Range {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastRange.Clone()
}

// ScrapeLogRange resolves the range for the current offset and records it.
func (s *LogRangeScraper) ScrapeLogRange(ctx context.Context) []error {
	var errs []error
	now := pcommon.NewTimestampFromTime(time.Now())

	if err := s.checkIncarnation(ctx); err != nil {
		errs = append(errs, err)
	}

	if s.config.Metrics.OracleLogminerScnCurrent.Enabled {
		current, err := s.client.QueryCurrentScn(ctx)
		if err != nil {
			errs = append(errs, qerrors.NewQueryError("current_scn_query", "CurrentScnSQL", err,
				map[string]any{"instance": s.instanceName}))
		} else if !current.IsNull() {
			s.mb.RecordOracleLogminerScnCurrentDataPoint(now, current.Int64())
		}
	}

	offset, err := s.offset(ctx)
	if err != nil {
		errs = append(errs, err)
		return errs
	}
	if offset.IsNull() {
		s.logger.Debug("No offset available, skipping log range resolution",
			zap.String("instance", s.instanceName))
		return errs
	}
	s.mb.RecordOracleLogminerScnOffsetDataPoint(now, offset.Int64())

	r, err := s.resolver.Resolve(ctx, offset)
	if err != nil {
		if errors.Is(err, logrange.ErrOffsetNotRetained) || errors.Is(err, logrange.ErrNoLogs) {
			s.mb.RecordOracleLogminerOffsetRetainedDataPoint(now, 0)
			s.recordOldestRetained(ctx, now)
		}
		s.logger.Warn("Failed to resolve log range",
			zap.String("offset", offset.String()),
			zap.String("instance", s.instanceName),
			zap.Error(err))
		errs = append(errs, err)
		return errs
	}

	s.recordRange(now, r)

	s.mu.Lock()
	s.lastRange = r
	s.mu.Unlock()

	s.logger.Debug("Completed log range scrape",
		zap.String("offset", offset.String()),
		zap.Int("logs", len(r.Logs)),
		zap.String("instance", s.instanceName))

	return errs
}

func (s *LogRangeScraper) recordRange(now pcommon.Timestamp, r *logrange.Range) {
	retained := int64(0)
	if r.OffsetRetained() {
		retained = 1
	}
	s.mb.RecordOracleLogminerOffsetRetainedDataPoint(now, retained)

	if !r.OldestScn.IsNull() {
		s.mb.RecordOracleLogminerScnOldestRetainedDataPoint(now, r.OldestScn.Int64())
	}

	s.mb.RecordOracleLogminerLogsMinableDataPoint(now, int64(r.CountByType(models.LogFileTypeOnline)), metadata.AttributeLogTypeOnline)
	s.mb.RecordOracleLogminerLogsMinableDataPoint(now, int64(r.CountByType(models.LogFileTypeArchived)), metadata.AttributeLogTypeArchived)

	if !s.config.Metrics.OracleLogminerLogFileFirstScn.Enabled {
		return
	}
	for _, l := range r.Logs {
		s.mb.RecordOracleLogminerLogFileFirstScnDataPoint(now, l.FirstScn.Int64(), l.FileName, logTypeAttribute(l.Type), l.Sequence, l.Thread)
	}
}

func (s *LogRangeScraper) recordOldestRetained(ctx context.Context, now pcommon.Timestamp) {
	oldest, err := s.resolver.OldestRetained(ctx)
	if err != nil {
		s.logger.Debug("Oldest retained SCN unavailable", zap.Error(err))
		return
	}
	if !oldest.IsNull() {
		s.mb.RecordOracleLogminerScnOldestRetainedDataPoint(now, oldest.Int64())
	}
}

// checkIncarnation warns when the database was opened with RESETLOGS since the
// previous scrape; positions from the old incarnation are not minable.
func (s *LogRangeScraper) checkIncarnation(ctx context.Context) error {
	inc, err := s.client.QueryDatabaseIncarnation(ctx)
	if err != nil {
		return qerrors.NewQueryError("database_incarnation_query", "DatabaseIncarnationSQL", err,
			map[string]any{"instance": s.instanceName})
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.incarnation != nil && !s.incarnation.Equal(inc) {
		s.logger.Warn("Database incarnation changed",
			zap.String("previous_resetlogs_scn", s.incarnation.ResetlogsScn.String()),
			zap.String("resetlogs_scn", inc.ResetlogsScn.String()),
			zap.String("instance", s.instanceName))
		s.lastRange = nil
	}
	s.incarnation = &inc
	return nil
}

func logTypeAttribute(t models.LogFileType) metadata.AttributeLogType {
	if t == models.LogFileTypeOnline {
		return metadata.AttributeLogTypeOnline
	}
	return metadata.AttributeLogTypeArchived
}
