// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package scrapers

import (
	"context"
	"sort"
	"time"

	"go.opentelemetry.io/collector/pdata/pcommon"
	"go.uber.org/zap"

	"github.com/spathlavath/opentelemetry-collector-contrib/receiver/oraclelogminerreceiver/client"
	qerrors "github.com/spathlavath/opentelemetry-collector-contrib/receiver/oraclelogminerreceiver/internal/errors"
	"github.com/spathlavath/opentelemetry-collector-contrib/receiver/oraclelogminerreceiver/internal/metadata"
	"github.com/spathlavath/opentelemetry-collector-contrib/receiver/oraclelogminerreceiver/queries"
)

// RedoLogScraper collects online redo log and log switch metrics
type RedoLogScraper struct {
	client       client.LogMinerClient
	mb           *metadata.MetricsBuilder
	logger       *zap.Logger
	instanceName string
	config       metadata.MetricsBuilderConfig
	destination  queries.ArchiveDestination
}

func NewRedoLogScraper(c client.LogMinerClient, mb *metadata.MetricsBuilder, logger *zap.Logger, instanceName string, config metadata.MetricsBuilderConfig, dest queries.ArchiveDestination) *RedoLogScraper {
	return &RedoLogScraper{
		client:       c,
		mb:           mb,
		logger:       logger,
		instanceName: instanceName,
		config:       config,
		destination:  dest,
	}
}

func (s *RedoLogScraper) ScrapeRedoLogs(ctx context.Context) []error {
	var errs []error
	now := pcommon.NewTimestampFromTime(time.Now())

	if s.config.Metrics.OracleLogminerRedoMembers.Enabled {
		errs = append(errs, s.scrapeMembers(ctx, now)...)
	}

	if s.config.Metrics.OracleLogminerRedoCurrentSequence.Enabled {
		sequences, err := s.client.QueryCurrentRedoSequences(ctx)
		if err != nil {
			errs = append(errs, qerrors.NewQueryError("current_redo_sequence_query", "CurrentRedoLogSequenceSQL", err,
				map[string]any{"instance": s.instanceName}))
		} else if len(sequences) > 0 {
			highest := sequences[0]
			for _, seq := range sequences[1:] {
				highest = max(highest, seq)
			}
			s.mb.RecordOracleLogminerRedoCurrentSequenceDataPoint(now, highest)
		}
	}

	if s.config.Metrics.OracleLogminerLogSwitchesToday.Enabled {
		count, err := s.client.QueryLogSwitchCount(ctx, s.destination)
		if err != nil {
			errs = append(errs, qerrors.NewQueryError("log_switch_count_query", "SwitchHistorySQL", err,
				map[string]any{"instance": s.instanceName, "destination": s.destination.Name()}))
		} else {
			s.mb.RecordOracleLogminerLogSwitchesTodayDataPoint(now, count)
		}
	}

	return errs
}

func (s *RedoLogScraper) scrapeMembers(ctx context.Context, now pcommon.Timestamp) []error {
	members, err := s.client.QueryRedoLogStatus(ctx)
	if err != nil {
		return []error{qerrors.NewQueryError("redo_log_status_query", "RedoLogStatusSQL", err,
			map[string]any{"instance": s.instanceName})}
	}

	byStatus := make(map[string]int64)
	for _, m := range members {
		byStatus[m.Status]++
	}

	statuses := make([]string, 0, len(byStatus))
	for status := range byStatus {
		statuses = append(statuses, status)
	}
	sort.Strings(statuses)
	for _, status := range statuses {
		s.mb.RecordOracleLogminerRedoMembersDataPoint(now, byStatus[status], status)
	}
	s.logger.Debug("Collected redo log members",
		zap.Int("members", len(members)),
		zap.String("instance", s.instanceName))

	return nil
}
