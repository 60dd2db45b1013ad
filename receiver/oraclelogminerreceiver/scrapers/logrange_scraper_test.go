// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package scrapers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/spathlavath/opentelemetry-collector-contrib/receiver/oraclelogminerreceiver/client"
	"github.com/spathlavath/opentelemetry-collector-contrib/receiver/oraclelogminerreceiver/internal/metadata"
	"github.com/spathlavath/opentelemetry-collector-contrib/receiver/oraclelogminerreceiver/logrange"
	"github.com/spathlavath/opentelemetry-collector-contrib/receiver/oraclelogminerreceiver/models"
	"github.com/spathlavath/opentelemetry-collector-contrib/receiver/oraclelogminerreceiver/scn"
)

func sampleLogs() []models.LogFile {
	return []models.LogFile{
		{FileName: "/arch/1_20.arc", FirstScn: scn.ValueOf(1000), NextScn: scn.ValueOf(2000), Thread: 1, Sequence: 20, Type: models.LogFileTypeArchived, Archived: true},
		{FileName: "/arch/1_21.arc", FirstScn: scn.ValueOf(2000), NextScn: scn.ValueOf(3000), Thread: 1, Sequence: 21, Type: models.LogFileTypeArchived, Archived: true},
		{FileName: "/redo/redo01.log", FirstScn: scn.ValueOf(3000), NextScn: scn.Max, Thread: 1, Sequence: 22, Type: models.LogFileTypeOnline, Current: true, Status: "CURRENT"},
	}
}

func newTestResolver(t *testing.T, c client.LogMinerClient, retries int) *logrange.Resolver {
	cfg := logrange.DefaultConfig()
	cfg.MaxRetries = retries
	cfg.InitialBackoff = time.Millisecond
	cfg.MaxBackoff = time.Millisecond
	return logrange.NewResolver(c, cfg, zaptest.NewLogger(t))
}

func TestLogRangeScraper_Success(t *testing.T) {
	mockClient := client.NewMockClient()
	mockClient.CurrentScn = scn.ValueOf(3500)
	mockClient.OldestFirstChange = scn.ValueOf(1000)
	mockClient.MinableLogs = sampleLogs()

	cfg := metadata.DefaultMetricsBuilderConfig()
	mb := newTestBuilder(t, cfg)
	s := NewLogRangeScraper(mockClient, newTestResolver(t, mockClient, 0), FixedOffset(scn.ValueOf(1500)),
		mb, zaptest.NewLogger(t), "ORCLCDB", cfg)

	errs := s.ScrapeLogRange(context.Background())
	require.Empty(t, errs)

	points := gaugePoints(mb)
	assert.Equal(t, int64(3500), points["oracle.logminer.scn.current"][0].IntValue())
	assert.Equal(t, int64(1500), points["oracle.logminer.scn.offset"][0].IntValue())
	assert.Equal(t, int64(1000), points["oracle.logminer.scn.oldest_retained"][0].IntValue())
	assert.Equal(t, int64(1), points["oracle.logminer.offset.retained"][0].IntValue())

	minable := points["oracle.logminer.logs.minable"]
	require.Len(t, minable, 2)
	counts := map[string]int64{}
	for _, dp := range minable {
		counts[strAttr(dp, "log.type")] = dp.IntValue()
	}
	assert.Equal(t, map[string]int64{"online": 1, "archived": 2}, counts)

	files := points["oracle.logminer.log_file.first_scn"]
	require.Len(t, files, 3)
	assert.Equal(t, "/arch/1_20.arc", strAttr(files[0], "oracle.log_file.name"))
	assert.Equal(t, int64(1000), files[0].IntValue())

	last := s.LastRange()
	require.NotNil(t, last)
	assert.Len(t, last.Logs, 3)
	last.Logs[0].FileName = "mutated"
	assert.Equal(t, "/arch/1_20.arc", s.LastRange().Logs[0].FileName)
}

func TestLogRangeScraper_OffsetNotRetained(t *testing.T) {
	mockClient := client.NewMockClient()
	mockClient.CurrentScn = scn.ValueOf(3500)
	mockClient.OldestFirstChange = scn.ValueOf(1000)
	mockClient.MinableLogs = sampleLogs()

	cfg := metadata.DefaultMetricsBuilderConfig()
	mb := newTestBuilder(t, cfg)
	s := NewLogRangeScraper(mockClient, newTestResolver(t, mockClient, 1), FixedOffset(scn.ValueOf(500)),
		mb, zaptest.NewLogger(t), "ORCLCDB", cfg)

	errs := s.ScrapeLogRange(context.Background())
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], logrange.ErrOffsetNotRetained)
	assert.Equal(t, 1, mockClient.CallCount())

	points := gaugePoints(mb)
	assert.Equal(t, int64(0), points["oracle.logminer.offset.retained"][0].IntValue())
	assert.Equal(t, int64(1000), points["oracle.logminer.scn.oldest_retained"][0].IntValue())
	assert.Empty(t, points["oracle.logminer.log_file.first_scn"])
	assert.Nil(t, s.LastRange())
}

func TestLogRangeScraper_LookbackOffset(t *testing.T) {
	mockClient := client.NewMockClient()
	mockClient.CurrentScn = scn.ValueOf(3500)
	mockClient.ScnByTimeDelta = scn.ValueOf(2500)
	mockClient.MinableLogs = sampleLogs()

	cfg := metadata.DefaultMetricsBuilderConfig()
	mb := newTestBuilder(t, cfg)
	resolver := newTestResolver(t, mockClient, 0)
	s := NewLogRangeScraper(mockClient, resolver, LookbackOffset(resolver, time.Hour),
		mb, zaptest.NewLogger(t), "ORCLCDB", cfg)

	errs := s.ScrapeLogRange(context.Background())
	require.Empty(t, errs)

	require.Len(t, mockClient.MinableLogsCalls, 1)
	assert.Equal(t, scn.ValueOf(2500), mockClient.MinableLogsCalls[0].Bound)
	assert.Len(t, s.LastRange().Logs, 2)
}

func TestLogRangeScraper_NullOffsetSkipsResolution(t *testing.T) {
	mockClient := client.NewMockClient()

	cfg := metadata.DefaultMetricsBuilderConfig()
	mb := newTestBuilder(t, cfg)
	s := NewLogRangeScraper(mockClient, newTestResolver(t, mockClient, 0), FixedOffset(scn.Null),
		mb, zaptest.NewLogger(t), "ORCLCDB", cfg)

	assert.Empty(t, s.ScrapeLogRange(context.Background()))
	assert.Zero(t, mockClient.CallCount())
}

func TestLogRangeScraper_IncarnationChangeClearsRange(t *testing.T) {
	mockClient := client.NewMockClient()
	mockClient.CurrentScn = scn.ValueOf(3500)
	mockClient.MinableLogs = sampleLogs()
	mockClient.Incarnation = models.Incarnation{ResetlogsScn: scn.ValueOf(1)}

	cfg := metadata.DefaultMetricsBuilderConfig()
	mb := newTestBuilder(t, cfg)
	s := NewLogRangeScraper(mockClient, newTestResolver(t, mockClient, 0), FixedOffset(scn.ValueOf(1500)),
		mb, zaptest.NewLogger(t), "ORCLCDB", cfg)

	require.Empty(t, s.ScrapeLogRange(context.Background()))
	require.NotNil(t, s.LastRange())

	mockClient.Incarnation = models.Incarnation{ResetlogsScn: scn.ValueOf(4000)}
	require.NoError(t, s.checkIncarnation(context.Background()))
	assert.Nil(t, s.LastRange())
}

func TestLogRangeScraper_QueryErrors(t *testing.T) {
	mockClient := client.NewMockClient()
	mockClient.QueryErr = errors.New("ORA-03113: end-of-file on communication channel")

	cfg := metadata.DefaultMetricsBuilderConfig()
	mb := newTestBuilder(t, cfg)
	s := NewLogRangeScraper(mockClient, newTestResolver(t, mockClient, 0), FixedOffset(scn.ValueOf(1500)),
		mb, zaptest.NewLogger(t), "ORCLCDB", cfg)

	errs := s.ScrapeLogRange(context.Background())
	assert.Len(t, errs, 3)
}
