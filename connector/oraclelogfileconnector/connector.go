// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package oraclelogfileconnector // import "github.com/spathlavath/opentelemetry-collector-contrib/connector/oraclelogfileconnector"

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"go.opentelemetry.io/collector/component"
	"go.opentelemetry.io/collector/consumer"
	"go.opentelemetry.io/collector/pdata/pcommon"
	"go.opentelemetry.io/collector/pdata/plog"
	"go.opentelemetry.io/collector/pdata/pmetric"
	"go.uber.org/zap"

	"github.com/spathlavath/opentelemetry-collector-contrib/connector/oraclelogfileconnector/internal/metadata"
)

const (
	defaultTTL               = time.Hour
	defaultMetricName        = "oracle.logminer.log_file.first_scn"
	defaultFileNameAttribute = "oracle.log_file.name"

	logTypeAttribute     = "log.type"
	sequenceAttribute    = "oracle.log_file.sequence"
	threadAttribute      = "oracle.redo.thread"
	instanceResourceAttr = "oracle.instance.name"

	logFileDiscoveredEventName = "oracle.logminer.log_file_discovered"
)

// LogFileEvent is the JSON body of a discovery log record.
type LogFileEvent struct {
	Instance string `json:"instance,omitempty"`
	FileName string `json:"file_name"`
	Type     string `json:"type,omitempty"`
	Sequence int64  `json:"sequence"`
	Thread   int64  `json:"thread"`
	FirstScn int64  `json:"first_scn"`
}

func (e LogFileEvent) key() string {
	return e.Instance + "|" + e.FileName
}

// logFileConnector reports each log file the first time it shows up in the
// receiver's metrics, and again once it has been absent for longer than the TTL.
type logFileConnector struct {
	logsConsumer consumer.Logs
	config       *Config
	logger       *zap.Logger

	mu   sync.Mutex
	seen map[string]time.Time // event key -> last seen
	now  func() time.Time
}

func newLogFileConnector(cfg *Config, logger *zap.Logger, next consumer.Logs) *logFileConnector {
	return &logFileConnector{
		logsConsumer: next,
		config:       cfg,
		logger:       logger,
		seen:         make(map[string]time.Time),
		now:          time.Now,
	}
}

func (c *logFileConnector) Capabilities() consumer.Capabilities {
	return consumer.Capabilities{MutatesData: false}
}

func (c *logFileConnector) Start(_ context.Context, _ component.Host) error {
	c.logger.Info("Oracle log file connector started",
		zap.String("metric", c.config.MetricName),
		zap.Duration("ttl", c.config.TTL))
	return nil
}

func (c *logFileConnector) Shutdown(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.seen)
	return nil
}

// ConsumeMetrics extracts log files from the configured metric and forwards
// the new ones as log records.
func (c *logFileConnector) ConsumeMetrics(ctx context.Context, md pmetric.Metrics) error {
	logs := plog.NewLogs()
	timestamp := pcommon.NewTimestampFromTime(c.now())

	c.mu.Lock()
	c.expireLocked()

	rms := md.ResourceMetrics()
	for i := 0; i < rms.Len(); i++ {
		rm := rms.At(i)
		events := c.extractEvents(rm)
		fresh := c.markSeenLocked(events)
		if len(fresh) == 0 {
			continue
		}

		rl := logs.ResourceLogs().AppendEmpty()
		rm.Resource().CopyTo(rl.Resource())
		sl := rl.ScopeLogs().AppendEmpty()
		sl.Scope().SetName(metadata.ScopeName)
		for _, ev := range fresh {
			c.appendRecord(sl.LogRecords(), ev, timestamp)
		}
	}
	c.mu.Unlock()

	if logs.LogRecordCount() == 0 {
		return nil
	}
	c.logger.Debug("Discovered log files", zap.Int("count", logs.LogRecordCount()))
	return c.logsConsumer.ConsumeLogs(ctx, logs)
}

func (c *logFileConnector) extractEvents(rm pmetric.ResourceMetrics) []LogFileEvent {
	var instance string
	if v, ok := rm.Resource().Attributes().Get(instanceResourceAttr); ok {
		instance = v.Str()
	}

	var events []LogFileEvent
	sms := rm.ScopeMetrics()
	for j := 0; j < sms.Len(); j++ {
		ms := sms.At(j).Metrics()
		for k := 0; k < ms.Len(); k++ {
			m := ms.At(k)
			if m.Name() != c.config.MetricName {
				continue
			}
			var dps pmetric.NumberDataPointSlice
			switch m.Type() {
			case pmetric.MetricTypeGauge:
				dps = m.Gauge().DataPoints()
			case pmetric.MetricTypeSum:
				dps = m.Sum().DataPoints()
			default:
				c.logger.Debug("Ignoring log file metric of unexpected type",
					zap.String("name", m.Name()),
					zap.String("type", m.Type().String()))
				continue
			}
			for p := 0; p < dps.Len(); p++ {
				if ev, ok := c.eventFromDataPoint(dps.At(p)); ok {
					ev.Instance = instance
					events = append(events, ev)
				}
			}
		}
	}
	return events
}

func (c *logFileConnector) eventFromDataPoint(dp pmetric.NumberDataPoint) (LogFileEvent, bool) {
	attrs := dp.Attributes()
	name, ok := attrs.Get(c.config.FileNameAttribute)
	if !ok || name.Str() == "" {
		return LogFileEvent{}, false
	}

	ev := LogFileEvent{FileName: name.Str()}
	if v, ok := attrs.Get(logTypeAttribute); ok {
		ev.Type = v.Str()
	}
	if v, ok := attrs.Get(sequenceAttribute); ok {
		ev.Sequence = v.Int()
	}
	if v, ok := attrs.Get(threadAttribute); ok {
		ev.Thread = v.Int()
	}
	switch dp.ValueType() {
	case pmetric.NumberDataPointValueTypeInt:
		ev.FirstScn = dp.IntValue()
	case pmetric.NumberDataPointValueTypeDouble:
		ev.FirstScn = int64(dp.DoubleValue())
	}
	return ev, true
}

func (c *logFileConnector) expireLocked() {
	if c.config.TTL <= 0 {
		return
	}
	cutoff := c.now().Add(-c.config.TTL)
	for k, last := range c.seen {
		if last.Before(cutoff) {
			delete(c.seen, k)
		}
	}
}

// markSeenLocked refreshes every event's last-seen time and returns the ones
// that were not known yet, in input order without duplicates.
func (c *logFileConnector) markSeenLocked(events []LogFileEvent) []LogFileEvent {
	now := c.now()
	var fresh []LogFileEvent
	for _, ev := range events {
		k := ev.key()
		if _, known := c.seen[k]; !known {
			fresh = append(fresh, ev)
		}
		c.seen[k] = now
	}
	return fresh
}

func (c *logFileConnector) appendRecord(records plog.LogRecordSlice, ev LogFileEvent, ts pcommon.Timestamp) {
	lr := records.AppendEmpty()
	lr.SetTimestamp(ts)
	lr.SetObservedTimestamp(ts)
	lr.SetEventName(logFileDiscoveredEventName)
	lr.SetSeverityNumber(plog.SeverityNumberInfo)
	lr.SetSeverityText("INFO")

	attrs := lr.Attributes()
	attrs.PutStr(c.config.FileNameAttribute, ev.FileName)
	attrs.PutStr(logTypeAttribute, ev.Type)
	attrs.PutInt(sequenceAttribute, ev.Sequence)
	attrs.PutInt(threadAttribute, ev.Thread)

	body, err := json.Marshal(ev)
	if err != nil {
		c.logger.Warn("Failed to encode log file event", zap.String("file", ev.FileName), zap.Error(err))
		return
	}
	lr.Body().SetStr(string(body))
}
