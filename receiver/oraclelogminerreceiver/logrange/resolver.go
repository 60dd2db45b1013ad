// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package logrange

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/spathlavath/opentelemetry-collector-contrib/receiver/oraclelogminerreceiver/client"
	qerrors "github.com/spathlavath/opentelemetry-collector-contrib/receiver/oraclelogminerreceiver/internal/errors"
	"github.com/spathlavath/opentelemetry-collector-contrib/receiver/oraclelogminerreceiver/queries"
	"github.com/spathlavath/opentelemetry-collector-contrib/receiver/oraclelogminerreceiver/scn"
)

// ORA-08180: no snapshot found based on specified time
const oraNoSnapshotForTime = 8180

var errNullOffset = errors.New("offset must not be null")

// Config controls which logs are considered and how hard to try.
type Config struct {
	Window       queries.LookbackWindow
	ArchivedOnly bool
	Destination  queries.ArchiveDestination

	// MaxRetries bounds repeated minable log queries after the first one.
	MaxRetries     int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// DefaultConfig mirrors the receiver defaults.
func DefaultConfig() Config {
	return Config{
		Destination:    queries.AnyLocalDestination(),
		MaxRetries:     5,
		InitialBackoff: time.Second,
		MaxBackoff:     time.Minute,
	}
}

// Resolver finds the logs needed to mine from a given offset.
type Resolver struct {
	client client.LogMinerClient
	cfg    Config
	logger *zap.Logger
	now    func() time.Time
}

func NewResolver(c client.LogMinerClient, cfg Config, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{
		client: c,
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
	}
}

func (r *Resolver) newBackOff(ctx context.Context) backoff.BackOffContext {
	b := backoff.NewExponentialBackOff()
	if r.cfg.InitialBackoff > 0 {
		b.InitialInterval = r.cfg.InitialBackoff
	}
	if r.cfg.MaxBackoff > 0 {
		b.MaxInterval = r.cfg.MaxBackoff
	}
	b.MaxElapsedTime = 0

	retries := r.cfg.MaxRetries
	if retries < 0 {
		retries = 0
	}
	return backoff.WithContext(backoff.WithMaxRetries(b, uint64(retries)), ctx)
}

// Resolve returns the minable logs for offset. Empty or inconsistent results
// are retried with exponential backoff; after the last retry the consistency
// error is returned wrapped. Permanent query failures and an offset older than
// every retained log are not retried.
func (r *Resolver) Resolve(ctx context.Context, offset scn.Scn) (*Range, error) {
	if offset.IsNull() {
		return nil, errNullOffset
	}

	attempts := 0
	operation := func() (*Range, error) {
		attempts++
		logs, err := r.client.QueryMinableLogs(ctx, offset, r.cfg.Window, r.cfg.ArchivedOnly, r.cfg.Destination)
		if err != nil {
			qe := qerrors.NewQueryError("minable_logs_query", "AllMinableLogsSQL", err, map[string]any{
				"offset":  offset.String(),
				"attempt": attempts,
			})
			if qerrors.IsPermanentError(err) {
				return nil, backoff.Permanent(qe)
			}
			return nil, qe
		}

		filtered := FilterLogs(logs, offset)
		if err := CheckConsistency(filtered, offset); err != nil {
			// Purged logs do not come back.
			if errors.Is(err, ErrOffsetNotRetained) {
				return nil, backoff.Permanent(err)
			}
			return nil, err
		}

		return &Range{
			Offset:     offset,
			Logs:       filtered,
			ResolvedAt: r.now(),
			Attempts:   attempts,
		}, nil
	}

	notify := func(err error, wait time.Duration) {
		r.logger.Warn("Minable logs not yet consistent, retrying",
			zap.String("offset", offset.String()),
			zap.Int("attempt", attempts),
			zap.Duration("backoff", wait),
			zap.Error(err))
	}

	result, err := backoff.RetryNotifyWithData(operation, r.newBackOff(ctx), notify)
	if err != nil {
		return nil, fmt.Errorf("resolve log range from %s after %d attempt(s): %w", offset, attempts, err)
	}

	oldest, err := r.OldestRetained(ctx)
	if err != nil {
		r.logger.Debug("Oldest retained SCN unavailable", zap.Error(err))
	} else {
		result.OldestScn = oldest
	}

	r.logger.Debug("Resolved log range",
		zap.String("offset", offset.String()),
		zap.Int("logs", len(result.Logs)),
		zap.Int("attempts", result.Attempts))

	return result, nil
}

// OldestRetained returns the oldest FIRST_CHANGE# still minable, or Null.
func (r *Resolver) OldestRetained(ctx context.Context) (scn.Scn, error) {
	oldest, err := r.client.QueryOldestFirstChange(ctx, r.cfg.Window, r.cfg.Destination)
	if err != nil {
		return scn.Null, qerrors.NewQueryError("oldest_first_change_query", "OldestFirstChangeSQL", err, nil)
	}
	return oldest, nil
}

// StartingScn picks an initial offset lookback before the current SCN. A zero
// lookback starts at the current SCN. When Oracle cannot map the time back to an
// SCN the oldest retained position is used instead.
func (r *Resolver) StartingScn(ctx context.Context, lookback time.Duration) (scn.Scn, error) {
	current, err := r.client.QueryCurrentScn(ctx)
	if err != nil {
		return scn.Null, qerrors.NewQueryError("current_scn_query", "CurrentScnSQL", err, nil)
	}
	if lookback <= 0 {
		return current, nil
	}

	start, err := r.client.QueryScnByTimeDelta(ctx, current, lookback)
	if err != nil {
		if qerrors.OracleErrorCode(err) != oraNoSnapshotForTime {
			return scn.Null, qerrors.NewQueryError("scn_by_time_delta_query", "GetScnByTimeDeltaSQL", err,
				map[string]any{"current_scn": current.String(), "lookback": lookback.String()})
		}
		r.logger.Debug("No snapshot for lookback time, using oldest retained SCN",
			zap.Duration("lookback", lookback))
		start = scn.Null
	}

	if start.IsNull() {
		return r.OldestRetained(ctx)
	}
	return start, nil
}
