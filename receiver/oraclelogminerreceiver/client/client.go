// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package client // import "github.com/spathlavath/opentelemetry-collector-contrib/receiver/oraclelogminerreceiver/client"

import (
	"context"
	"time"

	"github.com/spathlavath/opentelemetry-collector-contrib/receiver/oraclelogminerreceiver/models"
	"github.com/spathlavath/opentelemetry-collector-contrib/receiver/oraclelogminerreceiver/queries"
	"github.com/spathlavath/opentelemetry-collector-contrib/receiver/oraclelogminerreceiver/scn"
)

// LogMinerClient runs the catalog queries a LogMiner reader depends on.
type LogMinerClient interface {
	Ping(ctx context.Context) error
	Close() error

	// Positions
	QueryCurrentScn(ctx context.Context) (scn.Scn, error)
	// QueryScnByTimeDelta returns scn.Null without querying when ref is Null.
	QueryScnByTimeDelta(ctx context.Context, ref scn.Scn, delta time.Duration) (scn.Scn, error)
	QueryDatabaseIncarnation(ctx context.Context) (models.Incarnation, error)

	// Supplemental logging
	QueryDatabaseSupplementalLogging(ctx context.Context, level models.SupplementalLogLevel) (models.SupplementalLogStatus, error)
	QueryTableSupplementalLogging(ctx context.Context, owner, table string) ([]models.TableLogGroup, error)

	// Online redo
	QueryRedoLogStatus(ctx context.Context) ([]models.RedoLogMember, error)
	QueryCurrentRedoSequences(ctx context.Context) ([]int64, error)

	// Archive and log range
	QueryLogSwitchCount(ctx context.Context, dest queries.ArchiveDestination) (int64, error)
	QueryOldestFirstChange(ctx context.Context, window queries.LookbackWindow, dest queries.ArchiveDestination) (scn.Scn, error)
	QueryMinableLogs(ctx context.Context, bound scn.Scn, window queries.LookbackWindow, archivedOnly bool, dest queries.ArchiveDestination) ([]models.LogFile, error)
}
