// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spathlavath/opentelemetry-collector-contrib/receiver/oraclelogminerreceiver/commonutils"
	"github.com/spathlavath/opentelemetry-collector-contrib/receiver/oraclelogminerreceiver/models"
	"github.com/spathlavath/opentelemetry-collector-contrib/receiver/oraclelogminerreceiver/queries"
	"github.com/spathlavath/opentelemetry-collector-contrib/receiver/oraclelogminerreceiver/scn"
)

// SQLClient is the production implementation that executes real SQL queries.
type SQLClient struct {
	db *sql.DB
}

// NewSQLClient creates a new production LogMiner client.
func NewSQLClient(db *sql.DB) LogMinerClient {
	return &SQLClient{db: db}
}

func (c *SQLClient) Ping(ctx context.Context) error {
	return c.db.PingContext(ctx)
}

func (c *SQLClient) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

func (c *SQLClient) queryScn(ctx context.Context, query string) (scn.Scn, error) {
	var value sql.NullString
	err := c.db.QueryRowContext(ctx, query).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return scn.Null, nil
	}
	if err != nil {
		return scn.Null, err
	}
	return scn.Parse(value.String)
}

func (c *SQLClient) QueryCurrentScn(ctx context.Context) (scn.Scn, error) {
	return c.queryScn(ctx, queries.CurrentScnSQL)
}

func (c *SQLClient) QueryScnByTimeDelta(ctx context.Context, ref scn.Scn, delta time.Duration) (scn.Scn, error) {
	query, ok := queries.GetScnByTimeDeltaSQL(ref, delta)
	if !ok {
		return scn.Null, nil
	}
	return c.queryScn(ctx, query)
}

func (c *SQLClient) QueryDatabaseIncarnation(ctx context.Context) (models.Incarnation, error) {
	var change sql.NullString
	var resetTime sql.NullTime
	if err := c.db.QueryRowContext(ctx, queries.DatabaseIncarnationSQL).Scan(&change, &resetTime); err != nil {
		return models.Incarnation{}, err
	}

	position, err := scn.Parse(change.String)
	if err != nil {
		return models.Incarnation{}, err
	}
	return models.Incarnation{ResetlogsScn: position, ResetlogsTime: resetTime.Time}, nil
}

func (c *SQLClient) QueryDatabaseSupplementalLogging(ctx context.Context, level models.SupplementalLogLevel) (models.SupplementalLogStatus, error) {
	query := queries.DatabaseSupplementalLoggingMinCheckSQL
	if level == models.SupplementalLogLevelAll {
		query = queries.DatabaseSupplementalLoggingAllCheckSQL
	}

	var key string
	var value sql.NullString
	if err := c.db.QueryRowContext(ctx, query).Scan(&key, &value); err != nil {
		return models.SupplementalLogStatus{Level: level}, err
	}

	raw := strings.ToUpper(strings.TrimSpace(value.String))
	return models.SupplementalLogStatus{
		Level:    level,
		RawValue: raw,
		Enabled:  raw == "YES" || raw == "IMPLICIT",
	}, nil
}

// QueryTableSupplementalLogging binds owner and table as stored in the data
// dictionary: unquoted names are upper-cased, quoted names lose their quotes.
func (c *SQLClient) QueryTableSupplementalLogging(ctx context.Context, owner, table string) ([]models.TableLogGroup, error) {
	ownerBind := commonutils.BindableObjectName(owner)
	tableBind := commonutils.BindableObjectName(table)

	rows, err := c.db.QueryContext(ctx, oracleBinds(queries.TableSupplementalLoggingCheckSQL), ownerBind, tableBind)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []models.TableLogGroup
	for rows.Next() {
		var key string
		var groupType sql.NullString
		if err := rows.Scan(&key, &groupType); err != nil {
			return nil, err
		}
		results = append(results, models.TableLogGroup{
			Owner:        ownerBind,
			Table:        tableBind,
			LogGroupType: groupType.String,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func (c *SQLClient) QueryRedoLogStatus(ctx context.Context) ([]models.RedoLogMember, error) {
	rows, err := c.db.QueryContext(ctx, queries.RedoLogStatusSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []models.RedoLogMember
	for rows.Next() {
		var member, status sql.NullString
		if err := rows.Scan(&member, &status); err != nil {
			return nil, err
		}
		results = append(results, models.RedoLogMember{Member: member.String, Status: status.String})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func (c *SQLClient) QueryCurrentRedoSequences(ctx context.Context) ([]int64, error) {
	rows, err := c.db.QueryContext(ctx, queries.CurrentRedoLogSequenceSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sequences []int64
	for rows.Next() {
		var seq sql.NullInt64
		if err := rows.Scan(&seq); err != nil {
			return nil, err
		}
		if seq.Valid {
			sequences = append(sequences, seq.Int64)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return sequences, nil
}

func (c *SQLClient) QueryLogSwitchCount(ctx context.Context, dest queries.ArchiveDestination) (int64, error) {
	var key string
	var count sql.NullInt64
	err := c.db.QueryRowContext(ctx, queries.SwitchHistorySQL(dest)).Scan(&key, &count)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return count.Int64, nil
}

func (c *SQLClient) QueryOldestFirstChange(ctx context.Context, window queries.LookbackWindow, dest queries.ArchiveDestination) (scn.Scn, error) {
	return c.queryScn(ctx, queries.OldestFirstChangeSQL(window, dest))
}

func (c *SQLClient) QueryMinableLogs(ctx context.Context, bound scn.Scn, window queries.LookbackWindow, archivedOnly bool, dest queries.ArchiveDestination) ([]models.LogFile, error) {
	rows, err := c.db.QueryContext(ctx, queries.AllMinableLogsSQL(bound, window, archivedOnly, dest))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []models.LogFile
	for rows.Next() {
		var fileName, firstChange, nextChange, archived, status, logType, dictStart, dictEnd sql.NullString
		var sequence, thread sql.NullInt64

		columns := make([]any, queries.MinableLogColumnCount)
		columns[queries.MinableLogColumnFileName-1] = &fileName
		columns[queries.MinableLogColumnFirstChange-1] = &firstChange
		columns[queries.MinableLogColumnNextChange-1] = &nextChange
		columns[queries.MinableLogColumnArchived-1] = &archived
		columns[queries.MinableLogColumnStatus-1] = &status
		columns[queries.MinableLogColumnType-1] = &logType
		columns[queries.MinableLogColumnSequence-1] = &sequence
		columns[queries.MinableLogColumnDictionaryStart-1] = &dictStart
		columns[queries.MinableLogColumnDictionaryEnd-1] = &dictEnd
		columns[queries.MinableLogColumnThread-1] = &thread

		if err := rows.Scan(columns...); err != nil {
			return nil, err
		}

		logFile, err := newLogFile(fileName.String, firstChange.String, nextChange.String, logType.String)
		if err != nil {
			return nil, err
		}
		logFile.Sequence = sequence.Int64
		logFile.Thread = thread.Int64
		logFile.Status = status.String
		logFile.Current = strings.EqualFold(status.String, "CURRENT")
		logFile.Archived = strings.EqualFold(archived.String, "YES")
		logFile.DictionaryStart = strings.EqualFold(dictStart.String, "YES")
		logFile.DictionaryEnd = strings.EqualFold(dictEnd.String, "YES")

		logs = append(logs, logFile)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return logs, nil
}

func newLogFile(fileName, firstChange, nextChange, logType string) (models.LogFile, error) {
	first, err := scn.Parse(firstChange)
	if err != nil {
		return models.LogFile{}, fmt.Errorf("log %s: first change: %w", fileName, err)
	}

	next, err := scn.Parse(nextChange)
	if err != nil {
		return models.LogFile{}, fmt.Errorf("log %s: next change: %w", fileName, err)
	}
	if next.IsNull() {
		next = scn.Max
	}

	t := models.LogFileTypeArchived
	if strings.EqualFold(logType, queries.LogTypeOnline) {
		t = models.LogFileTypeOnline
	}

	return models.LogFile{
		FileName: fileName,
		FirstScn: first,
		NextScn:  next,
		Type:     t,
	}, nil
}
