// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package queries // import "github.com/spathlavath/opentelemetry-collector-contrib/receiver/oraclelogminerreceiver/queries"

import (
	"fmt"
	"time"

	"github.com/spathlavath/opentelemetry-collector-contrib/receiver/oraclelogminerreceiver/scn"
)

// Supplemental logging checks
const (
	// DatabaseSupplementalLoggingMinCheckSQL returns whether minimal supplemental logging is enabled
	DatabaseSupplementalLoggingMinCheckSQL = "SELECT 'KEY', SUPPLEMENTAL_LOG_DATA_MIN FROM V$DATABASE"

	// DatabaseSupplementalLoggingAllCheckSQL returns whether all-column supplemental logging is enabled
	DatabaseSupplementalLoggingAllCheckSQL = "SELECT 'KEY', SUPPLEMENTAL_LOG_DATA_ALL FROM V$DATABASE"

	// TableSupplementalLoggingCheckSQL lists the log groups of one table.
	// Binds: owner, table name.
	TableSupplementalLoggingCheckSQL = "SELECT 'KEY', LOG_GROUP_TYPE FROM ALL_LOG_GROUPS WHERE OWNER=? AND TABLE_NAME=?"
)

// Redo log metadata
const (
	RedoLogStatusSQL = "SELECT F.MEMBER, R.STATUS FROM V$LOGFILE F, V$LOG R WHERE F.GROUP# = R.GROUP# ORDER BY 2"

	// CurrentRedoNameSQL returns every member of the current log group
	CurrentRedoNameSQL = "SELECT F.MEMBER FROM V$LOG LOG, V$LOGFILE F  WHERE LOG.GROUP#=F.GROUP# AND LOG.STATUS='CURRENT'"

	// CurrentRedoLogSequenceSQL returns one row per redo thread
	CurrentRedoLogSequenceSQL = "SELECT SEQUENCE# FROM V$LOG WHERE STATUS = 'CURRENT' ORDER BY SEQUENCE#"

	CurrentScnSQL = "SELECT CURRENT_SCN FROM V$DATABASE"

	// DatabaseIncarnationSQL identifies the current resetlogs incarnation
	DatabaseIncarnationSQL = "SELECT RESETLOGS_CHANGE#, RESETLOGS_TIME FROM V$DATABASE"
)

const (
	onlineLogsSQL = "SELECT MIN(F.MEMBER) AS FILE_NAME, L.FIRST_CHANGE# FIRST_CHANGE, " +
		"L.NEXT_CHANGE# NEXT_CHANGE, L.ARCHIVED, L.STATUS, 'ONLINE' AS TYPE, L.SEQUENCE# AS SEQ, " +
		"'NO' AS DICT_START, 'NO' AS DICT_END, L.THREAD# AS THREAD " +
		"FROM V$LOGFILE F, V$DATABASE D, V$LOG L " +
		"LEFT JOIN V$ARCHIVED_LOG A " +
		"ON A.FIRST_CHANGE# = L.FIRST_CHANGE# AND A.NEXT_CHANGE# = L.NEXT_CHANGE# " +
		"WHERE ((A.STATUS <> 'A' AND %s) OR A.FIRST_CHANGE# IS NULL) " +
		"AND L.STATUS != 'UNUSED' " +
		"AND F.GROUP# = L.GROUP# " +
		"GROUP BY F.GROUP#, L.FIRST_CHANGE#, L.NEXT_CHANGE#, L.STATUS, L.ARCHIVED, L.SEQUENCE#, L.THREAD#"

	archivedLogsColumns = "SELECT A.NAME AS FILE_NAME, A.FIRST_CHANGE# FIRST_CHANGE, " +
		"A.NEXT_CHANGE# NEXT_CHANGE, 'YES', NULL, 'ARCHIVED', A.SEQUENCE# AS SEQ, " +
		"A.DICTIONARY_BEGIN, A.DICTIONARY_END, A.THREAD# AS THREAD " +
		"FROM V$ARCHIVED_LOG A, V$DATABASE D " +
		"WHERE A.NAME IS NOT NULL " +
		"AND A.ARCHIVED = 'YES' " +
		"AND A.STATUS = 'A' "
)

// Minable log result columns, in select order.
const (
	MinableLogColumnFileName = iota + 1
	MinableLogColumnFirstChange
	MinableLogColumnNextChange
	MinableLogColumnArchived
	MinableLogColumnStatus
	MinableLogColumnType
	MinableLogColumnSequence
	MinableLogColumnDictionaryStart
	MinableLogColumnDictionaryEnd
	MinableLogColumnThread

	MinableLogColumnCount = MinableLogColumnThread
)

// Positional: keeps the sort stable if column aliases change.
var minableLogsOrderBy = fmt.Sprintf("ORDER BY %d", MinableLogColumnSequence)

// Values of the TYPE column
const (
	LogTypeOnline   = "ONLINE"
	LogTypeArchived = "ARCHIVED"
)

// GetScnByTimeDeltaSQL returns the query for the SCN that was current d before
// the wall-clock time of ref. It reports false, with no query, when ref is absent.
func GetScnByTimeDeltaSQL(ref scn.Scn, d time.Duration) (string, bool) {
	if ref.IsNull() {
		return "", false
	}
	return fmt.Sprintf("select timestamp_to_scn(CAST(scn_to_timestamp(%s) as date) - INTERVAL '%d' MINUTE) from dual",
		ref, int64(d/time.Minute)), true
}

// SwitchHistorySQL counts today's log switches recorded at the destination.
func SwitchHistorySQL(dest ArchiveDestination) string {
	b := &clauseBuilder{}
	return b.add(
		"SELECT 'TOTAL', COUNT(1) FROM V$ARCHIVED_LOG WHERE FIRST_TIME > TRUNC(SYSDATE) AND DEST_ID IN (",
		ArchiveDestinationFilter(dest),
		")",
	).String()
}

// OldestFirstChangeSQL returns the oldest FIRST_CHANGE# still available in the
// online logs or in archived logs of the current incarnation.
func OldestFirstChangeSQL(window LookbackWindow, dest ArchiveDestination) string {
	b := &clauseBuilder{}
	return b.add(
		"SELECT MIN(FIRST_CHANGE#) FROM (",
		"SELECT MIN(FIRST_CHANGE#) AS FIRST_CHANGE# FROM V$LOG ",
		"UNION ",
		"SELECT MIN(A.FIRST_CHANGE#) AS FIRST_CHANGE# FROM V$ARCHIVED_LOG A, V$DATABASE D ",
		"WHERE A.DEST_ID IN (", ArchiveDestinationFilter(dest), ") ",
		"AND A.STATUS='A' ",
		"AND ", CurrentIncarnationPredicate(),
	).addIf(!window.IsUnbounded(),
		" AND ", FirstTimeWithinPredicate(window),
	).add(")").String()
}

// ArchivedLogsSQL selects archived logs that end after bound. Logs whose
// NEXT_CHANGE# equals bound are excluded. A Null bound selects from SCN 0.
func ArchivedLogsSQL(bound scn.Scn, window LookbackWindow, dest ArchiveDestination) string {
	if bound.IsNull() {
		bound = scn.ValueOf(0)
	}
	b := &clauseBuilder{}
	return b.add(
		archivedLogsColumns,
		"AND A.NEXT_CHANGE# > ", bound.String(), " ",
		"AND A.DEST_ID IN (", ArchiveDestinationFilter(dest), ") ",
		"AND ", CurrentIncarnationPredicate(), " ",
	).addIf(!window.IsUnbounded(),
		"AND ", FirstTimeWithinPredicate(window), " ",
	).add(minableLogsOrderBy).String()
}

// OnlineLogsSQL selects used online logs that have no available archived copy
// in the current incarnation.
func OnlineLogsSQL() string {
	return fmt.Sprintf(onlineLogsSQL, CurrentIncarnationPredicate())
}

// AllMinableLogsSQL enumerates every log that may hold changes after bound.
// With archivedOnly only archived logs are returned.
func AllMinableLogsSQL(bound scn.Scn, window LookbackWindow, archivedOnly bool, dest ArchiveDestination) string {
	archived := ArchivedLogsSQL(bound, window, dest)
	if archivedOnly {
		return archived
	}
	b := &clauseBuilder{}
	return b.add(OnlineLogsSQL(), " UNION ", archived).String()
}
