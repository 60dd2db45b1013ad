// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package logrange

import (
	"errors"
	"fmt"

	"github.com/spathlavath/opentelemetry-collector-contrib/receiver/oraclelogminerreceiver/models"
	"github.com/spathlavath/opentelemetry-collector-contrib/receiver/oraclelogminerreceiver/scn"
)

var (
	// ErrNoLogs is returned when no minable log covers the offset.
	ErrNoLogs = errors.New("no minable logs found")
	// ErrOffsetNotRetained means the logs holding the offset have been purged or
	// are outside the archive window.
	ErrOffsetNotRetained = errors.New("offset is older than every available log")
	// ErrSequenceGap means a redo thread is missing a log between two that were found.
	ErrSequenceGap = errors.New("log sequence gap")
)

// FilterLogs keeps the logs that may contain changes at or after offset.
// A log's NextScn is exclusive, so a log ending exactly at offset holds nothing
// to mine and is dropped. Archived logs must end after offset and are kept once
// per thread and sequence. Online logs must be current or end after offset, and
// are dropped when the same thread and sequence is already available archived.
// The result is sorted by thread then sequence.
func FilterLogs(logs []models.LogFile, offset scn.Scn) []models.LogFile {
	archived := make(map[models.LogFileKey]struct{})
	var result []models.LogFile

	for _, l := range logs {
		if !l.IsArchived() {
			continue
		}
		if l.NextScn.Compare(offset) <= 0 {
			continue
		}
		if _, dup := archived[l.Key()]; dup {
			continue
		}
		archived[l.Key()] = struct{}{}
		result = append(result, l)
	}

	for _, l := range logs {
		if l.IsArchived() {
			continue
		}
		if !l.Current && l.NextScn.Compare(offset) <= 0 {
			continue
		}
		if _, dup := archived[l.Key()]; dup {
			continue
		}
		result = append(result, l)
	}

	sortLogs(result)
	return result
}

// CheckConsistency validates a filtered, sorted set of logs for offset.
func CheckConsistency(logs []models.LogFile, offset scn.Scn) error {
	if len(logs) == 0 {
		return ErrNoLogs
	}
	if !offsetRetained(logs, offset) {
		return fmt.Errorf("%w: offset %s", ErrOffsetNotRetained, offset)
	}

	for i := 1; i < len(logs); i++ {
		prev, cur := logs[i-1], logs[i]
		if prev.Thread != cur.Thread {
			continue
		}
		if cur.Sequence != prev.Sequence+1 {
			return fmt.Errorf("%w: thread %d has sequence %d followed by %d",
				ErrSequenceGap, cur.Thread, prev.Sequence, cur.Sequence)
		}
	}
	return nil
}

func offsetRetained(logs []models.LogFile, offset scn.Scn) bool {
	for _, l := range logs {
		if l.Current && !l.FirstScn.IsNull() && l.FirstScn.Compare(offset) <= 0 {
			return true
		}
		if l.Contains(offset) {
			return true
		}
	}
	return false
}
