// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package logrange // import "github.com/spathlavath/opentelemetry-collector-contrib/receiver/oraclelogminerreceiver/logrange"

import (
	"slices"
	"sort"
	"time"

	"github.com/spathlavath/opentelemetry-collector-contrib/receiver/oraclelogminerreceiver/models"
	"github.com/spathlavath/opentelemetry-collector-contrib/receiver/oraclelogminerreceiver/scn"
)

// Range is the set of logs a LogMiner session must load to read from Offset.
type Range struct {
	Offset scn.Scn
	// Logs is sorted by thread then sequence.
	Logs       []models.LogFile
	OldestScn  scn.Scn
	ResolvedAt time.Time
	// Attempts counts the minable log queries it took to resolve.
	Attempts int
}

// Clone returns a deep copy.
func (r *Range) Clone() *Range {
	if r == nil {
		return nil
	}
	c := *r
	c.Logs = slices.Clone(r.Logs)
	return &c
}

// CountByType returns how many logs of type t are in the range.
func (r *Range) CountByType(t models.LogFileType) int {
	n := 0
	for _, l := range r.Logs {
		if l.Type == t {
			n++
		}
	}
	return n
}

// OffsetRetained reports whether some log in the range holds Offset.
func (r *Range) OffsetRetained() bool {
	return offsetRetained(r.Logs, r.Offset)
}

// FileNames lists the files in load order.
func (r *Range) FileNames() []string {
	names := make([]string, 0, len(r.Logs))
	for _, l := range r.Logs {
		names = append(names, l.FileName)
	}
	return names
}

func sortLogs(logs []models.LogFile) {
	sort.SliceStable(logs, func(i, j int) bool {
		if logs[i].Thread != logs[j].Thread {
			return logs[i].Thread < logs[j].Thread
		}
		return logs[i].Sequence < logs[j].Sequence
	})
}
