// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package models // import "github.com/spathlavath/opentelemetry-collector-contrib/receiver/oraclelogminerreceiver/models"

import (
	"github.com/spathlavath/opentelemetry-collector-contrib/receiver/oraclelogminerreceiver/scn"
)

// LogFileType tells whether a log is read from an online redo group or an archive.
type LogFileType string

const (
	LogFileTypeOnline   LogFileType = "ONLINE"
	LogFileTypeArchived LogFileType = "ARCHIVED"
)

// LogFile is one row of the minable logs query.
type LogFile struct {
	FileName string
	FirstScn scn.Scn
	// NextScn is scn.Max for the current online log.
	NextScn  scn.Scn
	Sequence int64
	Thread   int64
	Type     LogFileType
	// Current is set for the online log group being written to.
	Current bool

	DictionaryStart bool
	DictionaryEnd   bool

	// Status is the V$LOG status; empty for archived logs.
	Status   string
	Archived bool
}

// Contains reports whether position falls in [FirstScn, NextScn).
func (l LogFile) Contains(position scn.Scn) bool {
	if position.IsNull() || l.FirstScn.IsNull() {
		return false
	}
	if position.Less(l.FirstScn) {
		return false
	}
	return l.NextScn.IsNull() || position.Less(l.NextScn)
}

func (l LogFile) IsArchived() bool {
	return l.Type == LogFileTypeArchived
}

// Key identifies the log within the redo stream regardless of its location.
func (l LogFile) Key() LogFileKey {
	return LogFileKey{Thread: l.Thread, Sequence: l.Sequence}
}

type LogFileKey struct {
	Thread   int64
	Sequence int64
}
