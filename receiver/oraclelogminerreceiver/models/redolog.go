// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package models

import (
	"time"

	"github.com/spathlavath/opentelemetry-collector-contrib/receiver/oraclelogminerreceiver/scn"
)

// RedoLogMember is a member file of an online redo log group
type RedoLogMember struct {
	Member string
	Status string
}

// Incarnation identifies a resetlogs branch of the database
type Incarnation struct {
	ResetlogsScn  scn.Scn
	ResetlogsTime time.Time
}

func (i Incarnation) Equal(o Incarnation) bool {
	return i.ResetlogsScn.Equal(o.ResetlogsScn) && i.ResetlogsTime.Equal(o.ResetlogsTime)
}
