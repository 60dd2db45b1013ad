// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/spathlavath/opentelemetry-collector-contrib/receiver/oraclelogminerreceiver/scn"
)

func TestLogFileContains(t *testing.T) {
	archived := LogFile{FirstScn: scn.ValueOf(100), NextScn: scn.ValueOf(200), Type: LogFileTypeArchived}
	current := LogFile{FirstScn: scn.ValueOf(200), NextScn: scn.Max, Type: LogFileTypeOnline, Current: true}

	tests := []struct {
		name     string
		log      LogFile
		position scn.Scn
		expected bool
	}{
		{"before first", archived, scn.ValueOf(99), false},
		{"at first", archived, scn.ValueOf(100), true},
		{"inside", archived, scn.ValueOf(150), true},
		{"at next", archived, scn.ValueOf(200), false},
		{"null position", archived, scn.Null, false},
		{"current log open ended", current, scn.ValueOf(1 << 40), true},
		{"null next scn", LogFile{FirstScn: scn.ValueOf(1)}, scn.ValueOf(5), true},
		{"null first scn", LogFile{NextScn: scn.ValueOf(10)}, scn.ValueOf(5), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.log.Contains(tt.position))
		})
	}
}

func TestLogFileKey(t *testing.T) {
	a := LogFile{FileName: "/redo/1_10.log", Thread: 1, Sequence: 10, Type: LogFileTypeOnline}
	b := LogFile{FileName: "/arch/1_10.arc", Thread: 1, Sequence: 10, Type: LogFileTypeArchived}

	assert.Equal(t, a.Key(), b.Key())
	assert.False(t, a.IsArchived())
	assert.True(t, b.IsArchived())
}

func TestIncarnationEqual(t *testing.T) {
	ts := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	a := Incarnation{ResetlogsScn: scn.ValueOf(1), ResetlogsTime: ts}

	assert.True(t, a.Equal(Incarnation{ResetlogsScn: scn.ValueOf(1), ResetlogsTime: ts}))
	assert.False(t, a.Equal(Incarnation{ResetlogsScn: scn.ValueOf(2), ResetlogsTime: ts}))
	assert.False(t, a.Equal(Incarnation{ResetlogsScn: scn.ValueOf(1), ResetlogsTime: ts.Add(time.Second)}))
}
