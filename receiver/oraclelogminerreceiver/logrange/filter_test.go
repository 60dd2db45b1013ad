// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package logrange

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spathlavath/opentelemetry-collector-contrib/receiver/oraclelogminerreceiver/models"
	"github.com/spathlavath/opentelemetry-collector-contrib/receiver/oraclelogminerreceiver/scn"
)

func archivedLog(thread, seq int64, first, next uint64) models.LogFile {
	return models.LogFile{
		FileName: "/arch/" + scn.ValueOf(uint64(thread)).String() + "_" + scn.ValueOf(uint64(seq)).String() + ".arc",
		FirstScn: scn.ValueOf(first),
		NextScn:  scn.ValueOf(next),
		Thread:   thread,
		Sequence: seq,
		Type:     models.LogFileTypeArchived,
		Archived: true,
	}
}

func onlineLog(thread, seq int64, first uint64, next scn.Scn, current bool) models.LogFile {
	status := "INACTIVE"
	if current {
		status = "CURRENT"
	}
	return models.LogFile{
		FileName: "/redo/redo0" + scn.ValueOf(uint64(seq)).String() + ".log",
		FirstScn: scn.ValueOf(first),
		NextScn:  next,
		Thread:   thread,
		Sequence: seq,
		Type:     models.LogFileTypeOnline,
		Current:  current,
		Status:   status,
	}
}

func TestFilterLogs(t *testing.T) {
	offset := scn.ValueOf(150)

	logs := []models.LogFile{
		onlineLog(1, 3, 200, scn.Max, true),
		archivedLog(1, 1, 50, 100),
		archivedLog(1, 2, 100, 200),
		onlineLog(1, 2, 100, scn.ValueOf(200), false),
		onlineLog(1, 0, 10, scn.ValueOf(50), false),
	}

	filtered := FilterLogs(logs, offset)
	require.Len(t, filtered, 2)

	assert.Equal(t, int64(2), filtered[0].Sequence)
	assert.Equal(t, models.LogFileTypeArchived, filtered[0].Type)
	assert.Equal(t, int64(3), filtered[1].Sequence)
	assert.True(t, filtered[1].Current)
}

func TestFilterLogs_LogEndingAtOffsetIsExcluded(t *testing.T) {
	offset := scn.ValueOf(200)

	filtered := FilterLogs([]models.LogFile{archivedLog(1, 5, 100, 200)}, offset)
	assert.Empty(t, filtered)

	filtered = FilterLogs([]models.LogFile{
		onlineLog(1, 2, 100, scn.ValueOf(200), false),
		onlineLog(1, 3, 200, scn.Max, true),
	}, offset)
	require.Len(t, filtered, 1)
	assert.Equal(t, int64(3), filtered[0].Sequence)
	assert.NoError(t, CheckConsistency(filtered, offset))
}

func TestFilterLogs_LogEndingAfterOffsetIsKept(t *testing.T) {
	filtered := FilterLogs([]models.LogFile{
		archivedLog(1, 5, 100, 201),
		onlineLog(1, 6, 201, scn.ValueOf(300), false),
	}, scn.ValueOf(200))
	assert.Len(t, filtered, 2)
}

func TestFilterLogs_DuplicateArchivedRows(t *testing.T) {
	offset := scn.ValueOf(150)
	logs := []models.LogFile{
		archivedLog(1, 2, 100, 200),
		archivedLog(1, 2, 100, 200),
		onlineLog(1, 3, 200, scn.Max, true),
	}

	filtered := FilterLogs(logs, offset)
	require.Len(t, filtered, 2)
	assert.Equal(t, int64(2), filtered[0].Sequence)
	assert.Equal(t, int64(3), filtered[1].Sequence)
	assert.NoError(t, CheckConsistency(filtered, offset))
}

func TestFilterLogs_CurrentOnlineAlwaysKept(t *testing.T) {
	current := onlineLog(1, 9, 500, scn.ValueOf(400), true)
	filtered := FilterLogs([]models.LogFile{current}, scn.ValueOf(1000))
	assert.Len(t, filtered, 1)
}

func TestFilterLogs_SortsByThreadThenSequence(t *testing.T) {
	logs := []models.LogFile{
		archivedLog(2, 11, 100, 300),
		archivedLog(1, 8, 150, 250),
		archivedLog(2, 10, 50, 100),
		archivedLog(1, 7, 80, 150),
	}

	filtered := FilterLogs(logs, scn.ValueOf(90))
	var got [][2]int64
	for _, l := range filtered {
		got = append(got, [2]int64{l.Thread, l.Sequence})
	}
	assert.Equal(t, [][2]int64{{1, 7}, {1, 8}, {2, 10}, {2, 11}}, got)
}

func TestCheckConsistency(t *testing.T) {
	tests := []struct {
		name   string
		logs   []models.LogFile
		offset scn.Scn
		err    error
	}{
		{
			name:   "empty",
			offset: scn.ValueOf(10),
			err:    ErrNoLogs,
		},
		{
			name:   "contiguous",
			logs:   []models.LogFile{archivedLog(1, 1, 50, 100), archivedLog(1, 2, 100, 200)},
			offset: scn.ValueOf(60),
		},
		{
			name:   "offset older than every log",
			logs:   []models.LogFile{archivedLog(1, 4, 500, 600)},
			offset: scn.ValueOf(60),
			err:    ErrOffsetNotRetained,
		},
		{
			name:   "offset at end of only log",
			logs:   []models.LogFile{archivedLog(1, 4, 500, 600), archivedLog(1, 5, 600, 700)},
			offset: scn.ValueOf(600),
		},
		{
			name:   "sequence gap",
			logs:   []models.LogFile{archivedLog(1, 1, 50, 100), archivedLog(1, 3, 200, 300)},
			offset: scn.ValueOf(60),
			err:    ErrSequenceGap,
		},
		{
			name: "threads checked separately",
			logs: []models.LogFile{
				archivedLog(1, 1, 50, 100), archivedLog(1, 2, 100, 200),
				archivedLog(2, 40, 70, 180),
			},
			offset: scn.ValueOf(75),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckConsistency(tt.logs, tt.offset)
			if tt.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestRange(t *testing.T) {
	r := &Range{
		Offset: scn.ValueOf(120),
		Logs: []models.LogFile{
			archivedLog(1, 1, 50, 100),
			archivedLog(2, 7, 60, 130),
			onlineLog(1, 2, 100, scn.Max, true),
		},
	}

	assert.Equal(t, 2, r.CountByType(models.LogFileTypeArchived))
	assert.Equal(t, 1, r.CountByType(models.LogFileTypeOnline))
	assert.True(t, r.OffsetRetained())
	assert.Equal(t, []string{"/arch/1_1.arc", "/arch/2_7.arc", "/redo/redo02.log"}, r.FileNames())

	c := r.Clone()
	c.Logs[0].FileName = "changed"
	assert.NotEqual(t, "changed", r.Logs[0].FileName)

	var nilRange *Range
	assert.Nil(t, nilRange.Clone())

	ended := &Range{Offset: scn.ValueOf(100), Logs: []models.LogFile{archivedLog(1, 1, 50, 100)}}
	assert.False(t, ended.OffsetRetained())
}
