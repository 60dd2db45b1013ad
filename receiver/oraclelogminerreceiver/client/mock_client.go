// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"sync"
	"time"

	"github.com/spathlavath/opentelemetry-collector-contrib/receiver/oraclelogminerreceiver/models"
	"github.com/spathlavath/opentelemetry-collector-contrib/receiver/oraclelogminerreceiver/queries"
	"github.com/spathlavath/opentelemetry-collector-contrib/receiver/oraclelogminerreceiver/scn"
)

// MinableLogsCall records the arguments of one QueryMinableLogs call.
type MinableLogsCall struct {
	Bound        scn.Scn
	Window       queries.LookbackWindow
	ArchivedOnly bool
	Dest         queries.ArchiveDestination
}

// MockClient is a mock implementation of LogMinerClient for testing.
type MockClient struct {
	mu sync.Mutex

	CurrentScn     scn.Scn
	ScnByTimeDelta scn.Scn
	Incarnation    models.Incarnation

	SupplementalLogging map[models.SupplementalLogLevel]models.SupplementalLogStatus
	// TableLogGroups is keyed by owner + "." + table as passed by the caller.
	TableLogGroups map[string][]models.TableLogGroup

	RedoLogMembers       []models.RedoLogMember
	CurrentRedoSequences []int64

	LogSwitchCount    int64
	OldestFirstChange scn.Scn

	// MinableLogs is returned by every call once MinableLogsResponses is drained.
	MinableLogs          []models.LogFile
	MinableLogsResponses [][]models.LogFile
	MinableLogsCalls     []MinableLogsCall

	PingErr        error
	CloseErr       error
	QueryErr       error
	MinableLogsErr error
}

// NewMockClient creates a new mock client for testing.
func NewMockClient() *MockClient {
	return &MockClient{
		SupplementalLogging: make(map[models.SupplementalLogLevel]models.SupplementalLogStatus),
		TableLogGroups:      make(map[string][]models.TableLogGroup),
	}
}

func (m *MockClient) Ping(_ context.Context) error {
	return m.PingErr
}

func (m *MockClient) Close() error {
	return m.CloseErr
}

func (m *MockClient) QueryCurrentScn(_ context.Context) (scn.Scn, error) {
	if m.QueryErr != nil {
		return scn.Null, m.QueryErr
	}
	return m.CurrentScn, nil
}

func (m *MockClient) QueryScnByTimeDelta(_ context.Context, ref scn.Scn, _ time.Duration) (scn.Scn, error) {
	if ref.IsNull() {
		return scn.Null, nil
	}
	if m.QueryErr != nil {
		return scn.Null, m.QueryErr
	}
	return m.ScnByTimeDelta, nil
}

func (m *MockClient) QueryDatabaseIncarnation(_ context.Context) (models.Incarnation, error) {
	if m.QueryErr != nil {
		return models.Incarnation{}, m.QueryErr
	}
	return m.Incarnation, nil
}

func (m *MockClient) QueryDatabaseSupplementalLogging(_ context.Context, level models.SupplementalLogLevel) (models.SupplementalLogStatus, error) {
	if m.QueryErr != nil {
		return models.SupplementalLogStatus{Level: level}, m.QueryErr
	}
	if status, ok := m.SupplementalLogging[level]; ok {
		return status, nil
	}
	return models.SupplementalLogStatus{Level: level, RawValue: "NO"}, nil
}

func (m *MockClient) QueryTableSupplementalLogging(_ context.Context, owner, table string) ([]models.TableLogGroup, error) {
	if m.QueryErr != nil {
		return nil, m.QueryErr
	}
	return m.TableLogGroups[owner+"."+table], nil
}

func (m *MockClient) QueryRedoLogStatus(_ context.Context) ([]models.RedoLogMember, error) {
	if m.QueryErr != nil {
		return nil, m.QueryErr
	}
	return m.RedoLogMembers, nil
}

func (m *MockClient) QueryCurrentRedoSequences(_ context.Context) ([]int64, error) {
	if m.QueryErr != nil {
		return nil, m.QueryErr
	}
	return m.CurrentRedoSequences, nil
}

func (m *MockClient) QueryLogSwitchCount(_ context.Context, _ queries.ArchiveDestination) (int64, error) {
	if m.QueryErr != nil {
		return 0, m.QueryErr
	}
	return m.LogSwitchCount, nil
}

func (m *MockClient) QueryOldestFirstChange(_ context.Context, _ queries.LookbackWindow, _ queries.ArchiveDestination) (scn.Scn, error) {
	if m.QueryErr != nil {
		return scn.Null, m.QueryErr
	}
	return m.OldestFirstChange, nil
}

func (m *MockClient) QueryMinableLogs(_ context.Context, bound scn.Scn, window queries.LookbackWindow, archivedOnly bool, dest queries.ArchiveDestination) ([]models.LogFile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.MinableLogsCalls = append(m.MinableLogsCalls, MinableLogsCall{
		Bound:        bound,
		Window:       window,
		ArchivedOnly: archivedOnly,
		Dest:         dest,
	})

	if m.MinableLogsErr != nil {
		return nil, m.MinableLogsErr
	}
	if m.QueryErr != nil {
		return nil, m.QueryErr
	}
	if len(m.MinableLogsResponses) > 0 {
		logs := m.MinableLogsResponses[0]
		m.MinableLogsResponses = m.MinableLogsResponses[1:]
		return logs, nil
	}
	return m.MinableLogs, nil
}

// CallCount returns how many times QueryMinableLogs ran.
func (m *MockClient) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.MinableLogsCalls)
}
