// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

//go:build integration

package oraclelogminerreceiver

import (
	"context"
	"database/sql"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.opentelemetry.io/collector/component/componenttest"
	"go.opentelemetry.io/collector/consumer/consumertest"
	"go.opentelemetry.io/collector/receiver/receivertest"
	"go.uber.org/zap/zaptest"

	"github.com/spathlavath/opentelemetry-collector-contrib/receiver/oraclelogminerreceiver/client"
	"github.com/spathlavath/opentelemetry-collector-contrib/receiver/oraclelogminerreceiver/internal/metadata"
	"github.com/spathlavath/opentelemetry-collector-contrib/receiver/oraclelogminerreceiver/logrange"
	"github.com/spathlavath/opentelemetry-collector-contrib/receiver/oraclelogminerreceiver/models"
)

const (
	oraclePort     = "1521"
	oraclePassword = "logminer"
	oracleImage    = "gvenzl/oracle-free:23-slim"
)

func startOracle(t *testing.T) string {
	ctx := context.Background()
	req := testcontainers.ContainerRequest{
		Image:        oracleImage,
		ExposedPorts: []string{oraclePort + "/tcp"},
		Env:          map[string]string{"ORACLE_PASSWORD": oraclePassword},
		WaitingFor:   wait.ForLog("DATABASE IS READY TO USE!").WithStartupTimeout(10 * time.Minute),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, oraclePort+"/tcp")
	require.NoError(t, err)
	return net.JoinHostPort(host, port.Port())
}

func integrationConfig(endpoint string) *Config {
	cfg := NewFactory().CreateDefaultConfig().(*Config)
	cfg.Endpoint = endpoint
	cfg.Username = "system"
	cfg.Password = oraclePassword
	cfg.Service = "FREE"
	cfg.CollectionInterval = 2 * time.Second
	cfg.LogFileQueryMaxRetries = 2
	cfg.SupplementalLoggingTables = []string{"SYSTEM.HELP"}
	return cfg
}

func TestIntegration(t *testing.T) {
	cfg := integrationConfig(startOracle(t))
	require.NoError(t, cfg.Validate())

	t.Run("resolve current range", func(t *testing.T) {
		db, err := sql.Open(oracleDriverName, cfg.GetConnectionString())
		require.NoError(t, err)
		c := client.NewSQLClient(db)
		defer c.Close()

		ctx := context.Background()
		require.NoError(t, c.Ping(ctx))

		current, err := c.QueryCurrentScn(ctx)
		require.NoError(t, err)
		require.False(t, current.IsNull())

		resolver := logrange.NewResolver(c, cfg.resolverConfig(), zaptest.NewLogger(t))
		r, err := resolver.Resolve(ctx, current)
		require.NoError(t, err)
		assert.True(t, r.OffsetRetained())
		assert.GreaterOrEqual(t, r.CountByType(models.LogFileTypeOnline), 1)

		incarnation, err := c.QueryDatabaseIncarnation(ctx)
		require.NoError(t, err)
		assert.False(t, incarnation.ResetlogsScn.IsNull())
	})

	t.Run("receiver emits metrics", func(t *testing.T) {
		sink := new(consumertest.MetricsSink)
		rcvr, err := NewFactory().CreateMetrics(context.Background(), receivertest.NewNopSettings(metadata.Type), cfg, sink)
		require.NoError(t, err)

		require.NoError(t, rcvr.Start(context.Background(), componenttest.NewNopHost()))
		defer func() {
			assert.NoError(t, rcvr.Shutdown(context.Background()))
		}()

		assert.Eventually(t, func() bool {
			return sink.DataPointCount() > 0
		}, time.Minute, time.Second)
	})
}
