// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package lograngecache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/collector/component"
	"go.opentelemetry.io/collector/component/componenttest"
	"go.opentelemetry.io/collector/extension/extensiontest"

	"github.com/spathlavath/opentelemetry-collector-contrib/extension/lograngecache/internal/metadata"
)

func TestFactory(t *testing.T) {
	factory := NewFactory()
	assert.Equal(t, metadata.Type, factory.Type())

	cfg := factory.CreateDefaultConfig().(*Config)
	require.NoError(t, componenttest.CheckConfigStruct(cfg))
	cfg.MaxAge = 5 * time.Minute

	ext, err := factory.Create(context.Background(), extensiontest.NewNopSettings(metadata.Type), cfg)
	require.NoError(t, err)
	require.IsType(t, &Extension{}, ext)

	require.NoError(t, ext.Start(context.Background(), componenttest.NewNopHost()))
	cache := ext.(*Extension).GetOrCreateCache(component.MustNewID("oraclelogminer"))
	assert.Equal(t, 5*time.Minute, cache.maxAge)
	require.NoError(t, ext.Shutdown(context.Background()))
}
