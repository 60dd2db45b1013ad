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
)

func TestExtension_GetOrCreateCache(t *testing.T) {
	ext := NewExtension(&Config{}, componenttest.NewNopTelemetrySettings())
	require.NoError(t, ext.Start(context.Background(), componenttest.NewNopHost()))

	id := component.MustNewIDWithName("oraclelogminer", "primary")
	assert.Nil(t, ext.Latest(id))

	first := ext.GetOrCreateCache(id)
	require.NotNil(t, first)
	assert.Same(t, first, ext.GetOrCreateCache(id))

	other := ext.GetOrCreateCache(component.MustNewIDWithName("oraclelogminer", "standby"))
	assert.NotSame(t, first, other)

	require.NoError(t, ext.Shutdown(context.Background()))
	assert.NotSame(t, first, ext.GetOrCreateCache(id))
}

func TestExtension_Latest(t *testing.T) {
	ext := NewExtension(&Config{MaxAge: time.Minute}, componenttest.NewNopTelemetrySettings())
	id := component.MustNewIDWithName("oraclelogminer", "primary")

	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	cache := ext.GetOrCreateCache(id)
	cache.now = func() time.Time { return now }
	assert.Nil(t, ext.Latest(id))

	cache.Update(sampleRange())
	got := ext.Latest(id)
	require.NotNil(t, got)
	assert.Equal(t, []string{"/arch/1_20.arc", "/redo/redo01.log"}, got.FileNames())

	now = now.Add(2 * time.Minute)
	assert.Nil(t, ext.Latest(id))
}

func TestExtension_RemoveCache(t *testing.T) {
	ext := NewExtension(&Config{}, componenttest.NewNopTelemetrySettings())
	primary := component.MustNewIDWithName("oraclelogminer", "primary")
	standby := component.MustNewIDWithName("oraclelogminer", "standby")

	ext.GetOrCreateCache(primary).Update(sampleRange())
	ext.GetOrCreateCache(standby).Update(sampleRange())

	ext.RemoveCache(primary)
	assert.Nil(t, ext.Latest(primary))
	assert.NotNil(t, ext.Latest(standby))

	// Unknown IDs are ignored.
	ext.RemoveCache(component.MustNewIDWithName("oraclelogminer", "unknown"))
	assert.NotNil(t, ext.Latest(standby))
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, (&Config{}).Validate())
	assert.ErrorIs(t, (&Config{MaxAge: -1}).Validate(), errNegativeMaxAge)
}
