// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package lograngecache // import "github.com/spathlavath/opentelemetry-collector-contrib/extension/lograngecache"

import (
	"context"
	"sync"

	"go.opentelemetry.io/collector/component"
	"go.uber.org/zap"

	"github.com/spathlavath/opentelemetry-collector-contrib/receiver/oraclelogminerreceiver/logrange"
)

// Extension is an OTel Extension that provides shared log range storage
// keyed by the ID of the receiver that resolved it.
type Extension struct {
	mu       sync.RWMutex
	caches   map[component.ID]*LogRangeCache // receiverID -> cache
	config   *Config
	settings component.TelemetrySettings
}

// NewExtension creates a new log range cache extension
func NewExtension(cfg *Config, settings component.TelemetrySettings) *Extension {
	return &Extension{
		caches:   make(map[component.ID]*LogRangeCache),
		config:   cfg,
		settings: settings,
	}
}

// Start initializes the extension
func (e *Extension) Start(_ context.Context, _ component.Host) error {
	e.settings.Logger.Info("Log range cache extension started",
		zap.Duration("max_age", e.config.MaxAge))
	return nil
}

// Shutdown cleans up the extension
func (e *Extension) Shutdown(_ context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	clear(e.caches)

	e.settings.Logger.Info("Log range cache extension shutdown, all caches cleared")
	return nil
}

// GetOrCreateCache retrieves or creates a cache for a specific receiver ID
func (e *Extension) GetOrCreateCache(receiverID component.ID) *LogRangeCache {
	e.mu.Lock()
	defer e.mu.Unlock()

	cache, exists := e.caches[receiverID]
	if !exists {
		cache = NewLogRangeCache(e.config.MaxAge)
		e.caches[receiverID] = cache
		e.settings.Logger.Info("Created new log range cache for receiver",
			zap.String("receiver_id", receiverID.String()))
	}

	return cache
}

// Latest returns a copy of the range most recently published by receiverID.
// It is nil when the receiver never published, has shut down, or its entry is
// older than max_age.
func (e *Extension) Latest(receiverID component.ID) *logrange.Range {
	e.mu.RLock()
	cache := e.caches[receiverID]
	e.mu.RUnlock()

	if cache == nil {
		return nil
	}
	return cache.Latest()
}

// RemoveCache drops the range of a receiver that is shutting down, so readers
// stop seeing its last published files.
func (e *Extension) RemoveCache(receiverID component.ID) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.caches[receiverID]; !ok {
		return
	}
	delete(e.caches, receiverID)
	e.settings.Logger.Info("Removed log range cache for receiver",
		zap.String("receiver_id", receiverID.String()))
}
