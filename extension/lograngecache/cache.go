// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package lograngecache // import "github.com/spathlavath/opentelemetry-collector-contrib/extension/lograngecache"

import (
	"slices"
	"sync"
	"time"

	"github.com/spathlavath/opentelemetry-collector-contrib/receiver/oraclelogminerreceiver/logrange"
)

// LogRangeCache is a thread-safe holder for the latest range resolved by one
// receiver. Readers always get a copy.
type LogRangeCache struct {
	mu             sync.RWMutex
	latest         *logrange.Range
	lastUpdateTime time.Time
	updates        int64
	maxAge         time.Duration
	now            func() time.Time
}

// NewLogRangeCache creates an empty cache. A zero maxAge never expires entries.
func NewLogRangeCache(maxAge time.Duration) *LogRangeCache {
	return &LogRangeCache{
		maxAge: maxAge,
		now:    time.Now,
	}
}

// Update replaces the cached range and reports whether the set of files to
// load differs from the previous entry. An expired entry counts as absent.
func (c *LogRangeCache) Update(r *logrange.Range) bool {
	if r == nil {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	changed := c.latest == nil || c.expiredLocked() ||
		!slices.Equal(c.latest.FileNames(), r.FileNames())

	c.latest = r.Clone()
	c.lastUpdateTime = c.now()
	c.updates++
	return changed
}

// Latest returns a copy of the cached range, or nil when nothing is cached or
// the entry has expired.
func (c *LogRangeCache) Latest() *logrange.Range {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.latest == nil || c.expiredLocked() {
		return nil
	}
	return c.latest.Clone()
}

// Files returns the file names of the cached range in load order, or nil when
// nothing is cached or the entry has expired.
func (c *LogRangeCache) Files() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.latest == nil || c.expiredLocked() {
		return nil
	}
	return c.latest.FileNames()
}

func (c *LogRangeCache) expiredLocked() bool {
	return c.maxAge > 0 && c.now().Sub(c.lastUpdateTime) > c.maxAge
}

// GetLastUpdateTime returns the timestamp of the last cache update
func (c *LogRangeCache) GetLastUpdateTime() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.lastUpdateTime
}

// Updates counts how many ranges have been stored since creation or Clear.
func (c *LogRangeCache) Updates() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.updates
}

// Size returns the number of log files in the cached range
func (c *LogRangeCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.latest == nil {
		return 0
	}
	return len(c.latest.Logs)
}

// Clear removes the cached range
func (c *LogRangeCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.latest = nil
	c.lastUpdateTime = time.Time{}
	c.updates = 0
}
