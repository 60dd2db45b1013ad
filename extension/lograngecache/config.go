// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package lograngecache // import "github.com/spathlavath/opentelemetry-collector-contrib/extension/lograngecache"

import (
	"errors"
	"time"
)

var errNegativeMaxAge = errors.New("max_age must not be negative")

// Config defines configuration for the log range cache extension
type Config struct {
	// MaxAge hides a cached range once it is older than this. Zero keeps
	// ranges until they are replaced.
	MaxAge time.Duration `mapstructure:"max_age"`
}

// Validate checks if the extension configuration is valid
func (cfg *Config) Validate() error {
	if cfg.MaxAge < 0 {
		return errNegativeMaxAge
	}
	return nil
}
