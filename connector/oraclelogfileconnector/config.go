// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package oraclelogfileconnector // import "github.com/spathlavath/opentelemetry-collector-contrib/connector/oraclelogfileconnector"

import (
	"errors"
	"time"

	"go.uber.org/multierr"
)

var (
	errEmptyMetricName = errors.New("metric_name must be set")
	errNegativeTTL     = errors.New("ttl must not be negative")
)

// Config represents the connector config settings within the collector's config.yaml
type Config struct {
	// MetricName is the per-file metric the log files are read from.
	MetricName string `mapstructure:"metric_name"`

	// FileNameAttribute is the data point attribute that holds the file name.
	FileNameAttribute string `mapstructure:"file_name_attribute"`

	// TTL is how long a file stays known after it was last seen. A file seen
	// again after that is reported again.
	TTL time.Duration `mapstructure:"ttl"`
}

// Validate checks the connector configuration is valid
func (cfg *Config) Validate() error {
	var allErrs error
	if cfg.MetricName == "" {
		allErrs = multierr.Append(allErrs, errEmptyMetricName)
	}
	if cfg.TTL < 0 {
		allErrs = multierr.Append(allErrs, errNegativeTTL)
	}
	return allErrs
}
