// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package lograngecache // import "github.com/spathlavath/opentelemetry-collector-contrib/extension/lograngecache"

import (
	"context"

	"go.opentelemetry.io/collector/component"
	"go.opentelemetry.io/collector/extension"

	"github.com/spathlavath/opentelemetry-collector-contrib/extension/lograngecache/internal/metadata"
)

// NewFactory creates a factory for the log range cache extension
func NewFactory() extension.Factory {
	return extension.NewFactory(
		metadata.Type,
		createDefaultConfig,
		createExtension,
		metadata.ExtensionStability,
	)
}

func createDefaultConfig() component.Config {
	return &Config{}
}

func createExtension(
	_ context.Context,
	params extension.Settings,
	cfg component.Config,
) (extension.Extension, error) {
	return NewExtension(cfg.(*Config), params.TelemetrySettings), nil
}
