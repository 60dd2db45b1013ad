// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

//go:generate mdatagen metadata.yaml

// Package lograngecache provides an extension that holds the latest LogMiner
// log range resolved by each oraclelogminer receiver, so other pipeline
// components can read it without querying the database again.
package lograngecache // import "github.com/spathlavath/opentelemetry-collector-contrib/extension/lograngecache"
