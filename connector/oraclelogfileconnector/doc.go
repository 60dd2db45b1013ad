// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

//go:generate mdatagen metadata.yaml

// Package oraclelogfileconnector turns the per-file metrics of the
// oraclelogminer receiver into log events, one per newly discovered redo or
// archived log file.
package oraclelogfileconnector // import "github.com/spathlavath/opentelemetry-collector-contrib/connector/oraclelogfileconnector"
