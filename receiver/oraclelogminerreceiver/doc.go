// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

//go:generate mdatagen metadata.yaml

// Package oraclelogminerreceiver reports whether an Oracle LogMiner reader can
// still mine from its position.
//
// On each scrape the receiver resolves the redo and archived logs that hold
// changes after the configured offset, checks that the offset is still
// retained and that every redo thread's sequences are contiguous, and records
// the range together with supplemental logging and redo log health. The latest
// resolved range can be shared with other components through the
// lograngecache extension.
package oraclelogminerreceiver // import "github.com/spathlavath/opentelemetry-collector-contrib/receiver/oraclelogminerreceiver"
