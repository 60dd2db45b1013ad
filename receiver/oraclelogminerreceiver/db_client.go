// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package oraclelogminerreceiver // import "github.com/spathlavath/opentelemetry-collector-contrib/receiver/oraclelogminerreceiver"

import (
	"database/sql"
	"time"

	_ "github.com/sijms/go-ora/v2" // Oracle database driver

	"github.com/spathlavath/opentelemetry-collector-contrib/receiver/oraclelogminerreceiver/client"
)

const oracleDriverName = "oracle"

type dbProviderFunc func() (*sql.DB, error)

type clientProviderFunc func(*sql.DB) client.LogMinerClient

// newDBProvider opens a small pool; the scrapers run their queries one at a time.
func newDBProvider(cfg *Config) dbProviderFunc {
	return func() (*sql.DB, error) {
		db, err := sql.Open(oracleDriverName, cfg.GetConnectionString())
		if err != nil {
			return nil, err
		}

		db.SetMaxOpenConns(2)
		db.SetMaxIdleConns(1)
		db.SetConnMaxLifetime(time.Hour)

		return db, nil
	}
}
