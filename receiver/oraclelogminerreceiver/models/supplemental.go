// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package models

// SupplementalLogLevel names a database-wide supplemental logging column.
type SupplementalLogLevel string

const (
	SupplementalLogLevelMin SupplementalLogLevel = "MIN"
	SupplementalLogLevelAll SupplementalLogLevel = "ALL"
)

// SupplementalLogStatus is the database-wide supplemental logging setting.
// Oracle reports YES, NO or IMPLICIT in the raw value.
type SupplementalLogStatus struct {
	Level    SupplementalLogLevel
	RawValue string
	Enabled  bool
}

// TableLogGroup is one entry of ALL_LOG_GROUPS for a table
type TableLogGroup struct {
	Owner        string
	Table        string
	LogGroupType string
}

// AllColumnLogGroupType is the LOG_GROUP_TYPE of ALTER TABLE ... ADD SUPPLEMENTAL LOG DATA (ALL) COLUMNS.
const AllColumnLogGroupType = "ALL COLUMN LOGGING"
