// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package commonutils // import "github.com/spathlavath/opentelemetry-collector-contrib/receiver/oraclelogminerreceiver/commonutils"

import "strings"

// QuoteLiteral renders s as a single-quoted SQL string literal, doubling
// embedded quotes.
func QuoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
