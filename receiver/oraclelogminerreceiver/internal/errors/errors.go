// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

// Package errors classifies failures of LogMiner catalog queries.
package errors // import "github.com/spathlavath/opentelemetry-collector-contrib/receiver/oraclelogminerreceiver/internal/errors"

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/sijms/go-ora/v2/network"
)

// QueryError wraps a failed query with the operation that ran it.
type QueryError struct {
	Operation string
	QueryName string
	Err       error
	Context   map[string]any
}

// NewQueryError returns a *QueryError for err.
func NewQueryError(operation, queryName string, err error, ctx map[string]any) *QueryError {
	return &QueryError{
		Operation: operation,
		QueryName: queryName,
		Err:       err,
		Context:   ctx,
	}
}

func (e *QueryError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (%s) failed: %v", e.Operation, e.QueryName, e.Err)
	if len(e.Context) > 0 {
		keys := make([]string, 0, len(e.Context))
		for k := range e.Context {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		sb.WriteString(" [")
		for i, k := range keys {
			if i > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%s=%v", k, e.Context[k])
		}
		sb.WriteString("]")
	}
	return sb.String()
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// ORA codes for lost sessions, listener trouble and a stuck archiver.
var retryableOracleCodes = map[int]struct{}{
	28:    {}, // session killed
	257:   {}, // archiver stuck
	1033:  {}, // initialization or shutdown in progress
	1089:  {}, // immediate shutdown in progress
	1291:  {}, // missing log file, usually an archive still being written
	3113:  {},
	3114:  {},
	3135:  {},
	12170: {},
	12514: {},
	12528: {},
	12537: {},
	12541: {},
}

// ORA codes that will not clear up on their own.
var permanentOracleCodes = map[int]struct{}{
	900:  {}, // invalid SQL statement
	904:  {}, // invalid identifier
	942:  {}, // table or view does not exist
	1017: {}, // invalid credentials
	1031: {}, // insufficient privileges
	1292: {}, // no log file specified for LogMiner session
	1435: {}, // user does not exist
	6550: {},
}

var oraCodePattern = regexp.MustCompile(`ORA-(\d{5})`)

// OracleErrorCode extracts the ORA- code from err, or 0.
func OracleErrorCode(err error) int {
	if err == nil {
		return 0
	}
	var oraErr *network.OracleError
	if errors.As(err, &oraErr) {
		return oraErr.ErrCode
	}
	m := oraCodePattern.FindStringSubmatch(err.Error())
	if m == nil {
		return 0
	}
	code, convErr := strconv.Atoi(m[1])
	if convErr != nil {
		return 0
	}
	return code
}

// IsRetryableError reports whether the query may succeed if repeated.
func IsRetryableError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, driver.ErrBadConn) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	_, ok := retryableOracleCodes[OracleErrorCode(err)]
	return ok
}

// IsPermanentError reports whether the query is bound to fail again.
func IsPermanentError(err error) bool {
	if err == nil {
		return false
	}
	_, ok := permanentOracleCodes[OracleErrorCode(err)]
	return ok
}
