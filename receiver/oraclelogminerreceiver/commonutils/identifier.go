// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package commonutils // import "github.com/spathlavath/opentelemetry-collector-contrib/receiver/oraclelogminerreceiver/commonutils"

import (
	"errors"
	"fmt"
	"strings"
)

const quote = `"`

var errBadTableName = errors.New("table name must be OWNER.TABLE")

// ObjectName applies Oracle case semantics to an object name. A quoted name with
// content keeps its case, anything else is upper-cased. Empty input is returned as is.
func ObjectName(name string) string {
	if name == "" {
		return name
	}
	if strings.HasPrefix(name, quote) && strings.HasSuffix(name, quote) && len(name) > 2 {
		return name
	}
	return strings.ToUpper(name)
}

// IsObjectNameNullOrEmpty reports whether name is empty or is the empty quoted
// name `""`.
//
// A lone `"` deliberately reports false. It is too short to be a quoted name, so
// ObjectName upper-cases it as an ordinary one-character name and both functions
// must agree on that boundary. Only the exact two-character `""` is empty.
func IsObjectNameNullOrEmpty(name string) bool {
	if name == "" {
		return true
	}
	return len(name) == 2 && name == quote+quote
}

// BindableObjectName returns the form stored in the data dictionary: case
// semantics applied, enclosing quotes removed.
func BindableObjectName(name string) string {
	name = ObjectName(name)
	if len(name) > 2 && strings.HasPrefix(name, quote) && strings.HasSuffix(name, quote) {
		return name[1 : len(name)-1]
	}
	return name
}

// ParseTableName splits OWNER.TABLE, where either part may be quoted. Dots
// inside quotes do not separate.
func ParseTableName(qualified string) (owner, table string, err error) {
	inQuotes := false
	for i, r := range qualified {
		switch r {
		case '"':
			inQuotes = !inQuotes
		case '.':
			if inQuotes {
				continue
			}
			owner, table = qualified[:i], qualified[i+1:]
			if IsObjectNameNullOrEmpty(owner) || IsObjectNameNullOrEmpty(table) {
				return "", "", fmt.Errorf("%w: %q", errBadTableName, qualified)
			}
			return owner, table, nil
		}
	}
	return "", "", fmt.Errorf("%w: %q", errBadTableName, qualified)
}
