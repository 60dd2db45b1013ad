// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

// Package scn models Oracle system change numbers, the monotonically increasing
// positions that identify a point in the redo stream.
package scn // import "github.com/spathlavath/opentelemetry-collector-contrib/receiver/oraclelogminerreceiver/scn"

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var errNegative = errors.New("scn must not be negative")

// Scn is a position in the redo stream. The zero value is Null.
type Scn struct {
	value uint64
	valid bool
}

var (
	// Null is the absent position.
	Null = Scn{}
	// Max is the largest representable position. Oracle reports it as the
	// NEXT_CHANGE# of the current online redo log.
	Max = Scn{value: math.MaxUint64, valid: true}
)

// ValueOf returns the position for v.
func ValueOf(v uint64) Scn {
	return Scn{value: v, valid: true}
}

// Parse reads a decimal position. Blank input yields Null without error.
func Parse(s string) (Scn, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Null, nil
	}
	if strings.HasPrefix(s, "-") {
		return Null, fmt.Errorf("%w: %s", errNegative, s)
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return Null, fmt.Errorf("invalid scn %q: %w", s, err)
	}
	return ValueOf(v), nil
}

// IsNull reports whether the position is absent.
func (s Scn) IsNull() bool {
	return !s.valid
}

// Uint64 returns the raw value; Null yields 0.
func (s Scn) Uint64() uint64 {
	return s.value
}

// Int64 returns the value clamped to math.MaxInt64, for metric data points.
func (s Scn) Int64() int64 {
	if s.value > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(s.value)
}

// String renders the decimal literal, or "null" when absent.
func (s Scn) String() string {
	if !s.valid {
		return "null"
	}
	return strconv.FormatUint(s.value, 10)
}

// Compare orders positions; Null sorts before every valid position.
func (s Scn) Compare(o Scn) int {
	switch {
	case !s.valid && !o.valid:
		return 0
	case !s.valid:
		return -1
	case !o.valid:
		return 1
	case s.value < o.value:
		return -1
	case s.value > o.value:
		return 1
	default:
		return 0
	}
}

func (s Scn) Less(o Scn) bool {
	return s.Compare(o) < 0
}

func (s Scn) Equal(o Scn) bool {
	return s.Compare(o) == 0
}
