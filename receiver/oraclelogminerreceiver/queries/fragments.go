// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package queries // import "github.com/spathlavath/opentelemetry-collector-contrib/receiver/oraclelogminerreceiver/queries"

import (
	"fmt"
	"strings"
	"time"

	"github.com/spathlavath/opentelemetry-collector-contrib/receiver/oraclelogminerreceiver/commonutils"
)

// ArchiveDestination selects which local archive destination archived logs are
// read from. The zero value means any valid local destination.
type ArchiveDestination struct {
	name string
}

// AnyLocalDestination lets the database pick the first valid local destination.
func AnyLocalDestination() ArchiveDestination {
	return ArchiveDestination{}
}

// NamedDestination restricts archived logs to the named destination. The name is
// upper-cased and embedded as a quoted literal.
func NamedDestination(name string) ArchiveDestination {
	return ArchiveDestination{name: name}
}

// DestinationFromConfig maps an optional configured name; empty means any.
func DestinationFromConfig(name string) ArchiveDestination {
	if name == "" {
		return AnyLocalDestination()
	}
	return NamedDestination(name)
}

func (d ArchiveDestination) IsNamed() bool {
	return d.name != ""
}

func (d ArchiveDestination) Name() string {
	return d.name
}

// LookbackWindow restricts archived logs by FIRST_TIME. The zero value is unbounded.
type LookbackWindow struct {
	d time.Duration
}

// NewLookbackWindow returns a window of d; zero or negative is unbounded.
func NewLookbackWindow(d time.Duration) LookbackWindow {
	if d < 0 {
		d = 0
	}
	return LookbackWindow{d: d}
}

// HoursWindow returns a window of the given whole hours.
func HoursWindow(hours int) LookbackWindow {
	return NewLookbackWindow(time.Duration(hours) * time.Hour)
}

func (w LookbackWindow) IsUnbounded() bool {
	return w.d == 0
}

// Hours is the window truncated to whole hours, as rendered in SQL.
func (w LookbackWindow) Hours() int64 {
	return int64(w.d / time.Hour)
}

func (w LookbackWindow) Duration() time.Duration {
	return w.d
}

// DestinationPredicate picks the archive destination row inside
// V$ARCHIVE_DEST_STATUS.
func DestinationPredicate(dest ArchiveDestination) string {
	if !dest.IsNamed() {
		return "ROWNUM=1"
	}
	return "UPPER(DEST_NAME)=" + commonutils.QuoteLiteral(strings.ToUpper(dest.name))
}

// ArchiveDestinationFilter is the DEST_ID subquery shared by every query that
// reads V$ARCHIVED_LOG.
func ArchiveDestinationFilter(dest ArchiveDestination) string {
	return "SELECT DEST_ID FROM V$ARCHIVE_DEST_STATUS WHERE STATUS='VALID' AND TYPE='LOCAL' AND " + DestinationPredicate(dest)
}

// CurrentIncarnationPredicate keeps archived logs (alias A) that belong to the
// database's current resetlogs incarnation (alias D).
func CurrentIncarnationPredicate() string {
	return "A.RESETLOGS_CHANGE# = D.RESETLOGS_CHANGE# AND A.RESETLOGS_TIME = D.RESETLOGS_TIME"
}

// FirstTimeWithinPredicate restricts archived logs (alias A) to the window. It
// returns "" for an unbounded window.
func FirstTimeWithinPredicate(w LookbackWindow) string {
	if w.IsUnbounded() {
		return ""
	}
	return fmt.Sprintf("A.FIRST_TIME >= SYSDATE - (%d/24)", w.Hours())
}

// clauseBuilder concatenates fragments without adding separators, so the
// caller controls every space.
type clauseBuilder struct {
	sb strings.Builder
}

func (b *clauseBuilder) add(parts ...string) *clauseBuilder {
	for _, p := range parts {
		b.sb.WriteString(p)
	}
	return b
}

func (b *clauseBuilder) addIf(cond bool, parts ...string) *clauseBuilder {
	if cond {
		b.add(parts...)
	}
	return b
}

func (b *clauseBuilder) String() string {
	return b.sb.String()
}
