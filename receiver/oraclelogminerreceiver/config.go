// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package oraclelogminerreceiver // import "github.com/spathlavath/opentelemetry-collector-contrib/receiver/oraclelogminerreceiver"

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	go_ora "github.com/sijms/go-ora/v2"
	"go.opentelemetry.io/collector/component"
	"go.opentelemetry.io/collector/scraper/scraperhelper"
	"go.uber.org/multierr"

	"github.com/spathlavath/opentelemetry-collector-contrib/receiver/oraclelogminerreceiver/commonutils"
	"github.com/spathlavath/opentelemetry-collector-contrib/receiver/oraclelogminerreceiver/internal/metadata"
	"github.com/spathlavath/opentelemetry-collector-contrib/receiver/oraclelogminerreceiver/logrange"
	"github.com/spathlavath/opentelemetry-collector-contrib/receiver/oraclelogminerreceiver/queries"
	"github.com/spathlavath/opentelemetry-collector-contrib/receiver/oraclelogminerreceiver/scn"
	"github.com/spathlavath/opentelemetry-collector-contrib/receiver/oraclelogminerreceiver/scrapers"
)

var (
	errBadDataSource         = errors.New("datasource is invalid")
	errBadEndpoint           = errors.New("endpoint must be specified as host:port")
	errBadPort               = errors.New("invalid port in endpoint")
	errEmptyEndpoint         = errors.New("endpoint must be specified")
	errEmptyPassword         = errors.New("password must be set")
	errEmptyService          = errors.New("service must be specified")
	errEmptyUsername         = errors.New("username must be set")
	errBadOffsetScn          = errors.New("offset_scn must be a non-negative decimal SCN")
	errOffsetConflict        = errors.New("offset_scn and offset_lookback are mutually exclusive")
	errNegativeLookback      = errors.New("offset_lookback must not be negative")
	errNegativeArchiveHours  = errors.New("archive_log_hours must not be negative")
	errBadDestinationName    = errors.New("archive_destination_name may only contain letters, digits and underscores")
	errNegativeMaxRetries    = errors.New("log_file_query_max_retries must not be negative")
	errNegativeBackoff       = errors.New("log_file_query_backoff must not be negative")
	errBadSupplementalTable  = errors.New("supplemental_logging_tables entries must be OWNER.TABLE")
	errBackoffOrderViolation = errors.New("log_file_query_max_backoff must not be lower than log_file_query_backoff")
)

// Embedded verbatim into SQL, so restricted to identifier characters.
var destinationNamePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// Config represents the receiver config settings within the collector's config.yaml
type Config struct {
	DataSource string        `mapstructure:"datasource"`
	Endpoint   string        `mapstructure:"endpoint"`
	Password   string        `mapstructure:"password"`
	Service    string        `mapstructure:"service"`
	Username   string        `mapstructure:"username"`
	Timeout    time.Duration `mapstructure:"timeout"`

	// OffsetScn pins the position the log range is resolved from. When empty
	// the position is OffsetLookback before the current SCN, recomputed on
	// every scrape.
	OffsetScn      string        `mapstructure:"offset_scn"`
	OffsetLookback time.Duration `mapstructure:"offset_lookback"`

	ArchiveLogHours        int    `mapstructure:"archive_log_hours"`
	ArchiveLogOnlyMode     bool   `mapstructure:"archive_log_only_mode"`
	ArchiveDestinationName string `mapstructure:"archive_destination_name"`

	LogFileQueryMaxRetries int           `mapstructure:"log_file_query_max_retries"`
	LogFileQueryBackoff    time.Duration `mapstructure:"log_file_query_backoff"`
	LogFileQueryMaxBackoff time.Duration `mapstructure:"log_file_query_max_backoff"`

	SupplementalLoggingTables []string `mapstructure:"supplemental_logging_tables"`

	// LogRangeCache is the lograngecache extension the resolved range is published to.
	LogRangeCache *component.ID `mapstructure:"log_range_cache"`

	scraperhelper.ControllerConfig `mapstructure:",squash"`
	metadata.MetricsBuilderConfig  `mapstructure:",squash"`
}

// Validate checks the receiver configuration is valid
func (cfg *Config) Validate() error {
	allErrs := cfg.validateConnection()

	if cfg.OffsetScn != "" {
		if _, err := scn.Parse(cfg.OffsetScn); err != nil {
			allErrs = multierr.Append(allErrs, fmt.Errorf("%w: %s", errBadOffsetScn, err.Error()))
		}
		if cfg.OffsetLookback != 0 {
			allErrs = multierr.Append(allErrs, errOffsetConflict)
		}
	}
	if cfg.OffsetLookback < 0 {
		allErrs = multierr.Append(allErrs, errNegativeLookback)
	}

	if cfg.ArchiveLogHours < 0 {
		allErrs = multierr.Append(allErrs, errNegativeArchiveHours)
	}
	if cfg.ArchiveDestinationName != "" && !destinationNamePattern.MatchString(cfg.ArchiveDestinationName) {
		allErrs = multierr.Append(allErrs, fmt.Errorf("%w: %q", errBadDestinationName, cfg.ArchiveDestinationName))
	}

	if cfg.LogFileQueryMaxRetries < 0 {
		allErrs = multierr.Append(allErrs, errNegativeMaxRetries)
	}
	if cfg.LogFileQueryBackoff < 0 || cfg.LogFileQueryMaxBackoff < 0 {
		allErrs = multierr.Append(allErrs, errNegativeBackoff)
	} else if cfg.LogFileQueryMaxBackoff > 0 && cfg.LogFileQueryMaxBackoff < cfg.LogFileQueryBackoff {
		allErrs = multierr.Append(allErrs, errBackoffOrderViolation)
	}

	for _, name := range cfg.SupplementalLoggingTables {
		if _, _, err := commonutils.ParseTableName(name); err != nil {
			allErrs = multierr.Append(allErrs, fmt.Errorf("%w: %s", errBadSupplementalTable, err.Error()))
		}
	}

	return allErrs
}

func (cfg *Config) validateConnection() error {
	var allErrs error

	// If DataSource is defined it takes precedence over the rest of the connection options.
	if cfg.DataSource != "" {
		if _, err := url.Parse(cfg.DataSource); err != nil {
			allErrs = multierr.Append(allErrs, fmt.Errorf("%w: %s", errBadDataSource, err.Error()))
		}
		return allErrs
	}

	if cfg.Endpoint == "" {
		allErrs = multierr.Append(allErrs, errEmptyEndpoint)
	}

	host, portStr, err := net.SplitHostPort(cfg.Endpoint)
	if err != nil {
		return multierr.Append(allErrs, fmt.Errorf("%w: %s", errBadEndpoint, err.Error()))
	}

	if host == "" {
		allErrs = multierr.Append(allErrs, errBadEndpoint)
	}

	port, err := strconv.ParseInt(portStr, 10, 32)
	if err != nil {
		allErrs = multierr.Append(allErrs, fmt.Errorf("%w: %s", errBadPort, err.Error()))
	}

	if port < 0 || port > 65535 {
		allErrs = multierr.Append(allErrs, fmt.Errorf("%w: %d", errBadPort, port))
	}

	if cfg.Username == "" {
		allErrs = multierr.Append(allErrs, errEmptyUsername)
	}

	if cfg.Password == "" {
		allErrs = multierr.Append(allErrs, errEmptyPassword)
	}

	if cfg.Service == "" {
		allErrs = multierr.Append(allErrs, errEmptyService)
	}

	return allErrs
}

// GetConnectionString returns the go-ora connection URL
func (cfg *Config) GetConnectionString() string {
	if cfg.DataSource != "" {
		return cfg.DataSource
	}

	host, portStr, err := net.SplitHostPort(cfg.Endpoint)
	if err != nil {
		return fmt.Sprintf("oracle://%s:%s@%s/%s", cfg.Username, cfg.Password, cfg.Endpoint, cfg.Service)
	}
	port, _ := strconv.Atoi(portStr)

	var options map[string]string
	if cfg.Timeout > 0 {
		options = map[string]string{"TIMEOUT": strconv.Itoa(int(cfg.Timeout.Seconds()))}
	}
	return go_ora.BuildUrl(host, port, cfg.Service, cfg.Username, cfg.Password, options)
}

// instanceAndHost derives the resource identity from the connection settings.
func (cfg *Config) instanceAndHost() (instance, host string) {
	if cfg.DataSource != "" {
		u, err := url.Parse(cfg.DataSource)
		if err != nil {
			return "", ""
		}
		return strings.TrimPrefix(u.Path, "/"), u.Hostname()
	}
	host, _, err := net.SplitHostPort(cfg.Endpoint)
	if err != nil {
		host = cfg.Endpoint
	}
	return cfg.Service, host
}

func (cfg *Config) offsetScn() scn.Scn {
	position, err := scn.Parse(cfg.OffsetScn)
	if err != nil {
		return scn.Null
	}
	return position
}

func (cfg *Config) resolverConfig() logrange.Config {
	rc := logrange.DefaultConfig()
	rc.Window = queries.HoursWindow(cfg.ArchiveLogHours)
	rc.ArchivedOnly = cfg.ArchiveLogOnlyMode
	rc.Destination = queries.DestinationFromConfig(cfg.ArchiveDestinationName)
	rc.MaxRetries = cfg.LogFileQueryMaxRetries
	if cfg.LogFileQueryBackoff > 0 {
		rc.InitialBackoff = cfg.LogFileQueryBackoff
	}
	if cfg.LogFileQueryMaxBackoff > 0 {
		rc.MaxBackoff = cfg.LogFileQueryMaxBackoff
	}
	return rc
}

func (cfg *Config) tableRefs() []scrapers.TableRef {
	refs := make([]scrapers.TableRef, 0, len(cfg.SupplementalLoggingTables))
	for _, name := range cfg.SupplementalLoggingTables {
		owner, table, err := commonutils.ParseTableName(name)
		if err != nil {
			continue
		}
		refs = append(refs, scrapers.TableRef{Owner: owner, Table: table})
	}
	return refs
}
