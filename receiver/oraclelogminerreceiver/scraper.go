// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package oraclelogminerreceiver // import "github.com/spathlavath/opentelemetry-collector-contrib/receiver/oraclelogminerreceiver"

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/collector/component"
	"go.opentelemetry.io/collector/pdata/pmetric"
	"go.opentelemetry.io/collector/receiver"
	"go.opentelemetry.io/collector/scraper"
	"go.opentelemetry.io/collector/scraper/scrapererror"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/spathlavath/opentelemetry-collector-contrib/extension/lograngecache"
	"github.com/spathlavath/opentelemetry-collector-contrib/receiver/oraclelogminerreceiver/client"
	"github.com/spathlavath/opentelemetry-collector-contrib/receiver/oraclelogminerreceiver/internal/metadata"
	"github.com/spathlavath/opentelemetry-collector-contrib/receiver/oraclelogminerreceiver/logrange"
	"github.com/spathlavath/opentelemetry-collector-contrib/receiver/oraclelogminerreceiver/queries"
	"github.com/spathlavath/opentelemetry-collector-contrib/receiver/oraclelogminerreceiver/scrapers"
)

var (
	errNotStarted          = errors.New("database client not initialized")
	errCacheNotFound       = errors.New("log range cache extension not found")
	errCacheWrongExtension = errors.New("extension is not a log range cache")
)

type logMinerScraper struct {
	supplementalLoggingScraper *scrapers.SupplementalLoggingScraper
	redoLogScraper             *scrapers.RedoLogScraper
	logRangeScraper            *scrapers.LogRangeScraper

	db                 *sql.DB
	client             client.LogMinerClient
	mb                 *metadata.MetricsBuilder
	dbProviderFunc     dbProviderFunc
	clientProviderFunc clientProviderFunc
	logger             *zap.Logger
	id                 component.ID
	config             *Config
	instanceName       string
	hostName           string

	cacheExt      *lograngecache.Extension
	cache         *lograngecache.LogRangeCache
	lastPublished time.Time
}

func newLogMinerScraper(params receiver.Settings, cfg *Config, providerFunc dbProviderFunc, clientFunc clientProviderFunc) (scraper.Metrics, error) {
	s := newScraperState(params, cfg, providerFunc, clientFunc)
	return scraper.NewMetrics(s.scrape, scraper.WithStart(s.start), scraper.WithShutdown(s.shutdown))
}

func newScraperState(params receiver.Settings, cfg *Config, providerFunc dbProviderFunc, clientFunc clientProviderFunc) *logMinerScraper {
	instanceName, hostName := cfg.instanceAndHost()
	return &logMinerScraper{
		mb:                 metadata.NewMetricsBuilder(cfg.MetricsBuilderConfig, params),
		dbProviderFunc:     providerFunc,
		clientProviderFunc: clientFunc,
		logger:             params.Logger,
		id:                 params.ID,
		config:             cfg,
		instanceName:       instanceName,
		hostName:           hostName,
	}
}

func (s *logMinerScraper) start(ctx context.Context, host component.Host) error {
	var err error
	s.db, err = s.dbProviderFunc()
	if err != nil {
		return fmt.Errorf("failed to open db connection: %w", err)
	}
	s.client = s.clientProviderFunc(s.db)

	if s.config.LogRangeCache != nil {
		if s.cacheExt, err = lookupCache(host, *s.config.LogRangeCache); err != nil {
			return err
		}
		s.cache = s.cacheExt.GetOrCreateCache(s.id)
	}

	mbc := s.config.MetricsBuilderConfig
	resolver := logrange.NewResolver(s.client, s.config.resolverConfig(), s.logger)

	offset := scrapers.LookbackOffset(resolver, s.config.OffsetLookback)
	if position := s.config.offsetScn(); !position.IsNull() {
		offset = scrapers.FixedOffset(position)
	}

	s.logRangeScraper = scrapers.NewLogRangeScraper(s.client, resolver, offset, s.mb, s.logger, s.instanceName, mbc)
	s.supplementalLoggingScraper = scrapers.NewSupplementalLoggingScraper(s.client, s.mb, s.logger, s.instanceName, mbc, s.config.tableRefs())
	s.redoLogScraper = scrapers.NewRedoLogScraper(s.client, s.mb, s.logger, s.instanceName, mbc,
		queries.DestinationFromConfig(s.config.ArchiveDestinationName))

	s.logger.Info("Oracle LogMiner scrapers initialized",
		zap.String("instance", s.instanceName),
		zap.String("offset_scn", s.config.OffsetScn),
		zap.Duration("offset_lookback", s.config.OffsetLookback),
		zap.Bool("archive_log_only_mode", s.config.ArchiveLogOnlyMode),
		zap.Bool("log_range_cache", s.cache != nil))

	if err := s.client.Ping(ctx); err != nil {
		s.logger.Warn("Oracle database not reachable yet", zap.Error(err))
	}

	return nil
}

func lookupCache(host component.Host, extID component.ID) (*lograngecache.Extension, error) {
	ext, ok := host.GetExtensions()[extID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", errCacheNotFound, extID)
	}
	cacheExt, ok := ext.(*lograngecache.Extension)
	if !ok {
		return nil, fmt.Errorf("%w: %s", errCacheWrongExtension, extID)
	}
	return cacheExt, nil
}

func (s *logMinerScraper) scrape(ctx context.Context) (pmetric.Metrics, error) {
	if s.client == nil {
		return pmetric.NewMetrics(), errNotStarted
	}

	s.logger.Debug("Begin Oracle LogMiner scrape")

	if s.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()
	}

	var scrapeErrors []error
	scrapeErrors = append(scrapeErrors, s.supplementalLoggingScraper.ScrapeSupplementalLogging(ctx)...)
	scrapeErrors = append(scrapeErrors, s.redoLogScraper.ScrapeRedoLogs(ctx)...)
	scrapeErrors = append(scrapeErrors, s.logRangeScraper.ScrapeLogRange(ctx)...)

	s.publishRange()

	rb := s.mb.NewResourceBuilder()
	rb.SetOracleInstanceName(s.instanceName)
	rb.SetHostName(s.hostName)
	out := s.mb.Emit(metadata.WithResource(rb.Emit()))

	s.logger.Debug("Done Oracle LogMiner scraping", zap.Int("total_errors", len(scrapeErrors)))
	if len(scrapeErrors) > 0 {
		return out, scrapererror.NewPartialScrapeError(multierr.Combine(scrapeErrors...), len(scrapeErrors))
	}
	return out, nil
}

// publishRange pushes a newly resolved range to the cache extension.
func (s *logMinerScraper) publishRange() {
	if s.cache == nil {
		return
	}
	r := s.logRangeScraper.LastRange()
	if r == nil || r.ResolvedAt.Equal(s.lastPublished) {
		return
	}
	if s.cache.Update(r) {
		s.logger.Info("Log range changed",
			zap.String("offset", r.Offset.String()),
			zap.Strings("files", r.FileNames()),
			zap.String("instance", s.instanceName))
	}
	s.lastPublished = r.ResolvedAt
}

func (s *logMinerScraper) shutdown(_ context.Context) error {
	if s.cacheExt != nil {
		s.cacheExt.RemoveCache(s.id)
	}
	if s.client != nil {
		return s.client.Close()
	}
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
