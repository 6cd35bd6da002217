package quotes

import (
	"context"
	"time"

	"github.com/wonny/divscreen/internal/contracts"
	"github.com/wonny/divscreen/pkg/config"
	"github.com/wonny/divscreen/pkg/logger"
	"github.com/wonny/divscreen/pkg/redis"
)

// Service resolves market quotes for screening runs. Prices and sectors
// are cached in Redis with independent TTLs so a screening run only hits
// Yahoo for tickers whose cache entries expired.
type Service struct {
	provider  contracts.QuoteProvider
	cache     *redis.Cache
	logger    *logger.Logger
	priceTTL  time.Duration
	sectorTTL time.Duration
}

// NewService creates a quote service
func NewService(cfg *config.Config, provider contracts.QuoteProvider, cache *redis.Cache, log *logger.Logger) *Service {
	return &Service{
		provider:  provider,
		cache:     cache,
		logger:    log,
		priceTTL:  cfg.Quotes.PriceTTL,
		sectorTTL: cfg.Quotes.SectorTTL,
	}
}

// Snapshot resolves quotes for the given tickers. A failed lookup for one
// ticker never fails the batch: the ticker is simply absent from the book
// and its record screens without a price.
func (s *Service) Snapshot(ctx context.Context, tickers []string) contracts.QuoteBook {
	book := make(contracts.QuoteBook, len(tickers))

	for _, ticker := range tickers {
		ticker = contracts.NormalizeTicker(ticker)

		quote, err := s.quoteFor(ctx, ticker)
		if err != nil {
			s.logger.WithError(err).WithField("ticker", ticker).Warn("Quote unavailable, screening without price")
			continue
		}

		quote.Sector = s.sectorFor(ctx, ticker)
		book.Set(*quote)
	}

	s.logger.WithFields(map[string]interface{}{
		"requested": len(tickers),
		"resolved":  len(book),
	}).Debug("Quote snapshot complete")

	return book
}

// Refresh force-fetches quotes for the given tickers and rewrites the
// cache, so the next screening run is served warm. Returns the number of
// tickers refreshed.
func (s *Service) Refresh(ctx context.Context, tickers []string) int {
	refreshed := 0

	for _, ticker := range tickers {
		ticker = contracts.NormalizeTicker(ticker)

		quote, err := s.provider.Quote(ctx, ticker)
		if err != nil {
			s.logger.WithError(err).WithField("ticker", ticker).Warn("Quote refresh failed")
			continue
		}
		if err := s.cache.Set(ctx, redis.QuoteKey(ticker), quote, s.priceTTL); err != nil {
			s.logger.WithError(err).WithField("ticker", ticker).Warn("Quote cache write failed")
		}

		if sector, err := s.provider.Sector(ctx, ticker); err == nil {
			if err := s.cache.Set(ctx, redis.SectorKey(ticker), sector, s.sectorTTL); err != nil {
				s.logger.WithError(err).WithField("ticker", ticker).Warn("Sector cache write failed")
			}
		}

		refreshed++
	}

	return refreshed
}

// quoteFor returns the cached quote or fetches and caches a fresh one
func (s *Service) quoteFor(ctx context.Context, ticker string) (*contracts.Quote, error) {
	var cached contracts.Quote
	if hit, err := s.cache.Get(ctx, redis.QuoteKey(ticker), &cached); err == nil && hit {
		return &cached, nil
	}

	quote, err := s.provider.Quote(ctx, ticker)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, redis.QuoteKey(ticker), quote, s.priceTTL); err != nil {
		s.logger.WithError(err).WithField("ticker", ticker).Warn("Quote cache write failed")
	}

	return quote, nil
}

// sectorFor returns the cached sector or scrapes a fresh one. Lookup
// failures degrade to an empty sector, which renders as "Unknown".
func (s *Service) sectorFor(ctx context.Context, ticker string) string {
	var cached string
	if hit, err := s.cache.Get(ctx, redis.SectorKey(ticker), &cached); err == nil && hit {
		return cached
	}

	sector, err := s.provider.Sector(ctx, ticker)
	if err != nil {
		s.logger.WithError(err).WithField("ticker", ticker).Debug("Sector unavailable")
		return ""
	}

	if err := s.cache.Set(ctx, redis.SectorKey(ticker), sector, s.sectorTTL); err != nil {
		s.logger.WithError(err).WithField("ticker", ticker).Warn("Sector cache write failed")
	}

	return sector
}
