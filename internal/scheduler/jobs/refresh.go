package jobs

import (
	"context"
	"fmt"

	"github.com/wonny/divscreen/internal/contracts"
	"github.com/wonny/divscreen/internal/quotes"
	"github.com/wonny/divscreen/pkg/logger"
)

// QuoteRefreshJob keeps the quote cache warm for every tracked ticker,
// so screening runs during market hours answer from cache.
type QuoteRefreshJob struct {
	store    contracts.RecordStore
	quotes   *quotes.Service
	schedule string
	logger   *logger.Logger
}

// NewQuoteRefreshJob creates a new quote refresh job
func NewQuoteRefreshJob(store contracts.RecordStore, quoteSvc *quotes.Service, schedule string, log *logger.Logger) *QuoteRefreshJob {
	return &QuoteRefreshJob{
		store:    store,
		quotes:   quoteSvc,
		schedule: schedule,
		logger:   log,
	}
}

// Name returns the job name
func (j *QuoteRefreshJob) Name() string {
	return "quote_refresh"
}

// Schedule returns the cron schedule expression
func (j *QuoteRefreshJob) Schedule() string {
	return j.schedule
}

// Run refreshes quotes for every stored ticker
func (j *QuoteRefreshJob) Run(ctx context.Context) error {
	records, err := j.store.List(ctx)
	if err != nil {
		return fmt.Errorf("list records: %w", err)
	}

	if len(records) == 0 {
		j.logger.Debug("No records to refresh")
		return nil
	}

	tickers := make([]string, 0, len(records))
	for _, rec := range records {
		tickers = append(tickers, rec.Ticker)
	}

	refreshed := j.quotes.Refresh(ctx, tickers)

	j.logger.WithFields(map[string]interface{}{
		"tickers":   len(tickers),
		"refreshed": refreshed,
	}).Info("Quote refresh complete")

	return nil
}
