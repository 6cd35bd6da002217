package contracts

import "context"

// RecordStore is the external persistence collaborator for fundamentals
// records. The screening core only ever reads it; writes come from the
// management endpoints and CSV import.
type RecordStore interface {
	List(ctx context.Context) ([]FundamentalsRecord, error)
	Get(ctx context.Context, ticker string) (*FundamentalsRecord, error)
	Upsert(ctx context.Context, record *FundamentalsRecord) error
	Delete(ctx context.Context, ticker string) error
}

// QuoteProvider is the external market-data collaborator. A failed fetch
// for one ticker must not fail the batch; callers treat per-ticker errors
// as "price unavailable" and a failed sector lookup as "Unknown".
type QuoteProvider interface {
	Quote(ctx context.Context, ticker string) (*Quote, error)
	Sector(ctx context.Context, ticker string) (string, error)
}
