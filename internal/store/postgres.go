package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wonny/divscreen/internal/contracts"
)

// ErrNotFound is returned when a ticker has no stored record
var ErrNotFound = errors.New("record not found")

// PostgresStore implements contracts.RecordStore on a pgx pool.
// The ticker is the primary key; upserting an existing ticker updates
// it in place.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new record store
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// List retrieves every fundamentals record, ordered by ticker
func (s *PostgresStore) List(ctx context.Context) ([]contracts.FundamentalsRecord, error) {
	query := `
		SELECT ticker, bvps, eps, roe, div_ttm, dpr,
		       COALESCE(interim, ''), COALESCE(final, ''),
		       COALESCE(manual_fair_value, 0), last_updated
		FROM stocks
		ORDER BY ticker
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	var records []contracts.FundamentalsRecord
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		records = append(records, *record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}

	return records, nil
}

// Get retrieves one record by ticker
func (s *PostgresStore) Get(ctx context.Context, ticker string) (*contracts.FundamentalsRecord, error) {
	query := `
		SELECT ticker, bvps, eps, roe, div_ttm, dpr,
		       COALESCE(interim, ''), COALESCE(final, ''),
		       COALESCE(manual_fair_value, 0), last_updated
		FROM stocks
		WHERE ticker = $1
	`

	record, err := scanRecord(s.pool.QueryRow(ctx, query, contracts.NormalizeTicker(ticker)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get record: %w", err)
	}

	return record, nil
}

// Upsert creates or updates a record. The ticker is the conflict key,
// so a second create of the same ticker becomes an update.
func (s *PostgresStore) Upsert(ctx context.Context, record *contracts.FundamentalsRecord) error {
	if err := record.Validate(); err != nil {
		return fmt.Errorf("invalid record: %w", err)
	}

	record.Ticker = contracts.NormalizeTicker(record.Ticker)
	if record.LastUpdated.IsZero() {
		record.LastUpdated = time.Now()
	}

	query := `
		INSERT INTO stocks (
			ticker, bvps, eps, roe, div_ttm, dpr,
			interim, final, manual_fair_value, last_updated
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (ticker) DO UPDATE SET
			bvps = EXCLUDED.bvps,
			eps = EXCLUDED.eps,
			roe = EXCLUDED.roe,
			div_ttm = EXCLUDED.div_ttm,
			dpr = EXCLUDED.dpr,
			interim = EXCLUDED.interim,
			final = EXCLUDED.final,
			manual_fair_value = EXCLUDED.manual_fair_value,
			last_updated = EXCLUDED.last_updated
	`

	_, err := s.pool.Exec(ctx, query,
		record.Ticker,
		record.BVPS.Ptr(), record.EPS.Ptr(), record.ROE.Ptr(),
		record.DivTTM.Ptr(), record.DPR.Ptr(),
		record.Interim, record.Final,
		record.ManualFairValue, record.LastUpdated,
	)
	if err != nil {
		return fmt.Errorf("upsert record: %w", err)
	}
	return nil
}

// Delete removes a record by ticker
func (s *PostgresStore) Delete(ctx context.Context, ticker string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM stocks WHERE ticker = $1`,
		contracts.NormalizeTicker(ticker))
	if err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// scanRecord reads one row into a record, mapping SQL NULLs on numeric
// columns to undefined metrics
func scanRecord(row pgx.Row) (*contracts.FundamentalsRecord, error) {
	var (
		record                      contracts.FundamentalsRecord
		bvps, eps, roe, divTTM, dpr *float64
	)

	err := row.Scan(
		&record.Ticker, &bvps, &eps, &roe, &divTTM, &dpr,
		&record.Interim, &record.Final,
		&record.ManualFairValue, &record.LastUpdated,
	)
	if err != nil {
		return nil, err
	}

	record.BVPS = contracts.MetricFromPtr(bvps)
	record.EPS = contracts.MetricFromPtr(eps)
	record.ROE = contracts.MetricFromPtr(roe)
	record.DivTTM = contracts.MetricFromPtr(divTTM)
	record.DPR = contracts.MetricFromPtr(dpr)

	return &record, nil
}
