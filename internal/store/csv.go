package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/wonny/divscreen/internal/contracts"
)

// csvHeader is the required column layout for import and export.
// ManualFairValue 0 means "use the computed fair value".
var csvHeader = []string{
	"Ticker", "BVPS", "EPS", "ROE", "DivTTM", "DPR",
	"Interim", "Final", "ManualFairValue", "LastUpdated",
}

const csvTimeLayout = time.RFC3339

// RowError reports why one CSV row was rejected
type RowError struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

// ImportResult separates accepted records from rejected rows. A
// malformed row is rejected whole with a reason, never partially
// applied; valid rows are unaffected by invalid neighbours.
type ImportResult struct {
	Records  []contracts.FundamentalsRecord `json:"records"`
	Rejected []RowError                     `json:"rejected,omitempty"`
}

// ReadCSV parses fundamentals records from a flat CSV stream. The
// header row is required and must match the export layout. Duplicate
// tickers within one file reject the later row.
func ReadCSV(r io.Reader) (*ImportResult, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read CSV header: %w", err)
	}
	if err := checkHeader(header); err != nil {
		return nil, err
	}

	result := &ImportResult{}
	seen := make(map[string]bool)

	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			result.Rejected = append(result.Rejected, RowError{Line: line, Reason: err.Error()})
			continue
		}

		record, err := parseRow(row)
		if err != nil {
			result.Rejected = append(result.Rejected, RowError{Line: line, Reason: err.Error()})
			continue
		}

		if seen[record.Ticker] {
			result.Rejected = append(result.Rejected, RowError{
				Line:   line,
				Reason: fmt.Sprintf("duplicate ticker %s", record.Ticker),
			})
			continue
		}
		seen[record.Ticker] = true

		result.Records = append(result.Records, *record)
	}

	return result, nil
}

// WriteCSV exports records in the import layout, header row first
func WriteCSV(w io.Writer, records []contracts.FundamentalsRecord) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("write CSV header: %w", err)
	}

	for _, r := range records {
		row := []string{
			r.Ticker,
			formatMetric(r.BVPS),
			formatMetric(r.EPS),
			formatMetric(r.ROE),
			formatMetric(r.DivTTM),
			formatMetric(r.DPR),
			r.Interim,
			r.Final,
			strconv.FormatFloat(r.ManualFairValue, 'f', -1, 64),
			formatTime(r.LastUpdated),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write CSV row for %s: %w", r.Ticker, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func checkHeader(header []string) error {
	if len(header) != len(csvHeader) {
		return fmt.Errorf("bad CSV header: expected %d columns, got %d", len(csvHeader), len(header))
	}
	for i, want := range csvHeader {
		if !strings.EqualFold(strings.TrimSpace(header[i]), want) {
			return fmt.Errorf("bad CSV header: column %d is %q, want %q", i+1, header[i], want)
		}
	}
	return nil
}

func parseRow(row []string) (*contracts.FundamentalsRecord, error) {
	if len(row) != len(csvHeader) {
		return nil, fmt.Errorf("expected %d columns, got %d", len(csvHeader), len(row))
	}

	record := &contracts.FundamentalsRecord{
		Ticker:  contracts.NormalizeTicker(row[0]),
		Interim: strings.TrimSpace(row[6]),
		Final:   strings.TrimSpace(row[7]),
	}

	var err error
	if record.BVPS, err = parseMetric(row[1]); err != nil {
		return nil, fmt.Errorf("BVPS: %w", err)
	}
	if record.EPS, err = parseMetric(row[2]); err != nil {
		return nil, fmt.Errorf("EPS: %w", err)
	}
	if record.ROE, err = parseMetric(row[3]); err != nil {
		return nil, fmt.Errorf("ROE: %w", err)
	}
	if record.DivTTM, err = parseMetric(row[4]); err != nil {
		return nil, fmt.Errorf("DivTTM: %w", err)
	}
	if record.DPR, err = parseMetric(row[5]); err != nil {
		return nil, fmt.Errorf("DPR: %w", err)
	}

	if mfv := strings.TrimSpace(row[8]); mfv != "" {
		record.ManualFairValue, err = strconv.ParseFloat(mfv, 64)
		if err != nil {
			return nil, fmt.Errorf("ManualFairValue: %w", err)
		}
	}

	if ts := strings.TrimSpace(row[9]); ts != "" {
		record.LastUpdated, err = time.Parse(csvTimeLayout, ts)
		if err != nil {
			return nil, fmt.Errorf("LastUpdated: %w", err)
		}
	}

	if err := record.Validate(); err != nil {
		return nil, err
	}

	return record, nil
}

// parseMetric reads an optional numeric cell; empty and "N/A" mean
// undefined, anything else must parse as a float
func parseMetric(cell string) (contracts.Metric, error) {
	cell = strings.TrimSpace(cell)
	if cell == "" || strings.EqualFold(cell, "N/A") {
		return contracts.Metric{}, nil
	}

	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return contracts.Metric{}, fmt.Errorf("not a number: %q", cell)
	}
	return contracts.Defined(v), nil
}

func formatMetric(m contracts.Metric) string {
	if !m.Valid {
		return ""
	}
	return strconv.FormatFloat(m.Value, 'f', -1, 64)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(csvTimeLayout)
}
