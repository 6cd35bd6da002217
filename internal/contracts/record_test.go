package contracts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTicker(t *testing.T) {
	assert.Equal(t, "BBCA", NormalizeTicker(" bbca "))
	assert.Equal(t, "TLKM", NormalizeTicker("TLKM"))
	assert.Equal(t, "", NormalizeTicker("   "))
}

func TestRecordValidate(t *testing.T) {
	tests := []struct {
		name    string
		record  FundamentalsRecord
		wantErr bool
	}{
		{
			name:   "valid record",
			record: FundamentalsRecord{Ticker: "BBCA", Interim: "June", Final: "December"},
		},
		{
			name:   "empty months are fine",
			record: FundamentalsRecord{Ticker: "TLKM"},
		},
		{
			name:    "missing ticker",
			record:  FundamentalsRecord{Interim: "June"},
			wantErr: true,
		},
		{
			name:    "bad interim month",
			record:  FundamentalsRecord{Ticker: "BBCA", Interim: "Juneteenth"},
			wantErr: true,
		},
		{
			name:    "bad final month",
			record:  FundamentalsRecord{Ticker: "BBCA", Final: "13"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.record.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseMonth(t *testing.T) {
	m, ok := ParseMonth("january")
	assert.True(t, ok)
	assert.Equal(t, time.January, m)

	m, ok = ParseMonth(" December ")
	assert.True(t, ok)
	assert.Equal(t, time.December, m)

	_, ok = ParseMonth("Smarch")
	assert.False(t, ok)
}

func TestQuoteBook(t *testing.T) {
	book := QuoteBook{}
	book.Set(Quote{Ticker: "bbca", Price: 9200, Sector: "Financials"})
	book.Set(Quote{Ticker: "FREN", Price: 0})

	price := book.Price("BBCA")
	assert.True(t, price.Valid)
	assert.Equal(t, 9200.0, price.Value)

	assert.False(t, book.Price("FREN").Valid, "zero price is unavailable")
	assert.False(t, book.Price("MISSING").Valid)

	assert.Equal(t, "Financials", book.Sector("bbca"))
	assert.Equal(t, "Unknown", book.Sector("MISSING"))
}
