package yahoo

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/divscreen/pkg/config"
	"github.com/wonny/divscreen/pkg/httputil"
	"github.com/wonny/divscreen/pkg/logger"
)

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		LogLevel:  "error",
		LogFormat: "json",
		Yahoo: config.YahooConfig{
			QuoteBaseURL:   baseURL,
			ProfileBaseURL: baseURL,
			ExchangeSuffix: ".JK",
			RequestsPerSec: 100,
		},
	}
}

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	cfg := testConfig(baseURL)
	log := logger.New(cfg)
	httpClient := httputil.New(cfg, log).DisableRetry()
	return NewClient(cfg, httpClient, log)
}

func TestSymbolAppendsSuffix(t *testing.T) {
	c := newTestClient(t, "http://example.invalid")

	assert.Equal(t, "BBCA.JK", c.Symbol("BBCA"))
	assert.Equal(t, "TLKM.JK", c.Symbol(" tlkm "))
}

func TestQuoteFetchesRegularMarketPrice(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		fmt.Fprint(w, `{"chart":{"result":[{"meta":{"symbol":"BBCA.JK","regularMarketPrice":9625.0}}],"error":null}}`)
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	quote, err := c.Quote(context.Background(), "BBCA")
	require.NoError(t, err)

	assert.Equal(t, "/v8/finance/chart/BBCA.JK", gotPath)
	assert.Equal(t, "BBCA", quote.Ticker)
	assert.Equal(t, 9625.0, quote.Price)
	assert.False(t, quote.FetchedAt.IsZero())
}

func TestQuoteNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found, symbol may be delisted"}}}`)
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	_, err := c.Quote(context.Background(), "ZZZZ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "symbol may be delisted")
}

func TestParseChartPrice(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    float64
		wantErr bool
	}{
		{
			name: "meta price",
			body: `{"chart":{"result":[{"meta":{"regularMarketPrice":1234.5}}],"error":null}}`,
			want: 1234.5,
		},
		{
			name: "falls back to last close",
			body: `{"chart":{"result":[{"meta":{},"indicators":{"quote":[{"close":[100.0,101.0,null]}]}}],"error":null}}`,
			want: 101.0,
		},
		{
			name:    "zero meta price and no closes",
			body:    `{"chart":{"result":[{"meta":{"regularMarketPrice":0}}],"error":null}}`,
			wantErr: true,
		},
		{
			name:    "error payload",
			body:    `{"chart":{"result":null,"error":{"code":"Not Found","description":"delisted"}}}`,
			wantErr: true,
		},
		{
			name:    "empty body",
			body:    `{}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseChartPrice([]byte(tt.body))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseProfileSector(t *testing.T) {
	t.Run("sector link", func(t *testing.T) {
		html := `<html><body><dl><dt>Sector:</dt><dd><a href="/sectors/financial-services/">Financial Services</a></dd></dl></body></html>`
		sector, err := parseProfileSector([]byte(html))
		require.NoError(t, err)
		assert.Equal(t, "Financial Services", sector)
	})

	t.Run("labelled span layout", func(t *testing.T) {
		html := `<html><body><p><span>Sector</span><span>Energy</span></p></body></html>`
		sector, err := parseProfileSector([]byte(html))
		require.NoError(t, err)
		assert.Equal(t, "Energy", sector)
	})

	t.Run("missing sector", func(t *testing.T) {
		html := `<html><body><p>Nothing here</p></body></html>`
		_, err := parseProfileSector([]byte(html))
		require.Error(t, err)
	})
}

func TestSectorScrapesProfilePage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/quote/BBCA.JK/profile", r.URL.Path)
		fmt.Fprint(w, `<html><body><a href="/sectors/financial-services/">Financial Services</a></body></html>`)
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	sector, err := c.Sector(context.Background(), "BBCA")
	require.NoError(t, err)
	assert.Equal(t, "Financial Services", sector)
}
