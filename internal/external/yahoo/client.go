package yahoo

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/time/rate"

	"github.com/wonny/divscreen/internal/contracts"
	"github.com/wonny/divscreen/pkg/config"
	"github.com/wonny/divscreen/pkg/httputil"
	"github.com/wonny/divscreen/pkg/logger"
)

// userAgent mimics a desktop browser; Yahoo rejects the Go default.
const userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36"

// Client handles communication with Yahoo Finance.
// All Yahoo Finance calls go through this client.
type Client struct {
	httpClient     *httputil.Client
	logger         *logger.Logger
	quoteBaseURL   string
	profileBaseURL string
	suffix         string
	limiter        *rate.Limiter
}

var _ contracts.QuoteProvider = (*Client)(nil)

// NewClient creates a new Yahoo Finance client
func NewClient(cfg *config.Config, httpClient *httputil.Client, log *logger.Logger) *Client {
	return &Client{
		httpClient:     httpClient,
		logger:         log,
		quoteBaseURL:   cfg.Yahoo.QuoteBaseURL,
		profileBaseURL: cfg.Yahoo.ProfileBaseURL,
		suffix:         cfg.Yahoo.ExchangeSuffix,
		limiter:        rate.NewLimiter(rate.Limit(cfg.Yahoo.RequestsPerSec), 1),
	}
}

// Symbol converts a bare ticker to the exchange-qualified Yahoo symbol.
func (c *Client) Symbol(ticker string) string {
	return contracts.NormalizeTicker(ticker) + c.suffix
}

// fetch performs a throttled GET and returns the response body
func (c *Client) fetch(ctx context.Context, fullURL string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait failed: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request failed: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "*/*")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body failed: %w", err)
	}

	return body, nil
}
