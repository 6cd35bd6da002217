package yahoo

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/tidwall/gjson"

	"github.com/wonny/divscreen/internal/contracts"
)

// Quote fetches the latest price for a ticker from the chart API.
// The sector is resolved separately; see Sector.
func (c *Client) Quote(ctx context.Context, ticker string) (*contracts.Quote, error) {
	symbol := c.Symbol(ticker)
	fullURL := fmt.Sprintf(
		"%s/v8/finance/chart/%s?interval=1d&range=1d",
		c.quoteBaseURL, url.PathEscape(symbol),
	)

	body, err := c.fetch(ctx, fullURL)
	if err != nil {
		return nil, fmt.Errorf("fetch quote for %s: %w", symbol, err)
	}

	price, err := parseChartPrice(body)
	if err != nil {
		return nil, fmt.Errorf("parse quote for %s: %w", symbol, err)
	}

	c.logger.WithFields(map[string]interface{}{
		"ticker": ticker,
		"symbol": symbol,
		"price":  price,
	}).Debug("Fetched quote")

	return &contracts.Quote{
		Ticker:    contracts.NormalizeTicker(ticker),
		Price:     price,
		FetchedAt: time.Now(),
	}, nil
}

// parseChartPrice extracts the regular market price from a chart API
// response. Falls back to the last close of the day when the meta block
// carries no price.
func parseChartPrice(body []byte) (float64, error) {
	if errDesc := gjson.GetBytes(body, "chart.error.description"); errDesc.Exists() {
		return 0, fmt.Errorf("chart API error: %s", errDesc.String())
	}

	result := gjson.GetBytes(body, "chart.result.0")
	if !result.Exists() {
		return 0, fmt.Errorf("chart API returned no result")
	}

	if price := result.Get("meta.regularMarketPrice"); price.Exists() && price.Float() > 0 {
		return price.Float(), nil
	}

	// Fallback: last non-null close in the day's candles.
	closes := result.Get("indicators.quote.0.close").Array()
	for i := len(closes) - 1; i >= 0; i-- {
		if closes[i].Type != gjson.Null && closes[i].Float() > 0 {
			return closes[i].Float(), nil
		}
	}

	return 0, fmt.Errorf("no usable price in chart response")
}
