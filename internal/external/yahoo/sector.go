package yahoo

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Sector scrapes the company sector from the quote profile page.
func (c *Client) Sector(ctx context.Context, ticker string) (string, error) {
	symbol := c.Symbol(ticker)
	fullURL := fmt.Sprintf(
		"%s/quote/%s/profile",
		c.profileBaseURL, url.PathEscape(symbol),
	)

	body, err := c.fetch(ctx, fullURL)
	if err != nil {
		return "", fmt.Errorf("fetch profile for %s: %w", symbol, err)
	}

	sector, err := parseProfileSector(body)
	if err != nil {
		return "", fmt.Errorf("parse profile for %s: %w", symbol, err)
	}

	c.logger.WithFields(map[string]interface{}{
		"ticker": ticker,
		"sector": sector,
	}).Debug("Fetched sector")

	return sector, nil
}

// parseProfileSector extracts the sector name from profile page HTML.
// Yahoo has shipped several profile layouts; try the current markup
// first and fall back to label scanning for older ones.
func parseProfileSector(body []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("parse HTML failed: %w", err)
	}

	// Current layout links the sector to its screener page.
	if sector := strings.TrimSpace(doc.Find(`a[href*="/sectors/"]`).First().Text()); sector != "" {
		return sector, nil
	}

	// Older layouts label it with a "Sector" span followed by the value.
	var sector string
	doc.Find("span").EachWithBreak(func(i int, s *goquery.Selection) bool {
		label := strings.TrimSpace(s.Text())
		if label == "Sector" || label == "Sector(s)" {
			sector = strings.TrimSpace(s.Parent().Find("span").Last().Text())
			return sector == "" || sector == label
		}
		return true
	})
	if sector != "" && sector != "Sector" && sector != "Sector(s)" {
		return sector, nil
	}

	return "", fmt.Errorf("sector not found in profile page")
}
