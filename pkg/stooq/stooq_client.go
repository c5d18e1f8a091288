package stooq

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
)

const defaultBaseUrl = "https://stooq.com"

// Client downloads daily OHLC history from stooq.com, which serves
// plain CSV and needs no API key. Symbols follow stooq notation, e.g.
// "aapl.us".
type Client struct {
	HttpClient *http.Client
	BaseUrl    string
}

func NewClient() *Client {
	return &Client{
		HttpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		BaseUrl: defaultBaseUrl,
	}
}

type DailyBar struct {
	Date   string  `csv:"Date"`
	Open   float64 `csv:"Open"`
	High   float64 `csv:"High"`
	Low    float64 `csv:"Low"`
	Close  float64 `csv:"Close"`
	Volume float64 `csv:"Volume"`
}

func (c *Client) GetDailyHistory(ctx context.Context, symbol string, start, end time.Time) ([]DailyBar, error) {
	url := fmt.Sprintf(
		"%s/q/d/l/?s=%s&d1=%s&d2=%s&i=d",
		c.BaseUrl,
		strings.ToLower(symbol),
		start.Format("20060102"),
		end.Format("20060102"),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	response, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}

	if response.StatusCode != 200 {
		return nil, fmt.Errorf("failed with status code %d: %s", response.StatusCode, string(responseBytes))
	}

	// stooq reports unknown symbols and rate limits as a 200 with a
	// plain-text message instead of a CSV header
	if !strings.HasPrefix(strings.TrimSpace(string(responseBytes)), "Date,") {
		return nil, fmt.Errorf("no csv data for %s: %s", symbol, strings.TrimSpace(string(responseBytes)))
	}

	bars := []DailyBar{}
	if err := gocsv.UnmarshalBytes(responseBytes, &bars); err != nil {
		return nil, fmt.Errorf("failed to parse csv for %s: %w", symbol, err)
	}

	return bars, nil
}
