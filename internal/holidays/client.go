package holidays

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// PublicHoliday is one record from the Nager.Date API. LocalName is the
// holiday's name in the country's language; Name is the English fallback.
type PublicHoliday struct {
	Date      string `json:"date"`
	LocalName string `json:"localName"`
	Name      string `json:"name"`
}

// Client fetches public holidays from a Nager.Date-compatible API.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// HolidayNames returns the names of holidays falling exactly on date
// (YYYY-MM-DD), preferring the local name over the English one. The year
// segment is whatever precedes the first dash, matching how the upstream
// endpoint is addressed.
func (c *Client) HolidayNames(ctx context.Context, date, countryCode string) ([]string, error) {
	year := date
	if idx := strings.Index(date, "-"); idx != -1 {
		year = date[:idx]
	}

	endpoint := fmt.Sprintf("%s/api/v3/PublicHolidays/%s/%s", strings.TrimRight(c.BaseURL, "/"), year, countryCode)
	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("holiday request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("holiday API returned status %d: %s", resp.StatusCode, string(body))
	}

	var records []PublicHoliday
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode holiday response: %w", err)
	}

	names := []string{}
	for _, rec := range records {
		if rec.Date != date {
			continue
		}
		if rec.LocalName != "" {
			names = append(names, rec.LocalName)
		} else if rec.Name != "" {
			names = append(names, rec.Name)
		}
	}
	return names, nil
}
