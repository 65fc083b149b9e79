package wger

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/claude/wgerfetch/internal/models"
)

// Listing endpoints, relative to the API base URL.
const (
	ExerciseInfoPath     = "/exerciseinfo/"
	ExerciseCategoryPath = "/exercisecategory/"
	MusclePath           = "/muscle/"
	EquipmentPath        = "/equipment/"
)

// StatusError is returned when a page request gets a non-2xx response.
type StatusError struct {
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s failed (status %d): %s", e.URL, e.StatusCode, e.Body)
}

// Client fetches listings from a wger server.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// NewClient creates a client for the API rooted at baseURL (e.g. https://wger.de/api/v2).
// A zero timeout leaves requests unbounded.
func NewClient(baseURL, userAgent string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  userAgent,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// URL returns the absolute URL of a listing endpoint.
func (c *Client) URL(path string) string {
	return c.baseURL + path
}

// FetchAll follows the next links starting at url and returns the results of
// every page in order. Any failed page aborts the whole fetch.
func (c *Client) FetchAll(ctx context.Context, url string) ([]json.RawMessage, error) {
	var results []json.RawMessage
	for url != "" {
		page, err := c.fetchPage(ctx, url)
		if err != nil {
			return nil, err
		}
		results = append(results, page.Results...)

		url = ""
		if page.Next != nil {
			url = *page.Next
		}
	}
	return results, nil
}

// FetchExercises returns every raw exerciseinfo record.
func (c *Client) FetchExercises(ctx context.Context) ([]json.RawMessage, error) {
	return c.FetchAll(ctx, c.URL(ExerciseInfoPath))
}

// namedItem is the common shape of the category, muscle and equipment listings.
type namedItem struct {
	Name string `json:"name"`
}

// FetchNames returns the name of every item in a category, muscle or equipment listing.
func (c *Client) FetchNames(ctx context.Context, path string) ([]string, error) {
	raw, err := c.FetchAll(ctx, c.URL(path))
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(raw))
	for _, r := range raw {
		var item namedItem
		if err := json.Unmarshal(r, &item); err != nil {
			return nil, fmt.Errorf("decoding %s item: %w", path, err)
		}
		names = append(names, item.Name)
	}
	return names, nil
}

func (c *Client) fetchPage(ctx context.Context, url string) (*models.WgerPage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode, Body: string(body)}
	}

	var page models.WgerPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("decoding page %s: %w", url, err)
	}
	// Absent and null results both decode to nil; an empty list does not.
	if page.Results == nil {
		return nil, fmt.Errorf("decoding page %s: missing results", url)
	}
	return &page, nil
}
