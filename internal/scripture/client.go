package scripture

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"versewake/internal/config"
)

// Client fetches verse passages from the scripture REST API.
type Client struct {
	// baseURL is the API root, e.g. "https://api.scripture.api.bible/v1".
	baseURL string
	// bibleID selects the Bible edition.
	bibleID string
	// apiKey authenticates requests via the api-key header.
	apiKey string
	// httpClient performs the requests.
	httpClient *http.Client
}

// Option configures client behaviour.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets the per-request timeout on the default HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

var (
	// errBaseURLRequired is returned when the base URL is missing.
	errBaseURLRequired = errors.New("base URL must be provided")
	// errBibleIDRequired is returned when the Bible edition id is missing.
	errBibleIDRequired = errors.New("bible id must be provided")
	// errEmptyContent is returned when the API response carries no text.
	errEmptyContent = errors.New("empty passage content")
)

// NewClient creates a scripture API client.
func NewClient(baseURL, bibleID, apiKey string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, errBaseURLRequired
	}

	if bibleID == "" {
		return nil, errBibleIDRequired
	}

	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	client := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		bibleID: bibleID,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: config.DefaultFetchTimeout,
		},
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// passageResponse mirrors the relevant slice of the API response body.
type passageResponse struct {
	Data struct {
		Content string `json:"content"`
	} `json:"data"`
}

// FetchPassage retrieves the raw text of a verse range, e.g. JHN 3:16-17.
// The returned text is uncleaned; callers run it through passage.Clean.
func (c *Client) FetchPassage(ctx context.Context, bookCode string, chapter, verseStart, verseCount int) (string, error) {
	passageID := fmt.Sprintf("%s.%d.%d", bookCode, chapter, verseStart)
	if verseCount > 1 {
		passageID = fmt.Sprintf("%s-%s.%d.%d", passageID, bookCode, chapter, verseStart+verseCount-1)
	}

	endpoint := fmt.Sprintf("%s/bibles/%s/passages/%s", c.baseURL, c.bibleID, url.PathEscape(passageID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("build passage request: %w", err)
	}

	if c.apiKey != "" {
		req.Header.Set("api-key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch passage %s: %w", passageID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch passage %s: unexpected status %s", passageID, resp.Status)
	}

	var body passageResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decode passage %s: %w", passageID, err)
	}

	if body.Data.Content == "" {
		return "", fmt.Errorf("fetch passage %s: %w", passageID, errEmptyContent)
	}

	return body.Data.Content, nil
}
