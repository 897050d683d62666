package lawapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"lawbridge-backend/models"
)

var (
	// ErrNotConfigured is returned when no API user code is set. Callers
	// decide whether to surface it or fall back to curated references.
	ErrNotConfigured = errors.New("API not configured")

	// errSearchNotConfigured adds the setup hint shown on search responses.
	errSearchNotConfigured = fmt.Errorf("%w. Please set LAW_GO_KR_OC in .env file.", ErrNotConfigured)
)

const requestTimeout = 15 * time.Second

// maxDisplay is the per-page result ceiling enforced by the upstream API.
const maxDisplay = 100

// Client calls the National Law Information (law.go.kr) DRF open API.
type Client struct {
	oc         string
	searchURL  string
	serviceURL string
	httpClient *http.Client
}

// NewClient creates a DRF API client. An empty oc leaves the client
// unconfigured; calls then fail with ErrNotConfigured before any network
// traffic.
func NewClient(oc, searchURL, serviceURL string) *Client {
	return &Client{
		oc:         oc,
		searchURL:  searchURL,
		serviceURL: serviceURL,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// Configured reports whether an API user code is set.
func (c *Client) Configured() bool {
	return c.oc != ""
}

// SearchResult is a parsed statute search response.
type SearchResult struct {
	TotalCount int
	Laws       []models.LawSummary
}

// SearchLaws queries the statute index for a keyword. The search target is
// fixed to the statute list (lsStmd); searchType is carried for request
// compatibility with the wire API.
func (c *Client) SearchLaws(ctx context.Context, keyword, searchType string, page, count int) (*SearchResult, error) {
	if !c.Configured() {
		return nil, errSearchNotConfigured
	}

	display := count
	if display > maxDisplay {
		display = maxDisplay
	}

	params := url.Values{}
	params.Set("OC", c.oc)
	params.Set("target", "lsStmd")
	params.Set("type", "XML")
	params.Set("query", keyword)
	params.Set("display", strconv.Itoa(display))
	params.Set("page", strconv.Itoa(page))

	body, err := c.get(ctx, c.searchURL, params)
	if err != nil {
		return nil, err
	}
	return parseSearchResponse(body)
}

// GetLawDetail fetches the article-level text of a statute by its MST
// serial number.
func (c *Client) GetLawDetail(ctx context.Context, lawID string) (*models.LawDetail, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	params := url.Values{}
	params.Set("OC", c.oc)
	params.Set("target", "law")
	params.Set("type", "XML")
	params.Set("MST", lawID)

	body, err := c.get(ctx, c.serviceURL, params)
	if err != nil {
		return nil, err
	}
	return parseDetailResponse(body)
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// resp.Status keeps the status text; the law detail handler matches
		// on "not found" wording.
		return nil, fmt.Errorf("HTTP error: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	return body, nil
}
