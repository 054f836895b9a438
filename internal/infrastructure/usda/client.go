package usda

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/foodinfo/backend/internal/domain"
	"golang.org/x/time/rate"
)

// defaultTimeout bounds an outbound call when no timeout is configured
const defaultTimeout = 12 * time.Second

// Client handles communication with the USDA FoodData Central API.
// Each operation issues exactly one outbound request: failures are reported,
// never silently retried, because repeated calls against a rate-limited key
// are an operator decision.
type Client struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	rateLimiter *rate.Limiter
}

// NewClient creates a new USDA API client
func NewClient(apiKey, baseURL string, timeout time.Duration) *Client {
	// USDA allows 1000 requests per hour
	// rate.Limit is requests per second, so 1000/3600 ≈ 0.278 requests/sec
	limiter := rate.NewLimiter(rate.Limit(0.278), 10) // burst of 10 requests

	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		apiKey:      apiKey,
		baseURL:     baseURL,
		rateLimiter: limiter,
	}
}

// doRequest executes a single HTTP GET request against the USDA API. The API
// key is checked here so no request ever leaves the process without one.
func (c *Client) doRequest(ctx context.Context, reqURL string) (*http.Response, error) {
	if c.apiKey == "" {
		return nil, domain.ErrMisconfigured
	}

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "FoodInfo/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Covers timeouts, refused connections, DNS failures and
		// context cancellation from a disconnected caller.
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}

	return resp, nil
}

// SearchFoods searches for foods in the USDA database, one page at a time
func (c *Client) SearchFoods(ctx context.Context, query domain.SearchQuery) (*domain.USDASearchResponse, error) {
	endpoint := fmt.Sprintf("%s/v1/foods/search", c.baseURL)
	params := url.Values{}
	params.Add("query", query.Term)
	params.Add("api_key", c.apiKey)
	params.Add("pageSize", strconv.Itoa(query.PageSize))
	params.Add("pageNumber", strconv.Itoa(query.Page))

	reqURL := fmt.Sprintf("%s?%s", endpoint, params.Encode())

	resp, err := c.doRequest(ctx, reqURL)
	if err != nil {
		log.Printf("[USDA] search request error: %v", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		log.Printf("[USDA] search rejected - status: %d, body: %s", resp.StatusCode, string(body))
		return nil, &domain.UpstreamStatusError{
			StatusCode: resp.StatusCode,
			Message:    upstreamMessage(body),
		}
	}

	var searchResp domain.USDASearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		log.Printf("[USDA] search decode error: %v", err)
		return nil, fmt.Errorf("%w: decoding response: %v", domain.ErrUpstreamUnavailable, err)
	}

	log.Printf("[USDA] search %q page %d: %d of %d hits returned", query.Term, query.Page, len(searchResp.Foods), searchResp.TotalHits)
	return &searchResp, nil
}

// GetFood retrieves the full record for a specific food by FDC ID
func (c *Client) GetFood(ctx context.Context, fdcID int64) (*domain.USDAFood, error) {
	endpoint := fmt.Sprintf("%s/v1/food/%d", c.baseURL, fdcID)
	params := url.Values{}
	params.Add("api_key", c.apiKey)

	reqURL := fmt.Sprintf("%s?%s", endpoint, params.Encode())

	resp, err := c.doRequest(ctx, reqURL)
	if err != nil {
		log.Printf("[USDA] detail request error for %d: %v", fdcID, err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.ErrFoodNotFound
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		log.Printf("[USDA] detail rejected for %d - status: %d, body: %s", fdcID, resp.StatusCode, string(body))
		return nil, &domain.UpstreamStatusError{
			StatusCode: resp.StatusCode,
			Message:    upstreamMessage(body),
		}
	}

	var food domain.USDAFood
	if err := json.NewDecoder(resp.Body).Decode(&food); err != nil {
		log.Printf("[USDA] detail decode error for %d: %v", fdcID, err)
		return nil, fmt.Errorf("%w: decoding response: %v", domain.ErrUpstreamUnavailable, err)
	}

	return &food, nil
}

// upstreamMessage pulls a human-readable message out of a USDA error body.
// The API wraps errors as {"error": {"message": ...}} on api.data.gov rejections
// and as a bare {"message": ...} elsewhere.
func upstreamMessage(body []byte) string {
	var wrapped struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return ""
	}
	if wrapped.Error.Message != "" {
		return wrapped.Error.Message
	}
	return wrapped.Message
}
