package parser

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/macrolens/fdcresolve/internal/domain"
)

// ModeFoundationFoods asks the parser service to resolve foundation food
// matches alongside the structural parse.
const ModeFoundationFoods = "foundation_foods_enabled"

const defaultTimeout = 30 * time.Second

// Client handles communication with the ingredient parser service
type Client struct {
	httpClient  *http.Client
	baseURL     string
	apiKey      string
	mode        string
	rateLimiter *rate.Limiter
	logger      zerolog.Logger
}

// ClientConfig holds configuration for the parser service client
type ClientConfig struct {
	BaseURL   string
	APIKey    string        // optional; omitted from requests when empty
	Timeout   time.Duration // per-request timeout, defaults to 30s
	RateLimit float64       // requests per second, defaults to 10
	Burst     int           // limiter burst, defaults to 5
	Logger    zerolog.Logger
}

// NewClient creates a new parser service client
func NewClient(config ClientConfig) *Client {
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	rateLimit := config.RateLimit
	if rateLimit <= 0 {
		rateLimit = 10
	}

	burst := config.Burst
	if burst <= 0 {
		burst = 5
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL:     config.BaseURL,
		apiKey:      config.APIKey,
		mode:        ModeFoundationFoods,
		rateLimiter: rate.NewLimiter(rate.Limit(rateLimit), burst),
		logger:      config.Logger,
	}
}

// parseResponse is the wire shape of a successful parse
type parseResponse struct {
	Input           string                  `json:"input"`
	FoundationFoods []foundationFoodPayload `json:"foundation_foods"`
}

// foundationFoodPayload is one foundation food match on the wire
type foundationFoodPayload struct {
	FdcID      json.Number `json:"fdc_id"`
	Text       string      `json:"text"`
	Category   string      `json:"category"`
	Confidence float64     `json:"confidence"`
	DataType   string      `json:"data_type"`
}

// ParseIngredient sends one product name to the parser service and returns
// the parsed ingredient with its foundation food matches. The text goes out
// verbatim; a single call is made with no retries.
func (c *Client) ParseIngredient(ctx context.Context, text string) (*domain.ParsedIngredient, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1/parse", c.baseURL)
	params := url.Values{}
	params.Add("text", text)
	params.Add("mode", c.mode)
	if c.apiKey != "" {
		params.Add("api_key", c.apiKey)
	}

	reqURL := fmt.Sprintf("%s?%s", endpoint, params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "fdcresolve/1.0")

	c.logger.Debug().Str("text", text).Msg("parser request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrParserUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.ErrIngredientNotParsed
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Debug().Int("status", resp.StatusCode).Bytes("body", body).Msg("parser error response")
		return nil, fmt.Errorf("%w: status %d", domain.ErrParserUnavailable, resp.StatusCode)
	}

	var parseResp parseResponse
	if err := json.NewDecoder(resp.Body).Decode(&parseResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	c.logger.Debug().Str("text", text).Int("matches", len(parseResp.FoundationFoods)).Msg("parser response")

	return MapToParsedIngredient(text, &parseResp), nil
}
