package pricefeed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	// DefaultCoinGeckoBaseURL is the public CoinGecko API endpoint.
	DefaultCoinGeckoBaseURL = "https://api.coingecko.com"

	// DefaultRequestTimeout bounds a single price fetch.
	DefaultRequestTimeout = 10 * time.Second
)

// CoinGeckoConfig holds the configuration for the CoinGecko client.
type CoinGeckoConfig struct {
	BaseURL    string // defaults to DefaultCoinGeckoBaseURL
	CoinID     string // CoinGecko asset id, e.g. "sui"
	VsCurrency string // quote currency, e.g. "usd"
	Timeout    time.Duration
	Logger     *zap.Logger
}

// CoinGeckoClient fetches spot prices from the CoinGecko simple-price
// API. It holds no mutable state beyond the shared http.Client and is
// safe for concurrent use.
type CoinGeckoClient struct {
	baseURL    string
	coinID     string
	vsCurrency string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewCoinGeckoClient creates a CoinGecko price source with dependency injection.
func NewCoinGeckoClient(config *CoinGeckoConfig) (*CoinGeckoClient, error) {
	if config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if config.CoinID == "" {
		return nil, fmt.Errorf("coin ID is required")
	}
	if config.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = DefaultCoinGeckoBaseURL
	}
	vsCurrency := config.VsCurrency
	if vsCurrency == "" {
		vsCurrency = "usd"
	}
	timeout := config.Timeout
	if timeout == 0 {
		timeout = DefaultRequestTimeout
	}

	return &CoinGeckoClient{
		baseURL:    baseURL,
		coinID:     config.CoinID,
		vsCurrency: vsCurrency,
		httpClient: &http.Client{Timeout: timeout},
		logger:     config.Logger,
	}, nil
}

// Name identifies the source in logs.
func (c *CoinGeckoClient) Name() string {
	return "coingecko"
}

// FetchUSDPrice fetches the current quote for the configured asset.
func (c *CoinGeckoClient) FetchUSDPrice(ctx context.Context) (float64, error) {
	endpoint := fmt.Sprintf("%s/api/v3/simple/price?ids=%s&vs_currencies=%s",
		c.baseURL, url.QueryEscape(c.coinID), url.QueryEscape(c.vsCurrency))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, errors.Wrap(err, "failed to build price request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to fetch %s price", c.coinID)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return 0, fmt.Errorf("price API returned status %d: %s", resp.StatusCode, string(body))
	}

	// Response shape: {"<coin-id>": {"<vs-currency>": <float>}}
	var payload map[string]map[string]float64
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, errors.Wrap(err, "failed to decode price response")
	}

	quote, ok := payload[c.coinID][c.vsCurrency]
	if !ok {
		return 0, fmt.Errorf("price response missing %s.%s", c.coinID, c.vsCurrency)
	}

	c.logger.Debug("Fetched spot price",
		zap.String("source", c.Name()),
		zap.String("coin_id", c.coinID),
		zap.Float64("price", quote),
	)

	return quote, nil
}
