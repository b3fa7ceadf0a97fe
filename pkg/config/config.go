package config

import (
	"fmt"
	"net/url"
	"time"
)

// Environment variable names for Oracle Server configuration
const (
	EnvOracleKeyPath    = "ORACLE_KEY_PATH"
	EnvOraclePort       = "ORACLE_PORT"
	EnvOracleCoinID     = "ORACLE_COIN_ID"
	EnvOracleVsCurrency = "ORACLE_VS_CURRENCY"
	EnvOraclePriceAPI   = "ORACLE_PRICE_API_URL"
	EnvOracleVerbose    = "ORACLE_VERBOSE"
)

// Defaults matching the deployed enclave.
const (
	DefaultPort         = 3000
	DefaultCoinID       = "sui"
	DefaultVsCurrency   = "usd"
	DefaultFetchTimeout = 10 * time.Second
)

// OracleServerConfig represents the complete configuration for an
// oracle server.
type OracleServerConfig struct {
	// KeyPath points at a file holding exactly 32 raw bytes of
	// secp256k1 private scalar. Required; the server must not start
	// without a valid key.
	KeyPath string `json:"key_path"`

	Port int `json:"port"`

	// Price source configuration
	CoinID          string        `json:"coin_id"`
	VsCurrency      string        `json:"vs_currency"`
	PriceAPIBaseURL string        `json:"price_api_base_url,omitempty"` // empty means the public CoinGecko API
	FetchTimeout    time.Duration `json:"fetch_timeout"`

	// Operational settings
	Verbose bool `json:"verbose"`
}

// Validate validates the oracle server configuration and fills in
// defaults for optional fields.
func (c *OracleServerConfig) Validate() error {
	if c.KeyPath == "" {
		return fmt.Errorf("signing key path cannot be empty")
	}

	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1-65535, got %d", c.Port)
	}

	if c.CoinID == "" {
		c.CoinID = DefaultCoinID
	}
	if c.VsCurrency == "" {
		c.VsCurrency = DefaultVsCurrency
	}
	if c.FetchTimeout == 0 {
		c.FetchTimeout = DefaultFetchTimeout
	}
	if c.FetchTimeout < 0 {
		return fmt.Errorf("fetch timeout cannot be negative, got %s", c.FetchTimeout)
	}

	if c.PriceAPIBaseURL != "" {
		parsed, err := url.Parse(c.PriceAPIBaseURL)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("invalid price API base URL: %s", c.PriceAPIBaseURL)
		}
	}

	return nil
}
