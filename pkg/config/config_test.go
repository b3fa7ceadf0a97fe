package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDefaults(t *testing.T) {
	cfg := &OracleServerConfig{KeyPath: "/run/keys/oracle.key"}
	require.NoError(t, cfg.Validate())

	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, DefaultCoinID, cfg.CoinID)
	assert.Equal(t, DefaultVsCurrency, cfg.VsCurrency)
	assert.Equal(t, DefaultFetchTimeout, cfg.FetchTimeout)
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  OracleServerConfig
	}{
		{"missing key path", OracleServerConfig{}},
		{"negative port", OracleServerConfig{KeyPath: "k", Port: -1}},
		{"port too large", OracleServerConfig{KeyPath: "k", Port: 70000}},
		{"negative timeout", OracleServerConfig{KeyPath: "k", FetchTimeout: -time.Second}},
		{"bad api url", OracleServerConfig{KeyPath: "k", PriceAPIBaseURL: "not-a-url"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.cfg.Validate())
		})
	}
}

func TestValidateKeepsExplicitValues(t *testing.T) {
	cfg := &OracleServerConfig{
		KeyPath:         "/run/keys/oracle.key",
		Port:            8080,
		CoinID:          "bitcoin",
		VsCurrency:      "eur",
		PriceAPIBaseURL: "https://api.example.com",
		FetchTimeout:    3 * time.Second,
	}
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "bitcoin", cfg.CoinID)
	assert.Equal(t, "eur", cfg.VsCurrency)
	assert.Equal(t, 3*time.Second, cfg.FetchTimeout)
}
