package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const testPriceID = "6f1f6e1a-7b57-4f58-9a0c-1c2d3e4f5a6b"

func baseEnv() map[string]string {
	return map[string]string{
		"DATABASE_URL":    "postgres://localhost:5432/silvergold?sslmode=disable",
		"MARKET_PRICE_ID": testPriceID,
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadForTests(baseEnv())
	require.NoError(t, err)
	require.Equal(t, "development", cfg.AppEnv)
	require.Equal(t, ":4000", cfg.HTTPAddr())
	require.Equal(t, testPriceID, cfg.MarketPriceID)
	require.Equal(t, "https://paxel.co", cfg.CarrierBaseURL)
	require.Equal(t, 10*time.Second, cfg.CarrierTimeout)
	require.Equal(t, 50, cfg.CarrierMaxConns)
	require.Equal(t, "rens garage", cfg.ShippingPickupName)
}

func TestLoadRequiresDatabaseURL(t *testing.T) {
	env := baseEnv()
	env["DATABASE_URL"] = ""
	_, err := LoadForTests(env)
	require.Error(t, err)
}

func TestLoadRequiresMarketPriceID(t *testing.T) {
	env := baseEnv()
	env["MARKET_PRICE_ID"] = ""
	_, err := LoadForTests(env)
	require.Error(t, err)
}

func TestLoadRejectsMalformedMarketPriceID(t *testing.T) {
	env := baseEnv()
	env["MARKET_PRICE_ID"] = "not-a-uuid"
	_, err := LoadForTests(env)
	require.Error(t, err)
	require.Contains(t, err.Error(), "MARKET_PRICE_ID")
}

func TestLoadSplitsAllowedOrigins(t *testing.T) {
	env := baseEnv()
	env["CORS_ALLOWED_ORIGINS"] = " https://silvergold-id-landingpage.vercel.app , http://localhost:3000 "
	cfg, err := LoadForTests(env)
	require.NoError(t, err)
	require.Equal(t, []string{
		"https://silvergold-id-landingpage.vercel.app",
		"http://localhost:3000",
	}, cfg.CORSAllowedOrigins)
}

func TestLoadOverridesCarrierSettings(t *testing.T) {
	env := baseEnv()
	env["PAXEL_BASE_URL"] = "https://staging.paxel.co"
	env["CARRIER_TIMEOUT"] = "3s"
	env["CARRIER_MAX_CONNS"] = "10"
	cfg, err := LoadForTests(env)
	require.NoError(t, err)
	require.Equal(t, "https://staging.paxel.co", cfg.CarrierBaseURL)
	require.Equal(t, 3*time.Second, cfg.CarrierTimeout)
	require.Equal(t, 10, cfg.CarrierMaxConns)
}
