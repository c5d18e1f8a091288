package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults without a file", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)

		require.Equal(t, 3009, cfg.Port)
		require.Equal(t, "yahoo", cfg.PriceVendor)
		require.Equal(t, 10*time.Second, cfg.VendorTimeout)
		require.Equal(t, 30, cfg.VendorRequestsPerMinute)
		require.Equal(t, "sqlite", cfg.PresetStore.Driver)
		require.Equal(t, "vantagelite.db", cfg.PresetStore.Dsn)
	})

	t.Run("yaml file overrides defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		yaml := `
port: 8080
price_vendor: stooq
vendor_timeout: 5s
preset_store:
  driver: postgres
  dsn: host=localhost dbname=vantage
`
		require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

		cfg, err := Load(path)
		require.NoError(t, err)

		require.Equal(t, 8080, cfg.Port)
		require.Equal(t, "stooq", cfg.PriceVendor)
		require.Equal(t, 5*time.Second, cfg.VendorTimeout)
		require.Equal(t, "postgres", cfg.PresetStore.Driver)
		require.Equal(t, "host=localhost dbname=vantage", cfg.PresetStore.Dsn)
	})

	t.Run("environment beats file and defaults", func(t *testing.T) {
		t.Setenv("VANTAGE_PORT", "9999")
		t.Setenv("VANTAGE_PRICE_VENDOR", "alpaca")
		t.Setenv("VANTAGE_ALPACA_API_KEY", "test-key")

		cfg, err := Load("")
		require.NoError(t, err)

		require.Equal(t, 9999, cfg.Port)
		require.Equal(t, "alpaca", cfg.PriceVendor)
		require.Equal(t, "test-key", cfg.Alpaca.ApiKey)
	})

	t.Run("missing file is an error when a path was given", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})
}
