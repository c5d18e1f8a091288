// Package config loads service settings from defaults, an optional
// yaml file, and VANTAGE_-prefixed environment variables, in that
// order of precedence (env wins).
package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Env  string `mapstructure:"env"`
	Port int    `mapstructure:"port"`

	PriceVendor             string        `mapstructure:"price_vendor"`
	VendorTimeout           time.Duration `mapstructure:"vendor_timeout"`
	VendorRequestsPerMinute int           `mapstructure:"vendor_requests_per_minute"`

	Alpaca      AlpacaConfig      `mapstructure:"alpaca"`
	PresetStore PresetStoreConfig `mapstructure:"preset_store"`
}

type AlpacaConfig struct {
	ApiKey    string `mapstructure:"api_key"`
	ApiSecret string `mapstructure:"api_secret"`
	Endpoint  string `mapstructure:"endpoint"`
}

type PresetStoreConfig struct {
	// Driver is sqlite or postgres
	Driver string `mapstructure:"driver"`
	Dsn    string `mapstructure:"dsn"`
}

func Load(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	v.SetEnvPrefix("VANTAGE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("env", "")
	v.SetDefault("port", 3009)
	v.SetDefault("price_vendor", "yahoo")
	v.SetDefault("vendor_timeout", "10s")
	v.SetDefault("vendor_requests_per_minute", 30)
	v.SetDefault("alpaca.api_key", "")
	v.SetDefault("alpaca.api_secret", "")
	v.SetDefault("alpaca.endpoint", "")
	v.SetDefault("preset_store.driver", "sqlite")
	v.SetDefault("preset_store.dsn", "vantagelite.db")

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
		// allow ${VAR} references inside the yaml
		expanded := os.ExpandEnv(string(data))
		if err := v.ReadConfig(bytes.NewBufferString(expanded)); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	return cfg, nil
}
