package cmd

import (
	"database/sql"
	"fmt"
	"log"
	"strings"

	"vantagelite/api"
	integration_tests "vantagelite/integration-tests"
	"vantagelite/internal/app"
	"vantagelite/internal/config"
	"vantagelite/internal/metrics"
	"vantagelite/internal/repository"
	"vantagelite/internal/service"
	"vantagelite/pkg/stooq"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

func CloseDependencies(handler *api.ApiHandler) {
	err := handler.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

// InitializeDependencies wires the whole service from configuration:
// preset store, price vendor, app handlers. configPath may be empty,
// in which case defaults and VANTAGE_* env vars apply.
func InitializeDependencies(configPath string) (*api.ApiHandler, *config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	metrics.InitRegistry()

	dbConn, err := openPresetDb(cfg.PresetStore)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to preset store: %w", err)
	}

	presetRepository, err := newPresetRepository(cfg.PresetStore.Driver, dbConn)
	if err != nil {
		return nil, nil, err
	}

	vendorRepository, err := newPriceVendorRepository(cfg)
	if err != nil {
		return nil, nil, err
	}

	if strings.EqualFold(cfg.Env, "test") || UseStubVendor {
		vendorRepository = integration_tests.NewStubVendorRepositoryForTests()
	}

	priceService := service.NewPriceService(
		vendorRepository,
		cfg.VendorTimeout,
		cfg.VendorRequestsPerMinute,
	)

	apiHandler := &api.ApiHandler{
		Db: dbConn,
		BacktestHandler: app.BacktestHandler{
			PriceService: priceService,
		},
		PresetHandler: app.PresetHandler{
			PresetRepository: presetRepository,
		},
	}

	return apiHandler, cfg, nil
}

func openPresetDb(store config.PresetStoreConfig) (*sql.DB, error) {
	switch strings.ToLower(store.Driver) {
	case "", "sqlite":
		return sql.Open("sqlite", store.Dsn)
	case "postgres":
		return sql.Open("postgres", store.Dsn)
	default:
		return nil, fmt.Errorf("unsupported preset store driver %s", store.Driver)
	}
}

func newPresetRepository(driver string, db *sql.DB) (repository.PresetRepository, error) {
	if strings.EqualFold(driver, "postgres") {
		return repository.NewPostgresPresetRepository(db)
	}
	return repository.NewSqlitePresetRepository(db)
}

func newPriceVendorRepository(cfg *config.Config) (repository.PriceVendorRepository, error) {
	switch strings.ToLower(cfg.PriceVendor) {
	case "", "yahoo":
		return repository.NewYahooPriceRepository(), nil
	case "alpaca":
		return repository.NewAlpacaPriceRepository(cfg.Alpaca.ApiKey, cfg.Alpaca.ApiSecret, cfg.Alpaca.Endpoint), nil
	case "stooq":
		return repository.NewStooqPriceRepository(stooq.NewClient()), nil
	default:
		return nil, fmt.Errorf("unsupported price vendor %s", cfg.PriceVendor)
	}
}
