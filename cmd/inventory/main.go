package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/ridehub/inventory-service/config"
	"github.com/ridehub/inventory-service/internal/notify"
	"github.com/ridehub/inventory-service/internal/store"
	"github.com/ridehub/inventory-service/pkg/logger"

	catRepoPkg "github.com/ridehub/inventory-service/internal/catalog/repository"
	catUCPkg "github.com/ridehub/inventory-service/internal/catalog/usecase"

	invRepoPkg "github.com/ridehub/inventory-service/internal/invoice/repository"
	invUCPkg "github.com/ridehub/inventory-service/internal/invoice/usecase"

	rentRepoPkg "github.com/ridehub/inventory-service/internal/rental/repository"
	rentUCPkg "github.com/ridehub/inventory-service/internal/rental/usecase"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.Config{
		Level:             cfg.Logger.Level,
		Encoding:          cfg.Logger.Encoding,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}
	if cfg.App.Env == "production" {
		logConfig.Encoding = "json"
		logConfig.Level = "info"
	}

	appLogger, err := logger.NewZapLogger(logConfig)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer appLogger.Sync()

	// 3. Open the snapshot store
	fileStore, err := store.NewFileStore(cfg.Storage.DataDir)
	if err != nil {
		appLogger.Fatal("Could not open data directory", zap.Error(err))
	}
	appLogger.Info("Snapshot store ready", zap.String("data_dir", cfg.Storage.DataDir))

	// 4. Initialize Repositories
	catRepo := catRepoPkg.NewSnapshotRepository(fileStore)
	invRepo := invRepoPkg.NewSnapshotRepository(fileStore)
	rentRepo := rentRepoPkg.NewSnapshotRepository(fileStore)

	// 5. Initialize Notifier + UseCases
	notifier := notify.NewZapNotifier(appLogger)
	catUC := catUCPkg.NewCatalogUseCase(catRepo, notifier, appLogger)
	invUC := invUCPkg.NewInvoiceUseCase(invRepo, catRepo, notifier, appLogger)
	rentUC := rentUCPkg.NewRentalUseCase(rentRepo, notifier, appLogger)

	// 6. Run the stock report. Reading the collections also seeds the
	// default dataset on a fresh data directory.
	ctx := context.Background()

	products, err := catUC.ListProducts(ctx, nil)
	if err != nil {
		appLogger.Fatal("failed to load products", zap.Error(err))
	}
	suppliers, err := catUC.ListSuppliers(ctx)
	if err != nil {
		appLogger.Fatal("failed to load suppliers", zap.Error(err))
	}
	vehicles, err := rentUC.ListVehicles(ctx)
	if err != nil {
		appLogger.Fatal("failed to load vehicles", zap.Error(err))
	}
	invoices, err := invUC.ListInvoices(ctx)
	if err != nil {
		appLogger.Fatal("failed to load invoices", zap.Error(err))
	}

	appLogger.Info("Catalog loaded",
		zap.Int("products", len(products)),
		zap.Int("suppliers", len(suppliers)),
		zap.Int("vehicles", len(vehicles)),
		zap.Int("invoices", len(invoices)),
	)

	low, err := catUC.LowStock(ctx)
	if err != nil {
		appLogger.Fatal("failed to compute low stock", zap.Error(err))
	}
	for _, p := range low {
		appLogger.Warn("Low stock",
			zap.String("product", p.Name),
			zap.String("sku", p.SKU),
			zap.Int("quantity", p.Quantity),
			zap.Int("min_stock_level", p.MinStockLevel),
		)
	}
	if len(low) == 0 {
		appLogger.Info("No products below minimum stock level")
	}
}
