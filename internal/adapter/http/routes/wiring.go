package routes

import (
	"context"
	"fmt"
	"log"

	"oscell/internal/adapter/persistence/repository"
	"oscell/internal/adapter/render/htmlpage"
	"oscell/internal/adapter/render/pdf"
	"oscell/internal/adapter/render/raster"
	"oscell/internal/config"
	"oscell/internal/domain/document"
	"oscell/internal/infrastructure/blob"
	"oscell/internal/infrastructure/database"
	"oscell/internal/usecase"
	"oscell/internal/usecase/interfaces"
)

func newRepositories(ctx context.Context, cfg config.Config) (interfaces.ICounterRepository, interfaces.IServiceRecordRepository, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverSQL:
		db, err := database.Connect(cfg.Storage.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := db.AutoMigrate(repository.Models()...); err != nil {
			return nil, nil, fmt.Errorf("auto migrate: %w", err)
		}
		log.Printf("[routes][storage] using sql driver")
		return repository.NewCounterGormRepository(db), repository.NewServiceRecordGormRepository(db), nil
	case config.StorageDriverDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			return nil, nil, err
		}
		log.Printf("[routes][storage] using dynamodb counters=%s services=%s", cfg.Storage.CountersTable, cfg.Storage.ServicesTable)
		return repository.NewCounterDynamoRepository(ddb, cfg.Storage.CountersTable),
			repository.NewServiceRecordDynamoRepository(ddb, cfg.Storage.ServicesTable), nil
	default:
		return nil, nil, fmt.Errorf("%w: got %q", config.ErrInvalidStorageDriver, cfg.Storage.Driver)
	}
}

// newWorkOrderUseCase wires the renderers. A missing rasterizer or archive
// degrades the service instead of stopping it: printing keeps working and
// downloads report the failure.
func newWorkOrderUseCase(ctx context.Context, cfg config.Config, allocator usecase.ISequenceAllocatorUseCase) *usecase.WorkOrderUseCase {
	var rasterizer interfaces.IRasterizer
	if r, err := raster.New(); err != nil {
		log.Printf("[routes][render] rasterizer unavailable, pdf downloads disabled: %v", err)
	} else {
		rasterizer = r
	}

	uc := usecase.NewWorkOrderUseCase(
		allocator,
		ShopProfile(cfg.Shop),
		htmlpage.New(true),
		rasterizer,
		pdf.NewEncoder(cfg.Shop.Name),
		cfg.RenderScale,
	)

	if cfg.Archive.Enabled() {
		archive, err := blob.OpenS3Archive(ctx, cfg.Archive)
		if err != nil {
			log.Printf("[routes][archive] s3 archive disabled: %v", err)
		} else {
			log.Printf("[routes][archive] archiving downloads to bucket=%s", cfg.Archive.Bucket)
			uc.WithArchive(archive)
		}
	}
	return uc
}

// ShopProfile maps the shop settings onto what is printed on every order.
func ShopProfile(shop config.ShopConfig) document.ShopProfile {
	return document.ShopProfile{
		Name:              shop.Name,
		Tagline:           shop.Tagline,
		CurrencyPrefix:    shop.CurrencyPrefix,
		WarrantyText:      shop.WarrantyText,
		DefaultTechnician: shop.DefaultTechnician,
	}
}
