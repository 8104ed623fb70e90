package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"ayurconnect/app/controller"
	"ayurconnect/app/router"
	"ayurconnect/config"
	"ayurconnect/db"
	"ayurconnect/models"
	"ayurconnect/repository"
	"ayurconnect/service"

	"go.uber.org/zap"
)

const requestTimeout = 60 * time.Second

// App holds the wired services of the server
type App struct {
	Config   *config.Config
	Catalogs *service.Catalogs
	Bookings *service.BookingService
	Images   *service.ImageService
	// Sync is nil when GOOGLE_APPLICATION_CREDENTIALS is not set
	Sync    service.SyncServiceInterface
	Handler http.Handler

	logger *zap.Logger
}

// Initialize initializes the application
func Initialize(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	sources, bookingRepo, err := openSources(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	catalogs := service.NewCatalogs(sources, service.NewContentRenderer(), cfg.CatalogTimeout, logger)
	bookings := service.NewBookingService(bookingRepo, logger)
	profiles := service.NewProfileService(logger)

	// Drive is optional: without credentials images come from their refs only
	var drive service.DriveServiceInterface
	if cfg.GoogleCredentialsPath != "" {
		driveService, err := service.NewDriveService(ctx, cfg.GoogleCredentialsPath, logger)
		if err != nil {
			return nil, err
		}
		drive = driveService
	} else {
		logger.Info("GOOGLE_APPLICATION_CREDENTIALS not set, image sync disabled")
	}

	cache := service.NewImageCache(cfg.ImageCacheDir, logger)
	if err := cache.EnsureDir(); err != nil {
		return nil, err
	}
	images := service.NewImageService(cache, drive, cfg.StaticDir, logger)

	renderer, err := service.NewPageRenderer(catalogs)
	if err != nil {
		return nil, fmt.Errorf("failed to load page templates: %w", err)
	}
	exporter := service.NewExportService(cfg.BaseURL, cfg.ChromePath, logger)

	a := &App{
		Config:   cfg,
		Catalogs: catalogs,
		Bookings: bookings,
		Images:   images,
		logger:   logger,
	}

	controllers := &router.Controllers{
		Pages:    controller.NewPageController(catalogs, renderer, logger),
		Catalog:  controller.NewCatalogController(catalogs, renderer, images, exporter, logger),
		Bookings: controller.NewBookingController(bookings, renderer, logger),
		Profiles: controller.NewProfileController(profiles, renderer, logger),
	}
	if drive != nil {
		a.Sync = service.NewSyncService(drive, images, catalogs, logger)
		controllers.Sync = controller.NewSyncController(a.Sync, cfg.ImagesFolderID, logger)
	}

	a.Handler = router.New(controllers, catalogs, requestTimeout, logger)

	logger.Info("application initialized",
		zap.String("catalog_source", string(cfg.CatalogSource)),
		zap.Strings("catalogs", catalogs.Kinds()),
		zap.Bool("image_sync", drive != nil),
	)
	return a, nil
}

// Close releases the database connection when one was opened
func (a *App) Close() error {
	return db.CloseDB()
}

// openSources selects the catalog fetchers and the booking repository for cfg.CatalogSource
func openSources(ctx context.Context, cfg *config.Config, logger *zap.Logger) (service.CatalogSources, repository.BookingRepositoryInterface, error) {
	switch cfg.CatalogSource {
	case config.SourcePostgres:
		if err := db.InitDB(ctx, cfg.DatabaseURL, logger); err != nil {
			return service.CatalogSources{}, nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		return service.CatalogSources{
			Plants:   repository.NewPostgresCatalog[models.Plant](db.DB, service.KindPlants, logger),
			Remedies: repository.NewPostgresCatalog[models.Remedy](db.DB, service.KindRemedies, logger),
			Articles: repository.NewPostgresCatalog[models.Article](db.DB, service.KindArticles, logger),
			Doctors:  repository.NewPostgresCatalog[models.Doctor](db.DB, service.KindDoctors, logger),
		}, repository.NewPostgresBookingRepository(db.DB, logger), nil

	case config.SourceRemote:
		seed, err := repository.LoadSeed(cfg.CatalogSeedFile)
		if err != nil {
			return service.CatalogSources{}, nil, err
		}
		client := &http.Client{Timeout: cfg.CatalogTimeout}
		return service.CatalogSources{
			Plants:   repository.NewRemoteCatalog[models.Plant](cfg.CatalogAPIURL, service.KindPlants, client),
			Remedies: repository.NewRemoteCatalog[models.Remedy](cfg.CatalogAPIURL, service.KindRemedies, client),
			Articles: repository.NewRemoteCatalog[models.Article](cfg.CatalogAPIURL, service.KindArticles, client),
			Doctors:  repository.NewRemoteCatalog[models.Doctor](cfg.CatalogAPIURL, service.KindDoctors, client),
		}, repository.NewMemoryBookingRepository(seed.Bookings), nil

	default:
		seed, err := repository.LoadSeed(cfg.CatalogSeedFile)
		if err != nil {
			return service.CatalogSources{}, nil, err
		}
		return staticSources(seed), repository.NewMemoryBookingRepository(seed.Bookings), nil
	}
}

func staticSources(seed *repository.Seed) service.CatalogSources {
	return service.CatalogSources{
		Plants:   repository.NewStaticCatalog(service.KindPlants, seed.Plants),
		Remedies: repository.NewStaticCatalog(service.KindRemedies, seed.Remedies),
		Articles: repository.NewStaticCatalog(service.KindArticles, seed.Articles),
		Doctors:  repository.NewStaticCatalog(service.KindDoctors, seed.Doctors),
	}
}

// SeedDatabase copies the seed catalogs into PostgreSQL, replacing the rows of every kind
func SeedDatabase(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	seed, err := repository.LoadSeed(cfg.CatalogSeedFile)
	if err != nil {
		return err
	}
	if err := db.InitDB(ctx, cfg.DatabaseURL, logger); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.CloseDB()

	if err := repository.NewPostgresCatalog[models.Plant](db.DB, service.KindPlants, logger).
		Replace(ctx, seed.Plants, models.Plant.CatalogID); err != nil {
		return err
	}
	if err := repository.NewPostgresCatalog[models.Remedy](db.DB, service.KindRemedies, logger).
		Replace(ctx, seed.Remedies, models.Remedy.CatalogID); err != nil {
		return err
	}
	if err := repository.NewPostgresCatalog[models.Article](db.DB, service.KindArticles, logger).
		Replace(ctx, seed.Articles, models.Article.CatalogID); err != nil {
		return err
	}
	return repository.NewPostgresCatalog[models.Doctor](db.DB, service.KindDoctors, logger).
		Replace(ctx, seed.Doctors, models.Doctor.CatalogID)
}
