package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/coder/quartz"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/norce-drilling/wellbore-api/internal/config"
	"github.com/norce-drilling/wellbore-api/internal/domain/usage"
	"github.com/norce-drilling/wellbore-api/internal/domain/wellbore"
	"github.com/norce-drilling/wellbore-api/internal/infrastructure/database"
	"github.com/norce-drilling/wellbore-api/internal/infrastructure/logger"
	"github.com/norce-drilling/wellbore-api/internal/infrastructure/metrics"
	"github.com/norce-drilling/wellbore-api/internal/infrastructure/observability"
	repo "github.com/norce-drilling/wellbore-api/internal/infrastructure/repository/wellbore"
	"github.com/norce-drilling/wellbore-api/internal/infrastructure/usagestore"
	"github.com/norce-drilling/wellbore-api/internal/interfaces/httpserver"
)

// storedGaugeInterval is how often the stored-wellbore gauge is refreshed from the database.
const storedGaugeInterval = time.Minute

// @title WellBore API
// @version 1.0
// @description CRUD service for wellbores with per-day usage statistics
// @BasePath /WellBore/api
type Application struct {
	httpServer *httpserver.HttpServer
	tracker    *usage.Tracker
	service    wellbore.Service
	clock      quartz.Clock
	log        zerolog.Logger
}

func NewApplication(httpServer *httpserver.HttpServer, tracker *usage.Tracker, service wellbore.Service, log zerolog.Logger) *Application {
	return &Application{
		httpServer: httpServer,
		tracker:    tracker,
		service:    service,
		clock:      quartz.NewReal(),
		log:        log,
	}
}

// Start serves HTTP until ctx is cancelled, then writes the usage statistics
// one last time.
func (a *Application) Start(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return a.httpServer.Run(gctx)
	})
	g.Go(func() error {
		a.refreshStoredGauge(gctx)
		return nil
	})
	err := g.Wait()

	if flushErr := a.tracker.Flush(); flushErr != nil {
		a.log.Warn().Err(flushErr).Msg("final usage snapshot not written")
	} else {
		a.log.Info().Msg("usage snapshot written")
	}
	return err
}

func (a *Application) refreshStoredGauge(ctx context.Context) {
	ticker := a.clock.NewTicker(storedGaugeInterval, "stored-gauge")
	defer ticker.Stop()
	for {
		if count, err := a.service.Count(ctx); err == nil {
			metrics.SetWellBoresStored(count)
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func main() {
	loadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := observability.Setup(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize observability")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown telemetry")
		}
	}()

	repository, closeRepository, err := newRepository(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize wellbore repository")
	}
	defer closeRepository()

	wellBoreService := wellbore.NewService(repository, log)
	tracker := newUsageTracker(cfg, log)

	httpServer := httpserver.New(cfg, log, wellBoreService, tracker)
	app := NewApplication(httpServer, tracker, wellBoreService, log)

	if err := app.Start(ctx); err != nil {
		log.Error().Err(err).Msg("application stopped with error")
		return
	}

	log.Info().Msg("application exited cleanly")
}

// newUsageTracker builds the tracker, loads the persisted statistics and
// applies the retention window.
func newUsageTracker(cfg *config.Config, log zerolog.Logger) *usage.Tracker {
	store := usagestore.NewFileStore(nil, cfg.UsageSnapshotPath)
	tracker := usage.NewTracker(store,
		usage.WithBackupInterval(cfg.UsageBackupInterval),
		usage.WithLogger(log),
		usage.WithRecorder(metrics.UsageRecorder{}),
	)
	tracker.Open()
	if cfg.UsageRetentionDays > 0 {
		tracker.Trim(cfg.UsageRetentionDays)
	}
	log.Info().Str("path", store.Path()).Msg("usage tracker ready")
	return tracker
}

func newRepository(ctx context.Context, cfg *config.Config, log zerolog.Logger) (wellbore.Repository, func(), error) {
	if cfg.DBDriver == config.DriverMemory {
		log.Warn().Msg("using in-memory wellbore repository, data is lost on restart")
		return repo.NewInMemoryRepository(), func() {}, nil
	}

	db, err := newGormDB(ctx, newDatabaseConfig(cfg), log)
	if err != nil {
		return nil, nil, err
	}
	closeDB := func() {
		if err := database.Close(db); err != nil {
			log.Error().Err(err).Msg("close database")
		}
	}
	return repo.NewGormRepository(db), closeDB, nil
}

func newDatabaseConfig(cfg *config.Config) database.Config {
	return database.Config{
		Driver:          cfg.DBDriver,
		DSN:             cfg.DatabaseURL,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		ConnMaxLifetime: cfg.DBConnLifetime,
		LogLevel:        gormlogger.Warn,
	}
}

func newGormDB(ctx context.Context, cfg database.Config, log zerolog.Logger) (*gorm.DB, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("connect %s database: %w", cfg.Driver, err)
	}
	if err := database.AutoMigrate(ctx, db, log); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	return db, nil
}

func loadEnvFiles() {
	paths := []string{".env", "../.env"}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Overload(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}
}
