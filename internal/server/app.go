// Package server wires and runs the showcase API server: storage (PostgreSQL
// or memory), optional S3 image offload, the REST API and the gRPC health
// endpoint.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/showcase/internal/common"
	"github.com/dmitrijs2005/showcase/internal/logging"
	"github.com/dmitrijs2005/showcase/internal/server/config"
	"github.com/dmitrijs2005/showcase/internal/server/httpapi"
	"github.com/dmitrijs2005/showcase/internal/server/images"
	"github.com/dmitrijs2005/showcase/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/showcase/internal/server/services"

	gs "github.com/dmitrijs2005/showcase/internal/server/grpc"
)

const healthCheckInterval = 15 * time.Second

type App struct {
	config         *config.Config
	logger         logging.Logger
	db             *sql.DB
	userService    *services.UserService
	projectService *services.ProjectService
}

// openPostgres and newS3Store are seams for tests.
var (
	openPostgres = repomanager.OpenPostgres
	newS3Store   = func(ctx context.Context, cfg images.S3Config) (images.ObjectStore, error) {
		return images.NewS3Store(ctx, cfg)
	}
)

func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {

	var (
		db *sql.DB
		rm repomanager.RepositoryManager
	)

	if c.DatabaseDSN != "" {
		var err error
		db, err = openPostgres(ctx, c.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
		rm = repomanager.NewPostgresRepositoryManager()
		if err := rm.RunMigrations(ctx, db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migration error: %w", err)
		}
	} else {
		logger.Warn(ctx, "No database configured, data is kept in memory")
		rm = repomanager.NewMemoryRepositoryManager()
	}

	var store images.ObjectStore
	if c.S3Bucket != "" {
		var err error
		store, err = newS3Store(ctx, images.S3Config{
			AccessKey:    c.S3AccessKey,
			SecretKey:    c.S3SecretKey,
			Bucket:       c.S3Bucket,
			Region:       c.S3Region,
			BaseEndpoint: c.S3BaseEndpoint,
			UsePathStyle: c.S3UsePathStyle,
		})
		if err != nil {
			closeDB(db)
			return nil, fmt.Errorf("object storage init error: %w", err)
		}
		logger.Info(ctx, "Images are stored in object storage", "bucket", c.S3Bucket)
	}

	us := services.NewUserService(db, rm, c)
	ps := services.NewProjectService(db, rm, images.NewCodec(store), logger)

	app := &App{config: c, logger: logger, db: db, userService: us, projectService: ps}

	if err := app.seedAdmin(ctx); err != nil {
		closeDB(db)
		return nil, err
	}

	return app, nil
}

// seedAdmin creates the configured admin account when it is missing. Without
// a configured password a random one is generated and logged once.
func (app *App) seedAdmin(ctx context.Context) error {
	password := app.config.AdminPassword
	generated := password == ""
	if generated {
		var err error
		if password, err = common.MakeRandHexString(12); err != nil {
			return fmt.Errorf("error generating admin password: %w", err)
		}
	}

	created, err := app.userService.EnsureUser(ctx, app.config.AdminUsername, password)
	if err != nil {
		return fmt.Errorf("admin seed error: %w", err)
	}
	if !created {
		return nil
	}

	if generated {
		app.logger.Warn(ctx, "Admin account created with a generated password",
			"username", app.config.AdminUsername, "password", password)
	} else {
		app.logger.Info(ctx, "Admin account created", "username", app.config.AdminUsername)
	}
	return nil
}

func (app *App) storageCheck() gs.Checker {
	if app.db == nil {
		return nil
	}
	return func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		return app.db.PingContext(ctx)
	}
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := httpapi.NewServer(app.config.HTTPAddr, app.logger, app.userService, app.projectService)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.HealthAddr, app.logger, app.storageCheck(), healthCheckInterval)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until ctx is cancelled or one of the listeners fails, then
// closes the database.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	closeDB(app.db)
	app.logger.Info(context.Background(), "App stopped")
}

func closeDB(db *sql.DB) {
	if db != nil {
		_ = db.Close()
	}
}
