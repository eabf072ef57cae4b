package app

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/springvale/admissions/internal/config"
	"github.com/springvale/admissions/internal/db"
	"github.com/springvale/admissions/internal/repository"
	"github.com/springvale/admissions/internal/service"
	"github.com/springvale/admissions/internal/storage"
)

type App struct {
	Cfg                *config.Config
	DB                 *sqlx.DB
	Storage            storage.Storage
	EmailService       *service.EmailService
	ApplicationService *service.ApplicationService
}

func New(cfg *config.Config) (*App, error) {
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Repositories
	applicationRepository := repository.NewApplicationRepository(database)

	// Storage for uploaded documents
	uploadStorage, err := storage.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	// Services
	emailService := service.NewEmailService(
		cfg.ResendAPIKey,
		cfg.EmailFrom,
		cfg.AppName,
		cfg.IsDevelopment(),
	)
	applicationService := service.NewApplicationService(applicationRepository, emailService)

	return &App{
		Cfg:                cfg,
		DB:                 database,
		Storage:            uploadStorage,
		EmailService:       emailService,
		ApplicationService: applicationService,
	}, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
