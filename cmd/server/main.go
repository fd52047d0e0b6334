package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"freightdesk/config"
	"freightdesk/db"
	"freightdesk/db/mongo"
	"freightdesk/db/postgres"
	"freightdesk/handlers"
	"freightdesk/logger"
	"freightdesk/repository"
	"freightdesk/routes"
	"freightdesk/service"
	"freightdesk/storage"
	"freightdesk/utils"
)

type repositories struct {
	lrs      repository.LorryReceiptRepository
	invoices repository.InvoiceRepository
	clients  repository.ClientRepository
	payments repository.PaymentRepository
	expenses repository.ExpenseRepository
	settings repository.SettingsRepository
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	lg := logger.New(logger.Config{Env: cfg.Env, Level: cfg.LogLevel})
	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conn, repos, err := openStore(ctx, cfg)
	if err != nil {
		lg.Fatal().Err(err).Str("db_type", cfg.DBType).Msg("failed to open database")
	}
	defer func() {
		if err := conn.Disconnect(context.Background()); err != nil {
			lg.Error().Err(err).Msg("database disconnect")
		}
	}()

	archive, err := openArchive(ctx, cfg)
	if err != nil {
		lg.Fatal().Err(err).Msg("failed to configure document archive")
	}
	renderer, err := utils.NewPDFRenderer()
	if err != nil {
		lg.Fatal().Err(err).Msg("failed to load pdf templates")
	}

	// Services
	store := service.NewLorryReceiptStore(repos.lrs, repos.clients, lg)
	binder := service.NewInvoiceBinder(repos.invoices, repos.clients, repos.settings, store, lg)
	ledger := service.NewLedgerService(repos.clients, repos.invoices, repos.payments, repos.expenses, repos.lrs)
	documents := service.NewDocumentService(renderer, archive, store, binder, ledger, repos.clients, repos.settings, lg)

	router := routes.SetupRouter(routes.Options{
		Origins:   cfg.Origins(),
		JWTSecret: cfg.JWTSecret,
		Log:       lg,
	}, routes.Handlers{
		Auth:         handlers.NewAuthHandler(cfg.AdminPasswordHash, cfg.JWTSecret, time.Duration(cfg.JWTExpirationMinutes)*time.Minute),
		Clients:      &handlers.ClientHandler{Clients: service.NewClientService(repos.clients, repos.lrs, repos.invoices, repos.payments, lg)},
		LorryReceipt: &handlers.LorryReceiptHandler{Store: store},
		Invoices:     &handlers.InvoiceHandler{Binder: binder},
		Payments:     &handlers.PaymentHandler{Payments: service.NewPaymentService(repos.payments, repos.clients, lg)},
		Expenses:     &handlers.ExpenseHandler{Expenses: service.NewExpenseService(repos.expenses)},
		Reports:      &handlers.ReportHandler{Reports: ledger},
		Settings:     &handlers.SettingsHandler{Settings: service.NewSettingsService(repos.settings)},
		PDF:          &handlers.PDFHandler{Documents: documents},
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second, // PDF rendering
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		lg.Info().Int("port", cfg.Port).Str("db_type", cfg.DBType).Msg("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	lg.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		lg.Error().Err(err).Msg("forced shutdown")
	}
}

func openStore(ctx context.Context, cfg *config.Config) (db.DB, *repositories, error) {
	switch db.DBType(cfg.DBType) {
	case db.Postgres:
		pg := postgres.NewPostgresDB(cfg.PostgresURL)
		if err := pg.Connect(ctx); err != nil {
			return nil, nil, err
		}
		if err := db.RunMigrations(pg.Conn, cfg.MigrationsPath); err != nil {
			return nil, nil, err
		}
		return pg, &repositories{
			lrs:      repository.NewPostgresLorryReceiptRepo(pg.Conn),
			invoices: repository.NewPostgresInvoiceRepo(pg.Conn),
			clients:  repository.NewPostgresClientRepo(pg.Conn),
			payments: repository.NewPostgresPaymentRepo(pg.Conn),
			expenses: repository.NewPostgresExpenseRepo(pg.Conn),
			settings: repository.NewPostgresSettingsRepo(pg.Conn),
		}, nil

	case db.Mongo:
		mg := mongo.NewMongoDB(cfg.MongoURL, cfg.MongoDatabase)
		if err := mg.Connect(ctx); err != nil {
			return nil, nil, err
		}
		if err := repository.EnsureMongoIndexes(ctx, mg.DB()); err != nil {
			return nil, nil, err
		}
		return mg, &repositories{
			lrs:      repository.NewMongoLorryReceiptRepo(mg.DB()),
			invoices: repository.NewMongoInvoiceRepo(mg.DB()),
			clients:  repository.NewMongoClientRepo(mg.DB()),
			payments: repository.NewMongoPaymentRepo(mg.DB()),
			expenses: repository.NewMongoExpenseRepo(mg.DB()),
			settings: repository.NewMongoSettingsRepo(mg.DB()),
		}, nil
	}
	return nil, nil, fmt.Errorf("DB_TYPE %q not supported", cfg.DBType)
}

// openArchive prefers R2 when it is configured and falls back to PDF_DIR.
func openArchive(ctx context.Context, cfg *config.Config) (storage.Archive, error) {
	if cfg.R2().Enabled() {
		return storage.NewR2Archive(ctx, cfg.R2())
	}
	return storage.NewLocalArchive(cfg.PDFDir), nil
}
